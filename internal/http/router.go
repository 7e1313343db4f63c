// Package http assembles the route table and cross-cutting middleware.
package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"quiet-scores-service/internal/http/handlers"
	"quiet-scores-service/internal/http/middleware"
	"quiet-scores-service/internal/metrics"
)

// NewRouter registers routes and middleware around the handler set.
func NewRouter(handler *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(func(next nethttp.Handler) nethttp.Handler {
		return middleware.Logging(logger, recorder, next)
	})

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)
	r.Get("/scores", handler.Scores)
	r.Get("/scores/{id}", handler.ScoreByID)
	r.Get("/divisions/{sport}", handler.Divisions)
	r.Get("/ws", handler.WebSocket)
	r.Post("/api/calculate", handler.Calculate)

	return r
}
