// Package handlers wires HTTP routes to the scoreboard service.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"quiet-scores-service/internal/app/scores"
	"quiet-scores-service/internal/decision"
	"quiet-scores-service/internal/domain"
	"quiet-scores-service/internal/format"
	"quiet-scores-service/internal/poller"
	"quiet-scores-service/internal/snapshots"
	"quiet-scores-service/internal/ws"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the domain service.
type Handler struct {
	svc       *scores.Service
	snaps     snapshots.Store
	calc      *decision.Client
	hub       *ws.Hub
	presenter *format.Presenter
	logger    *slog.Logger
	now       nowFunc
	statusFn  func() poller.Status
	upgrader  websocket.Upgrader
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *scores.Service, snaps snapshots.Store, calc *decision.Client, hub *ws.Hub, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:       svc,
		snaps:     snaps,
		calc:      calc,
		hub:       hub,
		presenter: format.NewPresenter(),
		logger:    logger,
		now:       time.Now,
		statusFn:  statusFn,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic based on recent poller health.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Scores returns the current slate, optionally filtered by sport or
// served from a snapshot when an explicit date is requested.
func (h *Handler) Scores(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	dateParam := r.URL.Query().Get("date")
	sportParam := r.URL.Query().Get("sport")

	var sport domain.Sport
	if sportParam != "" {
		sport = domain.Sport(sportParam)
		if !sport.Valid() {
			writeError(w, r, http.StatusBadRequest, "unsupported sport", h.logger)
			return
		}
	}

	if dateParam != "" {
		if _, err := time.Parse("2006-01-02", dateParam); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
			return
		}
	}

	payload := h.svc.Scores()

	// Explicit date queries are served from snapshots only.
	if dateParam != "" && dateParam != payload.Date {
		snap, err := h.loadSnapshot(dateParam)
		if err != nil {
			writeError(w, r, http.StatusNotFound, "no scores for date", h.logger)
			return
		}
		payload = snap
	} else if len(payload.Scores) == 0 {
		// Empty cache on startup falls back to today's snapshot.
		today := h.now().Format("2006-01-02")
		if snap, err := h.loadSnapshot(today); err == nil {
			payload = snap
		}
	}

	if sport != "" {
		filtered := make([]domain.GameRecord, 0, len(payload.Scores))
		for _, record := range payload.Scores {
			if record.Sport == sport {
				filtered = append(filtered, record)
			}
		}
		payload.Scores = filtered
	}

	if logger != nil {
		logger.Info("served scores", "date", payload.Date, "count", len(payload.Scores))
	}
	writeJSON(w, http.StatusOK, h.presenter.PresentAll(payload), h.logger)
}

// ScoreByID returns a specific game if present.
func (h *Handler) ScoreByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, r, http.StatusBadRequest, "invalid game id", h.logger)
		return
	}
	record, ok := h.svc.ScoreByID(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "game not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.presenter.Present(record), h.logger)
}

// Divisions returns the league's division layout, or a single team's
// division when a team query is present.
func (h *Handler) Divisions(w http.ResponseWriter, r *http.Request) {
	sport := domain.Sport(chi.URLParam(r, "sport"))
	divisions := format.Divisions(sport)
	if divisions == nil {
		writeError(w, r, http.StatusNotFound, "no divisions for sport", h.logger)
		return
	}

	if team := r.URL.Query().Get("team"); team != "" {
		division, ok := format.FindTeamDivision(sport, team)
		if !ok {
			writeError(w, r, http.StatusNotFound, "team not found", h.logger)
			return
		}
		payload := struct {
			Sport    domain.Sport `json:"sport"`
			Team     string       `json:"team"`
			Division string       `json:"division"`
		}{Sport: sport, Team: team, Division: division}
		writeJSON(w, http.StatusOK, payload, h.logger)
		return
	}

	payload := struct {
		Sport     domain.Sport           `json:"sport"`
		Divisions []format.DivisionEntry `json:"divisions"`
	}{Sport: sport, Divisions: divisions}
	writeJSON(w, http.StatusOK, payload, h.logger)
}

// Calculate proxies a 4th-down situation to the calculation backend.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	if h.calc == nil {
		writeError(w, r, http.StatusServiceUnavailable, "calculator not configured", h.logger)
		return
	}
	var request decision.CalculationRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<16)).Decode(&request); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	result, err := h.calc.Calculate(r.Context(), request)
	if err != nil {
		logger := loggerFromContext(r, h.logger)
		if logger != nil {
			logger.Error("calculation failed", "err", err)
		}
		writeError(w, r, http.StatusBadGateway, "calculation backend unavailable", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, result, h.logger)
}

// WebSocket upgrades the connection and attaches the client to the hub.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.hub == nil {
		writeError(w, r, http.StatusServiceUnavailable, "live updates not configured", h.logger)
		return
	}
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the handshake error.
		return
	}
	client := ws.NewClient(uuid.NewString(), conn, h.hub, h.logger)
	h.hub.Register(client)
	// The request context ends when this handler returns; the pumps
	// live for the connection, so they run on their own context.
	go client.WritePump(context.Background())
	go client.ReadPump(context.Background())
}

func (h *Handler) loadSnapshot(date string) (domain.ScoresResponse, error) {
	if h.snaps == nil {
		return domain.ScoresResponse{}, errors.New("snapshot store not configured")
	}
	return h.snaps.LoadScores(date)
}
