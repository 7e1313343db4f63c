// Package server assembles the configured components and runs them.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"quiet-scores-service/internal/app/scores"
	"quiet-scores-service/internal/config"
	"quiet-scores-service/internal/decision"
	httpserver "quiet-scores-service/internal/http"
	"quiet-scores-service/internal/http/handlers"
	"quiet-scores-service/internal/logging"
	"quiet-scores-service/internal/metrics"
	"quiet-scores-service/internal/notify"
	"quiet-scores-service/internal/poller"
	"quiet-scores-service/internal/providers"
	"quiet-scores-service/internal/snapshots"
	"quiet-scores-service/internal/store"
	"quiet-scores-service/internal/ws"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	scoresService *scores.Service
	hub           *ws.Hub
	hubCancel     context.CancelFunc
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider and poller wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.ScoreProvider) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg)
	}

	memoryStore := store.NewMemoryStore()
	scoresSvc := scores.NewService(memoryStore)

	hub := ws.NewHub(logger, recorder)
	hubCtx, hubCancel := context.WithCancel(context.Background())
	go hub.Run(hubCtx)

	publishers := []poller.UpdatePublisher{hub}
	notifier := notify.NewSlackNotifier(cfg.Notify.SlackWebhookURL, logger)
	if notifier.Enabled() {
		publishers = append(publishers, notifier)
	}

	var writer *snapshots.Writer
	var snapStore snapshots.Store
	if cfg.Snapshots.Enabled && cfg.Snapshots.Folder != "" {
		writer = snapshots.NewWriter(cfg.Snapshots.Folder, cfg.Snapshots.RetentionDays)
		snapStore = snapshots.NewFSStore(cfg.Snapshots.Folder)
	}

	plr := poller.New(provider, scoresSvc, cfg.LiveInterval, cfg.IdleInterval, poller.Options{
		Writer:     writer,
		Publishers: publishers,
		Logger:     logger,
		Metrics:    recorder,
	})

	calc := decision.NewClient(decision.Config{
		BaseURL: cfg.Decision.BaseURL,
		Timeout: cfg.Decision.Timeout,
	})

	handler := handlers.NewHandler(scoresSvc, snapStore, calc, hub, logger, plr.Status)
	router := httpserver.NewRouter(handler, logger, recorder)

	srv := netHTTPServer{srv: &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		scoresService: scoresSvc,
		hub:           hub,
		hubCancel:     hubCancel,
		httpServer:    srv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}
}

// Run starts the poller and HTTP server, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if s.hubCancel != nil {
		s.hubCancel()
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "err", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "err", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{srv: &http.Server{
			Addr:    ":" + cfg.Metrics.Port,
			Handler: handler,
		}}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "err", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
