package server

import (
	"log/slog"

	"quiet-scores-service/internal/config"
	"quiet-scores-service/internal/metrics"
	"quiet-scores-service/internal/providers"
	"quiet-scores-service/internal/providers/espn"
	"quiet-scores-service/internal/providers/sample"
)

// providerFactory assembles the score provider with shared wrappers
// (retry + sample fallback).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, recorder *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: recorder}
}

func (f providerFactory) build(cfg config.Config) providers.ScoreProvider {
	if cfg.Provider == "sample" {
		return sample.New()
	}

	client := espn.NewClient(espn.Config{
		BaseURL: cfg.ESPN.BaseURL,
		Timeout: cfg.ESPN.Timeout,
	})
	multi := providers.NewMultiSportProvider(client, nil, f.logger)
	retried := providers.NewRetryingProvider(multi, f.logger, f.metrics, cfg.Provider, 0, 0)
	return providers.NewFallbackProvider(retried, sample.New(), f.logger)
}
