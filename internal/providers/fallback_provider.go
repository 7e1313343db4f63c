package providers

import (
	"context"
	"log/slog"

	"quiet-scores-service/internal/domain"
	"quiet-scores-service/internal/logging"
)

// fallbackProvider serves the secondary provider's data when the primary
// fails outright. It never masks a partial success; only a primary error
// triggers the fallback.
type fallbackProvider struct {
	primary   ScoreProvider
	secondary ScoreProvider
	logger    *slog.Logger
}

// NewFallbackProvider wraps primary so that a total failure falls back to
// secondary (typically the sample dataset).
func NewFallbackProvider(primary, secondary ScoreProvider, logger *slog.Logger) ScoreProvider {
	return &fallbackProvider{
		primary:   primary,
		secondary: secondary,
		logger:    logger,
	}
}

func (f *fallbackProvider) FetchScores(ctx context.Context, date string) ([]domain.GameRecord, error) {
	records, err := f.primary.FetchScores(ctx, date)
	if err == nil {
		return records, nil
	}

	logging.Warn(logging.FromContext(ctx, f.logger), "primary provider failed, serving fallback data",
		logging.FieldDate, date,
		"error", err,
	)
	return f.secondary.FetchScores(ctx, date)
}
