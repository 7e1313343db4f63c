package providers

import (
	"context"

	"quiet-scores-service/internal/domain"
)

// ScoreProvider defines how upstream scoreboard data is fetched and normalized.
// The date parameter, when provided, should be a YYYY-MM-DD string indicating
// which day's games to fetch. Providers should interpret an empty date as
// "today" in UTC.
type ScoreProvider interface {
	FetchScores(ctx context.Context, date string) ([]domain.GameRecord, error)
}

// SportFetcher fetches a single sport's scoreboard. The multi-sport
// provider fans out over one of these.
type SportFetcher interface {
	FetchSport(ctx context.Context, sport domain.Sport, date string) ([]domain.GameRecord, error)
}
