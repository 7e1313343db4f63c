// Package sample serves a static scoreboard useful for local testing
// and as the last-resort dataset when every upstream league is down.
package sample

import (
	"context"
	"time"

	"quiet-scores-service/internal/domain"
	"quiet-scores-service/internal/timeutil"
)

// Provider returns a deterministic set of games.
type Provider struct {
	now func() time.Time
}

// New creates a sample provider with a time source.
func New() *Provider {
	return &Provider{now: time.Now}
}

// FetchScores returns a deterministic set of example games covering each
// lifecycle state.
func (p *Provider) FetchScores(ctx context.Context, date string) ([]domain.GameRecord, error) {
	_ = ctx

	day := p.now().UTC()
	if date != "" {
		if parsed, err := timeutil.ParseDate(date); err == nil {
			day = parsed
		}
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), 23, 0, 0, 0, time.UTC)

	one, two := 1, 2
	bases := domain.NewBases(true, false, false)

	records := []domain.GameRecord{
		{
			ID:               "sample-mlb-1",
			Sport:            domain.SportMLB,
			AwayTeam:         "Detroit Tigers",
			HomeTeam:         "Kansas City Royals",
			AwayAbbreviation: "DET",
			HomeAbbreviation: "KC",
			AwayScore:        "2",
			HomeScore:        "1",
			Status:           domain.StatusLive,
			Detail:           "Top 5th",
			InningNumber:     5,
			TopBottom:        domain.HalfTop,
			Bases:            &bases,
			Balls:            &two,
			Strikes:          &one,
			Outs:             &one,
			AtBatTeam:        "away",
			FullDateTime:     start.Add(-2 * time.Hour).Format(time.RFC3339),
			DisplayDate:      timeutil.DisplayDate(start),
		},
		{
			ID:               "sample-nfl-1",
			Sport:            domain.SportNFL,
			AwayTeam:         "Green Bay Packers",
			HomeTeam:         "Chicago Bears",
			AwayAbbreviation: "GB",
			HomeAbbreviation: "CHI",
			AwayScore:        "0",
			HomeScore:        "0",
			Status:           domain.StatusScheduled,
			Detail:           "Scheduled",
			FullDateTime:     start.Format(time.RFC3339),
			DisplayDate:      timeutil.DisplayDate(start),
			DisplayTime:      timeutil.DisplayTime(start),
		},
		{
			ID:               "sample-nba-1",
			Sport:            domain.SportNBA,
			AwayTeam:         "Boston Celtics",
			HomeTeam:         "Los Angeles Lakers",
			AwayAbbreviation: "BOS",
			HomeAbbreviation: "LAL",
			AwayScore:        "112",
			HomeScore:        "104",
			Status:           domain.StatusFinal,
			Detail:           "Final",
			FullDateTime:     start.Add(-5 * time.Hour).Format(time.RFC3339),
			DisplayDate:      timeutil.DisplayDate(start),
		},
	}

	return records, nil
}
