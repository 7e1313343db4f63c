package providers

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"quiet-scores-service/internal/domain"
	"quiet-scores-service/internal/logging"
)

// MultiSportProvider fans a fetch out across every configured sport and
// merges the results. A failing league is logged and skipped; the fetch
// only errors when every league fails.
type MultiSportProvider struct {
	fetcher SportFetcher
	sports  []domain.Sport
	logger  *slog.Logger
}

// NewMultiSportProvider builds a provider over the given sports. An empty
// sport list means all supported sports.
func NewMultiSportProvider(fetcher SportFetcher, sports []domain.Sport, logger *slog.Logger) *MultiSportProvider {
	if len(sports) == 0 {
		sports = domain.AllSports
	}
	return &MultiSportProvider{
		fetcher: fetcher,
		sports:  sports,
		logger:  logger,
	}
}

func (m *MultiSportProvider) FetchScores(ctx context.Context, date string) ([]domain.GameRecord, error) {
	type sportResult struct {
		sport   domain.Sport
		records []domain.GameRecord
		err     error
	}

	results := make([]sportResult, len(m.sports))

	var wg sync.WaitGroup
	for i, sport := range m.sports {
		wg.Add(1)
		go func(i int, sport domain.Sport) {
			defer wg.Done()
			records, err := m.fetcher.FetchSport(ctx, sport, date)
			results[i] = sportResult{sport: sport, records: records, err: err}
		}(i, sport)
	}
	wg.Wait()

	logger := logging.FromContext(ctx, m.logger)

	var merged []domain.GameRecord
	var failures []SportError
	for _, res := range results {
		if res.err != nil {
			failures = append(failures, SportError{Sport: res.sport, Err: res.err})
			logging.Warn(logger, "sport scoreboard fetch failed",
				logging.FieldSport, string(res.sport),
				"error", res.err,
			)
			continue
		}
		merged = append(merged, res.records...)
	}

	if len(failures) == len(m.sports) {
		return nil, &AllFailedError{Failures: failures}
	}

	sortRecords(merged)
	return merged, nil
}

// sortRecords orders the merged list deterministically: live first, then
// scheduled, then final, with sport and ID as tiebreakers.
func sortRecords(records []domain.GameRecord) {
	rank := map[domain.Status]int{
		domain.StatusLive:      0,
		domain.StatusScheduled: 1,
		domain.StatusFinal:     2,
	}
	sort.SliceStable(records, func(i, j int) bool {
		if rank[records[i].Status] != rank[records[j].Status] {
			return rank[records[i].Status] < rank[records[j].Status]
		}
		if records[i].Sport != records[j].Sport {
			return records[i].Sport < records[j].Sport
		}
		return records[i].ID < records[j].ID
	})
}
