// Package scores holds the application-level service between the poller,
// the store, and the HTTP/WebSocket surfaces.
package scores

import (
	"time"

	"quiet-scores-service/internal/domain"
)

// Store defines the contract for persisting and retrieving score records.
type Store interface {
	ListScores() []domain.GameRecord
	GetScore(id string) (domain.GameRecord, bool)
	SetScores(date string, records []domain.GameRecord)
	Date() string
}

// Service coordinates score operations using a Store.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Scores returns the current day's records wrapped in a response envelope.
func (s *Service) Scores() domain.ScoresResponse {
	return domain.NewScoresResponse(s.store.Date(), s.store.ListScores())
}

// ScoreByID returns a single record if present.
func (s *Service) ScoreByID(id string) (domain.GameRecord, bool) {
	return s.store.GetScore(id)
}

// ScoresBySport filters the current records to one league.
func (s *Service) ScoresBySport(sport domain.Sport) []domain.GameRecord {
	all := s.store.ListScores()
	filtered := make([]domain.GameRecord, 0, len(all))
	for _, r := range all {
		if r.Sport == sport {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// HasLiveGames reports whether any stored record is in progress. The
// poller uses this to pick its refresh interval.
func (s *Service) HasLiveGames() bool {
	for _, r := range s.store.ListScores() {
		if r.Status == domain.StatusLive {
			return true
		}
	}
	return false
}

// ReplaceScores swaps the stored snapshot with a new one and returns the
// score changes detected against the previous snapshot. A game appearing
// for the first time is not an update; only a changed score or a
// transition to final on a known game is.
func (s *Service) ReplaceScores(date string, records []domain.GameRecord) []domain.ScoreUpdate {
	previous := make(map[string]domain.GameRecord)
	for _, r := range s.store.ListScores() {
		previous[r.ID] = r
	}

	s.store.SetScores(date, records)

	if len(previous) == 0 {
		return nil
	}

	now := s.now()
	var updates []domain.ScoreUpdate
	for _, r := range records {
		prev, known := previous[r.ID]
		if !known {
			continue
		}
		scoreChanged := prev.AwayScore != r.AwayScore || prev.HomeScore != r.HomeScore
		wentFinal := prev.Status != domain.StatusFinal && r.Status == domain.StatusFinal
		if !scoreChanged && !wentFinal {
			continue
		}
		updates = append(updates, domain.ScoreUpdate{
			GameID:        r.ID,
			Sport:         r.Sport,
			AwayTeam:      r.AwayTeam,
			HomeTeam:      r.HomeTeam,
			AwayScore:     r.AwayScore,
			HomeScore:     r.HomeScore,
			PrevAwayScore: prev.AwayScore,
			PrevHomeScore: prev.HomeScore,
			Status:        r.Status,
			Timestamp:     now,
		})
	}
	return updates
}
