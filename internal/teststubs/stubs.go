// Package teststubs holds shared test doubles for the poller, server,
// and snapshot packages.
package teststubs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"quiet-scores-service/internal/domain"
)

// StubProvider is a test double for providers.ScoreProvider. Records and
// Err may be swapped mid-test through SetRecords/SetErr.
type StubProvider struct {
	mu      sync.Mutex
	Records []domain.GameRecord
	Err     error
	Calls   atomic.Int32
	Notify  chan struct{}
}

// FetchScores returns configured records and error while tracking calls.
func (s *StubProvider) FetchScores(ctx context.Context, date string) ([]domain.GameRecord, error) {
	_ = ctx
	_ = date
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Records, s.Err
}

// SetRecords replaces the records served on subsequent fetches.
func (s *StubProvider) SetRecords(records []domain.GameRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Records = records
}

// SetErr replaces the error returned on subsequent fetches.
func (s *StubProvider) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Err = err
}

// StubSnapshotStore is a test double for snapshots.Store.
type StubSnapshotStore struct {
	Scores  map[string]domain.ScoresResponse // keyed by date
	LoadErr error
}

// LoadScores returns the snapshot for the given date if present.
func (s *StubSnapshotStore) LoadScores(date string) (domain.ScoresResponse, error) {
	if s.LoadErr != nil {
		return domain.ScoresResponse{}, s.LoadErr
	}
	if s.Scores == nil {
		return domain.ScoresResponse{}, errors.New("snapshot not found")
	}
	resp, ok := s.Scores[date]
	if !ok {
		return domain.ScoresResponse{}, errors.New("snapshot not found")
	}
	return resp, nil
}

// StubSnapshotWriter is a test double for poller.SnapshotWriter.
type StubSnapshotWriter struct {
	mu      sync.Mutex
	Written map[string]domain.ScoresResponse // keyed by date
	Err     error
}

// WriteScoresSnapshot records the snapshot for verification in tests.
func (w *StubSnapshotWriter) WriteScoresSnapshot(date string, snapshot domain.ScoresResponse) error {
	if w.Err != nil {
		return w.Err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Written == nil {
		w.Written = make(map[string]domain.ScoresResponse)
	}
	w.Written[date] = snapshot
	return nil
}

// Snapshot returns the recorded snapshot for a date.
func (w *StubSnapshotWriter) Snapshot(date string) (domain.ScoresResponse, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	resp, ok := w.Written[date]
	return resp, ok
}

// StubPublisher is a test double for poller.UpdatePublisher.
type StubPublisher struct {
	mu      sync.Mutex
	Updates []domain.ScoreUpdate
}

// PublishUpdates records the updates for verification in tests.
func (p *StubPublisher) PublishUpdates(ctx context.Context, updates []domain.ScoreUpdate) {
	_ = ctx
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Updates = append(p.Updates, updates...)
}

// Published returns a copy of everything published so far.
func (p *StubPublisher) Published() []domain.ScoreUpdate {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.ScoreUpdate, len(p.Updates))
	copy(out, p.Updates)
	return out
}
