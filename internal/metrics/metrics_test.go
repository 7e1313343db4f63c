package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("espn", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("espn", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("espn"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("espn"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("espn"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("espn")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksScoreUpdates(t *testing.T) {
	rec := NewRecorder()
	rec.RecordScoreUpdates(2)
	rec.RecordScoreUpdates(0)
	rec.RecordScoreUpdates(1)

	if got := rec.ScoreUpdates(); got != 3 {
		t.Fatalf("expected 3 score updates, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("espn", time.Millisecond, nil)
	rec.RecordScoreUpdates(1)
	rec.RecordWSClients(1)
	rec.RecordHTTPRequest("GET", "/scores", 200, time.Millisecond)
	rec.RecordPollerCycle(time.Millisecond, nil)
	if rec.ScoreUpdates() != 0 {
		t.Fatal("nil recorder must report zero")
	}
}
