package snapshots

import (
	"testing"

	"quiet-scores-service/internal/domain"
)

func TestFSStoreLoadsWrittenSnapshot(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir, 14)
	if err := writer.WriteScoresSnapshot("2025-04-01", sampleSnapshot("2025-04-01")); err != nil {
		t.Fatalf("WriteScoresSnapshot: %v", err)
	}

	store := NewFSStore(dir)
	got, err := store.LoadScores("2025-04-01")
	if err != nil {
		t.Fatalf("LoadScores: %v", err)
	}
	if got.Date != "2025-04-01" {
		t.Fatalf("expected date 2025-04-01, got %q", got.Date)
	}
	if len(got.Scores) != 2 {
		t.Fatalf("expected 2 scores, got %d", len(got.Scores))
	}
	if got.Scores[1].Sport != domain.SportNBA {
		t.Fatalf("expected nba record second, got %q", got.Scores[1].Sport)
	}
}

func TestFSStoreMissingSnapshot(t *testing.T) {
	store := NewFSStore(t.TempDir())
	if _, err := store.LoadScores("2025-04-01"); err == nil {
		t.Fatal("expected error for missing snapshot")
	}
}
