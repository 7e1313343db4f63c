package sample

import (
	"context"
	"testing"
	"time"

	"quiet-scores-service/internal/domain"
)

func TestProviderReturnsDeterministicRecords(t *testing.T) {
	p := New()
	p.now = func() time.Time { return time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC) }

	records, err := p.FetchScores(context.Background(), "")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	byStatus := map[domain.Status]int{}
	for _, r := range records {
		byStatus[r.Status]++
	}
	for _, status := range []domain.Status{domain.StatusScheduled, domain.StatusLive, domain.StatusFinal} {
		if byStatus[status] != 1 {
			t.Fatalf("expected one %s record, got %d", status, byStatus[status])
		}
	}

	again, err := p.FetchScores(context.Background(), "")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(again) != len(records) || again[0].ID != records[0].ID {
		t.Fatalf("sample data must be deterministic")
	}
}

func TestProviderLiveRecordCarriesBaseballState(t *testing.T) {
	records, err := New().FetchScores(context.Background(), "2025-04-01")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	var live *domain.GameRecord
	for i := range records {
		if records[i].Status == domain.StatusLive {
			live = &records[i]
		}
	}
	if live == nil {
		t.Fatal("expected a live record")
	}
	if live.InningNumber != 5 || live.TopBottom != domain.HalfTop {
		t.Fatalf("unexpected inning state %d %s", live.InningNumber, live.TopBottom)
	}
	if live.Bases == nil || live.Bases.String() != "1st" {
		t.Fatalf("unexpected bases %v", live.Bases)
	}
}
