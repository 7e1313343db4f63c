package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quiet-scores-service/internal/app/scores"
	"quiet-scores-service/internal/decision"
	"quiet-scores-service/internal/domain"
	internalhttp "quiet-scores-service/internal/http"
	"quiet-scores-service/internal/http/handlers"
	"quiet-scores-service/internal/poller"
	"quiet-scores-service/internal/snapshots"
	"quiet-scores-service/internal/store"
)

func seededService(t *testing.T) *scores.Service {
	t.Helper()
	memory := store.NewMemoryStore()
	memory.SetScores("2025-04-01", []domain.GameRecord{
		{
			ID:        "401700001",
			Sport:     domain.SportMLB,
			AwayTeam:  "Detroit Tigers",
			HomeTeam:  "Kansas City Royals",
			AwayScore: "3",
			HomeScore: "2",
			Status:    domain.StatusLive,
			Detail:    "Top 5th",
		},
		{
			ID:        "401700002",
			Sport:     domain.SportNBA,
			AwayTeam:  "Boston Celtics",
			HomeTeam:  "Los Angeles Lakers",
			AwayScore: "112",
			HomeScore: "104",
			Status:    domain.StatusFinal,
		},
	})
	return scores.NewService(memory)
}

func newTestServer(t *testing.T, svc *scores.Service, snaps snapshots.Store, calc *decision.Client, statusFn func() poller.Status) *httptest.Server {
	t.Helper()
	handler := handlers.NewHandler(svc, snaps, calc, nil, nil, statusFn)
	server := httptest.NewServer(internalhttp.NewRouter(handler, nil, nil))
	t.Cleanup(server.Close)
	return server
}

func getJSON(t *testing.T, url string, target any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp
}

func TestHealth(t *testing.T) {
	server := newTestServer(t, seededService(t), nil, nil, nil)
	var body map[string]string
	resp := getJSON(t, server.URL+"/health", &body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body["status"] != "ok" {
		t.Fatalf("expected status ok, got %q", body["status"])
	}
}

func TestReadyReflectsPollerStatus(t *testing.T) {
	status := poller.Status{LastSuccess: time.Now()}
	server := newTestServer(t, seededService(t), nil, nil, func() poller.Status { return status })

	resp := getJSON(t, server.URL+"/ready", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 when ready, got %d", resp.StatusCode)
	}

	status = poller.Status{ConsecutiveFailures: 5, LastError: "upstream down"}
	var body map[string]string
	resp = getJSON(t, server.URL+"/ready", &body)
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when failing, got %d", resp.StatusCode)
	}
	if body["error"] != "upstream down" {
		t.Fatalf("expected last error surfaced, got %q", body["error"])
	}
}

func TestScoresServesCachedSlate(t *testing.T) {
	server := newTestServer(t, seededService(t), nil, nil, nil)
	var body domain.ScoresResponse
	resp := getJSON(t, server.URL+"/scores", &body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body.Date != "2025-04-01" {
		t.Fatalf("expected date 2025-04-01, got %q", body.Date)
	}
	if len(body.Scores) != 2 {
		t.Fatalf("expected 2 scores, got %d", len(body.Scores))
	}
}

func TestScoresSportFilter(t *testing.T) {
	server := newTestServer(t, seededService(t), nil, nil, nil)
	var body domain.ScoresResponse
	getJSON(t, server.URL+"/scores?sport=mlb", &body)
	if len(body.Scores) != 1 || body.Scores[0].Sport != domain.SportMLB {
		t.Fatalf("expected only mlb scores, got %+v", body.Scores)
	}

	resp := getJSON(t, server.URL+"/scores?sport=curling", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unsupported sport, got %d", resp.StatusCode)
	}
}

func TestScoresExplicitDateServesSnapshot(t *testing.T) {
	dir := t.TempDir()
	writer := snapshots.NewWriter(dir, 14)
	snapshot := domain.NewScoresResponse("2025-03-15", []domain.GameRecord{
		{ID: "401600001", Sport: domain.SportNHL, AwayTeam: "Boston Bruins", HomeTeam: "Utah Hockey Club", AwayScore: "2", HomeScore: "4", Status: domain.StatusFinal},
	})
	if err := writer.WriteScoresSnapshot("2025-03-15", snapshot); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	server := newTestServer(t, seededService(t), snapshots.NewFSStore(dir), nil, nil)
	var body domain.ScoresResponse
	resp := getJSON(t, server.URL+"/scores?date=2025-03-15", &body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body.Date != "2025-03-15" || len(body.Scores) != 1 {
		t.Fatalf("expected snapshot slate, got %+v", body)
	}

	resp = getJSON(t, server.URL+"/scores?date=2025-01-01", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for missing snapshot, got %d", resp.StatusCode)
	}

	resp = getJSON(t, server.URL+"/scores?date=april-1", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed date, got %d", resp.StatusCode)
	}
}

func TestScoreByID(t *testing.T) {
	server := newTestServer(t, seededService(t), nil, nil, nil)

	var record domain.GameRecord
	resp := getJSON(t, server.URL+"/scores/401700001", &record)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if record.AwayTeam != "Detroit Tigers" {
		t.Fatalf("expected Tigers game, got %+v", record)
	}

	resp = getJSON(t, server.URL+"/scores/999", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", resp.StatusCode)
	}
}

func TestDivisions(t *testing.T) {
	server := newTestServer(t, seededService(t), nil, nil, nil)

	var body struct {
		Sport     domain.Sport `json:"sport"`
		Divisions []struct {
			Name  string   `json:"name"`
			Teams []string `json:"teams"`
		} `json:"divisions"`
	}
	resp := getJSON(t, server.URL+"/divisions/nfl", &body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if len(body.Divisions) != 8 {
		t.Fatalf("expected 8 nfl divisions, got %d", len(body.Divisions))
	}

	resp = getJSON(t, server.URL+"/divisions/college-football", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for league without divisions, got %d", resp.StatusCode)
	}
}

func TestScoresCarryPresentationFields(t *testing.T) {
	server := newTestServer(t, seededService(t), nil, nil, nil)
	var body struct {
		Scores []struct {
			ID         string `json:"id"`
			StatusLine string `json:"statusLine"`
			AwayLogo   string `json:"awayLogo"`
		} `json:"scores"`
	}
	getJSON(t, server.URL+"/scores", &body)
	if len(body.Scores) != 2 {
		t.Fatalf("expected 2 scores, got %d", len(body.Scores))
	}
	for _, score := range body.Scores {
		if score.StatusLine == "" {
			t.Fatalf("expected status line for %s", score.ID)
		}
		if score.AwayLogo == "" {
			t.Fatalf("expected away logo for %s", score.ID)
		}
	}
}

func TestDivisionsTeamLookup(t *testing.T) {
	server := newTestServer(t, seededService(t), nil, nil, nil)

	var body struct {
		Division string `json:"division"`
	}
	resp := getJSON(t, server.URL+"/divisions/mlb?team=Detroit+Tigers", &body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body.Division != "American League Central" {
		t.Fatalf("expected American League Central, got %q", body.Division)
	}

	resp = getJSON(t, server.URL+"/divisions/mlb?team=Not+A+Team", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown team, got %d", resp.StatusCode)
	}
}

func TestCalculateProxiesBackend(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"go":   {"tdProb": 25.8, "fgProb": -0.2, "noScoreProb": -24.8, "wpa": 1.2},
			"fg":   {"tdProb": -13.6, "fgProb": 32.2, "noScoreProb": -18.4, "wpa": 0.4},
			"punt": {"netTd": -7.5, "score": 12.0, "win": 3.1}
		}`))
	}))
	defer backend.Close()

	calc := decision.NewClient(decision.Config{BaseURL: backend.URL})
	server := newTestServer(t, seededService(t), nil, calc, nil)

	resp, err := http.Post(server.URL+"/api/calculate", "application/json",
		strings.NewReader(`{"currentYardline": 45, "ballSide": "opp", "yardsToGo": 3, "quarter": 4}`))
	if err != nil {
		t.Fatalf("POST /api/calculate: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var result decision.CalculationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.Go.WPA != 1.2 {
		t.Fatalf("expected go wpa 1.2, got %v", result.Go.WPA)
	}
}

func TestCalculateRejectsBadBody(t *testing.T) {
	calc := decision.NewClient(decision.Config{BaseURL: "http://127.0.0.1:0"})
	server := newTestServer(t, seededService(t), nil, calc, nil)

	resp, err := http.Post(server.URL+"/api/calculate", "application/json", strings.NewReader("not json"))
	if err != nil {
		t.Fatalf("POST /api/calculate: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestCalculateBackendFailure(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer backend.Close()

	calc := decision.NewClient(decision.Config{BaseURL: backend.URL})
	server := newTestServer(t, seededService(t), nil, calc, nil)

	resp, err := http.Post(server.URL+"/api/calculate", "application/json", strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("POST /api/calculate: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.StatusCode)
	}
}
