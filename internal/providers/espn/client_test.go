package espn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiet-scores-service/internal/domain"
)

const scoreboardFixture = `{
  "events": [
    {
      "id": "401580100",
      "date": "2025-04-01T23:05Z",
      "status": {
        "period": 5,
        "type": {"state": "in", "description": "Top 5th", "shortDetail": "Top 5th"}
      },
      "competitions": [{
        "competitors": [
          {"homeAway": "away", "score": "2", "team": {"id": "15", "displayName": "Detroit Tigers", "abbreviation": "DET"}},
          {"homeAway": "home", "score": "1", "team": {"id": "12", "displayName": "Kansas City Royals", "abbreviation": "KC"}}
        ],
        "situation": {"balls": 2, "strikes": 1, "outs": 1, "onFirst": true, "onSecond": false, "onThird": false}
      }]
    },
    {
      "id": "401580101",
      "date": "2025-04-01T20:00Z",
      "status": {"type": {"state": "post", "description": "Final"}},
      "competitions": [{
        "competitors": [
          {"homeAway": "away", "score": "5", "team": {"displayName": "Chicago Cubs"}},
          {"homeAway": "home", "score": "3", "team": {"displayName": "Milwaukee Brewers"}}
        ]
      }]
    },
    {
      "id": "broken",
      "status": {"type": {"state": "pre"}},
      "competitions": [{"competitors": [{"homeAway": "away", "team": {"displayName": "Lonely"}}]}]
    }
  ]
}`

func TestClientFetchSport(t *testing.T) {
	var gotPath, gotDates string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotDates = r.URL.Query().Get("dates")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(scoreboardFixture))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Timeout: time.Second})
	records, err := client.FetchSport(context.Background(), domain.SportMLB, "2025-04-01")
	require.NoError(t, err)

	assert.Equal(t, "/baseball/mlb/scoreboard", gotPath)
	assert.Equal(t, "20250401", gotDates)

	// The unresolvable third event is dropped.
	require.Len(t, records, 2)

	live := records[0]
	assert.Equal(t, "401580100", live.ID)
	assert.Equal(t, domain.StatusLive, live.Status)
	assert.Equal(t, 5, live.InningNumber)
	assert.Equal(t, domain.HalfTop, live.TopBottom)
	require.NotNil(t, live.Bases)
	assert.Equal(t, "1st", live.Bases.String())

	final := records[1]
	assert.Equal(t, domain.StatusFinal, final.Status)
	assert.Equal(t, "away", final.Winner())
}

func TestClientFetchSportDefaultsDateToToday(t *testing.T) {
	var gotDates string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDates = r.URL.Query().Get("dates")
		w.Write([]byte(`{"events":[]}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	client.now = func() time.Time { return time.Date(2025, 4, 2, 12, 0, 0, 0, time.UTC) }

	records, err := client.FetchSport(context.Background(), domain.SportNBA, "")
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, "20250402", gotDates)
}

func TestClientFetchSportUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	_, err := client.FetchSport(context.Background(), domain.SportNHL, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestClientFetchSportUnsupportedSport(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://example.invalid"})
	_, err := client.FetchSport(context.Background(), domain.Sport("curling"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported sport")
}

func TestClientFetchSportMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"events": [`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	_, err := client.FetchSport(context.Background(), domain.SportNFL, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}
