package espn

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiet-scores-service/internal/domain"
)

func TestExtractInningFallbackOrder(t *testing.T) {
	cases := []struct {
		name string
		ev   *eventResponse
		want int
	}{
		{
			"detail ordinal wins",
			&eventResponse{Status: statusResponse{Period: 3, Type: statusTypeResponse{Detail: "Top 7th", Description: "Bottom 2nd"}}},
			7,
		},
		{
			"short detail next",
			&eventResponse{Status: statusResponse{Type: statusTypeResponse{ShortDetail: "Bot 5th"}}},
			5,
		},
		{
			"description next",
			&eventResponse{Status: statusResponse{Type: statusTypeResponse{Description: "Middle of the 4th"}}},
			4,
		},
		{
			"period when no text",
			&eventResponse{Status: statusResponse{Period: 6}},
			6,
		},
		{
			"detailed state last text source",
			&eventResponse{Status: statusResponse{Type: statusTypeResponse{DetailedState: "In 8th"}}},
			8,
		},
		{
			"default one",
			&eventResponse{},
			1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractInning(tc.ev))
		})
	}
}

func TestExtractHalfInningFallbackOrder(t *testing.T) {
	top := true
	bottom := false

	situationWith := func(s situationResponse) *situationResponse { return &s }

	cases := []struct {
		name      string
		st        statusTypeResponse
		situation *situationResponse
		want      domain.HalfInning
	}{
		{"detail keyword", statusTypeResponse{Detail: "Bottom 3rd"}, nil, domain.HalfBottom},
		{"short detail keyword", statusTypeResponse{ShortDetail: "Mid 5th"}, nil, domain.HalfMiddle},
		{"description keyword", statusTypeResponse{Description: "End of 6th"}, nil, domain.HalfEnd},
		{"topOfInning true", statusTypeResponse{}, situationWith(situationResponse{TopOfInning: &top}), domain.HalfTop},
		{"topOfInning false", statusTypeResponse{}, situationWith(situationResponse{TopOfInning: &bottom}), domain.HalfBottom},
		{"inningHalf numeric", statusTypeResponse{}, situationWith(situationResponse{InningHalf: "2"}), domain.HalfBottom},
		{"inningHalf string", statusTypeResponse{}, situationWith(situationResponse{InningHalf: "top"}), domain.HalfTop},
		{"inningState string", statusTypeResponse{}, situationWith(situationResponse{InningState: "Bottom"}), domain.HalfBottom},
		{"default top", statusTypeResponse{}, nil, domain.HalfTop},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractHalfInning(tc.st, tc.situation))
		})
	}
}

func TestExtractHalfInningGenericScan(t *testing.T) {
	// No typed field resolves, but a raw situation value mentions the half.
	var situation situationResponse
	require.NoError(t, json.Unmarshal([]byte(`{"halfLabel":"bottom of the 9th"}`), &situation))

	got := extractHalfInning(statusTypeResponse{}, &situation)
	assert.Equal(t, domain.HalfBottom, got)
}

func TestExtractBases(t *testing.T) {
	boolPtr := func(b bool) *bool { return &b }

	t.Run("all on is loaded", func(t *testing.T) {
		s := &situationResponse{OnFirst: boolPtr(true), OnSecond: boolPtr(true), OnThird: boolPtr(true)}
		b := extractBases(s, statusTypeResponse{})
		require.NotNil(t, b)
		assert.Equal(t, "loaded", b.String())
	})

	t.Run("all off is empty", func(t *testing.T) {
		s := &situationResponse{OnFirst: boolPtr(false), OnSecond: boolPtr(false), OnThird: boolPtr(false)}
		b := extractBases(s, statusTypeResponse{})
		require.NotNil(t, b)
		assert.Equal(t, "empty", b.String())
	})

	t.Run("corner pair", func(t *testing.T) {
		s := &situationResponse{OnFirst: boolPtr(true), OnSecond: boolPtr(false), OnThird: boolPtr(true)}
		b := extractBases(s, statusTypeResponse{})
		require.NotNil(t, b)
		assert.Equal(t, "1st & 3rd", b.String())
	})

	t.Run("phrase fallback", func(t *testing.T) {
		b := extractBases(nil, statusTypeResponse{Description: "Bases loaded, two out"})
		require.NotNil(t, b)
		assert.Equal(t, "loaded", b.String())

		b = extractBases(nil, statusTypeResponse{Description: "Runner on second"})
		require.NotNil(t, b)
		assert.Equal(t, "2nd", b.String())
	})

	t.Run("nothing known", func(t *testing.T) {
		assert.Nil(t, extractBases(nil, statusTypeResponse{}))
	})
}

func TestOutsFromText(t *testing.T) {
	outs, ok := outsFromText("Two on, 2 outs")
	require.True(t, ok)
	assert.Equal(t, 2, outs)

	_, ok = outsFromText("Top 5th")
	assert.False(t, ok)
}

func TestExtractBaseballStateCounts(t *testing.T) {
	two, one := 2, 1
	ev := &eventResponse{
		Status: statusResponse{Type: statusTypeResponse{State: "in", Description: "Top 5th"}},
		Competitions: []competitionResponse{{
			Situation: &situationResponse{Balls: &two, Strikes: &one, Outs: &one},
		}},
	}
	state := extractBaseballState(ev)
	assert.Equal(t, 5, state.Inning)
	assert.Equal(t, domain.HalfTop, state.TopBottom)
	require.NotNil(t, state.Balls)
	assert.Equal(t, 2, *state.Balls)
	require.NotNil(t, state.Strikes)
	assert.Equal(t, 1, *state.Strikes)
	require.NotNil(t, state.Outs)
	assert.Equal(t, 1, *state.Outs)
}

func TestOutsRegexFallback(t *testing.T) {
	ev := &eventResponse{
		Status: statusResponse{Type: statusTypeResponse{State: "in", Description: "Bottom 8th, 1 out"}},
		Competitions: []competitionResponse{{
			Situation: &situationResponse{},
		}},
	}
	state := extractBaseballState(ev)
	require.NotNil(t, state.Outs)
	assert.Equal(t, 1, *state.Outs)
}
