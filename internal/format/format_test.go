package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quiet-scores-service/internal/domain"
)

func TestOrdinal(t *testing.T) {
	cases := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th",
		11: "11th", 12: "12th", 13: "13th",
		21: "21st", 22: "22nd", 23: "23rd", 101: "101st",
	}
	for n, want := range cases {
		assert.Equal(t, want, Ordinal(n))
	}
}

func TestHalfInningLabel(t *testing.T) {
	assert.Equal(t, "Top 3rd", HalfInningLabel(domain.HalfTop, 3))
	assert.Equal(t, "Bot 9th", HalfInningLabel(domain.HalfBottom, 9))
	assert.Equal(t, "Mid 7th", HalfInningLabel(domain.HalfMiddle, 7))
	assert.Equal(t, "End 1st", HalfInningLabel(domain.HalfEnd, 1))
	assert.Equal(t, "Top 5th", HalfInningLabel("", 5))
}

func TestStatusLine(t *testing.T) {
	cases := []struct {
		name string
		g    domain.GameRecord
		want string
	}{
		{
			"scheduled with time",
			domain.GameRecord{Status: domain.StatusScheduled, DisplayTime: "7:05 PM"},
			"7:05 PM",
		},
		{
			"scheduled without time",
			domain.GameRecord{Status: domain.StatusScheduled},
			"TBD",
		},
		{
			"final",
			domain.GameRecord{Status: domain.StatusFinal, Detail: "Final"},
			"Final",
		},
		{
			"final overtime keeps detail",
			domain.GameRecord{Status: domain.StatusFinal, Detail: "Final/OT"},
			"Final/OT",
		},
		{
			"live baseball",
			domain.GameRecord{Sport: domain.SportMLB, Status: domain.StatusLive, TopBottom: domain.HalfBottom, InningNumber: 8},
			"Bot 8th",
		},
		{
			"live football",
			domain.GameRecord{Sport: domain.SportNFL, Status: domain.StatusLive, Period: 4, Clock: "2:34"},
			"2:34 Q4",
		},
		{
			"live hockey with clock",
			domain.GameRecord{Sport: domain.SportNHL, Status: domain.StatusLive, Period: 2, Clock: "11:08"},
			"11:08 P2",
		},
		{
			"live hockey without clock",
			domain.GameRecord{Sport: domain.SportNHL, Status: domain.StatusLive, Period: 2},
			"2nd Period",
		},
		{
			"live basketball",
			domain.GameRecord{Sport: domain.SportNBA, Status: domain.StatusLive, Period: 3, Clock: "5:21"},
			"5:21 Q3",
		},
		{
			"basketball halftime from text",
			domain.GameRecord{Sport: domain.SportNBA, Status: domain.StatusLive, Period: 2, Clock: "0:00", Detail: "Halftime"},
			"Halftime",
		},
		{
			"basketball halftime from shape",
			domain.GameRecord{Sport: domain.SportNBA, Status: domain.StatusLive, Clock: "0:00"},
			"Halftime",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusLine(tc.g))
		})
	}
}

func TestLogoResolver(t *testing.T) {
	r := NewLogoResolver()

	t.Run("abbreviation wins", func(t *testing.T) {
		url := r.LogoURL(domain.SportNFL, "GB", "Green Bay Packers", "")
		assert.Equal(t, "https://a.espncdn.com/i/teamlogos/nfl/500/gb.png", url)
	})

	t.Run("full name lookup", func(t *testing.T) {
		url := r.LogoURL(domain.SportMLB, "", "St. Louis Cardinals", "")
		assert.Equal(t, "https://a.espncdn.com/i/teamlogos/mlb/500/stl.png", url)
	})

	t.Run("word overlap", func(t *testing.T) {
		url := r.LogoURL(domain.SportNBA, "", "Celtics", "")
		assert.Equal(t, "https://a.espncdn.com/i/teamlogos/nba/500/bos.png", url)
	})

	t.Run("college by team id", func(t *testing.T) {
		url := r.LogoURL(domain.SportCollegeFootball, "MICH", "Michigan Wolverines", "130")
		assert.Equal(t, "https://a.espncdn.com/i/teamlogos/ncaa/500/130.png", url)
	})

	t.Run("unresolvable yields empty", func(t *testing.T) {
		assert.Empty(t, r.LogoURL(domain.SportNHL, "", "Quiet City Phantoms", ""))
	})

	t.Run("cache returns same result", func(t *testing.T) {
		first := r.LogoURL(domain.SportNFL, "GB", "Green Bay Packers", "")
		second := r.LogoURL(domain.SportNFL, "GB", "Green Bay Packers", "")
		assert.Equal(t, first, second)
	})
}

func TestInitialsBadge(t *testing.T) {
	badge := InitialsBadge("Green Bay Packers")
	assert.Equal(t, "GB", badge.Initials)
	assert.NotEmpty(t, badge.Color)

	// Deterministic for the same name.
	assert.Equal(t, badge, InitialsBadge("Green Bay Packers"))

	assert.Equal(t, "?", InitialsBadge("").Initials)
}

func TestFindTeamDivision(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		div, ok := FindTeamDivision(domain.SportMLB, "Detroit Tigers")
		assert.True(t, ok)
		assert.Equal(t, "American League Central", div)
	})

	t.Run("partial", func(t *testing.T) {
		div, ok := FindTeamDivision(domain.SportNFL, "Packers")
		assert.True(t, ok)
		assert.Equal(t, "NFC North", div)
	})

	t.Run("word overlap", func(t *testing.T) {
		div, ok := FindTeamDivision(domain.SportNHL, "Toronto Maple Leafs Hockey Club")
		assert.True(t, ok)
		assert.Equal(t, "Eastern Conference - Atlantic", div)
	})

	t.Run("unknown team", func(t *testing.T) {
		_, ok := FindTeamDivision(domain.SportNBA, "Quiet City Phantoms")
		assert.False(t, ok)
	})

	t.Run("college has no table", func(t *testing.T) {
		_, ok := FindTeamDivision(domain.SportCollegeFootball, "Michigan Wolverines")
		assert.False(t, ok)
		assert.Nil(t, Divisions(domain.SportCollegeFootball))
	})
}
