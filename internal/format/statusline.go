package format

import (
	"strconv"
	"strings"

	"quiet-scores-service/internal/domain"
)

// halfLabels map the half-inning marker to its display prefix.
var halfLabels = map[domain.HalfInning]string{
	domain.HalfTop:    "Top",
	domain.HalfBottom: "Bot",
	domain.HalfMiddle: "Mid",
	domain.HalfEnd:    "End",
}

// HalfInningLabel renders the half + ordinal inning ("Top 3rd").
func HalfInningLabel(half domain.HalfInning, inning int) string {
	label, ok := halfLabels[half]
	if !ok {
		label = "Top"
	}
	return label + " " + Ordinal(inning)
}

// StatusLine renders the single display string for a record's current
// state: the start time when scheduled, "Final" when over, and the
// sport-specific progress line while live.
func StatusLine(g domain.GameRecord) string {
	switch g.Status {
	case domain.StatusFinal:
		if strings.Contains(strings.ToLower(g.Detail), "ot") {
			return g.Detail
		}
		return "Final"
	case domain.StatusScheduled:
		if g.DisplayTime != "" {
			return g.DisplayTime
		}
		return "TBD"
	}
	return liveLine(g)
}

func liveLine(g domain.GameRecord) string {
	switch {
	case g.Sport.IsBaseball():
		return HalfInningLabel(g.TopBottom, g.InningNumber)
	case g.Sport.IsFootball():
		return clockPeriodLine(g, "Q")
	case g.Sport == domain.SportNHL:
		if g.Period > 0 && g.Clock == "" {
			return Ordinal(g.Period) + " Period"
		}
		return clockPeriodLine(g, "P")
	default:
		if isHalftime(g) {
			return "Halftime"
		}
		return clockPeriodLine(g, "Q")
	}
}

// isHalftime detects the basketball break either from explicit status
// text or from the telltale shape: clock exhausted with no period set.
func isHalftime(g domain.GameRecord) bool {
	if strings.Contains(strings.ToLower(g.Detail), "halftime") {
		return true
	}
	return g.Period == 0 && zeroClock(g.Clock)
}

func clockPeriodLine(g domain.GameRecord, periodPrefix string) string {
	clock := g.Clock
	if clock == "" {
		clock = "0:00"
	}
	if g.Period <= 0 {
		return clock
	}
	return clock + " " + periodPrefix + strconv.Itoa(g.Period)
}

func zeroClock(clock string) bool {
	for _, r := range clock {
		if r >= '1' && r <= '9' {
			return false
		}
	}
	return true
}
