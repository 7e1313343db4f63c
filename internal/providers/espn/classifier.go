package espn

import (
	"strings"

	"quiet-scores-service/internal/domain"
)

// The status payloads are inconsistent: the state field alone is not a
// reliable "is this actually live" signal (baseball in particular keeps
// state=in through pre-game windows), so classification layers textual
// and numeric corroboration before trusting it. Every branch terminates
// in a default; classification never fails, it only degrades.

var finalWords = []string{"final", "ended", "complete", "final/ot"}

var liveWords = []string{"quarter", "period", "inning", "top", "bottom", "live", "in progress"}

var scheduledWords = []string{"scheduled", "upcoming", "pregame", "delayed"}

const (
	stateIn   = "in"
	statePre  = "pre"
	statePost = "post"
)

// classifyLifecycle decides scheduled/live/final for one event.
// Precedence order matters; first match wins.
func classifyLifecycle(ev *eventResponse, sport domain.Sport) domain.Status {
	st := ev.Status.Type
	state := strings.ToLower(strings.TrimSpace(st.State))
	text := statusText(st)
	period := ev.Status.Period
	hasClock := ev.Status.Clock > 0 || nonZeroClock(ev.Status.DisplayClock)

	// Trust an explicit post state or final-sounding text outright. A
	// period beyond regulation with no clock left is also treated as
	// final unless the feed still insists the game is in progress.
	if state == statePost || containsAny(text, finalWords) || (period > 9 && !hasClock && state != stateIn) {
		return domain.StatusFinal
	}

	if state == stateIn && (containsAny(text, liveWords) || period > 0 || hasClock) {
		return domain.StatusLive
	}

	if sport.IsBaseball() && baseballLiveOverride(ev, state, text) {
		return domain.StatusLive
	}

	if state == statePre || containsAny(text, scheduledWords) {
		return domain.StatusScheduled
	}

	// A bare state=in with none of the live signals above is treated as
	// not yet meaningfully started.
	return domain.StatusScheduled
}

// baseballLiveOverride applies the extra corroboration baseball needs,
// any one signal suffices.
func baseballLiveOverride(ev *eventResponse, state, text string) bool {
	situation := eventSituation(ev)

	if situationLooksLive(situation) {
		return true
	}
	if ev.Status.Period > 0 {
		return true
	}
	if state == stateIn && anyNonZeroScore(ev) {
		return true
	}
	if state == stateIn && situation != nil {
		return true
	}
	if state == stateIn && strings.Contains(text, "inning") {
		return true
	}
	return false
}

// situationLooksLive reports whether the situation object carries any
// live play-state detail (count, outs, runners, half-inning marker).
func situationLooksLive(s *situationResponse) bool {
	if s == nil {
		return false
	}
	return s.Balls != nil || s.Strikes != nil || s.Outs != nil ||
		s.OnFirst != nil || s.OnSecond != nil || s.OnThird != nil ||
		s.TopOfInning != nil || s.Inning != nil
}

func anyNonZeroScore(ev *eventResponse) bool {
	for _, comp := range eventCompetitors(ev) {
		score := strings.TrimSpace(comp.Score)
		if score != "" && score != "0" {
			return true
		}
	}
	return false
}

// statusText joins every textual description field, lowercased, so the
// keyword checks see whichever variant the feed populated.
func statusText(st statusTypeResponse) string {
	return strings.ToLower(strings.Join([]string{
		st.Description,
		st.Detail,
		st.ShortDetail,
		st.DetailedState,
	}, " "))
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// nonZeroClock reports whether a display clock string represents time
// remaining ("2:34" yes, "0:00" or "0.0" no).
func nonZeroClock(clock string) bool {
	clock = strings.TrimSpace(clock)
	if clock == "" {
		return false
	}
	for _, r := range clock {
		if r >= '1' && r <= '9' {
			return true
		}
	}
	return false
}

func eventSituation(ev *eventResponse) *situationResponse {
	if len(ev.Competitions) == 0 {
		return nil
	}
	return ev.Competitions[0].Situation
}

func eventCompetitors(ev *eventResponse) []competitorResponse {
	if len(ev.Competitions) == 0 {
		return nil
	}
	return ev.Competitions[0].Competitors
}
