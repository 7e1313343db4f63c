package espn

import (
	"regexp"
	"strings"

	"quiet-scores-service/internal/domain"
)

// Baseball sub-state lives in five near-duplicate source fields across
// feed variants. Each field is extracted through one ordered list of
// (source, extractor) pairs; the first source that yields a value wins
// and later sources are never consulted. Adding a fallback means adding
// a list entry, not another branch.

var ordinalRe = regexp.MustCompile(`(\d+)(?:st|nd|rd|th)`)

var outsRe = regexp.MustCompile(`(\d+)\s*out`)

// baseballState is the extracted inning sub-state for one live game.
type baseballState struct {
	Inning    int
	TopBottom domain.HalfInning
	Bases     *domain.Bases
	Balls     *int
	Strikes   *int
	Outs      *int
}

func extractBaseballState(ev *eventResponse) baseballState {
	st := ev.Status.Type
	situation := eventSituation(ev)

	state := baseballState{
		Inning:    extractInning(ev),
		TopBottom: extractHalfInning(st, situation),
	}

	if situation != nil {
		state.Balls = situation.Balls
		state.Strikes = situation.Strikes
		state.Outs = situation.Outs
	}
	if state.Outs == nil {
		if outs, ok := outsFromText(st.Description); ok {
			state.Outs = &outs
		}
	}

	state.Bases = extractBases(situation, st)
	return state
}

// extractInning resolves the inning number through the ordered source
// list, defaulting to 1 when every source is silent. The default is a
// known-weak guess inherited from upstream ambiguity.
func extractInning(ev *eventResponse) int {
	st := ev.Status.Type
	sources := []string{
		st.Detail,
		st.ShortDetail,
		st.Description,
	}
	for _, src := range sources {
		if n, ok := inningFromText(src); ok {
			return n
		}
	}
	if ev.Status.Period > 0 {
		return ev.Status.Period
	}
	if n, ok := inningFromText(st.DetailedState); ok {
		return n
	}
	return 1
}

func inningFromText(text string) (int, bool) {
	m := ordinalRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n := 0
	for _, r := range m[1] {
		n = n*10 + int(r-'0')
	}
	if n <= 0 {
		return 0, false
	}
	return n, true
}

// halfKeywords in probe order; "top" is probed last so that phrases
// like "Top of the order" never shadow an explicit mid/end marker.
var halfKeywords = []struct {
	words []string
	half  domain.HalfInning
}{
	{[]string{"bottom", "bot"}, domain.HalfBottom},
	{[]string{"between", "middle", "mid"}, domain.HalfMiddle},
	{[]string{"end"}, domain.HalfEnd},
	{[]string{"top"}, domain.HalfTop},
}

// extractHalfInning resolves top/bottom through the ordered source
// list; the trailing default of top is an assumption, not a fact.
func extractHalfInning(st statusTypeResponse, situation *situationResponse) domain.HalfInning {
	textSources := []string{
		strings.ToLower(st.Detail + " " + st.ShortDetail),
		strings.ToLower(st.Description),
	}
	for _, text := range textSources {
		if half, ok := halfFromText(text); ok {
			return half
		}
	}

	if situation != nil {
		if situation.TopOfInning != nil {
			if *situation.TopOfInning {
				return domain.HalfTop
			}
			return domain.HalfBottom
		}
		if half, ok := halfFromInningHalf(situation.InningHalf); ok {
			return half
		}
		if half, ok := halfFromText(strings.ToLower(situation.InningState)); ok {
			return half
		}
		for _, value := range situation.rawValues() {
			if half, ok := halfFromText(value); ok {
				return half
			}
		}
	}

	return domain.HalfTop
}

func halfFromText(text string) (domain.HalfInning, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	for _, kw := range halfKeywords {
		for _, word := range kw.words {
			if strings.Contains(text, word) {
				return kw.half, true
			}
		}
	}
	return "", false
}

// halfFromInningHalf handles the numeric 1/2 and string encodings seen
// in the inningHalf field.
func halfFromInningHalf(value flexString) (domain.HalfInning, bool) {
	if n, ok := value.Int(); ok {
		switch n {
		case 1:
			return domain.HalfTop, true
		case 2:
			return domain.HalfBottom, true
		}
		return "", false
	}
	return halfFromText(strings.ToLower(value.String()))
}

func outsFromText(text string) (int, bool) {
	m := outsRe.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return 0, false
	}
	n := 0
	for _, r := range m[1] {
		n = n*10 + int(r-'0')
	}
	return n, true
}

// extractBases builds the 3-bit base set from the situation flags, or
// falls back to phrase matching when the flags are absent.
func extractBases(situation *situationResponse, st statusTypeResponse) *domain.Bases {
	if situation != nil && (situation.OnFirst != nil || situation.OnSecond != nil || situation.OnThird != nil) {
		b := domain.NewBases(
			boolValue(situation.OnFirst),
			boolValue(situation.OnSecond),
			boolValue(situation.OnThird),
		)
		return &b
	}
	return basesFromText(strings.ToLower(st.Description + " " + st.Detail))
}

var basePhrases = []struct {
	phrase string
	bases  domain.Bases
}{
	{"bases loaded", domain.BasesLoaded},
	{"bases empty", domain.BasesEmpty},
	{"runners on first and second", domain.BaseFirst | domain.BaseSecond},
	{"runners on first and third", domain.BaseFirst | domain.BaseThird},
	{"runners on second and third", domain.BaseSecond | domain.BaseThird},
	{"runner on first", domain.BaseFirst},
	{"runner on second", domain.BaseSecond},
	{"runner on third", domain.BaseThird},
}

func basesFromText(text string) *domain.Bases {
	for _, bp := range basePhrases {
		if strings.Contains(text, bp.phrase) {
			b := bp.bases
			return &b
		}
	}
	return nil
}

func boolValue(b *bool) bool {
	return b != nil && *b
}
