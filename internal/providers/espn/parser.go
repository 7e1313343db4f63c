package espn

import (
	"strings"

	"quiet-scores-service/internal/domain"
	"quiet-scores-service/internal/timeutil"
)

// parseEvent maps one raw scoreboard event to a GameRecord, or nil when
// the event cannot be resolved into two sides. Partial data is preferred
// over a crash, never over silent wrong data in the visible list.
func parseEvent(ev *eventResponse, sport domain.Sport) *domain.GameRecord {
	if ev == nil || len(ev.Competitions) == 0 {
		return nil
	}
	competition := &ev.Competitions[0]
	away, home := resolveSides(competition.Competitors)
	if away == nil || home == nil {
		return nil
	}

	awayName := teamDisplayName(away.Team)
	homeName := teamDisplayName(home.Team)
	if awayName == "" || homeName == "" {
		return nil
	}

	record := &domain.GameRecord{
		ID:               ev.ID,
		Sport:            sport,
		AwayTeam:         awayName,
		HomeTeam:         homeName,
		AwayTeamID:       away.Team.ID,
		HomeTeamID:       home.Team.ID,
		AwayShortName:    shortName(away.Team),
		HomeShortName:    shortName(home.Team),
		AwayAbbreviation: away.Team.Abbreviation,
		HomeAbbreviation: home.Team.Abbreviation,
		AwayTeamRecord:   teamRecord(away),
		HomeTeamRecord:   teamRecord(home),
		AwayScore:        scoreOrZero(away.Score),
		HomeScore:        scoreOrZero(home.Score),
		Status:           classifyLifecycle(ev, sport),
		Detail:           statusDetail(ev.Status.Type),
		Period:           ev.Status.Period,
		Clock:            ev.Status.DisplayClock,
		FullDateTime:     ev.Date,
		BroadcastChannel: broadcastChannel(competition),
	}
	if record.ID == "" {
		record.ID = string(sport) + "-" + awayName + "-" + homeName
	}

	if t, ok := parseEventTime(ev.Date); ok {
		record.DisplayDate = timeutil.DisplayDate(t)
		if record.Status == domain.StatusScheduled {
			record.DisplayTime = timeutil.DisplayTime(t)
		}
	}

	applySubState(record, ev, competition)
	return record
}

// resolveSides locates the away and home competitors by the homeAway
// tag, falling back to the positional assumption (index 0 away, index 1
// home) when the tag is missing. That fallback is a documented guess.
func resolveSides(competitors []competitorResponse) (away, home *competitorResponse) {
	for i := range competitors {
		switch strings.ToLower(competitors[i].HomeAway) {
		case "away":
			if away == nil {
				away = &competitors[i]
			}
		case "home":
			if home == nil {
				home = &competitors[i]
			}
		}
	}
	if away == nil && len(competitors) >= 1 {
		away = &competitors[0]
	}
	if home == nil && len(competitors) >= 2 {
		home = &competitors[1]
	}
	if away == nil || home == nil || away == home {
		return nil, nil
	}
	return away, home
}

func applySubState(record *domain.GameRecord, ev *eventResponse, competition *competitionResponse) {
	if record.Status != domain.StatusLive {
		return
	}

	switch {
	case record.Sport.IsBaseball():
		state := extractBaseballState(ev)
		record.InningNumber = state.Inning
		record.TopBottom = state.TopBottom
		record.Bases = state.Bases
		record.Balls = state.Balls
		record.Strikes = state.Strikes
		record.Outs = state.Outs
		switch state.TopBottom {
		case domain.HalfTop:
			record.AtBatTeam = "away"
		case domain.HalfBottom:
			record.AtBatTeam = "home"
		}
	case record.Sport.IsFootball():
		record.PossessionTeam = resolvePossession(competition)
		if competition.Situation != nil {
			record.BallOn = competition.Situation.BallOn.String()
		}
	}
}

// resolvePossession reads the possessing team ID from the situation,
// then from the last play, in the observed fallback order.
func resolvePossession(competition *competitionResponse) string {
	situation := competition.Situation
	if situation != nil && situation.Possession.ID != "" {
		return situation.Possession.ID
	}
	if lp := competition.LastPlay; lp != nil {
		if lp.Team.ID != "" {
			return lp.Team.ID
		}
		if lp.PossessionTeam != "" {
			return lp.PossessionTeam
		}
	}
	if situation != nil && situation.LastPlay != nil {
		if situation.LastPlay.Team.ID != "" {
			return situation.LastPlay.Team.ID
		}
		if situation.LastPlay.PossessionTeam != "" {
			return situation.LastPlay.PossessionTeam
		}
	}
	return ""
}

func teamDisplayName(team teamResponse) string {
	if team.DisplayName != "" {
		return team.DisplayName
	}
	return team.Name
}

func shortName(team teamResponse) string {
	if team.ShortDisplayName != "" {
		return team.ShortDisplayName
	}
	return team.Abbreviation
}

// teamRecord prefers the overall ("total") record entry, then the first.
func teamRecord(comp *competitorResponse) string {
	if len(comp.Records) == 0 {
		return ""
	}
	for _, rec := range comp.Records {
		if rec.Type == "total" {
			return rec.Summary
		}
	}
	return comp.Records[0].Summary
}

func scoreOrZero(score string) string {
	score = strings.TrimSpace(score)
	if score == "" {
		return "0"
	}
	return score
}

// statusDetail picks the most specific populated status text.
func statusDetail(st statusTypeResponse) string {
	for _, candidate := range []string{st.ShortDetail, st.Detail, st.Description} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return ""
}

func broadcastChannel(competition *competitionResponse) string {
	for _, b := range competition.Broadcasts {
		if len(b.Names) > 0 && b.Names[0] != "" {
			return b.Names[0]
		}
		if b.Media.ShortName != "" {
			return b.Media.ShortName
		}
	}
	for _, g := range competition.GeoBroadcasts {
		if g.Media.ShortName != "" {
			return g.Media.ShortName
		}
	}
	return ""
}
