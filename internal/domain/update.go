package domain

import (
	"strconv"
	"time"
)

// ScoreUpdate is a score change detected between two poll cycles.
// It feeds the WebSocket broadcast and optional notifier.
type ScoreUpdate struct {
	GameID        string    `json:"gameId"`
	Sport         Sport     `json:"sport"`
	AwayTeam      string    `json:"awayTeam"`
	HomeTeam      string    `json:"homeTeam"`
	AwayScore     string    `json:"awayScore"`
	HomeScore     string    `json:"homeScore"`
	PrevAwayScore string    `json:"prevAwayScore"`
	PrevHomeScore string    `json:"prevHomeScore"`
	Status        Status    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
}

// Final reports whether the update represents a game reaching its final state.
func (u ScoreUpdate) Final() bool {
	return u.Status == StatusFinal
}

// LeadChanged reports whether the side in front after this update
// differs from the side in front before it. A game going to a tie is
// not a lead change; a team breaking a tie is. Unparseable scores on
// either side make the flip unknowable and report false.
func (u ScoreUpdate) LeadChanged() bool {
	prev, okPrev := leadingSide(u.PrevAwayScore, u.PrevHomeScore)
	current, okCurrent := leadingSide(u.AwayScore, u.HomeScore)
	return okPrev && okCurrent && current != "" && current != prev
}

func leadingSide(awayScore, homeScore string) (string, bool) {
	away, errA := strconv.Atoi(awayScore)
	home, errH := strconv.Atoi(homeScore)
	if errA != nil || errH != nil {
		return "", false
	}
	switch {
	case away > home:
		return "away", true
	case home > away:
		return "home", true
	default:
		return "", true
	}
}
