package domain

import "strconv"

// Sport identifies one of the supported leagues.
type Sport string

const (
	SportNFL               Sport = "nfl"
	SportNBA               Sport = "nba"
	SportMLB               Sport = "mlb"
	SportNHL               Sport = "nhl"
	SportCollegeFootball   Sport = "college-football"
	SportCollegeBasketball Sport = "college-basketball"
)

// AllSports lists every league polled each cycle, in display order.
var AllSports = []Sport{
	SportNFL,
	SportNBA,
	SportMLB,
	SportNHL,
	SportCollegeFootball,
	SportCollegeBasketball,
}

// Valid reports whether the sport is one of the supported leagues.
func (s Sport) Valid() bool {
	for _, known := range AllSports {
		if s == known {
			return true
		}
	}
	return false
}

// IsBaseball reports whether the sport uses inning-based sub-state.
func (s Sport) IsBaseball() bool {
	return s == SportMLB
}

// IsFootball reports whether the sport carries possession sub-state.
func (s Sport) IsFootball() bool {
	return s == SportNFL || s == SportCollegeFootball
}

// Status is the three-way game lifecycle classification.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusFinal     Status = "final"
)

// HalfInning is the portion of a numbered inning.
type HalfInning string

const (
	HalfTop    HalfInning = "top"
	HalfBottom HalfInning = "bot"
	HalfMiddle HalfInning = "mid"
	HalfEnd    HalfInning = "end"
)

// GameRecord is the canonical unit produced by parsing one scoreboard event.
// Sub-state fields are sport-dependent and omitted when not extracted.
type GameRecord struct {
	ID    string `json:"id"`
	Sport Sport  `json:"sport"`

	AwayTeam         string `json:"awayTeam"`
	HomeTeam         string `json:"homeTeam"`
	AwayTeamID       string `json:"awayTeamId,omitempty"`
	HomeTeamID       string `json:"homeTeamId,omitempty"`
	AwayShortName    string `json:"awayShortName,omitempty"`
	HomeShortName    string `json:"homeShortName,omitempty"`
	AwayAbbreviation string `json:"awayAbbreviation,omitempty"`
	HomeAbbreviation string `json:"homeAbbreviation,omitempty"`
	AwayTeamRecord   string `json:"awayTeamRecord,omitempty"`
	HomeTeamRecord   string `json:"homeTeamRecord,omitempty"`

	// Scores stay string-encoded the way the upstream API sends them; "0" when absent.
	AwayScore string `json:"awayScore"`
	HomeScore string `json:"homeScore"`

	Status Status `json:"status"`
	// Detail is the raw upstream status text ("Top 5th", "Final/OT", ...).
	Detail string `json:"detail,omitempty"`

	Period int    `json:"period,omitempty"`
	Clock  string `json:"clock,omitempty"`

	InningNumber int        `json:"inningNumber,omitempty"`
	TopBottom    HalfInning `json:"topBottom,omitempty"`
	Bases        *Bases     `json:"bases,omitempty"`
	Outs         *int       `json:"outs,omitempty"`
	Balls        *int       `json:"balls,omitempty"`
	Strikes      *int       `json:"strikes,omitempty"`
	AtBatTeam    string     `json:"atBatTeam,omitempty"`

	PossessionTeam string `json:"possessionTeam,omitempty"`
	BallOn         string `json:"ballOn,omitempty"`

	FullDateTime     string `json:"fullDateTime,omitempty"`
	DisplayDate      string `json:"displayDate,omitempty"`
	DisplayTime      string `json:"displayTime,omitempty"`
	BroadcastChannel string `json:"broadcastChannel,omitempty"`
}

// Winner reports which side leads: "away", "home", or "" for a tie or
// unparseable scores. Callers decide whether the game is actually final.
func (g GameRecord) Winner() string {
	away, errA := strconv.Atoi(g.AwayScore)
	home, errH := strconv.Atoi(g.HomeScore)
	if errA != nil || errH != nil {
		return ""
	}
	switch {
	case away > home:
		return "away"
	case home > away:
		return "home"
	default:
		return ""
	}
}

// IsLive reports whether the record was classified as in progress.
func (g GameRecord) IsLive() bool {
	return g.Status == StatusLive
}

// ScoresResponse is the payload returned by /scores.
type ScoresResponse struct {
	Date   string       `json:"date"`
	Scores []GameRecord `json:"scores"`
}

// NewScoresResponse builds the canonical scores payload for a date.
func NewScoresResponse(date string, scores []GameRecord) ScoresResponse {
	if scores == nil {
		scores = []GameRecord{}
	}
	return ScoresResponse{Date: date, Scores: scores}
}
