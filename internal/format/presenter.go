package format

import "quiet-scores-service/internal/domain"

// PresentedGame is a GameRecord decorated with display-ready fields.
type PresentedGame struct {
	domain.GameRecord

	StatusLine string `json:"statusLine"`
	AwayLogo   string `json:"awayLogo,omitempty"`
	HomeLogo   string `json:"homeLogo,omitempty"`
	AwayBadge  *Badge `json:"awayBadge,omitempty"`
	HomeBadge  *Badge `json:"homeBadge,omitempty"`
}

// PresentedScores is the decorated scores payload.
type PresentedScores struct {
	Date   string          `json:"date"`
	Scores []PresentedGame `json:"scores"`
}

// Presenter decorates game records for clients. It owns the logo
// resolver so cached lookups survive across requests.
type Presenter struct {
	logos *LogoResolver
}

// NewPresenter constructs a Presenter with a fresh logo cache.
func NewPresenter() *Presenter {
	return &Presenter{logos: NewLogoResolver()}
}

// Present decorates a single record.
func (p *Presenter) Present(g domain.GameRecord) PresentedGame {
	presented := PresentedGame{
		GameRecord: g,
		StatusLine: StatusLine(g),
	}

	if url := p.logos.LogoURL(g.Sport, g.AwayAbbreviation, g.AwayTeam, g.AwayTeamID); url != "" {
		presented.AwayLogo = url
	} else {
		badge := InitialsBadge(g.AwayTeam)
		presented.AwayBadge = &badge
	}
	if url := p.logos.LogoURL(g.Sport, g.HomeAbbreviation, g.HomeTeam, g.HomeTeamID); url != "" {
		presented.HomeLogo = url
	} else {
		badge := InitialsBadge(g.HomeTeam)
		presented.HomeBadge = &badge
	}
	return presented
}

// PresentAll decorates a full scores payload.
func (p *Presenter) PresentAll(resp domain.ScoresResponse) PresentedScores {
	scores := make([]PresentedGame, 0, len(resp.Scores))
	for _, record := range resp.Scores {
		scores = append(scores, p.Present(record))
	}
	return PresentedScores{Date: resp.Date, Scores: scores}
}
