package espn

import "quiet-scores-service/internal/domain"

// sportPaths maps each supported league to its scoreboard path segment
// under the site API base URL.
var sportPaths = map[domain.Sport]string{
	domain.SportNFL:               "football/nfl",
	domain.SportNBA:               "basketball/nba",
	domain.SportMLB:               "baseball/mlb",
	domain.SportNHL:               "hockey/nhl",
	domain.SportCollegeFootball:   "football/college-football",
	domain.SportCollegeBasketball: "basketball/mens-college-basketball",
}

const defaultBaseURL = "https://site.api.espn.com/apis/site/v2/sports"

// maxResponseBytes bounds scoreboard response decoding; the largest
// observed college slates stay well under this.
const maxResponseBytes = 8 << 20
