package format

import (
	"strings"

	"quiet-scores-service/internal/domain"
)

// DivisionEntry groups one division's member teams.
type DivisionEntry struct {
	Name  string   `json:"name"`
	Teams []string `json:"teams"`
}

// leagueDivisions holds the static division membership per pro league.
var leagueDivisions = map[domain.Sport][]DivisionEntry{
	domain.SportNFL: {
		{Name: "AFC East", Teams: []string{"Buffalo Bills", "Miami Dolphins", "New England Patriots", "New York Jets"}},
		{Name: "AFC North", Teams: []string{"Baltimore Ravens", "Cincinnati Bengals", "Cleveland Browns", "Pittsburgh Steelers"}},
		{Name: "AFC South", Teams: []string{"Houston Texans", "Indianapolis Colts", "Jacksonville Jaguars", "Tennessee Titans"}},
		{Name: "AFC West", Teams: []string{"Denver Broncos", "Kansas City Chiefs", "Las Vegas Raiders", "Los Angeles Chargers"}},
		{Name: "NFC East", Teams: []string{"Dallas Cowboys", "New York Giants", "Philadelphia Eagles", "Washington Commanders"}},
		{Name: "NFC North", Teams: []string{"Chicago Bears", "Detroit Lions", "Green Bay Packers", "Minnesota Vikings"}},
		{Name: "NFC South", Teams: []string{"Atlanta Falcons", "Carolina Panthers", "New Orleans Saints", "Tampa Bay Buccaneers"}},
		{Name: "NFC West", Teams: []string{"Arizona Cardinals", "Los Angeles Rams", "San Francisco 49ers", "Seattle Seahawks"}},
	},
	domain.SportNBA: {
		{Name: "Eastern Conference - Atlantic", Teams: []string{"Boston Celtics", "Brooklyn Nets", "New York Knicks", "Philadelphia 76ers", "Toronto Raptors"}},
		{Name: "Eastern Conference - Central", Teams: []string{"Chicago Bulls", "Cleveland Cavaliers", "Detroit Pistons", "Indiana Pacers", "Milwaukee Bucks"}},
		{Name: "Eastern Conference - Southeast", Teams: []string{"Atlanta Hawks", "Charlotte Hornets", "Miami Heat", "Orlando Magic", "Washington Wizards"}},
		{Name: "Western Conference - Northwest", Teams: []string{"Denver Nuggets", "Minnesota Timberwolves", "Oklahoma City Thunder", "Portland Trail Blazers", "Utah Jazz"}},
		{Name: "Western Conference - Pacific", Teams: []string{"Golden State Warriors", "LA Clippers", "Los Angeles Lakers", "Phoenix Suns", "Sacramento Kings"}},
		{Name: "Western Conference - Southwest", Teams: []string{"Dallas Mavericks", "Houston Rockets", "Memphis Grizzlies", "New Orleans Pelicans", "San Antonio Spurs"}},
	},
	domain.SportMLB: {
		{Name: "American League East", Teams: []string{"Baltimore Orioles", "Boston Red Sox", "New York Yankees", "Tampa Bay Rays", "Toronto Blue Jays"}},
		{Name: "American League Central", Teams: []string{"Chicago White Sox", "Cleveland Guardians", "Detroit Tigers", "Kansas City Royals", "Minnesota Twins"}},
		{Name: "American League West", Teams: []string{"Houston Astros", "Los Angeles Angels", "Oakland Athletics", "Seattle Mariners", "Texas Rangers"}},
		{Name: "National League East", Teams: []string{"Atlanta Braves", "Miami Marlins", "New York Mets", "Philadelphia Phillies", "Washington Nationals"}},
		{Name: "National League Central", Teams: []string{"Chicago Cubs", "Cincinnati Reds", "Milwaukee Brewers", "Pittsburgh Pirates", "St. Louis Cardinals"}},
		{Name: "National League West", Teams: []string{"Arizona Diamondbacks", "Colorado Rockies", "Los Angeles Dodgers", "San Diego Padres", "San Francisco Giants"}},
	},
	domain.SportNHL: {
		{Name: "Eastern Conference - Atlantic", Teams: []string{"Boston Bruins", "Buffalo Sabres", "Detroit Red Wings", "Florida Panthers", "Montreal Canadiens", "Ottawa Senators", "Tampa Bay Lightning", "Toronto Maple Leafs"}},
		{Name: "Eastern Conference - Metropolitan", Teams: []string{"Carolina Hurricanes", "Columbus Blue Jackets", "New Jersey Devils", "New York Islanders", "New York Rangers", "Philadelphia Flyers", "Pittsburgh Penguins", "Washington Capitals"}},
		{Name: "Western Conference - Central", Teams: []string{"Chicago Blackhawks", "Colorado Avalanche", "Dallas Stars", "Minnesota Wild", "Nashville Predators", "St. Louis Blues", "Utah Hockey Club", "Winnipeg Jets"}},
		{Name: "Western Conference - Pacific", Teams: []string{"Anaheim Ducks", "Calgary Flames", "Edmonton Oilers", "Los Angeles Kings", "San Jose Sharks", "Seattle Kraken", "Vancouver Canucks", "Vegas Golden Knights"}},
	},
}

// Divisions returns the division table for a league, or nil for leagues
// without a static table (the college sports).
func Divisions(sport domain.Sport) []DivisionEntry {
	return leagueDivisions[sport]
}

// FindTeamDivision locates the division a team belongs to. Matching is
// progressively looser: exact name, substring either way, then any
// shared word longer than two characters.
func FindTeamDivision(sport domain.Sport, teamName string) (string, bool) {
	divisions := leagueDivisions[sport]
	if len(divisions) == 0 || strings.TrimSpace(teamName) == "" {
		return "", false
	}

	name := strings.ToLower(strings.TrimSpace(teamName))

	for _, div := range divisions {
		for _, team := range div.Teams {
			if strings.ToLower(team) == name {
				return div.Name, true
			}
		}
	}

	for _, div := range divisions {
		for _, team := range div.Teams {
			teamLower := strings.ToLower(team)
			if strings.Contains(teamLower, name) || strings.Contains(name, teamLower) {
				return div.Name, true
			}
		}
	}

	nameWords := strings.Fields(name)
	for _, div := range divisions {
		for _, team := range div.Teams {
			for _, w := range nameWords {
				if len(w) > 2 && containsWord(strings.ToLower(team), w) {
					return div.Name, true
				}
			}
		}
	}

	return "", false
}
