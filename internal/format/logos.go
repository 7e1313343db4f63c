package format

import (
	"strings"
	"sync"

	"quiet-scores-service/internal/domain"
)

const logoCDN = "https://a.espncdn.com/i/teamlogos"

// leaguePaths name the CDN directory per sport. College logos are keyed
// by numeric team ID rather than abbreviation.
var leaguePaths = map[domain.Sport]string{
	domain.SportNFL: "nfl",
	domain.SportNBA: "nba",
	domain.SportMLB: "mlb",
	domain.SportNHL: "nhl",
}

// teamAbbreviations maps full team names to CDN abbreviations for the
// pro leagues, for records where the feed omits the abbreviation.
var teamAbbreviations = map[domain.Sport]map[string]string{
	domain.SportNFL: {
		"arizona cardinals": "ari", "atlanta falcons": "atl", "baltimore ravens": "bal",
		"buffalo bills": "buf", "carolina panthers": "car", "chicago bears": "chi",
		"cincinnati bengals": "cin", "cleveland browns": "cle", "dallas cowboys": "dal",
		"denver broncos": "den", "detroit lions": "det", "green bay packers": "gb",
		"houston texans": "hou", "indianapolis colts": "ind", "jacksonville jaguars": "jax",
		"kansas city chiefs": "kc", "las vegas raiders": "lv", "los angeles chargers": "lac",
		"los angeles rams": "lar", "miami dolphins": "mia", "minnesota vikings": "min",
		"new england patriots": "ne", "new orleans saints": "no", "new york giants": "nyg",
		"new york jets": "nyj", "philadelphia eagles": "phi", "pittsburgh steelers": "pit",
		"san francisco 49ers": "sf", "seattle seahawks": "sea", "tampa bay buccaneers": "tb",
		"tennessee titans": "ten", "washington commanders": "wsh",
	},
	domain.SportNBA: {
		"atlanta hawks": "atl", "boston celtics": "bos", "brooklyn nets": "bkn",
		"charlotte hornets": "cha", "chicago bulls": "chi", "cleveland cavaliers": "cle",
		"dallas mavericks": "dal", "denver nuggets": "den", "detroit pistons": "det",
		"golden state warriors": "gs", "houston rockets": "hou", "indiana pacers": "ind",
		"la clippers": "lac", "los angeles clippers": "lac", "los angeles lakers": "lal",
		"memphis grizzlies": "mem", "miami heat": "mia", "milwaukee bucks": "mil",
		"minnesota timberwolves": "min", "new orleans pelicans": "no", "new york knicks": "ny",
		"oklahoma city thunder": "okc", "orlando magic": "orl", "philadelphia 76ers": "phi",
		"phoenix suns": "phx", "portland trail blazers": "por", "sacramento kings": "sac",
		"san antonio spurs": "sa", "toronto raptors": "tor", "utah jazz": "utah",
		"washington wizards": "wsh",
	},
	domain.SportMLB: {
		"arizona diamondbacks": "ari", "atlanta braves": "atl", "baltimore orioles": "bal",
		"boston red sox": "bos", "chicago cubs": "chc", "chicago white sox": "chw",
		"cincinnati reds": "cin", "cleveland guardians": "cle", "colorado rockies": "col",
		"detroit tigers": "det", "houston astros": "hou", "kansas city royals": "kc",
		"los angeles angels": "laa", "los angeles dodgers": "lad", "miami marlins": "mia",
		"milwaukee brewers": "mil", "minnesota twins": "min", "new york mets": "nym",
		"new york yankees": "nyy", "oakland athletics": "oak", "philadelphia phillies": "phi",
		"pittsburgh pirates": "pit", "san diego padres": "sd", "san francisco giants": "sf",
		"seattle mariners": "sea", "st. louis cardinals": "stl", "tampa bay rays": "tb",
		"texas rangers": "tex", "toronto blue jays": "tor", "washington nationals": "wsh",
	},
	domain.SportNHL: {
		"anaheim ducks": "ana", "boston bruins": "bos", "buffalo sabres": "buf",
		"calgary flames": "cgy", "carolina hurricanes": "car", "chicago blackhawks": "chi",
		"colorado avalanche": "col", "columbus blue jackets": "cbj", "dallas stars": "dal",
		"detroit red wings": "det", "edmonton oilers": "edm", "florida panthers": "fla",
		"los angeles kings": "la", "minnesota wild": "min", "montreal canadiens": "mtl",
		"nashville predators": "nsh", "new jersey devils": "nj", "new york islanders": "nyi",
		"new york rangers": "nyr", "ottawa senators": "ott", "philadelphia flyers": "phi",
		"pittsburgh penguins": "pit", "san jose sharks": "sj", "seattle kraken": "sea",
		"st. louis blues": "stl", "tampa bay lightning": "tb", "toronto maple leafs": "tor",
		"utah hockey club": "utah", "vancouver canucks": "van", "vegas golden knights": "vgk",
		"washington capitals": "wsh", "winnipeg jets": "wpg",
	},
}

// LogoResolver resolves team logo URLs, caching each lookup. The cache
// belongs to the resolver so tests and callers stay isolated.
type LogoResolver struct {
	mu    sync.Mutex
	cache map[string]string
}

func NewLogoResolver() *LogoResolver {
	return &LogoResolver{cache: make(map[string]string)}
}

// LogoURL returns the CDN logo URL for a team, or "" when no logo can
// be derived (callers then fall back to an initials badge). College
// sports resolve by upstream team ID.
func (r *LogoResolver) LogoURL(sport domain.Sport, abbreviation, teamName, teamID string) string {
	key := string(sport) + "|" + abbreviation + "|" + teamName + "|" + teamID

	r.mu.Lock()
	if url, ok := r.cache[key]; ok {
		r.mu.Unlock()
		return url
	}
	r.mu.Unlock()

	url := resolveLogoURL(sport, abbreviation, teamName, teamID)

	r.mu.Lock()
	r.cache[key] = url
	r.mu.Unlock()
	return url
}

func resolveLogoURL(sport domain.Sport, abbreviation, teamName, teamID string) string {
	if sport == domain.SportCollegeFootball || sport == domain.SportCollegeBasketball {
		if teamID == "" {
			return ""
		}
		return logoCDN + "/ncaa/500/" + teamID + ".png"
	}

	path, ok := leaguePaths[sport]
	if !ok {
		return ""
	}
	if abbr := resolveAbbreviation(sport, abbreviation, teamName); abbr != "" {
		return logoCDN + "/" + path + "/500/" + abbr + ".png"
	}
	return ""
}

func resolveAbbreviation(sport domain.Sport, abbreviation, teamName string) string {
	if abbreviation != "" {
		return strings.ToLower(abbreviation)
	}

	table := teamAbbreviations[sport]
	name := strings.ToLower(strings.TrimSpace(teamName))
	if name == "" {
		return ""
	}
	if abbr, ok := table[name]; ok {
		return abbr
	}

	// Word overlap: a short name like "Red Sox" still finds its team.
	nameWords := strings.Fields(name)
	for full, abbr := range table {
		for _, w := range nameWords {
			if len(w) > 2 && containsWord(full, w) {
				return abbr
			}
		}
	}
	return ""
}

func containsWord(haystack, word string) bool {
	for _, w := range strings.Fields(haystack) {
		if w == word {
			return true
		}
	}
	return false
}

// Badge is the colored-initials fallback shown when no logo resolves.
type Badge struct {
	Initials string `json:"initials"`
	Color    string `json:"color"`
}

var badgePalette = []string{
	"#1d428a", "#ce1141", "#007a33", "#fdb927", "#552583", "#00788c",
	"#e03a3e", "#006bb6", "#753bbd", "#00471b",
}

// InitialsBadge derives a deterministic badge from the team name.
func InitialsBadge(teamName string) Badge {
	words := strings.Fields(teamName)
	var initials strings.Builder
	for i, w := range words {
		if i == 2 {
			break
		}
		initials.WriteString(strings.ToUpper(w[:1]))
	}
	if initials.Len() == 0 {
		initials.WriteString("?")
	}

	var sum int
	for _, r := range teamName {
		sum += int(r)
	}
	return Badge{
		Initials: initials.String(),
		Color:    badgePalette[sum%len(badgePalette)],
	}
}
