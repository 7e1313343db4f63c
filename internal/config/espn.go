package config

import "time"

const (
	envESPNBaseURL = "ESPN_BASE_URL"
	envESPNTimeout = "ESPN_TIMEOUT"

	defaultESPNBaseURL = "https://site.api.espn.com/apis/site/v2/sports"
	defaultESPNTimeout = 10 * time.Second
)

// ESPNConfig controls how we talk to the scoreboard API.
type ESPNConfig struct {
	BaseURL string
	Timeout time.Duration
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		BaseURL: envOrDefault(envESPNBaseURL, defaultESPNBaseURL),
		Timeout: durationEnvOrDefault(envESPNTimeout, defaultESPNTimeout),
	}
}
