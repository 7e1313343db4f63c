package config

import "github.com/joho/godotenv"

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	LiveInterval Duration
	IdleInterval Duration
	Provider     string
	ESPN         ESPNConfig
	Metrics      MetricsConfig
	Snapshots    SnapshotConfig
	Decision     DecisionConfig
	Notify       NotifyConfig
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is loaded first when
// present; missing files are not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		LiveInterval: durationEnvOrDefault(envLiveInterval, defaultLiveInterval),
		IdleInterval: durationEnvOrDefault(envIdleInterval, defaultIdleInterval),
		Provider:     envOrDefault(envProvider, defaultProvider),
		ESPN:         loadESPN(),
		Metrics:      loadMetrics(),
		Snapshots:    loadSnapshots(),
		Decision:     loadDecision(),
		Notify:       loadNotify(),
	}
}
