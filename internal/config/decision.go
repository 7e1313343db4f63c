package config

import "time"

const (
	envDecisionBaseURL = "DECISION_BASE_URL"
	envDecisionTimeout = "DECISION_TIMEOUT"

	// The two scoreboard variants disagreed on the backend address
	// (absolute localhost vs relative path); the service resolves that
	// by making it configuration with the absolute form as default.
	defaultDecisionBaseURL = "http://localhost:5000"
	defaultDecisionTimeout = 15 * time.Second
)

// DecisionConfig controls the 4th-down calculation backend client.
type DecisionConfig struct {
	BaseURL string
	Timeout time.Duration
}

func loadDecision() DecisionConfig {
	return DecisionConfig{
		BaseURL: envOrDefault(envDecisionBaseURL, defaultDecisionBaseURL),
		Timeout: durationEnvOrDefault(envDecisionTimeout, defaultDecisionTimeout),
	}
}
