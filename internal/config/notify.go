package config

const envSlackWebhook = "SLACK_WEBHOOK_URL"

// NotifyConfig controls the optional score-change webhook notifier.
// Notifications are disabled when no webhook URL is configured.
type NotifyConfig struct {
	SlackWebhookURL string
}

func loadNotify() NotifyConfig {
	return NotifyConfig{
		SlackWebhookURL: envOrDefault(envSlackWebhook, ""),
	}
}
