// Package notify posts score alerts to a Slack incoming webhook.
// Final results and lead changes are pushed; other mid-game changes
// stay on the WebSocket.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"quiet-scores-service/internal/domain"
	"quiet-scores-service/internal/logging"
)

// SlackNotifier sends score alerts to Slack via webhook.
type SlackNotifier struct {
	webhookURL string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewSlackNotifier creates a notifier. An empty webhook URL disables it.
func NewSlackNotifier(webhookURL string, logger *slog.Logger) *SlackNotifier {
	return &SlackNotifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// Enabled reports whether a webhook URL is configured.
func (s *SlackNotifier) Enabled() bool {
	return s != nil && s.webhookURL != ""
}

// PublishUpdates posts a message for each game that just went final or
// changed leader. Failures are logged, never propagated; notifications
// are best-effort.
func (s *SlackNotifier) PublishUpdates(ctx context.Context, updates []domain.ScoreUpdate) {
	if !s.Enabled() {
		return
	}
	for _, update := range updates {
		var message string
		switch {
		case update.Final():
			message = formatFinal(update)
		case update.LeadChanged():
			message = formatLeadChange(update)
		default:
			continue
		}
		if err := s.send(ctx, message); err != nil {
			logging.Warn(s.logger, "slack notification failed",
				logging.FieldGameID, update.GameID,
				"error", err,
			)
		}
	}
}

func (s *SlackNotifier) send(ctx context.Context, message string) error {
	payload, err := json.Marshal(map[string]any{"text": message})
	if err != nil {
		return fmt.Errorf("marshal slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("create slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send slack alert: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack webhook returned status %d", resp.StatusCode)
	}
	return nil
}

func formatFinal(update domain.ScoreUpdate) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*FINAL* [%s]\n", strings.ToUpper(string(update.Sport))))
	sb.WriteString(fmt.Sprintf("%s %s - %s %s",
		update.AwayTeam, update.AwayScore, update.HomeScore, update.HomeTeam))
	return sb.String()
}

func formatLeadChange(update domain.ScoreUpdate) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*LEAD CHANGE* [%s]\n", strings.ToUpper(string(update.Sport))))
	sb.WriteString(fmt.Sprintf("%s %s - %s %s",
		update.AwayTeam, update.AwayScore, update.HomeScore, update.HomeTeam))
	return sb.String()
}
