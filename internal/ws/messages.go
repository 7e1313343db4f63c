// Package ws pushes score updates to WebSocket subscribers. A hub owns
// the client set; each connection filters by sport if it asks to.
package ws

import (
	"time"

	"quiet-scores-service/internal/domain"
)

// Server-to-client message types.
const (
	MessageTypeScoreUpdate = "score_update"
	MessageTypeHeartbeat   = "heartbeat"
	MessageTypeError       = "error"
)

// Client-to-server message types.
const (
	MessageTypeSubscribe   = "subscribe"
	MessageTypeUnsubscribe = "unsubscribe"
)

// ServerMessage is the envelope for everything pushed to a client.
type ServerMessage struct {
	Type      string    `json:"type"`
	Payload   any       `json:"payload,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ClientMessage is what a connected client may send.
type ClientMessage struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// SubscriptionFilter limits which updates a client receives. Empty
// means everything.
type SubscriptionFilter struct {
	Sports []domain.Sport `json:"sports,omitempty"`
}

// Matches reports whether an update passes the filter.
func (f SubscriptionFilter) Matches(update domain.ScoreUpdate) bool {
	if len(f.Sports) == 0 {
		return true
	}
	for _, s := range f.Sports {
		if s == update.Sport {
			return true
		}
	}
	return false
}

// ErrorMessage is the payload for MessageTypeError.
type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
