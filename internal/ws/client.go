package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"quiet-scores-service/internal/logging"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 64
)

// Client is one WebSocket connection registered with the hub.
type Client struct {
	ID   string
	conn *websocket.Conn
	send chan ServerMessage
	hub  clientHub

	filterMu sync.RWMutex
	filter   SubscriptionFilter

	logger *slog.Logger
}

// clientHub is the part of the hub a client needs.
type clientHub interface {
	Unregister(c *Client)
}

// NewClient wraps an upgraded connection.
func NewClient(id string, conn *websocket.Conn, hub clientHub, logger *slog.Logger) *Client {
	return &Client{
		ID:     id,
		conn:   conn,
		send:   make(chan ServerMessage, sendBufferSize),
		hub:    hub,
		logger: logger,
	}
}

// ReadPump consumes client messages until the connection drops.
func (c *Client) ReadPump(ctx context.Context) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		select {
		case <-ctx.Done():
			return
		default:
			var msg ClientMessage
			if err := c.conn.ReadJSON(&msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					logging.Warn(c.logger, "ws unexpected close", "client_id", c.ID, "error", err)
				}
				return
			}
			c.handleMessage(msg)
		}
	}
}

// WritePump pushes hub messages and pings to the connection.
func (c *Client) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(message); err != nil {
				logging.Warn(c.logger, "ws write failed", "client_id", c.ID, "error", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// TrySend queues a message without blocking; false means the buffer is
// full.
func (c *Client) TrySend(msg ServerMessage) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// Filter returns the client's current subscription filter.
func (c *Client) Filter() SubscriptionFilter {
	c.filterMu.RLock()
	defer c.filterMu.RUnlock()
	return c.filter
}

// SetFilter replaces the client's subscription filter.
func (c *Client) SetFilter(filter SubscriptionFilter) {
	c.filterMu.Lock()
	defer c.filterMu.Unlock()
	c.filter = filter
}

func (c *Client) handleMessage(msg ClientMessage) {
	switch msg.Type {
	case MessageTypeSubscribe:
		c.handleSubscribe(msg.Payload)
	case MessageTypeUnsubscribe:
		c.SetFilter(SubscriptionFilter{})
	case MessageTypeHeartbeat:
		c.TrySend(ServerMessage{Type: MessageTypeHeartbeat, Timestamp: time.Now()})
	default:
		c.TrySend(ServerMessage{
			Type:      MessageTypeError,
			Payload:   ErrorMessage{Code: "unknown_message_type", Message: "unknown message type: " + msg.Type},
			Timestamp: time.Now(),
		})
	}
}

func (c *Client) handleSubscribe(payload map[string]any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		c.sendFilterError()
		return
	}
	var filter SubscriptionFilter
	if err := json.Unmarshal(raw, &filter); err != nil {
		c.sendFilterError()
		return
	}
	c.SetFilter(filter)
	logging.Info(c.logger, "ws client subscribed", "client_id", c.ID, "sports", filter.Sports)
}

func (c *Client) sendFilterError() {
	c.TrySend(ServerMessage{
		Type:      MessageTypeError,
		Payload:   ErrorMessage{Code: "invalid_filter", Message: "failed to parse filter"},
		Timestamp: time.Now(),
	})
}
