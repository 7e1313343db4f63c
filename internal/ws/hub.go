package ws

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"quiet-scores-service/internal/domain"
	"quiet-scores-service/internal/logging"
	"quiet-scores-service/internal/metrics"
)

const broadcastBuffer = 256

// Hub maintains the set of active clients and fans score updates out to
// them.
type Hub struct {
	clients   map[*Client]bool
	clientsMu sync.RWMutex

	broadcast  chan domain.ScoreUpdate
	register   chan *Client
	unregister chan *Client

	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewHub creates an idle hub; call Run to start it.
func NewHub(logger *slog.Logger, recorder *metrics.Recorder) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan domain.ScoreUpdate, broadcastBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
		metrics:    recorder,
	}
}

// Run processes registrations and broadcasts until the context ends.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return
		case c := <-h.register:
			h.registerClient(c)
		case c := <-h.unregister:
			h.unregisterClient(c)
		case update := <-h.broadcast:
			h.broadcastUpdate(update)
		}
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(c *Client) {
	h.register <- c
}

// Unregister removes a client from the hub.
func (h *Hub) Unregister(c *Client) {
	h.unregister <- c
}

// PublishUpdates queues score updates for broadcast. Updates are dropped
// when the buffer is full; the next poll cycle re-derives state anyway.
func (h *Hub) PublishUpdates(ctx context.Context, updates []domain.ScoreUpdate) {
	_ = ctx
	for _, update := range updates {
		select {
		case h.broadcast <- update:
		default:
			logging.Warn(h.logger, "ws broadcast buffer full, dropping update",
				logging.FieldGameID, update.GameID,
			)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

func (h *Hub) registerClient(c *Client) {
	h.clientsMu.Lock()
	h.clients[c] = true
	total := len(h.clients)
	h.clientsMu.Unlock()

	h.metrics.RecordWSClients(1)
	logging.Info(h.logger, "ws client connected", "client_id", c.ID, "total", total)
}

func (h *Hub) unregisterClient(c *Client) {
	h.clientsMu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
		close(c.send)
	}
	total := len(h.clients)
	h.clientsMu.Unlock()

	if ok {
		h.metrics.RecordWSClients(-1)
		logging.Info(h.logger, "ws client disconnected", "client_id", c.ID, "total", total)
	}
}

func (h *Hub) broadcastUpdate(update domain.ScoreUpdate) {
	h.clientsMu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clientsMu.RUnlock()

	message := ServerMessage{
		Type:      MessageTypeScoreUpdate,
		Payload:   update,
		Timestamp: time.Now(),
	}

	for _, c := range clients {
		if !c.Filter().Matches(update) {
			continue
		}
		if !c.TrySend(message) {
			// Buffer full means the client cannot keep up.
			logging.Warn(h.logger, "ws client buffer full, disconnecting", "client_id", c.ID)
			go h.Unregister(c)
		}
	}
}

func (h *Hub) shutdown() {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
		h.metrics.RecordWSClients(-1)
	}
}
