package notifications

import (
	"context"
	"log/slog"
	"sync"

	"github.com/HarminderDhillon/twitter-clone/internal/observability"

	"github.com/gofiber/websocket/v2"
	"github.com/redis/go-redis/v9"
)

// Hub relays posts from the Redis feed channel to the WebSocket
// connections registered on this instance.
type Hub struct {
	mu      sync.RWMutex
	conns   map[*websocket.Conn]struct{}
	client  *redis.Client
	cancel  context.CancelFunc
	started bool
}

// NewHub creates an unstarted hub. client may be nil, in which case the
// hub only serves connections registered locally and never receives
// events.
func NewHub(client *redis.Client) *Hub {
	return &Hub{
		conns:  make(map[*websocket.Conn]struct{}),
		client: client,
	}
}

// Start subscribes to the feed channel and begins relaying messages.
func (h *Hub) Start(ctx context.Context) {
	if h.client == nil || h.started {
		return
	}
	h.started = true
	ctx, h.cancel = context.WithCancel(ctx)

	sub := h.client.Subscribe(ctx, FeedChannel)
	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				h.broadcast([]byte(msg.Payload))
			}
		}
	}()
}

// Stop ends the relay loop. Registered connections are left to close on
// their own.
func (h *Hub) Stop() {
	if h.cancel != nil {
		h.cancel()
	}
}

// Register adds a connection and blocks until it closes. Intended to be
// called from the WebSocket handler goroutine.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()
	observability.FeedSubscribers.Inc()

	defer func() {
		h.mu.Lock()
		delete(h.conns, conn)
		h.mu.Unlock()
		observability.FeedSubscribers.Dec()
	}()

	// Drain client frames until the peer disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) broadcast(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			observability.Logger.Debug("feed write failed", slog.Any("error", err))
		}
	}
}
