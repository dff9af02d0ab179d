package websocket

import (
	"context"
	"sync"

	"notes-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// RedisChannel carries note events between instances sharing a redis.
const RedisChannel = "note_events"

type Hub struct {
	clients map[*Client]struct{}

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Closed when Run returns.
	done chan struct{}

	mu sync.RWMutex

	// Redis connection for cross-instance fan-out, optional
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		rdb:        rdb,
		logger:     log,
	}
}

// Run serves registrations until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"remote_addr": client.RemoteAddr})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"remote_addr": client.RemoteAddr})
			}
			h.mu.Unlock()
		}
	}
}

// join registers a client, reporting false once the hub has stopped.
func (h *Hub) join(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Broadcast sends an event to every client. With redis configured the event
// goes through the shared channel so every instance, this one included,
// delivers it exactly once.
func (h *Hub) Broadcast(data []byte) {
	if h.rdb != nil {
		if err := h.rdb.Publish(context.Background(), RedisChannel, data).Err(); err != nil {
			h.logger.Warn("Hub", "Redis publish failed, delivering locally", map[string]interface{}{"error": err.Error()})
			h.deliver(data)
		}
		return
	}
	h.deliver(data)
}

func (h *Hub) deliver(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client Send buffer full, dropping client", map[string]interface{}{"remote_addr": client.RemoteAddr})
			delete(h.clients, client)
			close(client.Send)
		}
	}
}

// ClientCount reports the number of registered clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, RedisChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.deliver([]byte(msg.Payload))
		}
	}
}
