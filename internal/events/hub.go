package events

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"backoffice/internal/config"
	"backoffice/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configures a Hub.
type Options struct {
	// HeartbeatInterval is how often an idle stream receives a keep-alive comment.
	HeartbeatInterval time.Duration
	// BufferSize is the number of pending messages kept per client.
	BufferSize int
}

// NewOptions builds hub options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		HeartbeatInterval: cfg.Events.HeartbeatInterval,
		BufferSize:        cfg.Events.BufferSize,
	}
}

// Client is a single subscriber of a Hub.
type Client struct {
	ID uuid.UUID

	channels []string
	outbound chan Message
	done     chan struct{}
	once     sync.Once
}

// Messages returns the messages delivered to the client.
func (c *Client) Messages() <-chan Message { return c.outbound }

// Done is closed once the client is unsubscribed.
func (c *Client) Done() <-chan struct{} { return c.done }

// Hub keeps the clients of each channel and delivers published messages to
// them. A client whose buffer is full misses the message.
type Hub struct {
	opts Options

	mu            sync.RWMutex
	subscriptions map[string]map[*Client]struct{}
}

// NewHub creates an empty Hub.
func NewHub(opts Options) *Hub {
	if opts.BufferSize <= 0 {
		opts.BufferSize = 1
	}
	if opts.HeartbeatInterval <= 0 {
		opts.HeartbeatInterval = 25 * time.Second
	}

	return &Hub{
		opts:          opts,
		subscriptions: make(map[string]map[*Client]struct{}),
	}
}

// Subscribe registers a new client on the given channels.
func (h *Hub) Subscribe(channels ...string) *Client {
	client := &Client{
		ID:       uuid.New(),
		channels: channels,
		outbound: make(chan Message, h.opts.BufferSize),
		done:     make(chan struct{}),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, channel := range channels {
		clients, ok := h.subscriptions[channel]
		if !ok {
			clients = make(map[*Client]struct{})
			h.subscriptions[channel] = clients
		}
		clients[client] = struct{}{}
	}

	return client
}

// Unsubscribe removes the client from all its channels. It is safe to call
// more than once.
func (h *Hub) Unsubscribe(client *Client) {
	client.once.Do(func() {
		h.mu.Lock()
		for _, channel := range client.channels {
			if clients, ok := h.subscriptions[channel]; ok {
				delete(clients, client)
				if len(clients) == 0 {
					delete(h.subscriptions, channel)
				}
			}
		}
		h.mu.Unlock()

		close(client.done)
	})
}

// Close unsubscribes every client, ending their streams.
func (h *Hub) Close() {
	h.mu.RLock()
	clients := make(map[*Client]struct{})
	for _, subscribed := range h.subscriptions {
		for client := range subscribed {
			clients[client] = struct{}{}
		}
	}
	h.mu.RUnlock()

	for client := range clients {
		h.Unsubscribe(client)
	}
}

// Subscribers returns the number of clients subscribed to channel.
func (h *Hub) Subscribers(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscriptions[channel])
}

// Broadcast hands msg to every client of its channel without blocking and
// returns how many clients received it.
func (h *Hub) Broadcast(ctx context.Context, msg Message) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for client := range h.subscriptions[msg.Channel] {
		select {
		case client.outbound <- msg:
			delivered++
		default:
			logger.Warn(ctx, "dropping event, subscriber buffer is full",
				zap.Stringer("clientID", client.ID),
				zap.String("channel", msg.Channel),
				zap.String("event", msg.Event))
		}
	}

	return delivered
}

// Publish implements Publisher for a single process.
func (h *Hub) Publish(ctx context.Context, msg Message) error {
	h.Broadcast(ctx, msg)

	return nil
}

// ErrStreamingUnsupported is returned by Stream when the response writer
// cannot be flushed.
var ErrStreamingUnsupported = errors.New("streaming unsupported")

// Stream subscribes the request to channels and writes their messages as
// server-sent events until the request context is done.
func (h *Hub) Stream(w http.ResponseWriter, r *http.Request, channels ...string) error {
	rc := http.NewResponseController(w)
	// the server's write timeout would otherwise cut long-lived streams
	_ = rc.SetWriteDeadline(time.Time{})

	header := w.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("X-Accel-Buffering", "no")

	client := h.Subscribe(channels...)
	defer h.Unsubscribe(client)

	ctx := logger.WithFields(r.Context(), zap.Stringer("clientID", client.ID))

	w.WriteHeader(http.StatusOK)
	if _, err := fmt.Fprint(w, ": connected\n\n"); err != nil {
		return fmt.Errorf("could not write to stream: %w", err)
	}
	if err := rc.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrStreamingUnsupported, err)
	}
	logger.Debug(ctx, "event stream opened", zap.Strings("channels", channels))

	heartbeat := time.NewTicker(h.opts.HeartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug(ctx, "event stream closed")

			return nil
		case <-client.done:
			return nil
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return fmt.Errorf("could not write heartbeat: %w", err)
			}
		case msg := <-client.outbound:
			if err := writeEvent(w, msg); err != nil {
				return err
			}
		}

		if err := rc.Flush(); err != nil {
			return fmt.Errorf("could not flush stream: %w", err)
		}
	}
}

func writeEvent(w http.ResponseWriter, msg Message) error {
	data := msg.Data
	if len(data) == 0 {
		data = []byte("null")
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.Event, data); err != nil {
		return fmt.Errorf("could not write event: %w", err)
	}

	return nil
}
