// Package realtime streams store snapshots to websocket subscribers.
package realtime

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/spec-kit/resty-service/internal/store"
)

const (
	// FrameSnapshot is sent once when a client connects.
	FrameSnapshot = "snapshot"
	// FrameState is sent after every change the client subscribed to.
	FrameState = "state"

	broadcastBuffer = 64
	sendBuffer      = 256
)

// Frame is one message pushed to a client.
type Frame struct {
	Type   string        `json:"type"`
	Change *store.Change `json:"change,omitempty"`
	Data   store.State   `json:"data"`
}

// Snapshotter provides the state a joining client starts from.
type Snapshotter interface {
	Snapshot() store.State
}

type registration struct {
	client *Client
	source Snapshotter
}

type broadcast struct {
	change  store.Change
	payload []byte
}

// Hub fans store changes out to connected clients. All client bookkeeping
// happens on the Run goroutine.
type Hub struct {
	clients    map[*Client]struct{}
	register   chan registration
	unregister chan *Client
	broadcast  chan broadcast
	count      chan chan int
	logger     *zap.Logger
}

// NewHub creates a hub; call Run to start it.
func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan registration),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcast, broadcastBuffer),
		count:      make(chan chan int),
		logger:     logger,
	}
}

// Run serves registrations and broadcasts until ctx is cancelled, then
// disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.drop(client)
			}
			return
		case reg := <-h.register:
			h.add(reg)
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
				h.logger.Debug("websocket client unregistered", zap.String("client_id", client.ID))
			}
		case msg := <-h.broadcast:
			for client := range h.clients {
				if !client.wants(msg.change) {
					continue
				}
				select {
				case client.Send <- msg.payload:
				default:
					h.logger.Warn("websocket client too slow; disconnecting", zap.String("client_id", client.ID))
					h.drop(client)
				}
			}
		case reply := <-h.count:
			reply <- len(h.clients)
		}
	}
}

// add queues the requested snapshot before the client joins the broadcast set.
func (h *Hub) add(reg registration) {
	client := reg.client
	if reg.source != nil {
		frame, err := SnapshotFrame(reg.source.Snapshot())
		if err != nil {
			h.logger.Error("encode snapshot frame", zap.String("client_id", client.ID), zap.Error(err))
			close(client.Send)
			return
		}
		client.Send <- frame
	}
	h.clients[client] = struct{}{}
	h.logger.Debug("websocket client registered", zap.String("client_id", client.ID))
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	close(client.Send)
}

// Attach publishes every change of s to the hub. The returned func detaches.
func (h *Hub) Attach(s *store.Store) func() {
	return s.Subscribe(func(state store.State, change store.Change) {
		payload, err := json.Marshal(Frame{Type: FrameState, Change: &change, Data: state})
		if err != nil {
			h.logger.Error("encode state frame", zap.Error(err))
			return
		}
		select {
		case h.broadcast <- broadcast{change: change, payload: payload}:
		default:
			h.logger.Warn("websocket broadcast queue full; dropping frame", zap.String("op", string(change.Op)))
		}
	})
}

// Register adds client; it blocks until the hub has accepted it or ctx ends.
func (h *Hub) Register(ctx context.Context, client *Client) error {
	return h.join(ctx, registration{client: client})
}

// Join registers client and queues a snapshot frame of source as its first
// message. The snapshot is taken on the hub goroutine.
func (h *Hub) Join(ctx context.Context, client *Client, source Snapshotter) error {
	return h.join(ctx, registration{client: client, source: source})
}

func (h *Hub) join(ctx context.Context, reg registration) error {
	select {
	case h.register <- reg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Unregister removes client and closes its Send channel.
func (h *Hub) Unregister(ctx context.Context, client *Client) {
	select {
	case h.unregister <- client:
	case <-ctx.Done():
	}
}

// Count returns the number of registered clients.
func (h *Hub) Count(ctx context.Context) int {
	reply := make(chan int, 1)
	select {
	case h.count <- reply:
		return <-reply
	case <-ctx.Done():
		return 0
	}
}

// SnapshotFrame encodes the frame sent to a newly connected client.
func SnapshotFrame(state store.State) ([]byte, error) {
	return json.Marshal(Frame{Type: FrameSnapshot, Data: state})
}
