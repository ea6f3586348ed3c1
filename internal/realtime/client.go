package realtime

import (
	"context"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/resty-service/internal/store"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Client is a middleman between the websocket connection and the hub.
type Client struct {
	ID string

	// Fields restricts pushes to changes touching these fields; empty means all.
	Fields []store.Field

	// Buffered channel of outbound messages. Only the hub closes it.
	Send chan []byte

	conn   *websocket.Conn
	hub    *Hub
	logger *zap.Logger
}

// NewClient returns a client for conn subscribed to fields.
func NewClient(hub *Hub, conn *websocket.Conn, fields []store.Field) *Client {
	return &Client{
		ID:     uuid.NewString(),
		Fields: fields,
		Send:   make(chan []byte, sendBuffer),
		conn:   conn,
		hub:    hub,
		logger: hub.logger,
	}
}

func (c *Client) wants(change store.Change) bool {
	if len(c.Fields) == 0 {
		return true
	}
	for _, f := range c.Fields {
		if change.Touches(f) {
			return true
		}
	}
	return false
}

// readPump drains the connection so control frames are processed; inbound
// messages are ignored.
func (c *Client) readPump(ctx context.Context) {
	defer func() {
		c.hub.Unregister(ctx, c)
		_ = c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn("websocket read failed", zap.String("client_id", c.ID), zap.Error(err))
			}
			return
		}
	}
}

// writePump pumps messages from the hub to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
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

// ServeWs registers a client for conn, sends it the current snapshot and
// pumps frames until the peer disconnects.
func ServeWs(ctx context.Context, hub *Hub, s *store.Store, conn *websocket.Conn, fields []store.Field) {
	client := NewClient(hub, conn, fields)

	if err := hub.Join(ctx, client, s); err != nil {
		_ = conn.Close()
		return
	}

	go client.writePump()
	client.readPump(ctx)
}
