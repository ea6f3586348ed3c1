package handlers

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/spec-kit/resty-service/internal/realtime"
	"github.com/spec-kit/resty-service/internal/store"
	apperrors "github.com/spec-kit/resty-service/pkg/util/errorutil"
)

const fieldsLocal = "ws_fields"

// StreamHandler upgrades clients to the snapshot websocket stream.
type StreamHandler struct {
	ctx   context.Context
	hub   *realtime.Hub
	store *store.Store
}

// NewStreamHandler constructs handler. ctx bounds every connection.
func NewStreamHandler(ctx context.Context, hub *realtime.Hub, s *store.Store) *StreamHandler {
	return &StreamHandler{ctx: ctx, hub: hub, store: s}
}

// Upgrade rejects non-websocket requests and parses ?fields=a,b.
func (h *StreamHandler) Upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	fields, err := ParseFields(c.Query("fields"))
	if err != nil {
		return err
	}
	c.Locals(fieldsLocal, fields)
	return c.Next()
}

// Serve handles GET /ws after Upgrade.
func (h *StreamHandler) Serve() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		fields, _ := conn.Locals(fieldsLocal).([]store.Field)
		realtime.ServeWs(h.ctx, h.hub, h.store, conn, fields)
	})
}

// ParseFields resolves a comma separated list of state field names.
func ParseFields(raw string) ([]store.Field, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var fields []store.Field
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		f, ok := store.ParseField(name)
		if !ok {
			return nil, apperrors.NewValidationError("unknown state field", map[string]any{"fields": name})
		}
		fields = append(fields, f)
	}
	return fields, nil
}
