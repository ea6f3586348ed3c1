package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/resty-service/internal/api/dto"
	"github.com/spec-kit/resty-service/internal/assistant"
	"github.com/spec-kit/resty-service/internal/ratelimit"
	"github.com/spec-kit/resty-service/internal/store"
	apperrors "github.com/spec-kit/resty-service/pkg/util/errorutil"
)

// ChatHandler exposes the transcript and chat sessions.
type ChatHandler struct {
	store    *store.Store
	sessions *assistant.Sessions
	limiter  ratelimit.Limiter
}

// NewChatHandler constructs handler. A nil limiter disables rate limiting.
func NewChatHandler(s *store.Store, sessions *assistant.Sessions, limiter ratelimit.Limiter) *ChatHandler {
	if limiter == nil {
		limiter = ratelimit.Unlimited{}
	}
	return &ChatHandler{store: s, sessions: sessions, limiter: limiter}
}

// Messages handles GET /api/chat/messages.
func (h *ChatHandler) Messages(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.store.ChatMessages()})
}

// Clear handles DELETE /api/chat/messages.
func (h *ChatHandler) Clear(c *fiber.Ctx) error {
	h.store.ClearChatMessages()
	return c.SendStatus(http.StatusNoContent)
}

// OpenSession handles POST /api/chat/sessions.
func (h *ChatHandler) OpenSession(c *fiber.Ctx) error {
	session := h.sessions.Open()
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.SessionResponse{ID: session.ID}})
}

// GetSession handles GET /api/chat/sessions/:id.
func (h *ChatHandler) GetSession(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.SessionResponse{ID: session.ID, Awaiting: session.Awaiting()}})
}

// CloseSession handles DELETE /api/chat/sessions/:id. A pending reply is
// cancelled and never appended.
func (h *ChatHandler) CloseSession(c *fiber.Ctx) error {
	if !h.sessions.Close(c.Params("id")) {
		return apperrors.NewNotFound("chat session", map[string]any{"id": c.Params("id")})
	}
	return c.SendStatus(http.StatusNoContent)
}

// Submit handles POST /api/chat/sessions/:id/messages. The user message is
// appended immediately; the reply follows asynchronously.
func (h *ChatHandler) Submit(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return err
	}

	var req dto.SubmitMessageRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	if ok, _ := h.limiter.Allow(c.UserContext(), session.ID); !ok {
		return apperrors.NewTooManyRequests("too many chat messages; try again shortly")
	}

	msg, err := session.Submit(req.Content)
	switch {
	case errors.Is(err, assistant.ErrEmptyMessage):
		return apperrors.NewValidationError("message is empty", map[string]any{"content": "required"})
	case errors.Is(err, assistant.ErrAwaitingResponse):
		return apperrors.NewConflict("a response is still pending", map[string]any{"session": session.ID})
	case errors.Is(err, assistant.ErrSessionClosed):
		return apperrors.NewNotFound("chat session", map[string]any{"id": session.ID})
	case err != nil:
		return err
	}

	return c.Status(http.StatusAccepted).JSON(fiber.Map{"data": dto.SubmitMessageResponse{Message: msg, Awaiting: true}})
}

func (h *ChatHandler) session(c *fiber.Ctx) (*assistant.Session, error) {
	session, ok := h.sessions.Get(c.Params("id"))
	if !ok {
		return nil, apperrors.NewNotFound("chat session", map[string]any{"id": c.Params("id")})
	}
	return session, nil
}
