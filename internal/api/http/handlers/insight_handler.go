package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/resty-service/internal/api/dto"
	"github.com/spec-kit/resty-service/internal/domain"
	"github.com/spec-kit/resty-service/internal/store"
)

// InsightHandler exposes insight endpoints.
type InsightHandler struct {
	store *store.Store
	now   func() time.Time
}

// NewInsightHandler constructs handler.
func NewInsightHandler(s *store.Store) *InsightHandler {
	return &InsightHandler{store: s, now: time.Now}
}

// List handles GET /api/insights?priority=.
func (h *InsightHandler) List(c *fiber.Ctx) error {
	insights := h.store.Insights()
	if p := c.Query("priority"); p != "" {
		filtered := []domain.AIInsight{}
		for _, in := range insights {
			if string(in.Priority) == p {
				filtered = append(filtered, in)
			}
		}
		insights = filtered
	}
	return c.JSON(fiber.Map{"data": insights})
}

// Replace handles PUT /api/insights.
func (h *InsightHandler) Replace(c *fiber.Ctx) error {
	var req dto.ReplaceInsightsRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	now := h.now().UTC()
	list := make([]domain.AIInsight, 0, len(req.Insights))
	for _, item := range req.Insights {
		list = append(list, item.ToDomain(now))
	}
	h.store.SetInsights(list)
	return c.JSON(fiber.Map{"data": h.store.Insights()})
}

// Add handles POST /api/insights.
func (h *InsightHandler) Add(c *fiber.Ctx) error {
	var req dto.InsightRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	insight := req.ToDomain(h.now().UTC())
	h.store.AddInsight(insight)
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": insight})
}

// Remove handles DELETE /api/insights/:id.
func (h *InsightHandler) Remove(c *fiber.Ctx) error {
	return applied(c, h.store.RemoveInsight(c.Params("id")))
}
