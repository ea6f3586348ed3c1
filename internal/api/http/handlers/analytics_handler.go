package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/resty-service/internal/domain"
	"github.com/spec-kit/resty-service/internal/store"
	apperrors "github.com/spec-kit/resty-service/pkg/util/errorutil"
)

// AnalyticsHandler exposes the analytics snapshot.
type AnalyticsHandler struct {
	store *store.Store
}

// NewAnalyticsHandler constructs handler.
func NewAnalyticsHandler(s *store.Store) *AnalyticsHandler {
	return &AnalyticsHandler{store: s}
}

// Get handles GET /api/analytics. The data is null until a snapshot is set.
func (h *AnalyticsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.store.Analytics()})
}

// Set handles PUT /api/analytics. The snapshot is stored verbatim.
func (h *AnalyticsHandler) Set(c *fiber.Ctx) error {
	var data domain.AnalyticsData
	if err := c.BodyParser(&data); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	for role := range data.RoleDistribution {
		if !role.Valid() {
			return apperrors.NewValidationError("unknown role in distribution", map[string]any{"roleDistribution": string(role)})
		}
	}
	h.store.SetAnalytics(data)
	return c.JSON(fiber.Map{"data": h.store.Analytics()})
}
