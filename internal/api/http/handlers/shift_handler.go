package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/resty-service/internal/api/dto"
	"github.com/spec-kit/resty-service/internal/domain"
	"github.com/spec-kit/resty-service/internal/store"
)

// ShiftHandler exposes shift endpoints.
type ShiftHandler struct {
	store *store.Store
}

// NewShiftHandler constructs handler.
func NewShiftHandler(s *store.Store) *ShiftHandler {
	return &ShiftHandler{store: s}
}

// List handles GET /api/shifts?staffId=.
func (h *ShiftHandler) List(c *fiber.Ctx) error {
	shifts := h.store.Shifts()
	if staffID := c.Query("staffId"); staffID != "" {
		filtered := []domain.Shift{}
		for _, s := range shifts {
			if s.StaffID == staffID {
				filtered = append(filtered, s)
			}
		}
		shifts = filtered
	}
	return c.JSON(fiber.Map{"data": shifts})
}

// Replace handles PUT /api/shifts.
func (h *ShiftHandler) Replace(c *fiber.Ctx) error {
	var req dto.ReplaceShiftsRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	list := make([]domain.Shift, 0, len(req.Shifts))
	for _, item := range req.Shifts {
		list = append(list, item.ToDomain())
	}
	h.store.SetShifts(list)
	return c.JSON(fiber.Map{"data": h.store.Shifts()})
}

// Add handles POST /api/shifts.
func (h *ShiftHandler) Add(c *fiber.Ctx) error {
	var req dto.ShiftRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	shift := req.ToDomain()
	h.store.AddShift(shift)
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": shift})
}

// Update handles PATCH /api/shifts/:id.
func (h *ShiftHandler) Update(c *fiber.Ctx) error {
	var req dto.ShiftPatchRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	return applied(c, h.store.UpdateShift(c.Params("id"), req.ToPatch()))
}

// Remove handles DELETE /api/shifts/:id.
func (h *ShiftHandler) Remove(c *fiber.Ctx) error {
	return applied(c, h.store.RemoveShift(c.Params("id")))
}
