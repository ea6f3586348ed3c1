package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/resty-service/internal/api/dto"
	"github.com/spec-kit/resty-service/internal/domain"
	"github.com/spec-kit/resty-service/internal/shell"
	"github.com/spec-kit/resty-service/internal/store"
)

// StaffHandler exposes roster endpoints.
type StaffHandler struct {
	store *store.Store
	now   func() time.Time
}

// NewStaffHandler constructs handler.
func NewStaffHandler(s *store.Store) *StaffHandler {
	return &StaffHandler{store: s, now: time.Now}
}

// List handles GET /api/staff?q=&role=.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	all := h.store.Staff()
	filter := shell.StaffFilter{Query: c.Query("q"), Role: c.Query("role", shell.RoleFilterAll)}
	shown := filter.Apply(all)
	return c.JSON(fiber.Map{"data": dto.StaffListResponse{Staff: shown, Total: len(all), Shown: len(shown)}})
}

// Replace handles PUT /api/staff.
func (h *StaffHandler) Replace(c *fiber.Ctx) error {
	var req dto.ReplaceStaffRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	now := h.now().UTC()
	list := make([]domain.Staff, 0, len(req.Staff))
	for _, item := range req.Staff {
		list = append(list, item.ToDomain(now))
	}
	h.store.SetStaff(list)
	return c.JSON(fiber.Map{"data": h.store.Staff()})
}

// Add handles POST /api/staff.
func (h *StaffHandler) Add(c *fiber.Ctx) error {
	var req dto.StaffRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	staff := req.ToDomain(h.now().UTC())
	h.store.AddStaff(staff)
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": staff})
}

// Update handles PATCH /api/staff/:id. An unknown id is a reported no-op.
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	var req dto.StaffPatchRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	return applied(c, h.store.UpdateStaff(c.Params("id"), req.ToPatch(h.now().UTC())))
}

// Remove handles DELETE /api/staff/:id.
func (h *StaffHandler) Remove(c *fiber.Ctx) error {
	return applied(c, h.store.RemoveStaff(c.Params("id")))
}

// Selected handles GET /api/staff/selected.
func (h *StaffHandler) Selected(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.store.SelectedStaff()})
}

// Select handles PUT /api/staff/selected. A null body clears the selection;
// the member does not have to be in the roster.
func (h *StaffHandler) Select(c *fiber.Ctx) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		h.store.SetSelectedStaff(nil)
		return c.JSON(fiber.Map{"data": nil})
	}
	var staff domain.Staff
	if err := json.Unmarshal(body, &staff); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	h.store.SetSelectedStaff(&staff)
	return c.JSON(fiber.Map{"data": h.store.SelectedStaff()})
}
