package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/resty-service/internal/api/dto"
	"github.com/spec-kit/resty-service/internal/assistant"
	"github.com/spec-kit/resty-service/internal/shell"
	"github.com/spec-kit/resty-service/internal/store"
)

// ShellHandler exposes the snapshot and the navigation shell.
type ShellHandler struct {
	store    *store.Store
	shell    *shell.Shell
	sessions *assistant.Sessions
}

// NewShellHandler constructs handler.
func NewShellHandler(s *store.Store, sh *shell.Shell, sessions *assistant.Sessions) *ShellHandler {
	return &ShellHandler{store: s, shell: sh, sessions: sessions}
}

// State handles GET /api/state.
func (h *ShellHandler) State(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.store.Snapshot()})
}

// Layout handles GET /api/shell. Query params: session (chat session id),
// q and role (roster filter).
func (h *ShellHandler) Layout(c *fiber.Ctx) error {
	rc := shell.RenderContext{
		StaffFilter: shell.StaffFilter{Query: c.Query("q"), Role: c.Query("role", shell.RoleFilterAll)},
	}
	if id := c.Query("session"); id != "" && h.sessions != nil {
		if session, ok := h.sessions.Get(id); ok {
			rc.Awaiting = session.Awaiting()
		}
	}
	return c.JSON(fiber.Map{"data": h.shell.Layout(rc)})
}

// SetView handles PUT /api/shell/view.
func (h *ShellHandler) SetView(c *fiber.Ctx) error {
	var req dto.ViewRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	h.store.SetCurrentView(req.View)
	return c.JSON(fiber.Map{"data": fiber.Map{"currentView": h.store.CurrentView()}})
}

// Navigate handles POST /api/shell/navigate.
func (h *ShellHandler) Navigate(c *fiber.Ctx) error {
	var req dto.ViewRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	h.shell.Navigate(req.View)
	state := h.store.Snapshot()
	return c.JSON(fiber.Map{"data": fiber.Map{
		"currentView": state.CurrentView,
		"sidebarOpen": state.SidebarOpen,
	}})
}

// SetSidebar handles PUT /api/shell/sidebar.
func (h *ShellHandler) SetSidebar(c *fiber.Ctx) error {
	var req dto.SidebarRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.Open != nil {
		h.store.SetSidebarOpen(*req.Open)
	}
	if req.Collapsed != nil {
		h.store.SetSidebarCollapsed(*req.Collapsed)
	}
	state := h.store.Snapshot()
	return c.JSON(fiber.Map{"data": fiber.Map{
		"sidebarOpen":      state.SidebarOpen,
		"sidebarCollapsed": state.SidebarCollapsed,
	}})
}

// ToggleCollapsed handles POST /api/shell/sidebar/toggle.
func (h *ShellHandler) ToggleCollapsed(c *fiber.Ctx) error {
	collapsed := h.shell.ToggleCollapsed()
	return c.JSON(fiber.Map{"data": fiber.Map{"sidebarCollapsed": collapsed}})
}
