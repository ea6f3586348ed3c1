package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/resty-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Shell     *handlers.ShellHandler
	Staff     *handlers.StaffHandler
	Shifts    *handlers.ShiftHandler
	Chat      *handlers.ChatHandler
	Insights  *handlers.InsightHandler
	Analytics *handlers.AnalyticsHandler
	Stream    *handlers.StreamHandler
	Metrics   fiber.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", cfg.Metrics)
	}
	if cfg.Stream != nil {
		app.Get("/ws", cfg.Stream.Upgrade, cfg.Stream.Serve())
	}

	api := app.Group("/api")
	api.Get("/state", cfg.Shell.State)

	shellGroup := api.Group("/shell")
	shellGroup.Get("", cfg.Shell.Layout)
	shellGroup.Put("/view", cfg.Shell.SetView)
	shellGroup.Post("/navigate", cfg.Shell.Navigate)
	shellGroup.Put("/sidebar", cfg.Shell.SetSidebar)
	shellGroup.Post("/sidebar/toggle", cfg.Shell.ToggleCollapsed)

	staff := api.Group("/staff")
	staff.Get("", cfg.Staff.List)
	staff.Put("", cfg.Staff.Replace)
	staff.Post("", cfg.Staff.Add)
	staff.Get("/selected", cfg.Staff.Selected)
	staff.Put("/selected", cfg.Staff.Select)
	staff.Patch("/:id", cfg.Staff.Update)
	staff.Delete("/:id", cfg.Staff.Remove)

	shifts := api.Group("/shifts")
	shifts.Get("", cfg.Shifts.List)
	shifts.Put("", cfg.Shifts.Replace)
	shifts.Post("", cfg.Shifts.Add)
	shifts.Patch("/:id", cfg.Shifts.Update)
	shifts.Delete("/:id", cfg.Shifts.Remove)

	chat := api.Group("/chat")
	chat.Get("/messages", cfg.Chat.Messages)
	chat.Delete("/messages", cfg.Chat.Clear)
	chat.Post("/sessions", cfg.Chat.OpenSession)
	chat.Get("/sessions/:id", cfg.Chat.GetSession)
	chat.Delete("/sessions/:id", cfg.Chat.CloseSession)
	chat.Post("/sessions/:id/messages", cfg.Chat.Submit)

	insights := api.Group("/insights")
	insights.Get("", cfg.Insights.List)
	insights.Put("", cfg.Insights.Replace)
	insights.Post("", cfg.Insights.Add)
	insights.Delete("/:id", cfg.Insights.Remove)

	api.Get("/analytics", cfg.Analytics.Get)
	api.Put("/analytics", cfg.Analytics.Set)
}
