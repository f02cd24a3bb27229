package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/itsquarehub/helpdesk-service/internal/api/http/handlers"
	"github.com/itsquarehub/helpdesk-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Tickets        *handlers.TicketsHandler
	AdminTickets   *handlers.AdminTicketsHandler
	AuthMiddleware *auth.AuthMiddleware
	UploadsDir     string
}

// RegisterRoutes wires HTTP routes. Every admin route except login sits
// behind the bearer-token middleware.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Static("/uploads", cfg.UploadsDir)

	api := app.Group("/api")
	api.Post("/tickets", cfg.Tickets.Create)
	api.Get("/tickets/status", cfg.Tickets.Status)
	api.Post("/admin/login", cfg.Auth.Login)

	adminTickets := api.Group("/admin/tickets", cfg.AuthMiddleware.Handle)
	adminTickets.Get("/", cfg.AdminTickets.List)
	adminTickets.Put("/:id", cfg.AdminTickets.UpdateStatus)
}
