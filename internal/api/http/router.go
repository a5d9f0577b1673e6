package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-crm/internal/api/http/handlers"
	"github.com/spec-kit/support-crm/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Accounts       *handlers.AccountsHandler
	Tickets        *handlers.TicketsHandler
	Tokens         *handlers.TokenHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Registration and token endpoints
// are the only ones reachable without a bearer token.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/token", cfg.Tokens.Issue)
	app.Post("/token/refresh", cfg.Tokens.Refresh)

	app.Post("/users", cfg.Accounts.Register)

	users := app.Group("/users", cfg.AuthMiddleware.Handle)
	users.Get("", cfg.Accounts.List)
	users.Get("/:id", cfg.Accounts.Get)
	users.Put("/:id", cfg.Accounts.Update)
	users.Patch("/:id", cfg.Accounts.Update)

	tickets := app.Group("/tickets", cfg.AuthMiddleware.Handle)
	tickets.Post("", cfg.Tickets.Create)
	tickets.Get("", cfg.Tickets.List)
	tickets.Get("/:id", cfg.Tickets.Get)
	tickets.Put("/:id", cfg.Tickets.Update)
	tickets.Patch("/:id", cfg.Tickets.Update)
	tickets.Delete("/:id", cfg.Tickets.Destroy)
}
