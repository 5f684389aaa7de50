package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-service/internal/api/http/handlers"
	"github.com/spec-kit/booking-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Influencers *handlers.InfluencersHandler
	Events      *handlers.EventsHandler
	Packages    *handlers.PackagesHandler
	Bookings    *handlers.BookingsHandler
	Queries     *handlers.QueriesHandler
	Session     *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", cfg.Session.Handle, cfg.Auth.Me)

	influencers := api.Group("/influencers")
	influencers.Get("/", cfg.Influencers.List)
	influencers.Get("/:id", cfg.Influencers.Get)
	influencers.Post("/", cfg.Session.Handle, auth.RequireAdmin(), cfg.Influencers.Create)
	influencers.Put("/:id", cfg.Session.Handle, auth.RequireAdmin(), cfg.Influencers.Update)
	influencers.Delete("/:id", cfg.Session.Handle, auth.RequireAdmin(), cfg.Influencers.Delete)

	events := api.Group("/events")
	events.Get("/", cfg.Events.List)
	// registered before :id so "categories" is not captured as an id
	events.Get("/categories", cfg.Events.Categories)
	events.Get("/:id", cfg.Events.Get)
	events.Post("/", cfg.Session.Handle, auth.RequireAdmin(), cfg.Events.Create)
	events.Put("/:id", cfg.Session.Handle, auth.RequireAdmin(), cfg.Events.Update)
	events.Delete("/:id", cfg.Session.Handle, auth.RequireAdmin(), cfg.Events.Delete)

	packages := api.Group("/packages")
	packages.Get("/", cfg.Packages.List)
	packages.Get("/:id", cfg.Packages.Get)
	packages.Post("/", cfg.Session.Handle, auth.RequireAdmin(), cfg.Packages.Create)
	packages.Put("/:id", cfg.Session.Handle, auth.RequireAdmin(), cfg.Packages.Update)
	packages.Delete("/:id", cfg.Session.Handle, auth.RequireAdmin(), cfg.Packages.Delete)

	bookings := api.Group("/bookings", cfg.Session.Handle)
	bookings.Post("/", cfg.Bookings.Create)
	bookings.Get("/", cfg.Bookings.List)
	bookings.Get("/:id", cfg.Bookings.Get)
	bookings.Put("/:id/status", auth.RequireAdmin(), cfg.Bookings.UpdateStatus)
	bookings.Delete("/:id", auth.RequireAdmin(), cfg.Bookings.Delete)

	queries := api.Group("/queries")
	queries.Post("/", cfg.Queries.Create)
	queries.Get("/", cfg.Session.Handle, auth.RequireAdmin(), cfg.Queries.List)
	queries.Get("/:id", cfg.Session.Handle, auth.RequireAdmin(), cfg.Queries.Get)
	queries.Put("/:id/status", cfg.Session.Handle, auth.RequireAdmin(), cfg.Queries.UpdateStatus)
	queries.Delete("/:id", cfg.Session.Handle, auth.RequireAdmin(), cfg.Queries.Delete)
}
