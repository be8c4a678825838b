package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/michaeljohnaustria/my-garden/internal/api/http/handlers"
	"github.com/michaeljohnaustria/my-garden/internal/auth"
)

// ResourceRoutes is the handler set every resource family exposes.
type ResourceRoutes interface {
	List(c *fiber.Ctx) error
	Get(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Vegetables     *handlers.VegetablesHandler
	SoilTypes      *handlers.SoilTypesHandler
	Pests          *handlers.PestsHandler
	Facts          *handlers.FactsHandler
	AuthMiddleware *auth.AuthMiddleware
	// WriteRoles may create, update and delete rows.
	WriteRoles []string
	// Gatherer backs /metrics; nil leaves the endpoint unregistered.
	Gatherer prometheus.Gatherer
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")
	api.Post("/login", cfg.Auth.Login)

	authn := cfg.AuthMiddleware.Handle
	writer := auth.RequireRole(cfg.WriteRoles...)

	registerResource(api, "/vegetables", cfg.Vegetables, authn, writer)
	registerResource(api, "/soil_types", cfg.SoilTypes, authn, writer)
	registerResource(api, "/pests", cfg.Pests, authn, writer)
	registerResource(api, "/facts", cfg.Facts, authn, writer)
}

// registerResource mounts the five CRUD routes. Reading a single row is open;
// listing needs a token; writes also need one of the write roles.
func registerResource(router fiber.Router, prefix string, h ResourceRoutes, authn, writer fiber.Handler) {
	group := router.Group(prefix)
	group.Get("/", authn, h.List)
	group.Get("/:id<int>", h.Get)
	group.Post("/", authn, writer, h.Create)
	group.Put("/:id<int>", authn, writer, h.Update)
	group.Delete("/:id<int>", authn, writer, h.Delete)
}
