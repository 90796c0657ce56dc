package routes

import (
	"staff-match/internal/delivery/http/handler"
	"staff-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	config *handler.ConfigHandler
	match  *handler.MatchHandler
	sync   *handler.SyncHandler
	ws     *ws.Handler

	// syncGuard protects the sync trigger; nil leaves it open.
	syncGuard fiber.Handler
}

type Handlers struct {
	Health    *handler.HealthHandler
	Config    *handler.ConfigHandler
	Match     *handler.MatchHandler
	Sync      *handler.SyncHandler
	WS        *ws.Handler
	SyncGuard fiber.Handler
}

func NewRegistry(h Handlers) *Registry {
	return &Registry{
		health:    h.Health,
		config:    h.Config,
		match:     h.Match,
		sync:      h.Sync,
		ws:        h.WS,
		syncGuard: h.SyncGuard,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerFunctions(app)
	r.registerAPI(app)
	r.registerWS(app)

	// Bare preflights without CORS request headers still get an empty 204.
	app.Options("/*", func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
}

func (r *Registry) registerFunctions(app *fiber.App) {
	fn := app.Group("/functions/v1")
	if r.match != nil {
		r.match.RegisterRoutes(fn)
	}
	if r.sync != nil {
		r.sync.RegisterRoutes(fn, r.syncGuard)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	if r.config != nil {
		r.config.RegisterRoutes(app.Group("/api"))
	}
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.ws != nil {
		app.Get("/ws/matches", r.ws.HandleMatchesWS)
	}
}
