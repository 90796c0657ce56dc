package handler

import (
	"context"
	"time"

	"staff-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

const healthTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

// NewHealthHandler reports the database as required and the cache as optional.
func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
	Timestamp string `json:"timestamp"`
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), healthTimeout)
	defer cancel()

	out := HealthResponse{
		Status:    "ok",
		Database:  probe(ctx, h.db),
		Cache:     probe(ctx, h.cache),
		Timestamp: response.Now(),
	}
	status := fiber.StatusOK
	if out.Database != "up" {
		out.Status = "degraded"
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(out)
}

func probe(ctx context.Context, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.Ping(ctx); err != nil {
		return "down"
	}
	return "up"
}
