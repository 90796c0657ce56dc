package handler

import (
	"staff-match/internal/config"
	"staff-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type ConfigHandler struct {
	frontend config.FrontendConfig
}

func NewConfigHandler(frontend config.FrontendConfig) *ConfigHandler {
	return &ConfigHandler{frontend: frontend}
}

func (h *ConfigHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/config", h.Get)
}

func (h *ConfigHandler) Get(c fiber.Ctx) error {
	return response.JSON(c, h.frontend)
}
