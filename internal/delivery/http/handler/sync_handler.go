package handler

import (
	"staff-match/internal/delivery/http/dto"
	"staff-match/internal/pkg/response"
	"staff-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const TriggerManual = "manual"

type SyncHandler struct {
	uc usecase.SyncUsecase
}

func NewSyncHandler(uc usecase.SyncUsecase) *SyncHandler {
	return &SyncHandler{uc: uc}
}

// RegisterRoutes mounts the sync trigger behind guard, which may be nil.
func (h *SyncHandler) RegisterRoutes(r fiber.Router, guard fiber.Handler) {
	if r == nil {
		return
	}
	if guard != nil {
		r.Post("/workable-sync", guard, h.Sync)
	} else {
		r.Post("/workable-sync", h.Sync)
	}
	r.Get("/sync-status", h.Status)
}

func (h *SyncHandler) Sync(c fiber.Ctx) error {
	res, err := h.uc.Run(c.Context(), TriggerManual)
	if err != nil {
		return err
	}
	return response.JSON(c, dto.NewSyncResponse(res, response.Now()))
}

func (h *SyncHandler) Status(c fiber.Ctx) error {
	st, err := h.uc.LastStatus(c.Context())
	if err != nil {
		return err
	}
	return response.JSON(c, dto.SyncStatusResponse{Success: true, Status: st})
}
