package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"staff-match/internal/delivery/http/dto"
	"staff-match/internal/pkg/apperr"
	"staff-match/internal/pkg/response"
	"staff-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const msgInvalidBody = "Invalid JSON body"

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/ai-matching", h.Match)
}

// Match scores candidates against jobs. The supplied ids select the mode; an
// empty body asks for general suggestions.
func (h *MatchHandler) Match(c fiber.Ctx) error {
	var req dto.MatchRequest
	if body := bytes.TrimSpace(c.Body()); len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			return apperr.InvalidInput(msgInvalidBody, err)
		}
	}

	candidateID, candidateErr := parseRequestID(req.CandidateID)
	jobID, jobErr := parseRequestID(req.JobID)
	if err := errors.Join(candidateErr, jobErr); err != nil {
		return apperr.NotFound(notFoundMessage(candidateID != nil || candidateErr != nil, jobID != nil || jobErr != nil), err)
	}

	results, err := h.uc.Match(c.Context(), usecase.MatchRequest{
		CandidateID: candidateID,
		JobID:       jobID,
		Limit:       req.Limit,
	})
	if err != nil {
		return err
	}

	return response.JSON(c, dto.NewMatchListResponse(results, response.Now()))
}

// parseRequestID returns nil for a missing or blank id. An id that is not a
// UUID cannot name a stored row, so it is reported as not found.
func parseRequestID(raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func notFoundMessage(candidate, job bool) string {
	switch {
	case candidate && job:
		return usecase.MsgCandidateOrJobNotFound
	case job:
		return usecase.MsgJobNotFound
	default:
		return usecase.MsgCandidateNotFound
	}
}
