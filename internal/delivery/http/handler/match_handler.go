package handler

import (
	"errors"

	"skill-exchange/internal/delivery/http/dto"
	"skill-exchange/internal/delivery/http/middleware"
	"skill-exchange/internal/pkg/response"
	"skill-exchange/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	matches usecase.MatchingUsecase
	similar usecase.SimilarityUsecase
}

func NewMatchHandler(matches usecase.MatchingUsecase, similar usecase.SimilarityUsecase) *MatchHandler {
	return &MatchHandler{matches: matches, similar: similar}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/matches")
	grp.Get("/", h.List)
	grp.Get("/similar", h.Similar)

	r.Get("/users/:user_id/matches", h.ListForUser)
}

func (h *MatchHandler) List(c fiber.Ctx) error {
	userID, ok := middleware.RequesterID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return h.listMatches(c, userID)
}

func (h *MatchHandler) ListForUser(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid user_id", nil, err)
	}
	return h.listMatches(c, userID)
}

func (h *MatchHandler) listMatches(c fiber.Ctx, userID uuid.UUID) error {
	filters, err := parseMatchQuery(c)
	if err != nil {
		return err
	}

	res, err := h.matches.FindMatches(c.Context(), userID, filters)
	if err != nil {
		return mapEngineUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResultResponses(res))
}

func (h *MatchHandler) Similar(c fiber.Ctx) error {
	userID, ok := middleware.RequesterID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit, err := parseSimilarQuery(c)
	if err != nil {
		return err
	}

	res, err := h.similar.FindSimilarUsers(c.Context(), userID, limit)
	if err != nil {
		return mapEngineUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSimilarUserResponses(res))
}

func mapEngineUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
