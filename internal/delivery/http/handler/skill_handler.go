package handler

import (
	"skill-exchange/internal/delivery/http/dto"
	"skill-exchange/internal/delivery/http/middleware"
	"skill-exchange/internal/domain/skill"
	"skill-exchange/internal/pkg/response"
	"skill-exchange/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.RecommendationUsecase
}

func NewSkillHandler(uc usecase.RecommendationUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Get("/categories", h.Categories)
	grp.Get("/recommendations", h.Recommendations)
}

func (h *SkillHandler) Categories(c fiber.Ctx) error {
	cats := skill.Categories()
	res := make([]string, 0, len(cats))
	for _, cat := range cats {
		res = append(res, string(cat))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *SkillHandler) Recommendations(c fiber.Ctx) error {
	userID, ok := middleware.RequesterID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	res, err := h.uc.GetSkillRecommendations(c.Context(), userID)
	if err != nil {
		return mapEngineUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillRecommendationResponses(res))
}
