package v1

import (
	"skill-exchange/internal/delivery/http/handler"
	"skill-exchange/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Match *handler.MatchHandler
	Skill *handler.SkillHandler
}

// Register mounts the engine endpoints behind bearer auth.
func Register(r fiber.Router, auth *middleware.AuthMiddleware, h Handlers) {
	if r == nil || auth == nil {
		return
	}

	protected := r.Group("", auth.Middleware())
	if h.Match != nil {
		h.Match.RegisterRoutes(protected)
	}
	if h.Skill != nil {
		h.Skill.RegisterRoutes(protected)
	}
}
