package handler

import (
	"context"
	"time"

	"skill-exchange/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

// NewHealthHandler reports the database as required and the cache as optional;
// a nil cache is skipped.
func NewHealthHandler(db Pinger, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Check)
}

func (h *HealthHandler) Check(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := fiber.Map{"database": "ok"}
	if h.db == nil {
		status["database"] = "not configured"
	} else if err := h.db.Ping(ctx); err != nil {
		status["database"] = "down"
		return response.Error(c, fiber.StatusServiceUnavailable, "unhealthy", status)
	}

	if h.cache != nil {
		status["cache"] = "ok"
		if err := h.cache.Ping(ctx); err != nil {
			status["cache"] = "bypassed"
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, status)
}
