package app

import (
	"fmt"
	"strings"

	"skill-exchange/internal/config"
	"skill-exchange/internal/delivery/http/handler"
	"skill-exchange/internal/delivery/http/middleware"
	"skill-exchange/internal/delivery/http/routes"
	v1 "skill-exchange/internal/delivery/http/routes/v1"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:     c.Config.App.AppName,
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})

	registerGlobalMiddleware(f, c.Logger)

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.DB, c.Cache),
		middleware.NewAuthMiddleware(c.JWT),
		v1.Handlers{
			Match: handler.NewMatchHandler(c.Matching, c.Similarity),
			Skill: handler.NewSkillHandler(c.Recommendations),
		},
	)
	registry.Register(f)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config, logger zerolog.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

// registerGlobalMiddleware installs the access log outside the error
// middleware so it sees the final status code.
func registerGlobalMiddleware(app *fiber.App, logger zerolog.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
