package app

import (
	"context"
	"fmt"
	"strings"

	"roadtrip-career/internal/config"
	"roadtrip-career/internal/delivery/http/handler"
	"roadtrip-career/internal/delivery/http/middleware"
	"roadtrip-career/internal/delivery/http/routes"
	v1 "roadtrip-career/internal/delivery/http/routes/v1"
	"roadtrip-career/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New builds the HTTP app on top of c and starts the WebSocket hub.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	go c.Hub.Run()

	return &App{Fiber: f, Container: c}
}

func Bootstrap(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, log *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(log).Middleware())
	app.Use(middleware.NewErrorMiddleware(log).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	var dbPinger handler.Pinger
	if c.DB != nil {
		dbPinger = c.DB
	}

	wsHandler := ws.NewHandler(c.Hub, c.JWT, c.Logger)

	routes.NewRegistry(
		handler.NewHealthHandler(dbPinger, c.Cache),
		v1.Handlers{
			Auth:           handler.NewAuthHandler(c.Auth),
			User:           handler.NewUserHandler(c.Users, c.Readiness, c.Roadmap, c.Dashboard),
			Role:           handler.NewRoleHandler(c.Careers, c.Roadmap),
			Skill:          handler.NewSkillHandler(c.Careers),
			Readiness:      handler.NewReadinessHandler(c.Readiness),
			WS:             wsHandler.HandleReadinessWS,
			AuthMiddleware: middleware.NewAuthMiddleware(c.JWT).Middleware(),
		},
	).Register(app)
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
