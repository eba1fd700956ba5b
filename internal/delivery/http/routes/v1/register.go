package v1

import (
	"roadtrip-career/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// Handlers is everything mounted under /api/v1. Nil handlers are skipped.
type Handlers struct {
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	Role      *handler.RoleHandler
	Skill     *handler.SkillHandler
	Readiness *handler.ReadinessHandler

	// WS upgrades /api/v1/ws; it authenticates on its own because browsers
	// cannot set headers on a WebSocket handshake.
	WS fiber.Handler

	AuthMiddleware fiber.Handler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}

	RegisterCareers(r, h.Role, h.Skill, h.Readiness)

	if h.WS != nil {
		r.Get("/ws", h.WS)
	}

	if h.AuthMiddleware == nil {
		return
	}
	RegisterUsers(r.Group("/users", h.AuthMiddleware), h.User)
}
