package v1

import (
	"roadtrip-career/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// RegisterCareers mounts the public catalog, roadmap and readiness routes.
func RegisterCareers(r fiber.Router, roles *handler.RoleHandler, skills *handler.SkillHandler, readiness *handler.ReadinessHandler) {
	if r == nil {
		return
	}

	if roles != nil {
		roles.RegisterRoutes(r)
	}
	if skills != nil {
		skills.RegisterRoutes(r)
	}
	if readiness != nil {
		readiness.RegisterRoutes(r)
	}
}
