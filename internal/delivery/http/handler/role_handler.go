package handler

import (
	"roadtrip-career/internal/delivery/http/dto"
	"roadtrip-career/internal/pkg/response"
	"roadtrip-career/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RoleHandler struct {
	careers  usecase.CareerUsecase
	roadmaps usecase.RoadmapUsecase
}

func NewRoleHandler(careers usecase.CareerUsecase, roadmaps usecase.RoadmapUsecase) *RoleHandler {
	return &RoleHandler{careers: careers, roadmaps: roadmaps}
}

func (h *RoleHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/roles")
	grp.Get("/", h.List)
	grp.Get("/:role_id", h.Get)
	grp.Get("/:role_id/roadmap", h.Roadmap)
}

func (h *RoleHandler) List(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRoleList(h.careers.ListRoles(c.Context())))
}

func (h *RoleHandler) Get(c fiber.Ctx) error {
	role, err := h.careers.GetRole(c.Context(), c.Params("role_id"))
	if err != nil {
		return mapCareerUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRoleResponse(role))
}

func (h *RoleHandler) Roadmap(c fiber.Ctx) error {
	view, err := h.roadmaps.ForRole(c.Context(), c.Params("role_id"))
	if err != nil {
		return mapCareerUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRoadmapResponse(view))
}
