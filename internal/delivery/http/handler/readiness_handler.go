package handler

import (
	"strings"

	"roadtrip-career/internal/delivery/http/dto"
	"roadtrip-career/internal/delivery/http/middleware"
	"roadtrip-career/internal/pkg/response"
	"roadtrip-career/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ReadinessHandler struct {
	uc usecase.ReadinessUsecase
}

func NewReadinessHandler(uc usecase.ReadinessUsecase) *ReadinessHandler {
	return &ReadinessHandler{uc: uc}
}

func (h *ReadinessHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/readiness", h.Compute)
}

// Compute scores an ad-hoc skill set against a role without touching any
// stored profile. An empty skill list is valid and scores 0.
func (h *ReadinessHandler) Compute(c fiber.Ctx) error {
	var req dto.ReadinessRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if strings.TrimSpace(req.RoleID) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "role_id is required", nil, nil)
	}

	report, err := h.uc.Compute(c.Context(), usecase.CareerSnapshot{RoleID: strings.TrimSpace(req.RoleID), Skills: req.Skills})
	if err != nil {
		return mapCareerUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewReadinessResponse(report))
}
