package handler

import (
	"roadtrip-career/internal/delivery/http/dto"
	"roadtrip-career/internal/delivery/http/middleware"
	"roadtrip-career/internal/pkg/response"
	"roadtrip-career/internal/usecase"
	ucuser "roadtrip-career/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	users     usecase.UserUsecase
	readiness usecase.ReadinessUsecase
	roadmaps  usecase.RoadmapUsecase
	dashboard usecase.DashboardUsecase
}

func NewUserHandler(users usecase.UserUsecase, readiness usecase.ReadinessUsecase, roadmaps usecase.RoadmapUsecase, dashboard usecase.DashboardUsecase) *UserHandler {
	return &UserHandler{users: users, readiness: readiness, roadmaps: roadmaps, dashboard: dashboard}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.GetMe)
	r.Put("/me", h.UpdateMe)
	r.Get("/me/readiness", h.GetReadiness)
	r.Get("/me/roadmap", h.GetRoadmap)
	r.Get("/me/dashboard", h.GetDashboard)
}

func (h *UserHandler) GetMe(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	prof, err := h.users.GetProfile(c.Context(), userID)
	if err != nil {
		return mapCareerUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserProfileResponse(prof))
}

// UpdateMe replaces the career goal and skills. A goal and at least one
// skill are required.
func (h *UserHandler) UpdateMe(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	prof, err := h.users.UpdateProfile(c.Context(), userID, ucuser.UpdateProfileInput{
		Name:       req.Name,
		CareerGoal: req.CareerGoal,
		Skills:     req.Skills,
	})
	if err != nil {
		return mapCareerUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Profile saved", dto.NewUserProfileResponse(prof))
}

func (h *UserHandler) GetReadiness(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	res, err := h.readiness.ForUser(c.Context(), userID)
	if err != nil {
		return mapCareerUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMeReadinessResponse(res))
}

func (h *UserHandler) GetRoadmap(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	res, err := h.roadmaps.ForUser(c.Context(), userID)
	if err != nil {
		return mapCareerUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMeRoadmapResponse(res))
}

func (h *UserHandler) GetDashboard(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	res, err := h.dashboard.Get(c.Context(), userID)
	if err != nil {
		return mapCareerUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewDashboardResponse(res))
}
