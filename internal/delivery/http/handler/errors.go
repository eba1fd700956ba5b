package handler

import (
	"errors"

	"roadtrip-career/internal/delivery/http/middleware"
	"roadtrip-career/internal/pkg/response"
	"roadtrip-career/internal/usecase"
	ucuser "roadtrip-career/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func mapCareerUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrRoleNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Role not found", nil, err)
	case errors.Is(err, usecase.ErrRoadmapNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Roadmap not found", nil, err)
	case errors.Is(err, usecase.ErrUserNotFound), errors.Is(err, ucuser.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, ucuser.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	case errors.Is(err, ucuser.ErrUnknownRole):
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown career goal", nil, err)
	case errors.Is(err, ucuser.ErrNoSkills), errors.Is(err, usecase.ErrNoSkills):
		return middleware.NewAppError(fiber.StatusBadRequest, "Select at least one skill", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func currentUserID(c fiber.Ctx) (uuid.UUID, error) {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return userID, nil
}
