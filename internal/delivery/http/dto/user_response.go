package dto

import (
	"time"

	ucuser "roadtrip-career/internal/usecase/user"

	"github.com/google/uuid"
)

type UpdateProfileRequest struct {
	Name       *string  `json:"name"`
	CareerGoal string   `json:"career_goal"`
	Skills     []string `json:"skills"`
}

type UserProfileResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        *string    `json:"name"`
	DisplayName string     `json:"display_name"`
	CareerGoal  *string    `json:"career_goal"`
	Skills      []string   `json:"skills"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func NewUserProfileResponse(p ucuser.Profile) UserProfileResponse {
	res := UserProfileResponse{
		ID:          p.UserID,
		Email:       p.Email,
		Name:        p.Name,
		DisplayName: p.DisplayName(),
		CareerGoal:  p.CareerGoal,
		Skills:      nonNil(p.Skills),
	}
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		res.UpdatedAt = &t
	}
	return res
}
