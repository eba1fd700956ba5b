package dto

import "roadtrip-career/internal/usecase"

type ReadinessRequest struct {
	RoleID string   `json:"role_id"`
	Skills []string `json:"skills"`
}

type ReadinessResponse struct {
	Role           RoleSummary `json:"role"`
	RequiredSkills []string    `json:"required_skills"`
	MatchedSkills  []string    `json:"matched_skills"`
	MissingSkills  []string    `json:"missing_skills"`
	Percentage     int         `json:"percentage"`
	Tier           string      `json:"tier"`
	Message        string      `json:"message"`
}

// MeReadinessResponse wraps the stored-profile readiness. Readiness is null
// while GoalSet is false.
type MeReadinessResponse struct {
	GoalSet   bool               `json:"goal_set"`
	Readiness *ReadinessResponse `json:"readiness"`
}

func NewReadinessResponse(r usecase.ReadinessReport) ReadinessResponse {
	return ReadinessResponse{
		Role:           NewRoleSummary(r.Role),
		RequiredSkills: nonNil(r.Result.RequiredSkills),
		MatchedSkills:  nonNil(r.Result.MatchedSkills),
		MissingSkills:  nonNil(r.Result.MissingSkills),
		Percentage:     r.Result.Percentage,
		Tier:           string(r.Result.Tier),
		Message:        r.Message,
	}
}

func NewMeReadinessResponse(r usecase.UserReadiness) MeReadinessResponse {
	if !r.GoalSet {
		return MeReadinessResponse{GoalSet: false}
	}
	res := NewReadinessResponse(r.Report)
	return MeReadinessResponse{GoalSet: true, Readiness: &res}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
