package dto

import "roadtrip-career/internal/usecase"

type DashboardResponse struct {
	DisplayName        string       `json:"display_name"`
	Email              string       `json:"email"`
	SkillCount         int          `json:"skill_count"`
	GoalSet            bool         `json:"goal_set"`
	Role               *RoleSummary `json:"role"`
	RequiredSkillCount int          `json:"required_skill_count"`
	Percentage         int          `json:"percentage"`
	Tier               string       `json:"tier,omitempty"`
	Message            string       `json:"message,omitempty"`
}

func NewDashboardResponse(v usecase.DashboardView) DashboardResponse {
	res := DashboardResponse{
		DisplayName: v.DisplayName,
		Email:       v.Email,
		SkillCount:  v.SkillCount,
		GoalSet:     v.GoalSet,
	}
	if !v.GoalSet {
		return res
	}
	role := NewRoleSummary(v.Role)
	res.Role = &role
	res.RequiredSkillCount = v.RequiredSkillCount
	res.Percentage = v.Readiness.Result.Percentage
	res.Tier = string(v.Readiness.Result.Tier)
	res.Message = v.Readiness.Message
	return res
}
