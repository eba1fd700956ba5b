package dto

import "roadtrip-career/internal/domain/career"

type RoleResponse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Icon           string   `json:"icon"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
}

type RoleSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

func NewRoleResponse(r career.Role) RoleResponse {
	skills := r.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	return RoleResponse{
		ID:             r.ID,
		Title:          r.Title,
		Icon:           r.Icon,
		Description:    r.Description,
		RequiredSkills: skills,
	}
}

func NewRoleSummary(r career.Role) RoleSummary {
	return RoleSummary{ID: r.ID, Title: r.Title, Icon: r.Icon}
}

func NewRoleList(roles []career.Role) []RoleResponse {
	out := make([]RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, NewRoleResponse(r))
	}
	return out
}
