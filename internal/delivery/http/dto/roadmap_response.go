package dto

import (
	"roadtrip-career/internal/domain/roadmap"
	"roadtrip-career/internal/usecase"
)

type StageResponse struct {
	Period        string `json:"period"`
	Task          string `json:"task"`
	Category      string `json:"category"`
	CategoryLabel string `json:"category_label"`
}

type CategoryLegend struct {
	Category string `json:"category"`
	Label    string `json:"label"`
}

type RoadmapResponse struct {
	Role   RoleSummary      `json:"role"`
	Stages []StageResponse  `json:"stages"`
	Legend []CategoryLegend `json:"legend"`
}

type MeRoadmapResponse struct {
	GoalSet bool             `json:"goal_set"`
	Roadmap *RoadmapResponse `json:"roadmap"`
}

func NewRoadmapResponse(v usecase.RoadmapView) RoadmapResponse {
	stages := make([]StageResponse, 0, len(v.Stages))
	for _, st := range v.Stages {
		stages = append(stages, StageResponse{
			Period:        st.Period,
			Task:          st.Task,
			Category:      string(st.Category),
			CategoryLabel: st.Category.Label(),
		})
	}
	return RoadmapResponse{
		Role:   NewRoleSummary(v.Role),
		Stages: stages,
		Legend: NewCategoryLegend(),
	}
}

func NewMeRoadmapResponse(r usecase.UserRoadmap) MeRoadmapResponse {
	if !r.GoalSet {
		return MeRoadmapResponse{GoalSet: false}
	}
	res := NewRoadmapResponse(r.Roadmap)
	return MeRoadmapResponse{GoalSet: true, Roadmap: &res}
}

func NewCategoryLegend() []CategoryLegend {
	cats := roadmap.Categories()
	out := make([]CategoryLegend, 0, len(cats))
	for _, c := range cats {
		out = append(out, CategoryLegend{Category: string(c), Label: c.Label()})
	}
	return out
}
