package usecase

import (
	"context"
	"errors"

	"roadtrip-career/internal/domain/career"

	"github.com/google/uuid"
)

type DashboardView struct {
	DisplayName string
	Email       string
	SkillCount  int
	GoalSet     bool

	// Set only when GoalSet is true.
	Role               career.Role
	RequiredSkillCount int
	Readiness          ReadinessReport
}

type DashboardUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (DashboardView, error)
}

type Dashboard struct {
	profiles  ProfileReader
	readiness ReadinessUsecase
}

func NewDashboardUsecase(profiles ProfileReader, readiness ReadinessUsecase) *Dashboard {
	return &Dashboard{profiles: profiles, readiness: readiness}
}

func (u *Dashboard) Get(ctx context.Context, userID uuid.UUID) (DashboardView, error) {
	p, err := readProfile(ctx, u.profiles, userID)
	if err != nil {
		return DashboardView{}, err
	}

	view := DashboardView{
		DisplayName: p.DisplayName(),
		Email:       p.Email,
		SkillCount:  len(p.Skills),
	}

	snap, ok := SnapshotFromProfile(p)
	if !ok {
		return view, nil
	}
	report, err := u.readiness.Compute(ctx, snap)
	if err != nil {
		if errors.Is(err, ErrRoleNotFound) {
			return view, nil
		}
		return DashboardView{}, err
	}

	view.GoalSet = true
	view.Role = report.Role
	view.RequiredSkillCount = len(report.Result.RequiredSkills)
	view.Readiness = report
	return view, nil
}
