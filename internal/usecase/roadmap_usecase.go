package usecase

import (
	"context"
	"errors"

	"roadtrip-career/internal/domain/career"
	"roadtrip-career/internal/domain/roadmap"

	"github.com/google/uuid"
)

type RoadmapView struct {
	Role   career.Role
	Stages []roadmap.Stage
}

type UserRoadmap struct {
	GoalSet bool
	Roadmap RoadmapView
}

type RoadmapUsecase interface {
	ForRole(ctx context.Context, roleID string) (RoadmapView, error)
	ForUser(ctx context.Context, userID uuid.UUID) (UserRoadmap, error)
}

type Roadmap struct {
	catalog  *career.Catalog
	selector *roadmap.Selector
	profiles ProfileReader
}

func NewRoadmapUsecase(catalog *career.Catalog, selector *roadmap.Selector, profiles ProfileReader) *Roadmap {
	if catalog == nil {
		catalog = career.Default()
	}
	if selector == nil {
		selector = roadmap.Default()
	}
	return &Roadmap{catalog: catalog, selector: selector, profiles: profiles}
}

// ForRole returns ErrRoleNotFound for ids outside the catalog and
// ErrRoadmapNotFound for catalog roles without a roadmap. A defined but
// empty roadmap is returned as zero stages.
func (u *Roadmap) ForRole(_ context.Context, roleID string) (RoadmapView, error) {
	role, ok := u.catalog.GetRole(roleID)
	if !ok {
		return RoadmapView{}, ErrRoleNotFound
	}
	stages, ok := u.selector.Get(role.ID)
	if !ok {
		return RoadmapView{}, ErrRoadmapNotFound
	}
	return RoadmapView{Role: role, Stages: stages}, nil
}

func (u *Roadmap) ForUser(ctx context.Context, userID uuid.UUID) (UserRoadmap, error) {
	p, err := readProfile(ctx, u.profiles, userID)
	if err != nil {
		return UserRoadmap{}, err
	}
	snap, ok := SnapshotFromProfile(p)
	if !ok {
		return UserRoadmap{GoalSet: false}, nil
	}

	view, err := u.ForRole(ctx, snap.RoleID)
	if err != nil {
		if errors.Is(err, ErrRoleNotFound) {
			return UserRoadmap{GoalSet: false}, nil
		}
		return UserRoadmap{}, err
	}
	return UserRoadmap{GoalSet: true, Roadmap: view}, nil
}
