package usecase

import (
	"context"

	"roadtrip-career/internal/domain/career"
)

type CareerUsecase interface {
	ListRoles(ctx context.Context) []career.Role
	GetRole(ctx context.Context, roleID string) (career.Role, error)
	ListSkills(ctx context.Context) []string
}

type Career struct {
	catalog *career.Catalog
}

func NewCareerUsecase(catalog *career.Catalog) *Career {
	if catalog == nil {
		catalog = career.Default()
	}
	return &Career{catalog: catalog}
}

func (u *Career) ListRoles(context.Context) []career.Role {
	return u.catalog.ListRoles()
}

func (u *Career) GetRole(_ context.Context, roleID string) (career.Role, error) {
	role, ok := u.catalog.GetRole(roleID)
	if !ok {
		return career.Role{}, ErrRoleNotFound
	}
	return role, nil
}

func (u *Career) ListSkills(context.Context) []string {
	return u.catalog.Vocabulary()
}
