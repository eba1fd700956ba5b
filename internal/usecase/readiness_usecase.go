package usecase

import (
	"context"
	"errors"

	"roadtrip-career/internal/domain/career"
	"roadtrip-career/internal/domain/readiness"
	"roadtrip-career/internal/logger"
	ucuser "roadtrip-career/internal/usecase/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReadinessReport struct {
	Role    career.Role
	Result  readiness.Result
	Message string
}

// UserReadiness carries GoalSet=false, with a zero Report, for users who have
// not picked a career goal yet.
type UserReadiness struct {
	GoalSet bool
	Report  ReadinessReport
}

type ProfileReader interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (ucuser.Profile, error)
}

type ReadinessUsecase interface {
	Compute(ctx context.Context, snap CareerSnapshot) (ReadinessReport, error)
	ForUser(ctx context.Context, userID uuid.UUID) (UserReadiness, error)
}

type Readiness struct {
	catalog  *career.Catalog
	profiles ProfileReader
	cache    ReadinessCache
	logger   *zap.Logger
}

func NewReadinessUsecase(catalog *career.Catalog, profiles ProfileReader, cache ReadinessCache, log *zap.Logger) *Readiness {
	if catalog == nil {
		catalog = career.Default()
	}
	return &Readiness{catalog: catalog, profiles: profiles, cache: cache, logger: logger.OrNop(log)}
}

func (u *Readiness) Compute(ctx context.Context, snap CareerSnapshot) (ReadinessReport, error) {
	role, ok := u.catalog.GetRole(snap.RoleID)
	if !ok {
		return ReadinessReport{}, ErrRoleNotFound
	}
	skills := ucuser.NormalizeSkills(snap.Skills)

	key := ""
	if u.cache != nil {
		key = ReadinessCacheKey(CareerSnapshot{RoleID: role.ID, Skills: skills})
		var cached readiness.Result
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit && cached.RoleID == role.ID {
			u.logger.Debug("readiness cache hit", zap.String(logger.FieldRoleID, role.ID))
			return newReport(role, cached), nil
		}
		u.logger.Debug("readiness cache miss", zap.String(logger.FieldRoleID, role.ID))
	}

	res := readiness.Compute(role, skills)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, res, 0); err != nil {
			u.logger.Debug("readiness cache write failed", zap.Error(err))
		}
	}

	return newReport(role, res), nil
}

func (u *Readiness) ForUser(ctx context.Context, userID uuid.UUID) (UserReadiness, error) {
	p, err := readProfile(ctx, u.profiles, userID)
	if err != nil {
		return UserReadiness{}, err
	}
	snap, ok := SnapshotFromProfile(p)
	if !ok {
		return UserReadiness{GoalSet: false}, nil
	}

	report, err := u.Compute(ctx, snap)
	if err != nil {
		if errors.Is(err, ErrRoleNotFound) {
			// Stored goal no longer in the catalog; treat as unset.
			return UserReadiness{GoalSet: false}, nil
		}
		return UserReadiness{}, err
	}
	return UserReadiness{GoalSet: true, Report: report}, nil
}

func newReport(role career.Role, res readiness.Result) ReadinessReport {
	return ReadinessReport{Role: role, Result: res, Message: res.Tier.Message()}
}

func readProfile(ctx context.Context, profiles ProfileReader, userID uuid.UUID) (ucuser.Profile, error) {
	if profiles == nil {
		return ucuser.Profile{}, ErrInternal
	}
	p, err := profiles.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, ucuser.ErrNotFound) {
			return ucuser.Profile{}, ErrUserNotFound
		}
		return ucuser.Profile{}, ErrInternal
	}
	return p, nil
}
