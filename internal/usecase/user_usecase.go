package usecase

import (
	"context"

	"roadtrip-career/internal/logger"
	ucuser "roadtrip-career/internal/usecase/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReadinessNotifier receives the fresh readiness of a user after a profile
// save. Implementations must not block.
type ReadinessNotifier interface {
	NotifyReadiness(userID uuid.UUID, report ReadinessReport)
}

type UserUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (ucuser.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ucuser.UpdateProfileInput) (ucuser.Profile, error)
}

type User struct {
	svc       *ucuser.Service
	readiness ReadinessUsecase
	notifier  ReadinessNotifier
	logger    *zap.Logger
}

func NewUserUsecase(svc *ucuser.Service, readiness ReadinessUsecase, notifier ReadinessNotifier, log *zap.Logger) *User {
	return &User{svc: svc, readiness: readiness, notifier: notifier, logger: logger.OrNop(log)}
}

func (u *User) GetProfile(ctx context.Context, userID uuid.UUID) (ucuser.Profile, error) {
	return u.svc.GetProfile(ctx, userID)
}

func (u *User) UpdateProfile(ctx context.Context, userID uuid.UUID, in ucuser.UpdateProfileInput) (ucuser.Profile, error) {
	p, err := u.svc.UpdateProfile(ctx, userID, in)
	if err != nil {
		return ucuser.Profile{}, err
	}
	u.notify(ctx, p)
	return p, nil
}

func (u *User) notify(ctx context.Context, p ucuser.Profile) {
	if u.notifier == nil || u.readiness == nil {
		return
	}
	snap, ok := SnapshotFromProfile(p)
	if !ok {
		return
	}
	report, err := u.readiness.Compute(ctx, snap)
	if err != nil {
		u.logger.Warn("readiness push skipped", zap.String(logger.FieldUserID, p.UserID.String()), zap.Error(err))
		return
	}
	u.notifier.NotifyReadiness(p.UserID, report)
}
