package app

import (
	"context"
	"errors"
	"time"

	"roadtrip-career/internal/config"
	"roadtrip-career/internal/database"
	dbpostgres "roadtrip-career/internal/database/postgres"
	"roadtrip-career/internal/domain/career"
	"roadtrip-career/internal/domain/roadmap"
	"roadtrip-career/internal/infrastructure/cache"
	"roadtrip-career/internal/infrastructure/persistence/postgres"
	"roadtrip-career/internal/logger"
	"roadtrip-career/internal/pkg/jwt"
	"roadtrip-career/internal/usecase"
	ucauth "roadtrip-career/internal/usecase/auth"
	ucuser "roadtrip-career/internal/usecase/user"
	"roadtrip-career/internal/ws"

	"go.uber.org/zap"
)

// Container owns every long-lived dependency of the server.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	JWT    jwt.Service
	Hub    *ws.Hub

	Catalog  *career.Catalog
	Roadmaps *roadmap.Selector

	Auth      usecase.AuthUsecase
	Users     usecase.UserUsecase
	Careers   usecase.CareerUsecase
	Readiness usecase.ReadinessUsecase
	Roadmap   usecase.RoadmapUsecase
	Dashboard usecase.DashboardUsecase
}

func NewContainer(ctx context.Context, cfg config.Config, log *zap.Logger) (*Container, error) {
	log = logger.OrNop(log)

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, cfg.Database)
	if err != nil {
		return nil, err
	}

	c := Wire(cfg, log, db, cache.NewRedis(ctx, cfg.Redis, log))
	return c, nil
}

// Wire builds the container around already-opened stores.
func Wire(cfg config.Config, log *zap.Logger, db database.DB, redisCache *cache.Redis) *Container {
	log = logger.OrNop(log)
	if redisCache == nil {
		redisCache = cache.Disabled(log)
	}

	catalog := career.Default()
	selector := roadmap.Default()
	jwtSvc := jwt.NewHMACService(cfg.JWT)
	hub := ws.NewHub(log)

	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)

	profileSvc := ucuser.NewService(userRepo, profileRepo, catalog)
	authSvc := ucauth.NewService(userRepo, profileRepo)

	readinessUC := usecase.NewReadinessUsecase(catalog, profileSvc, redisCache, log)

	return &Container{
		Config:   cfg,
		Logger:   log,
		DB:       db,
		Cache:    redisCache,
		JWT:      jwtSvc,
		Hub:      hub,
		Catalog:  catalog,
		Roadmaps: selector,

		Auth:      usecase.NewAuthUsecase(authSvc, userRepo, jwtSvc),
		Users:     usecase.NewUserUsecase(profileSvc, readinessUC, ws.NewNotifier(hub), log),
		Careers:   usecase.NewCareerUsecase(catalog),
		Readiness: readinessUC,
		Roadmap:   usecase.NewRoadmapUsecase(catalog, selector, profileSvc),
		Dashboard: usecase.NewDashboardUsecase(profileSvc, readinessUC),
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	c.Hub.Stop()

	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
