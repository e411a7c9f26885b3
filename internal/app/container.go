package app

import (
	"context"
	"errors"
	"time"

	"skill-exchange/internal/config"
	dbpostgres "skill-exchange/internal/database/postgres"
	"skill-exchange/internal/domain/profile"
	"skill-exchange/internal/infrastructure/cache"
	"skill-exchange/internal/pkg/jwt"
	"skill-exchange/internal/repository"
	"skill-exchange/internal/usecase"

	"github.com/rs/zerolog"
)

// Container owns the long-lived dependencies shared by the HTTP server and
// the CLI.
type Container struct {
	Config config.Config
	Logger zerolog.Logger

	DB    *dbpostgres.Pool
	Cache *cache.Redis
	Store profile.Store
	JWT   *jwt.HMACService

	Matching        *usecase.Matching
	Similarity      *usecase.Similarity
	Recommendations *usecase.Recommendation
}

func NewContainer(cfg config.Config, logger zerolog.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	redis := cache.NewRedis(cfg.Redis, logger)

	var store profile.Store = repository.NewPostgresProfileRepository(db)
	if redis.Enabled() {
		store = repository.NewCachedProfileRepository(store, redis, cfg.Matching.CacheTTL, logger)
	}

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  redis,
		Store:  store,
		JWT:    jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.Issuer, cfg.JWT.AccessTTL),

		Matching:        usecase.NewMatchingUsecase(store, cfg.Matching.Workers, logger),
		Similarity:      usecase.NewSimilarityUsecase(store, cfg.Matching.SimilarityPoolFactor, logger),
		Recommendations: usecase.NewRecommendationUsecase(store, logger),
	}, nil
}

// InvalidateCache drops cached profile snapshots when the store is cached.
func (c *Container) InvalidateCache(ctx context.Context) error {
	if cached, ok := c.Store.(*repository.CachedProfileRepository); ok {
		return cached.Invalidate(ctx)
	}
	return nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
