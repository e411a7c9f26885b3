package usecase

import (
	"context"
	"time"

	"skill-exchange/internal/domain/matching"
	"skill-exchange/internal/domain/profile"
	"skill-exchange/internal/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type RecommendationUsecase interface {
	GetSkillRecommendations(ctx context.Context, userID uuid.UUID) ([]matching.Recommendation, error)
}

type Recommendation struct {
	store  profile.Store
	logger zerolog.Logger
}

func NewRecommendationUsecase(store profile.Store, logger zerolog.Logger) *Recommendation {
	return &Recommendation{store: store, logger: logger}
}

func (u *Recommendation) GetSkillRecommendations(ctx context.Context, userID uuid.UUID) (out []matching.Recommendation, err error) {
	started := time.Now()
	candidates := -1
	defer func() {
		observe(metrics.QueryRecommendations, started, candidates, len(out), err)
	}()

	self, err := loadRequester(ctx, u.store, userID)
	if err != nil {
		return nil, err
	}

	offered, err := u.store.ListOfferedSkills(ctx, userID)
	if err != nil {
		return nil, err
	}
	candidates = len(offered)

	out = matching.RankRecommendations(self, offered)

	u.logger.Debug().
		Str("user_id", userID.String()).
		Int("candidates", candidates).
		Int("results", len(out)).
		Msg("skill recommendations computed")

	return out, nil
}
