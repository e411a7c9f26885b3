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

const (
	DefaultSimilarLimit = 10
	MaxSimilarLimit     = 50
)

type SimilarityUsecase interface {
	FindSimilarUsers(ctx context.Context, userID uuid.UUID, limit int) ([]matching.SimilarityResult, error)
}

// Similarity ranks users by shared offered-skill categories.
//
// poolFactor trades completeness for a fixed amount of work: only the first
// limit*poolFactor active profiles (by id) are considered, so the result is the
// top-K of that sample rather than of the whole population. A poolFactor of 0
// scans every active profile.
type Similarity struct {
	store      profile.Store
	poolFactor int
	logger     zerolog.Logger
}

func NewSimilarityUsecase(store profile.Store, poolFactor int, logger zerolog.Logger) *Similarity {
	if poolFactor < 0 {
		poolFactor = 0
	}
	return &Similarity{store: store, poolFactor: poolFactor, logger: logger}
}

func (u *Similarity) FindSimilarUsers(ctx context.Context, userID uuid.UUID, limit int) (out []matching.SimilarityResult, err error) {
	started := time.Now()
	candidates := -1
	defer func() {
		observe(metrics.QuerySimilar, started, candidates, len(out), err)
	}()

	if limit <= 0 {
		limit = DefaultSimilarLimit
	}
	if limit > MaxSimilarLimit {
		limit = MaxSimilarLimit
	}

	self, err := loadRequester(ctx, u.store, userID)
	if err != nil {
		return nil, err
	}
	if len(self.SkillsOffered) == 0 {
		return []matching.SimilarityResult{}, nil
	}

	pool, err := u.store.ListActiveProfiles(ctx, userID, u.poolLimit(limit))
	if err != nil {
		return nil, err
	}
	candidates = len(pool)

	out = matching.RankSimilar(self, activeOthers(self.ID, pool), limit)

	u.logger.Debug().
		Str("user_id", userID.String()).
		Int("candidates", candidates).
		Int("results", len(out)).
		Msg("similar users computed")

	return out, nil
}

func (u *Similarity) poolLimit(limit int) int {
	if u.poolFactor == 0 {
		return 0
	}
	return limit * u.poolFactor
}

func activeOthers(selfID uuid.UUID, pool []profile.Profile) []profile.Profile {
	out := make([]profile.Profile, 0, len(pool))
	for _, p := range pool {
		if p.ID == selfID || !p.IsActive {
			continue
		}
		out = append(out, p)
	}
	return out
}
