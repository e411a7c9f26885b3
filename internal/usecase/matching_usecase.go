package usecase

import (
	"context"
	"math"
	"strings"
	"time"

	"skill-exchange/internal/domain/matching"
	"skill-exchange/internal/domain/profile"
	"skill-exchange/internal/domain/skill"
	"skill-exchange/internal/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	minRatingFloor   = 0.0
	minRatingCeiling = 5.0
)

// MatchFilters are optional and AND-combined. They are applied after ranking.
type MatchFilters struct {
	Category  *skill.Category
	MinRating *float64
	Location  string
}

func (f MatchFilters) validate() error {
	if f.Category != nil && !f.Category.Valid() {
		return ErrInvalidInput
	}
	if f.MinRating != nil {
		r := *f.MinRating
		if math.IsNaN(r) || r < minRatingFloor || r > minRatingCeiling {
			return ErrInvalidInput
		}
	}
	return nil
}

type MatchingUsecase interface {
	FindMatches(ctx context.Context, userID uuid.UUID, filters MatchFilters) ([]matching.MatchResult, error)
}

type Matching struct {
	store   profile.Store
	workers int
	now     func() time.Time
	logger  zerolog.Logger
}

func NewMatchingUsecase(store profile.Store, workers int, logger zerolog.Logger) *Matching {
	if workers <= 0 {
		workers = 1
	}
	return &Matching{store: store, workers: workers, now: time.Now, logger: logger}
}

func (u *Matching) FindMatches(ctx context.Context, userID uuid.UUID, filters MatchFilters) (out []matching.MatchResult, err error) {
	started := time.Now()
	candidates := -1
	defer func() {
		observe(metrics.QueryMatches, started, candidates, len(out), err)
	}()

	if err := filters.validate(); err != nil {
		return nil, err
	}

	self, err := loadRequester(ctx, u.store, userID)
	if err != nil {
		return nil, err
	}

	pool, err := u.store.ListActiveProfiles(ctx, userID, 0)
	if err != nil {
		return nil, err
	}
	candidates = len(pool)

	now := u.now()
	scores := make([]matching.Score, len(pool))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)
	for i := range pool {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			scores[i] = matching.Calculate(self, pool[i], now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out = make([]matching.MatchResult, 0, len(pool))
	for i, c := range pool {
		if c.ID == self.ID || !c.IsActive {
			continue
		}
		if scores[i].Points <= 0 {
			continue
		}
		out = append(out, matching.NewMatchResult(c, scores[i]))
	}

	matching.SortMatches(out)
	out = applyMatchFilters(out, filters)

	u.logger.Debug().
		Str("user_id", userID.String()).
		Int("candidates", candidates).
		Int("results", len(out)).
		Dur("took", time.Since(started)).
		Msg("matches computed")

	return out, nil
}

func applyMatchFilters(in []matching.MatchResult, f MatchFilters) []matching.MatchResult {
	loc := strings.TrimSpace(f.Location)
	if f.Category == nil && f.MinRating == nil && loc == "" {
		return in
	}

	out := make([]matching.MatchResult, 0, len(in))
	for _, r := range in {
		if f.Category != nil && !r.HasComplementaryCategory(*f.Category) {
			continue
		}
		if f.MinRating != nil && r.Candidate.Rating < *f.MinRating {
			continue
		}
		if loc != "" && !locationMatches(r.Candidate.Location, loc) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func locationMatches(l *profile.Location, want string) bool {
	if l == nil {
		return false
	}
	return strings.EqualFold(l.City, want) || strings.EqualFold(l.Country, want)
}
