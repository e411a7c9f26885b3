package repository

import (
	"context"
	"strconv"
	"time"

	"skill-exchange/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	profileKeyPrefix       = "profiles:one:"
	activePoolKeyPrefix    = "profiles:active:"
	offeredSkillsKeyPrefix = "skills:offered:"

	ProfileCachePattern = "profiles:*"
	SkillsCachePattern  = "skills:*"
)

// JSONCache is the subset of the redis cache used by CachedProfileRepository.
type JSONCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// CachedProfileRepository is a read-through decorator over a profile.Store.
// Snapshots may be up to ttl old. Cache failures fall through to the wrapped
// store and never fail a read.
type CachedProfileRepository struct {
	next   profile.Store
	cache  JSONCache
	ttl    time.Duration
	logger zerolog.Logger
}

func NewCachedProfileRepository(next profile.Store, cache JSONCache, ttl time.Duration, logger zerolog.Logger) *CachedProfileRepository {
	return &CachedProfileRepository{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With().Str("component", "profile_cache").Logger(),
	}
}

func (r *CachedProfileRepository) GetProfile(ctx context.Context, id uuid.UUID) (profile.Profile, error) {
	key := profileKeyPrefix + id.String()

	var cached profile.Profile
	if r.lookup(ctx, key, &cached) {
		return cached, nil
	}

	p, err := r.next.GetProfile(ctx, id)
	if err != nil {
		return profile.Profile{}, err
	}
	r.store(ctx, key, p)
	return p, nil
}

func (r *CachedProfileRepository) ListActiveProfiles(ctx context.Context, excludeID uuid.UUID, limit int) ([]profile.Profile, error) {
	key := activePoolKeyPrefix + excludeID.String() + ":" + strconv.Itoa(limit)

	var cached []profile.Profile
	if r.lookup(ctx, key, &cached) {
		return cached, nil
	}

	pool, err := r.next.ListActiveProfiles(ctx, excludeID, limit)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, pool)
	return pool, nil
}

func (r *CachedProfileRepository) ListOfferedSkills(ctx context.Context, excludeOwnerID uuid.UUID) ([]profile.OwnedSkill, error) {
	key := offeredSkillsKeyPrefix + excludeOwnerID.String()

	var cached []profile.OwnedSkill
	if r.lookup(ctx, key, &cached) {
		return cached, nil
	}

	skills, err := r.next.ListOfferedSkills(ctx, excludeOwnerID)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, skills)
	return skills, nil
}

// Invalidate drops every cached snapshot, e.g. after a seed run.
func (r *CachedProfileRepository) Invalidate(ctx context.Context) error {
	if err := r.cache.DeleteByPattern(ctx, ProfileCachePattern); err != nil {
		return err
	}
	return r.cache.DeleteByPattern(ctx, SkillsCachePattern)
}

func (r *CachedProfileRepository) lookup(ctx context.Context, key string, out any) bool {
	hit, err := r.cache.GetJSON(ctx, key, out)
	if err != nil {
		r.logger.Debug().Err(err).Str("key", key).Msg("cache read failed")
		return false
	}
	if hit {
		r.logger.Debug().Str("key", key).Msg("cache HIT")
	}
	return hit
}

func (r *CachedProfileRepository) store(ctx context.Context, key string, value any) {
	if err := r.cache.SetJSON(ctx, key, value, r.ttl); err != nil {
		r.logger.Debug().Err(err).Str("key", key).Msg("cache write failed")
	}
}
