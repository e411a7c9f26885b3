package repository

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"skill-exchange/internal/domain/profile"
	"skill-exchange/internal/domain/skill"
	"skill-exchange/internal/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCache struct {
	mu      sync.Mutex
	items   map[string][]byte
	failGet bool
}

func newMemCache() *memCache {
	return &memCache{items: map[string][]byte{}}
}

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failGet {
		return false, errors.New("redis down")
	}
	b, ok := c.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.items[key] = b
	c.mu.Unlock()
	return nil
}

func (c *memCache) DeleteByPattern(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.items {
		if strings.HasPrefix(k, prefix) {
			delete(c.items, k)
		}
	}
	return nil
}

type countingStore struct {
	p     profile.Profile
	pool  []profile.Profile
	calls int
	err   error
}

func (s *countingStore) GetProfile(_ context.Context, id uuid.UUID) (profile.Profile, error) {
	s.calls++
	if s.err != nil {
		return profile.Profile{}, s.err
	}
	if id != s.p.ID {
		return profile.Profile{}, profile.ErrNotFound
	}
	return s.p, nil
}

func (s *countingStore) ListActiveProfiles(context.Context, uuid.UUID, int) ([]profile.Profile, error) {
	s.calls++
	return s.pool, s.err
}

func (s *countingStore) ListOfferedSkills(context.Context, uuid.UUID) ([]profile.OwnedSkill, error) {
	s.calls++
	return nil, s.err
}

func sampleProfile() profile.Profile {
	rating := 4.7
	last := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	id := uuid.New()
	return profile.Profile{
		ID:       id,
		Name:     "Ana",
		Location: &profile.Location{City: "Porto", Country: "Portugal"},
		Rating:   &rating,
		SkillsOffered: []skill.Skill{{
			ID: uuid.New(), OwnerID: id, Name: "Surfing", Category: skill.CategorySports,
			Level: skill.LevelExpert, Type: skill.TypeOffer, Popularity: 3,
		}},
		SkillsWanted: []skill.Skill{},
		LastActiveAt: &last,
		IsActive:     true,
	}
}

func TestCachedProfileRepository_GetProfileReadsThrough(t *testing.T) {
	p := sampleProfile()
	next := &countingStore{p: p}
	repo := NewCachedProfileRepository(next, newMemCache(), time.Minute, logger.Nop())

	first, err := repo.GetProfile(context.Background(), p.ID)
	require.NoError(t, err)
	second, err := repo.GetProfile(context.Background(), p.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, next.calls)
	assert.Equal(t, first, second)
	assert.Equal(t, "Porto", second.City())
	assert.InDelta(t, 4.7, second.RatingValue(), 1e-9)
}

func TestCachedProfileRepository_NotFoundIsNotCached(t *testing.T) {
	next := &countingStore{p: sampleProfile()}
	repo := NewCachedProfileRepository(next, newMemCache(), time.Minute, logger.Nop())

	missing := uuid.New()
	_, err := repo.GetProfile(context.Background(), missing)
	assert.ErrorIs(t, err, profile.ErrNotFound)
	_, err = repo.GetProfile(context.Background(), missing)
	assert.ErrorIs(t, err, profile.ErrNotFound)
	assert.Equal(t, 2, next.calls)
}

func TestCachedProfileRepository_CacheFailureFallsThrough(t *testing.T) {
	p := sampleProfile()
	next := &countingStore{p: p}
	cache := newMemCache()
	cache.failGet = true
	repo := NewCachedProfileRepository(next, cache, time.Minute, logger.Nop())

	got, err := repo.GetProfile(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestCachedProfileRepository_StoreErrorPropagates(t *testing.T) {
	boom := errors.New("db down")
	repo := NewCachedProfileRepository(&countingStore{err: boom}, newMemCache(), time.Minute, logger.Nop())

	_, err := repo.ListActiveProfiles(context.Background(), uuid.New(), 0)
	assert.Same(t, boom, err)
}

func TestCachedProfileRepository_InvalidateDropsPools(t *testing.T) {
	p := sampleProfile()
	next := &countingStore{p: p, pool: []profile.Profile{p}}
	repo := NewCachedProfileRepository(next, newMemCache(), time.Minute, logger.Nop())
	exclude := uuid.New()

	_, err := repo.ListActiveProfiles(context.Background(), exclude, 0)
	require.NoError(t, err)
	_, err = repo.ListActiveProfiles(context.Background(), exclude, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, next.calls)

	require.NoError(t, repo.Invalidate(context.Background()))
	_, err = repo.ListActiveProfiles(context.Background(), exclude, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)
}
