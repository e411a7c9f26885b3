package usecase

import (
	"context"
	"testing"

	"skill-exchange/internal/domain/profile"
	"skill-exchange/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNilRequesterIsNotFound(t *testing.T) {
	_, store := matchingFixture()
	ctx := context.Background()

	_, err := newTestMatching(store).FindMatches(ctx, uuid.Nil, MatchFilters{})
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, err, profile.ErrNotFound)

	_, err = NewSimilarityUsecase(store, 2, logger.Nop()).FindSimilarUsers(ctx, uuid.Nil, 10)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = NewRecommendationUsecase(store, logger.Nop()).GetSkillRecommendations(ctx, uuid.Nil)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
