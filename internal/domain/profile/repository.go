package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("profile not found")

// Store is the read side of profile persistence consumed by the matching engine.
type Store interface {
	GetProfile(ctx context.Context, id uuid.UUID) (Profile, error)
	// ListActiveProfiles returns active profiles other than excludeID, ordered by id.
	// A limit <= 0 returns the whole pool.
	ListActiveProfiles(ctx context.Context, excludeID uuid.UUID, limit int) ([]Profile, error)
	ListOfferedSkills(ctx context.Context, excludeOwnerID uuid.UUID) ([]OwnedSkill, error)
}
