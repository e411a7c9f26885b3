package usecase

import (
	"context"
	"errors"
	"fmt"

	"skill-exchange/internal/domain/profile"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errors.New("User not found")
	ErrInvalidInput = errors.New("invalid input")
)

// loadRequester resolves the querying user. A missing profile is reported as
// ErrUserNotFound, including the nil id; any other store failure is returned
// as is.
func loadRequester(ctx context.Context, store profile.Store, userID uuid.UUID) (profile.Profile, error) {
	if userID == uuid.Nil {
		return profile.Profile{}, fmt.Errorf("%w: %w", ErrUserNotFound, profile.ErrNotFound)
	}
	p, err := store.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.Profile{}, fmt.Errorf("%w: %w", ErrUserNotFound, err)
		}
		return profile.Profile{}, err
	}
	return p, nil
}
