package seeder

import (
	"context"
	"fmt"
	"time"

	"skill-exchange/internal/database"

	"github.com/rs/zerolog"
)

// Seeder writes one slice of fixture data. Seeders must be safe to re-run.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

type Runner struct {
	Seeders []Seeder
	Logger  zerolog.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		started := time.Now()
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		r.Logger.Info().Str("seeder", s.Name()).Dur("took", time.Since(started)).Msg("seeded")
	}
	return nil
}
