package seeder

import (
	"context"
	"time"

	"skill-exchange/internal/database"
)

// ProfilesSeeder upserts the demo users and their skills. Re-running it
// refreshes last_active_at relative to Now.
type ProfilesSeeder struct {
	Now func() time.Time
}

func (ProfilesSeeder) Name() string { return "profiles" }

func (s ProfilesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users", "id", "name", "city", "country", "rating", "last_active_at", "is_active"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "skills", "id", "owner_id", "name", "category", "level", "type", "popularity"); err != nil {
		return err
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	seededAt := now().UTC()

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, u := range DemoUsers() {
			var lastActive *time.Time
			if u.ActiveAgo > 0 {
				at := seededAt.Add(-u.ActiveAgo)
				lastActive = &at
			}

			uid := u.ID()
			if _, err := tx.Exec(ctx,
				`INSERT INTO users (id, name, avatar, bio, city, country, rating, total_reviews, last_active_at, is_active)
				 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9, $10)
				 ON CONFLICT (id) DO UPDATE SET
				   name = EXCLUDED.name, avatar = EXCLUDED.avatar, bio = EXCLUDED.bio,
				   city = EXCLUDED.city, country = EXCLUDED.country, rating = EXCLUDED.rating,
				   total_reviews = EXCLUDED.total_reviews, last_active_at = EXCLUDED.last_active_at,
				   is_active = EXCLUDED.is_active`,
				uid, u.Name, u.Avatar, u.Bio, u.City, u.Country, u.Rating, u.TotalReviews, lastActive, !u.Inactive,
			); err != nil {
				return err
			}

			for _, sk := range u.Skills {
				if _, err := tx.Exec(ctx,
					`INSERT INTO skills (id, owner_id, name, category, level, type, popularity, description)
					 VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''))
					 ON CONFLICT (id) DO UPDATE SET
					   category = EXCLUDED.category, level = EXCLUDED.level, popularity = EXCLUDED.popularity`,
					sk.ID(uid), uid, sk.Name, string(sk.Category), string(sk.Level), string(sk.Type), sk.Popularity, sk.Description,
				); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
