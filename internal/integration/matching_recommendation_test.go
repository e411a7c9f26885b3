package integration

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"skill-exchange/internal/config"
	"skill-exchange/internal/database/migration"
	dbpostgres "skill-exchange/internal/database/postgres"
	"skill-exchange/internal/database/seeder"
	"skill-exchange/internal/domain/matching"
	"skill-exchange/internal/domain/profile"
	"skill-exchange/internal/domain/skill"
	"skill-exchange/internal/pkg/logger"
	"skill-exchange/internal/repository"
	"skill-exchange/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegration_PostgresStore_EngineQueries(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	t.Cleanup(func() { _ = db.Close() })

	_, err := migration.Runner{}.Run(ctx, db.SQLDB())
	require.NoError(t, err, "run migrations")

	require.NoError(t, seeder.ProfilesSeeder{}.Run(ctx, db), "seed demo profiles")
	t.Cleanup(func() { cleanupDemo(t, db) })

	ids := demoIDs()
	maya := ids["Maya Chen"]
	store := repository.NewPostgresProfileRepository(db)
	log := logger.Nop()

	t.Run("store round trip", func(t *testing.T) {
		p, err := store.GetProfile(ctx, maya)
		require.NoError(t, err)
		assert.Equal(t, "Maya Chen", p.Name)
		assert.Equal(t, "Lisbon", p.City())
		assert.InDelta(t, 4.8, p.RatingValue(), 1e-9)
		assert.Len(t, p.SkillsOffered, 2)
		assert.Len(t, p.SkillsWanted, 2)
		require.NotNil(t, p.LastActiveAt)

		_, err = store.GetProfile(ctx, uuid.New())
		assert.ErrorIs(t, err, profile.ErrNotFound)
	})

	t.Run("active pool excludes requester and inactive users", func(t *testing.T) {
		pool, err := store.ListActiveProfiles(ctx, maya, 0)
		require.NoError(t, err)
		for _, p := range pool {
			assert.NotEqual(t, maya, p.ID)
			assert.NotEqual(t, ids["Lena Novak"], p.ID)
			assert.True(t, p.IsActive)
		}
		for i := 1; i < len(pool); i++ {
			assert.Less(t, pool[i-1].ID.String(), pool[i].ID.String())
		}
	})

	t.Run("matches", func(t *testing.T) {
		res, err := usecase.NewMatchingUsecase(store, 4, log).FindMatches(ctx, maya, usecase.MatchFilters{})
		require.NoError(t, err)

		scores := map[uuid.UUID]int{}
		for _, r := range res {
			scores[r.Candidate.ID] = r.Score
		}
		assert.Equal(t, 130, scores[ids["Rui Almeida"]])
		assert.Equal(t, 65, scores[ids["Omar Haddad"]])
		assert.Equal(t, 25, scores[ids["Aiko Tanaka"]])
		assert.Equal(t, 10, scores[ids["Sofia Rossi"]])
		assert.Equal(t, 5, scores[ids["Jonas Weber"]])
		_, lena := scores[ids["Lena Novak"]]
		assert.False(t, lena)

		music := skill.CategoryMusic
		filtered, err := usecase.NewMatchingUsecase(store, 4, log).FindMatches(ctx, maya, usecase.MatchFilters{Category: &music, Location: "portugal"})
		require.NoError(t, err)
		require.NotEmpty(t, filtered)
		assert.Equal(t, ids["Rui Almeida"], filtered[0].Candidate.ID)
	})

	t.Run("similar", func(t *testing.T) {
		res, err := usecase.NewSimilarityUsecase(store, 0, log).FindSimilarUsers(ctx, maya, 10)
		require.NoError(t, err)

		byID := map[uuid.UUID]matching.SimilarityResult{}
		for _, r := range res {
			byID[r.Candidate.ID] = r
		}
		aiko, ok := byID[ids["Aiko Tanaka"]]
		require.True(t, ok)
		assert.Equal(t, 2, aiko.SimilarityScore)
		_, rui := byID[ids["Rui Almeida"]]
		assert.False(t, rui)
	})

	t.Run("recommendations", func(t *testing.T) {
		res, err := usecase.NewRecommendationUsecase(store, log).GetSkillRecommendations(ctx, maya)
		require.NoError(t, err)
		require.NotEmpty(t, res)
		assert.LessOrEqual(t, len(res), matching.MaxRecommendations)

		known := map[string]bool{"go": true, "postgresql": true, "guitar": true, "portuguese": true}
		for i, r := range res {
			assert.False(t, known[skill.NameKey(r.Skill.Name)], r.Skill.Name)
			assert.NotEqual(t, maya, r.Owner.ID)
			if i > 0 {
				assert.GreaterOrEqual(t, res[i-1].Popularity, r.Popularity)
			}
		}
	})
}

func connectTestDB(t *testing.T, ctx context.Context) *dbpostgres.Pool {
	t.Helper()

	env := func(key string) string {
		if v := strings.TrimSpace(os.Getenv("SKILLEXCHANGE_TEST_DB_" + key)); v != "" {
			return v
		}
		return strings.TrimSpace(os.Getenv("DB_" + key))
	}

	dbcfg := config.DatabaseConfig{
		DBHost:     env("HOST"),
		DBPort:     env("PORT"),
		DBName:     env("NAME"),
		DBUser:     env("USER"),
		DBPassword: env("PASSWORD"),
		DBSSLMode:  env("SSL_MODE"),
	}
	if !dbcfg.Configured() {
		t.Skip("missing test DB env vars: set SKILLEXCHANGE_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}
	if dbcfg.DBSSLMode == "" {
		dbcfg.DBSSLMode = "disable"
	}

	db, err := dbpostgres.Connect(ctx, dbcfg, logger.Nop())
	require.NoError(t, err, "connect db")
	return db
}

func demoIDs() map[string]uuid.UUID {
	out := map[string]uuid.UUID{}
	for _, u := range seeder.DemoUsers() {
		out[u.Name] = u.ID()
	}
	return out
}

func cleanupDemo(t *testing.T, db *dbpostgres.Pool) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ids := make([]string, 0)
	for _, id := range demoIDs() {
		ids = append(ids, id.String())
	}
	if _, err := db.Exec(ctx, `DELETE FROM users WHERE id = ANY($1::uuid[])`, ids); err != nil {
		t.Logf("cleanup demo users: %v", err)
	}
}
