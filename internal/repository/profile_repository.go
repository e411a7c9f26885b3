package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"skill-exchange/internal/database"
	"skill-exchange/internal/domain/profile"
	"skill-exchange/internal/domain/skill"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const profileColumns = `u.id, u.name, COALESCE(u.avatar, ''), COALESCE(u.bio, ''),
	COALESCE(u.city, ''), COALESCE(u.country, ''), u.rating::float8, u.total_reviews,
	u.last_active_at, u.is_active`

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetProfile(ctx context.Context, id uuid.UUID) (profile.Profile, error) {
	row := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM users u WHERE u.id = $1`, id)

	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}

	byOwner, err := r.skillsByOwner(ctx, []uuid.UUID{p.ID})
	if err != nil {
		return profile.Profile{}, err
	}
	attachSkills(&p, byOwner[p.ID])
	return p, nil
}

func (r *PostgresProfileRepository) ListActiveProfiles(ctx context.Context, excludeID uuid.UUID, limit int) ([]profile.Profile, error) {
	query := `SELECT ` + profileColumns + `
		 FROM users u
		 WHERE u.is_active = TRUE AND u.id <> $1
		 ORDER BY u.id ASC`
	args := []any{excludeID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, 0, len(out))
	for _, p := range out {
		ids = append(ids, p.ID)
	}
	byOwner, err := r.skillsByOwner(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		attachSkills(&out[i], byOwner[out[i].ID])
	}
	return out, nil
}

func (r *PostgresProfileRepository) ListOfferedSkills(ctx context.Context, excludeOwnerID uuid.UUID) ([]profile.OwnedSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.id, s.owner_id, s.name, s.category, s.level, s.type, s.popularity,
		        u.name, COALESCE(u.rating::float8, 0)
		 FROM skills s
		 JOIN users u ON u.id = s.owner_id
		 WHERE s.type = 'offer' AND s.owner_id <> $1
		 ORDER BY s.popularity DESC, s.name ASC, s.id ASC`,
		excludeOwnerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.OwnedSkill, 0)
	for rows.Next() {
		var (
			it                      profile.OwnedSkill
			category, level, skType string
		)
		if err := rows.Scan(
			&it.Skill.ID, &it.Skill.OwnerID, &it.Skill.Name, &category, &level, &skType, &it.Skill.Popularity,
			&it.Owner.Name, &it.Owner.Rating,
		); err != nil {
			return nil, err
		}
		if err := decodeSkillEnums(&it.Skill, category, level, skType); err != nil {
			return nil, err
		}
		it.Owner.ID = it.Skill.OwnerID
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProfileRepository) skillsByOwner(ctx context.Context, ownerIDs []uuid.UUID) (map[uuid.UUID][]skill.Skill, error) {
	ids := make([]string, 0, len(ownerIDs))
	for _, id := range ownerIDs {
		ids = append(ids, id.String())
	}

	rows, err := r.db.Query(ctx,
		`SELECT s.id, s.owner_id, s.name, s.category, s.level, s.type, s.popularity
		 FROM skills s
		 WHERE s.owner_id = ANY($1::uuid[])
		 ORDER BY s.owner_id ASC, s.created_at ASC, s.id ASC`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]skill.Skill, len(ownerIDs))
	for rows.Next() {
		var (
			s                       skill.Skill
			category, level, skType string
		)
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.Name, &category, &level, &skType, &s.Popularity); err != nil {
			return nil, err
		}
		if err := decodeSkillEnums(&s, category, level, skType); err != nil {
			return nil, err
		}
		out[s.OwnerID] = append(out[s.OwnerID], s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanProfile(row database.Row) (profile.Profile, error) {
	var (
		p             profile.Profile
		city, country string
		rating        *float64
		lastActive    *time.Time
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Avatar, &p.Bio, &city, &country, &rating, &p.TotalReviews, &lastActive, &p.IsActive); err != nil {
		return profile.Profile{}, err
	}
	if city != "" || country != "" {
		p.Location = &profile.Location{City: city, Country: country}
	}
	p.Rating = rating
	p.LastActiveAt = lastActive
	return p, nil
}

func attachSkills(p *profile.Profile, skills []skill.Skill) {
	p.SkillsOffered = make([]skill.Skill, 0)
	p.SkillsWanted = make([]skill.Skill, 0)
	for _, s := range skills {
		switch s.Type {
		case skill.TypeOffer:
			p.SkillsOffered = append(p.SkillsOffered, s)
		case skill.TypeWant:
			p.SkillsWanted = append(p.SkillsWanted, s)
		}
	}
}

func decodeSkillEnums(s *skill.Skill, category, level, skType string) error {
	var err error
	if s.Category, err = skill.ParseCategory(category); err != nil {
		return fmt.Errorf("skill %s: %w", s.ID, err)
	}
	if s.Level, err = skill.ParseLevel(level); err != nil {
		return fmt.Errorf("skill %s: %w", s.ID, err)
	}
	if s.Type, err = skill.ParseType(skType); err != nil {
		return fmt.Errorf("skill %s: %w", s.ID, err)
	}
	return nil
}
