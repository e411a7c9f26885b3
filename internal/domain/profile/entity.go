package profile

import (
	"time"

	"skill-exchange/internal/domain/skill"

	"github.com/google/uuid"
)

type Location struct {
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

// Profile is a read-only snapshot of a user's exchange-relevant attributes.
// Nil optional fields are absent: no location, rating 0, never active.
type Profile struct {
	ID            uuid.UUID
	Name          string
	Avatar        string
	Bio           string
	SkillsOffered []skill.Skill
	SkillsWanted  []skill.Skill
	Location      *Location
	Rating        *float64
	TotalReviews  int
	LastActiveAt  *time.Time
	IsActive      bool
}

func (p Profile) RatingValue() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

func (p Profile) City() string {
	if p.Location == nil {
		return ""
	}
	return p.Location.City
}

func (p Profile) Country() string {
	if p.Location == nil {
		return ""
	}
	return p.Location.Country
}

func (p Profile) Summary() Summary {
	return Summary{
		ID:           p.ID,
		Name:         p.Name,
		Avatar:       p.Avatar,
		Bio:          p.Bio,
		Location:     p.Location,
		Rating:       p.RatingValue(),
		TotalReviews: p.TotalReviews,
		LastActiveAt: p.LastActiveAt,
	}
}

// Summary is the candidate view embedded in engine results.
type Summary struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Avatar       string     `json:"avatar,omitempty"`
	Bio          string     `json:"bio,omitempty"`
	Location     *Location  `json:"location,omitempty"`
	Rating       float64    `json:"rating"`
	TotalReviews int        `json:"total_reviews"`
	LastActiveAt *time.Time `json:"last_active_at,omitempty"`
}

type Owner struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Rating float64   `json:"rating"`
}

// OwnedSkill is an offered skill joined with a summary of its owner.
type OwnedSkill struct {
	Skill skill.Skill
	Owner Owner
}
