package usecase

import (
	"context"
	"sort"
	"sync/atomic"

	"skill-exchange/internal/domain/profile"
	"skill-exchange/internal/domain/skill"

	"github.com/google/uuid"
)

type fakeStore struct {
	profiles []profile.Profile
	err      error

	listCalls atomic.Int32
	lastLimit atomic.Int32
}

func (f *fakeStore) GetProfile(_ context.Context, id uuid.UUID) (profile.Profile, error) {
	if f.err != nil {
		return profile.Profile{}, f.err
	}
	for _, p := range f.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return profile.Profile{}, profile.ErrNotFound
}

func (f *fakeStore) ListActiveProfiles(_ context.Context, excludeID uuid.UUID, limit int) ([]profile.Profile, error) {
	f.listCalls.Add(1)
	f.lastLimit.Store(int32(limit))
	if f.err != nil {
		return nil, f.err
	}
	out := make([]profile.Profile, 0, len(f.profiles))
	for _, p := range f.profiles {
		if p.ID == excludeID || !p.IsActive {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) ListOfferedSkills(_ context.Context, excludeOwnerID uuid.UUID) ([]profile.OwnedSkill, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]profile.OwnedSkill, 0)
	for _, p := range f.profiles {
		if p.ID == excludeOwnerID {
			continue
		}
		for _, s := range p.SkillsOffered {
			out = append(out, profile.OwnedSkill{
				Skill: s,
				Owner: profile.Owner{ID: p.ID, Name: p.Name, Rating: p.RatingValue()},
			})
		}
	}
	return out, nil
}

type profileBuilder struct {
	p profile.Profile
}

func newUser(name string) *profileBuilder {
	return &profileBuilder{p: profile.Profile{ID: uuid.New(), Name: name, IsActive: true}}
}

func (b *profileBuilder) offers(name string, c skill.Category) *profileBuilder {
	b.p.SkillsOffered = append(b.p.SkillsOffered, skill.Skill{
		ID: uuid.New(), OwnerID: b.p.ID, Name: name, Category: c, Level: skill.LevelIntermediate, Type: skill.TypeOffer,
	})
	return b
}

func (b *profileBuilder) offersPopular(name string, c skill.Category, popularity int) *profileBuilder {
	b.offers(name, c)
	b.p.SkillsOffered[len(b.p.SkillsOffered)-1].Popularity = popularity
	return b
}

func (b *profileBuilder) wants(name string, c skill.Category) *profileBuilder {
	b.p.SkillsWanted = append(b.p.SkillsWanted, skill.Skill{
		ID: uuid.New(), OwnerID: b.p.ID, Name: name, Category: c, Level: skill.LevelBeginner, Type: skill.TypeWant,
	})
	return b
}

func (b *profileBuilder) in(city, country string) *profileBuilder {
	b.p.Location = &profile.Location{City: city, Country: country}
	return b
}

func (b *profileBuilder) rated(r float64) *profileBuilder {
	b.p.Rating = &r
	return b
}

func (b *profileBuilder) inactive() *profileBuilder {
	b.p.IsActive = false
	return b
}

func (b *profileBuilder) build() profile.Profile {
	return b.p
}
