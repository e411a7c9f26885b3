package seeder

import (
	"time"

	"skill-exchange/internal/domain/skill"

	"github.com/google/uuid"
)

// demoNamespace keeps demo ids stable across seed runs.
var demoNamespace = uuid.MustParse("6f1c3a52-8a0e-4b7e-9d43-2f5b7c1e0a11")

type DemoSkill struct {
	Name        string
	Category    skill.Category
	Level       skill.Level
	Type        skill.Type
	Popularity  int
	Description string
}

type DemoUser struct {
	Name         string
	Avatar       string
	Bio          string
	City         string
	Country      string
	Rating       *float64
	TotalReviews int
	// ActiveAgo is subtracted from the seed time; zero means never active.
	ActiveAgo time.Duration
	Inactive  bool
	Skills    []DemoSkill
}

func (u DemoUser) ID() uuid.UUID {
	return uuid.NewSHA1(demoNamespace, []byte("user:"+u.Name))
}

func (s DemoSkill) ID(owner uuid.UUID) uuid.UUID {
	return uuid.NewSHA1(demoNamespace, []byte("skill:"+owner.String()+":"+string(s.Type)+":"+s.Name))
}

func rating(v float64) *float64 { return &v }

func offer(name string, c skill.Category, l skill.Level, popularity int) DemoSkill {
	return DemoSkill{Name: name, Category: c, Level: l, Type: skill.TypeOffer, Popularity: popularity}
}

func want(name string, c skill.Category) DemoSkill {
	return DemoSkill{Name: name, Category: c, Level: skill.LevelBeginner, Type: skill.TypeWant}
}

// DemoUsers is a small population that exercises every scoring rule.
func DemoUsers() []DemoUser {
	return []DemoUser{
		{
			Name: "Maya Chen", Bio: "Backend developer learning to play guitar.",
			City: "Lisbon", Country: "Portugal", Rating: rating(4.8), TotalReviews: 23, ActiveAgo: 2 * time.Hour,
			Skills: []DemoSkill{
				offer("Go", skill.CategoryProgramming, skill.LevelExpert, 140),
				offer("PostgreSQL", skill.CategoryProgramming, skill.LevelAdvanced, 90),
				want("Guitar", skill.CategoryMusic),
				want("Portuguese", skill.CategoryLanguage),
			},
		},
		{
			Name: "Rui Almeida", Bio: "Session guitarist, wants to build his own website.",
			City: "Lisbon", Country: "Portugal", Rating: rating(4.6), TotalReviews: 41, ActiveAgo: 30 * time.Minute,
			Skills: []DemoSkill{
				offer("Guitar", skill.CategoryMusic, skill.LevelExpert, 75),
				offer("Portuguese", skill.CategoryLanguage, skill.LevelExpert, 60),
				want("Go", skill.CategoryProgramming),
			},
		},
		{
			Name: "Sofia Rossi", Bio: "Pastry chef and amateur photographer.",
			City: "Milan", Country: "Italy", Rating: rating(4.2), TotalReviews: 12, ActiveAgo: 72 * time.Hour,
			Skills: []DemoSkill{
				offer("Sourdough", skill.CategoryCooking, skill.LevelAdvanced, 80),
				offer("Italian", skill.CategoryLanguage, skill.LevelExpert, 55),
				want("Photography", skill.CategoryPhotography),
				want("Guitar", skill.CategoryMusic),
			},
		},
		{
			Name: "Jonas Weber", Bio: "Photographer who wants to learn to cook.",
			City: "Berlin", Country: "Germany", Rating: rating(3.9), TotalReviews: 7, ActiveAgo: 5 * time.Hour,
			Skills: []DemoSkill{
				offer("Photography", skill.CategoryPhotography, skill.LevelExpert, 110),
				offer("Video Editing", skill.CategoryVideoEditing, skill.LevelIntermediate, 35),
				want("Sourdough", skill.CategoryCooking),
			},
		},
		{
			Name: "Aiko Tanaka", Bio: "Illustrator and TypeScript hobbyist.",
			City: "Lisbon", Country: "Portugal", TotalReviews: 0, ActiveAgo: 48 * time.Hour,
			Skills: []DemoSkill{
				offer("Watercolor", skill.CategoryArt, skill.LevelAdvanced, 30),
				offer("TypeScript", skill.CategoryProgramming, skill.LevelIntermediate, 45),
				want("Portuguese", skill.CategoryLanguage),
			},
		},
		{
			Name: "Omar Haddad", Bio: "Marketing lead, runs on weekends.",
			City: "Porto", Country: "Portugal", Rating: rating(4.9), TotalReviews: 58, ActiveAgo: 1 * time.Hour,
			Skills: []DemoSkill{
				offer("SEO", skill.CategoryMarketing, skill.LevelExpert, 95),
				offer("Trail Running", skill.CategorySports, skill.LevelAdvanced, 20),
				want("Go", skill.CategoryProgramming),
			},
		},
		{
			Name: "Lena Novak", Bio: "Copywriter on a break.",
			City: "Prague", Country: "Czechia", Rating: rating(4.7), TotalReviews: 19,
			Inactive: true,
			Skills: []DemoSkill{
				offer("Copywriting", skill.CategoryWriting, skill.LevelExpert, 65),
				want("Guitar", skill.CategoryMusic),
			},
		},
	}
}
