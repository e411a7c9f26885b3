package matching

import (
	"testing"
	"time"

	"skill-exchange/internal/domain/profile"
	"skill-exchange/internal/domain/skill"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var evalTime = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func offer(name string, c skill.Category) skill.Skill {
	return skill.Skill{ID: uuid.New(), Name: name, Category: c, Level: skill.LevelBeginner, Type: skill.TypeOffer}
}

func want(name string, c skill.Category) skill.Skill {
	return skill.Skill{ID: uuid.New(), Name: name, Category: c, Level: skill.LevelBeginner, Type: skill.TypeWant}
}

func newProfile(offered []skill.Skill, wanted []skill.Skill) profile.Profile {
	return profile.Profile{ID: uuid.New(), Name: "user", SkillsOffered: offered, SkillsWanted: wanted, IsActive: true}
}

func ptr[T any](v T) *T { return &v }

func TestCalculate_NoOverlapScoresZero(t *testing.T) {
	a := newProfile([]skill.Skill{offer("Python", skill.CategoryProgramming)}, []skill.Skill{want("Guitar", skill.CategoryMusic)})
	a.Location = &profile.Location{City: "Berlin", Country: "Germany"}
	a.Rating = ptr(2.0)

	b := newProfile([]skill.Skill{offer("Cooking", skill.CategoryCooking)}, []skill.Skill{want("Spanish", skill.CategoryLanguage)})
	b.Location = &profile.Location{City: "Lisbon", Country: "Portugal"}
	b.Rating = ptr(3.0)
	b.LastActiveAt = ptr(evalTime.Add(-72 * time.Hour))

	got := Calculate(a, b, evalTime)
	assert.Equal(t, 0, got.Points)
	assert.Empty(t, got.Reasons)
	assert.Empty(t, got.ComplementarySkills)
	assert.Empty(t, got.CommonInterests)
}

func TestCalculate_Bidirectional(t *testing.T) {
	a := newProfile([]skill.Skill{offer("Python", skill.CategoryProgramming)}, []skill.Skill{want("Guitar", skill.CategoryMusic)})
	b := newProfile([]skill.Skill{offer("Guitar", skill.CategoryMusic)}, []skill.Skill{want("Python", skill.CategoryProgramming)})

	got := Calculate(a, b, evalTime)
	require.Equal(t, 100, got.Points)
	assert.Equal(t, []string{ReasonBidirectional}, got.Reasons)
	assert.Equal(t, []ComplementarySkill{
		{Name: "Guitar", Category: skill.CategoryMusic, Direction: DirectionTheyOffer},
		{Name: "Python", Category: skill.CategoryProgramming, Direction: DirectionYouOffer},
	}, got.ComplementarySkills)
}

func TestCalculate_BidirectionalUsesMinimumOfBothSides(t *testing.T) {
	a := newProfile(
		[]skill.Skill{offer("Python", skill.CategoryProgramming)},
		[]skill.Skill{want("Guitar", skill.CategoryMusic), want("Piano", skill.CategoryMusic)},
	)
	b := newProfile(
		[]skill.Skill{offer("guitar", skill.CategoryMusic), offer("PIANO", skill.CategoryMusic)},
		[]skill.Skill{want("python", skill.CategoryProgramming)},
	)

	got := Calculate(a, b, evalTime)
	assert.Equal(t, 100, got.Points)
	assert.Len(t, got.ComplementarySkills, 3)
}

func TestCalculate_OneDirectionalTheyOffer(t *testing.T) {
	a := newProfile(nil, []skill.Skill{want("Spanish", skill.CategoryLanguage)})
	b := newProfile([]skill.Skill{offer("Spanish", skill.CategoryLanguage)}, nil)

	got := Calculate(a, b, evalTime)
	assert.Equal(t, 50, got.Points)
	require.Len(t, got.Reasons, 1)
	assert.Contains(t, got.Reasons[0], "One-way match")
	assert.Equal(t, []ComplementarySkill{{Name: "Spanish", Category: skill.CategoryLanguage, Direction: DirectionTheyOffer}}, got.ComplementarySkills)
}

func TestCalculate_OneDirectionalYouOffer(t *testing.T) {
	a := newProfile([]skill.Skill{offer("Photoshop", skill.CategoryDesign), offer("Figma", skill.CategoryDesign)}, nil)
	b := newProfile(nil, []skill.Skill{want("photoshop", skill.CategoryDesign), want("figma", skill.CategoryDesign)})

	got := Calculate(a, b, evalTime)
	assert.Equal(t, 100, got.Points)
	assert.Equal(t, []string{ReasonYouTeach}, got.Reasons)
	for _, cs := range got.ComplementarySkills {
		assert.Equal(t, DirectionYouOffer, cs.Direction)
	}
}

func TestCalculate_CommonInterests(t *testing.T) {
	a := newProfile([]skill.Skill{offer("javascript", skill.CategoryProgramming)}, []skill.Skill{want("Chess", skill.CategoryOther)})
	b := newProfile([]skill.Skill{offer("JavaScript", skill.CategoryProgramming)}, []skill.Skill{want("chess", skill.CategoryOther)})

	got := Calculate(a, b, evalTime)
	assert.Equal(t, 20, got.Points)
	assert.Equal(t, []CommonInterest{
		{Name: "javascript", Type: skill.TypeOffer},
		{Name: "Chess", Type: skill.TypeWant},
	}, got.CommonInterests)
	assert.Equal(t, "1 common skill(s) you both offer • 1 common skill(s) you both want to learn", got.Reason())
}

func TestCalculate_LocationBonusIsCaseInsensitive(t *testing.T) {
	a := newProfile(nil, nil)
	a.Location = &profile.Location{City: "Berlin"}
	b := newProfile(nil, nil)
	b.Location = &profile.Location{City: "berlin"}

	got := Calculate(a, b, evalTime)
	assert.Equal(t, SameCityPoints, got.Points)
	assert.Equal(t, []string{ReasonSameLocation}, got.Reasons)
}

func TestCalculate_EmptyCityNeverMatches(t *testing.T) {
	a := newProfile(nil, nil)
	a.Location = &profile.Location{Country: "Germany"}
	b := newProfile(nil, nil)
	b.Location = &profile.Location{Country: "Germany"}

	assert.Equal(t, 0, Calculate(a, b, evalTime).Points)
}

func TestCalculate_RecencyWindow(t *testing.T) {
	a := newProfile(nil, nil)
	b := newProfile(nil, nil)

	b.LastActiveAt = ptr(evalTime.Add(-23 * time.Hour))
	assert.Equal(t, RecentActivityPoints, Calculate(a, b, evalTime).Points)

	b.LastActiveAt = ptr(evalTime.Add(-RecentActivityWindow))
	assert.Equal(t, 0, Calculate(a, b, evalTime).Points)
}

func TestCalculate_IsDirectional(t *testing.T) {
	a := newProfile([]skill.Skill{offer("Python", skill.CategoryProgramming)}, []skill.Skill{want("Guitar", skill.CategoryMusic)})
	a.Rating = ptr(3.9)
	b := newProfile([]skill.Skill{offer("Guitar", skill.CategoryMusic)}, []skill.Skill{want("Python", skill.CategoryProgramming)})
	b.Rating = ptr(4.8)

	ab := Calculate(a, b, evalTime)
	ba := Calculate(b, a, evalTime)
	assert.NotEqual(t, ab.Points, ba.Points)
	assert.Equal(t, HighRatingPoints, ab.Points-ba.Points)
}

func TestCalculate_DoesNotMutateInputs(t *testing.T) {
	a := newProfile([]skill.Skill{offer("Python", skill.CategoryProgramming)}, []skill.Skill{want("Guitar", skill.CategoryMusic)})
	b := newProfile([]skill.Skill{offer("Guitar", skill.CategoryMusic)}, []skill.Skill{want("Python", skill.CategoryProgramming)})
	aCopy := append([]skill.Skill(nil), a.SkillsOffered...)

	_ = Calculate(a, b, evalTime)
	assert.Equal(t, aCopy, a.SkillsOffered)
}
