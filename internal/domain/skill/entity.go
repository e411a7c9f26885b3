package skill

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidCategory = errors.New("invalid skill category")
	ErrInvalidLevel    = errors.New("invalid skill level")
	ErrInvalidType     = errors.New("invalid skill type")
)

type Category string

const (
	CategoryProgramming  Category = "Programming"
	CategoryDesign       Category = "Design"
	CategoryMarketing    Category = "Marketing"
	CategoryBusiness     Category = "Business"
	CategoryMusic        Category = "Music"
	CategoryArt          Category = "Art"
	CategoryLanguage     Category = "Language"
	CategoryCooking      Category = "Cooking"
	CategorySports       Category = "Sports"
	CategoryPhotography  Category = "Photography"
	CategoryWriting      Category = "Writing"
	CategoryVideoEditing Category = "Video Editing"
	CategoryOther        Category = "Other"
)

var categories = []Category{
	CategoryProgramming,
	CategoryDesign,
	CategoryMarketing,
	CategoryBusiness,
	CategoryMusic,
	CategoryArt,
	CategoryLanguage,
	CategoryCooking,
	CategorySports,
	CategoryPhotography,
	CategoryWriting,
	CategoryVideoEditing,
	CategoryOther,
}

// Categories returns the closed set of categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory matches s case-insensitively against the known categories.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

func (c Category) Valid() bool {
	_, err := ParseCategory(string(c))
	return err == nil
}

type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
	LevelExpert       Level = "Expert"
)

var levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}

func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return LevelBeginner, nil
	}
	for _, l := range levels {
		if strings.EqualFold(string(l), s) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

type Type string

const (
	TypeOffer Type = "offer"
	TypeWant  Type = "want"
)

func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(TypeOffer):
		return TypeOffer, nil
	case string(TypeWant):
		return TypeWant, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
}

type Skill struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Name       string
	Category   Category
	Level      Level
	Type       Type
	Popularity int
}

// NameKey is the form used for skill-name equality: lower-cased and otherwise
// exact. Surrounding whitespace is significant.
func NameKey(name string) string {
	return strings.ToLower(name)
}
