package matching

import (
	"fmt"
	"strings"
	"time"

	"skill-exchange/internal/domain/profile"
	"skill-exchange/internal/domain/skill"
)

const (
	BidirectionalPoints  = 100
	OneDirectionalPoints = 50
	CommonSkillPoints    = 10
	SameCityPoints       = 15
	HighRatingPoints     = 10
	RecentActivityPoints = 5

	HighRatingThreshold  = 4.5
	RecentActivityWindow = 24 * time.Hour
)

const (
	ReasonBidirectional  = "Perfect bidirectional skill match"
	ReasonTheyTeach      = "One-way match: they can teach you skills you want to learn"
	ReasonYouTeach       = "One-way match: you can teach them skills they want to learn"
	ReasonSameLocation   = "Same location"
	ReasonHighlyRated    = "Highly rated user"
	ReasonRecentlyActive = "Recently active"

	reasonSeparator = " • "
)

type Direction string

const (
	DirectionTheyOffer Direction = "they_offer"
	DirectionYouOffer  Direction = "you_offer"
)

type ComplementarySkill struct {
	Name      string         `json:"name"`
	Category  skill.Category `json:"category"`
	Direction Direction      `json:"direction"`
}

type CommonInterest struct {
	Name string     `json:"name"`
	Type skill.Type `json:"type"`
}

type Score struct {
	Points              int
	Reasons             []string
	CommonInterests     []CommonInterest
	ComplementarySkills []ComplementarySkill
}

func (s Score) Reason() string {
	return strings.Join(s.Reasons, reasonSeparator)
}

// Calculate scores how attractive candidate is to self at time now.
// The result is directional: rating and recency are read from candidate only,
// so Calculate(a, b) and Calculate(b, a) generally differ.
func Calculate(self, candidate profile.Profile, now time.Time) Score {
	res := Score{
		Reasons:             make([]string, 0, 6),
		CommonInterests:     make([]CommonInterest, 0),
		ComplementarySkills: make([]ComplementarySkill, 0),
	}

	theyOfferForMe := intersectByName(candidate.SkillsOffered, self.SkillsWanted)
	iOfferForThem := intersectByName(self.SkillsOffered, candidate.SkillsWanted)

	switch {
	case len(theyOfferForMe) > 0 && len(iOfferForThem) > 0:
		res.Points += BidirectionalPoints * min(len(theyOfferForMe), len(iOfferForThem))
		res.Reasons = append(res.Reasons, ReasonBidirectional)
		res.ComplementarySkills = appendComplementary(res.ComplementarySkills, theyOfferForMe, DirectionTheyOffer)
		res.ComplementarySkills = appendComplementary(res.ComplementarySkills, iOfferForThem, DirectionYouOffer)
	case len(theyOfferForMe) > 0:
		res.Points += OneDirectionalPoints * len(theyOfferForMe)
		res.Reasons = append(res.Reasons, ReasonTheyTeach)
		res.ComplementarySkills = appendComplementary(res.ComplementarySkills, theyOfferForMe, DirectionTheyOffer)
	case len(iOfferForThem) > 0:
		res.Points += OneDirectionalPoints * len(iOfferForThem)
		res.Reasons = append(res.Reasons, ReasonYouTeach)
		res.ComplementarySkills = appendComplementary(res.ComplementarySkills, iOfferForThem, DirectionYouOffer)
	}

	commonOffered := intersectByName(self.SkillsOffered, candidate.SkillsOffered)
	if len(commonOffered) > 0 {
		res.Points += CommonSkillPoints * len(commonOffered)
		res.Reasons = append(res.Reasons, fmt.Sprintf("%d common skill(s) you both offer", len(commonOffered)))
		for _, s := range commonOffered {
			res.CommonInterests = append(res.CommonInterests, CommonInterest{Name: s.Name, Type: skill.TypeOffer})
		}
	}

	commonWanted := intersectByName(self.SkillsWanted, candidate.SkillsWanted)
	if len(commonWanted) > 0 {
		res.Points += CommonSkillPoints * len(commonWanted)
		res.Reasons = append(res.Reasons, fmt.Sprintf("%d common skill(s) you both want to learn", len(commonWanted)))
		for _, s := range commonWanted {
			res.CommonInterests = append(res.CommonInterests, CommonInterest{Name: s.Name, Type: skill.TypeWant})
		}
	}

	selfCity, candidateCity := self.City(), candidate.City()
	if selfCity != "" && candidateCity != "" && strings.EqualFold(selfCity, candidateCity) {
		res.Points += SameCityPoints
		res.Reasons = append(res.Reasons, ReasonSameLocation)
	}

	if candidate.RatingValue() >= HighRatingThreshold {
		res.Points += HighRatingPoints
		res.Reasons = append(res.Reasons, ReasonHighlyRated)
	}

	if recentlyActive(candidate.LastActiveAt, now) {
		res.Points += RecentActivityPoints
		res.Reasons = append(res.Reasons, ReasonRecentlyActive)
	}

	return res
}

// intersectByName keeps the skills of from whose name appears in against.
func intersectByName(from, against []skill.Skill) []skill.Skill {
	if len(from) == 0 || len(against) == 0 {
		return nil
	}
	names := make(map[string]struct{}, len(against))
	for _, s := range against {
		names[skill.NameKey(s.Name)] = struct{}{}
	}
	out := make([]skill.Skill, 0)
	for _, s := range from {
		if _, ok := names[skill.NameKey(s.Name)]; ok {
			out = append(out, s)
		}
	}
	return out
}

func appendComplementary(dst []ComplementarySkill, skills []skill.Skill, dir Direction) []ComplementarySkill {
	for _, s := range skills {
		dst = append(dst, ComplementarySkill{Name: s.Name, Category: s.Category, Direction: dir})
	}
	return dst
}

func recentlyActive(lastActive *time.Time, now time.Time) bool {
	if lastActive == nil || lastActive.IsZero() {
		return false
	}
	return lastActive.After(now.Add(-RecentActivityWindow))
}
