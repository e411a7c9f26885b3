package matching

import (
	"sort"

	"skill-exchange/internal/domain/profile"
	"skill-exchange/internal/domain/skill"
)

const MaxRecommendations = 10

type Recommendation struct {
	Skill      skill.Skill
	Owner      profile.Owner
	Popularity int
}

// RankRecommendations drops offered skills whose name the requester already
// offers or wants, then returns the most popular ones.
func RankRecommendations(self profile.Profile, offered []profile.OwnedSkill) []Recommendation {
	known := make(map[string]struct{}, len(self.SkillsOffered)+len(self.SkillsWanted))
	for _, s := range self.SkillsOffered {
		known[skill.NameKey(s.Name)] = struct{}{}
	}
	for _, s := range self.SkillsWanted {
		known[skill.NameKey(s.Name)] = struct{}{}
	}

	out := make([]Recommendation, 0)
	for _, it := range offered {
		if it.Skill.Type != skill.TypeOffer || it.Skill.OwnerID == self.ID {
			continue
		}
		if _, ok := known[skill.NameKey(it.Skill.Name)]; ok {
			continue
		}
		out = append(out, Recommendation{Skill: it.Skill, Owner: it.Owner, Popularity: it.Skill.Popularity})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Popularity != b.Popularity {
			return a.Popularity > b.Popularity
		}
		if a.Skill.Name != b.Skill.Name {
			return a.Skill.Name < b.Skill.Name
		}
		return a.Skill.ID.String() < b.Skill.ID.String()
	})

	if len(out) > MaxRecommendations {
		out = out[:MaxRecommendations]
	}
	return out
}
