package matching

import (
	"sort"

	"skill-exchange/internal/domain/profile"
	"skill-exchange/internal/domain/skill"
)

type SimilarityResult struct {
	Candidate        profile.Summary
	SimilarityScore  int
	CommonCategories []skill.Category
}

// CommonCategories walks self's offered skills in order and keeps each category
// that also occurs among candidate's offered skills. Repeats in self count once
// per occurrence.
func CommonCategories(self, candidate []skill.Skill) []skill.Category {
	present := make(map[skill.Category]struct{}, len(candidate))
	for _, s := range candidate {
		present[s.Category] = struct{}{}
	}
	out := make([]skill.Category, 0)
	for _, s := range self {
		if _, ok := present[s.Category]; ok {
			out = append(out, s.Category)
		}
	}
	return out
}

// RankSimilar scores every candidate against self, drops zero overlap and keeps
// the top limit by overlap descending, candidate id ascending.
func RankSimilar(self profile.Profile, candidates []profile.Profile, limit int) []SimilarityResult {
	out := make([]SimilarityResult, 0)
	if len(self.SkillsOffered) == 0 {
		return out
	}
	for _, c := range candidates {
		common := CommonCategories(self.SkillsOffered, c.SkillsOffered)
		if len(common) == 0 {
			continue
		}
		out = append(out, SimilarityResult{
			Candidate:        c.Summary(),
			SimilarityScore:  len(common),
			CommonCategories: common,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SimilarityScore != out[j].SimilarityScore {
			return out[i].SimilarityScore > out[j].SimilarityScore
		}
		return out[i].Candidate.ID.String() < out[j].Candidate.ID.String()
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
