package matching

import (
	"sort"
	"strings"

	"skill-exchange/internal/domain/profile"
	"skill-exchange/internal/domain/skill"
)

type MatchResult struct {
	Candidate           profile.Summary
	Score               int
	Reasons             []string
	CommonInterests     []CommonInterest
	ComplementarySkills []ComplementarySkill
}

func NewMatchResult(candidate profile.Profile, s Score) MatchResult {
	return MatchResult{
		Candidate:           candidate.Summary(),
		Score:               s.Points,
		Reasons:             s.Reasons,
		CommonInterests:     s.CommonInterests,
		ComplementarySkills: s.ComplementarySkills,
	}
}

func (r MatchResult) Reason() string {
	return strings.Join(r.Reasons, reasonSeparator)
}

func (r MatchResult) HasComplementaryCategory(c skill.Category) bool {
	for _, cs := range r.ComplementarySkills {
		if cs.Category == c {
			return true
		}
	}
	return false
}

// SortMatches orders by score descending, then candidate id ascending.
func SortMatches(results []MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Candidate.ID.String() < results[j].Candidate.ID.String()
	})
}
