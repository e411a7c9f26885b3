package dto

import (
	"time"

	"skill-exchange/internal/domain/matching"
	"skill-exchange/internal/domain/profile"
	"skill-exchange/internal/domain/skill"

	"github.com/google/uuid"
)

type LocationResponse struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

type UserSummaryResponse struct {
	ID           uuid.UUID         `json:"id"`
	Name         string            `json:"name"`
	Avatar       string            `json:"avatar"`
	Bio          string            `json:"bio"`
	Location     *LocationResponse `json:"location"`
	Rating       float64           `json:"rating"`
	TotalReviews int               `json:"total_reviews"`
	LastActiveAt *time.Time        `json:"last_active_at"`
}

type CommonInterestResponse struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type ComplementarySkillResponse struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Direction string `json:"direction"`
}

type MatchResultResponse struct {
	User                UserSummaryResponse          `json:"user"`
	MatchScore          int                          `json:"match_score"`
	MatchReason         string                       `json:"match_reason"`
	Reasons             []string                     `json:"reasons"`
	CommonInterests     []CommonInterestResponse     `json:"common_interests"`
	ComplementarySkills []ComplementarySkillResponse `json:"complementary_skills"`
}

type SimilarUserResponse struct {
	User             UserSummaryResponse `json:"user"`
	SimilarityScore  int                 `json:"similarity_score"`
	CommonCategories []string            `json:"common_categories"`
}

type SkillResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Level    string    `json:"level"`
}

type SkillOwnerResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Rating float64   `json:"rating"`
}

type SkillRecommendationResponse struct {
	Skill      SkillResponse      `json:"skill"`
	Owner      SkillOwnerResponse `json:"owner"`
	Popularity int                `json:"popularity"`
}

func NewUserSummaryResponse(s profile.Summary) UserSummaryResponse {
	out := UserSummaryResponse{
		ID:           s.ID,
		Name:         s.Name,
		Avatar:       s.Avatar,
		Bio:          s.Bio,
		Rating:       s.Rating,
		TotalReviews: s.TotalReviews,
		LastActiveAt: s.LastActiveAt,
	}
	if s.Location != nil {
		out.Location = &LocationResponse{City: s.Location.City, Country: s.Location.Country}
	}
	return out
}

func NewMatchResultResponses(in []matching.MatchResult) []MatchResultResponse {
	out := make([]MatchResultResponse, 0, len(in))
	for _, r := range in {
		res := MatchResultResponse{
			User:                NewUserSummaryResponse(r.Candidate),
			MatchScore:          r.Score,
			MatchReason:         r.Reason(),
			Reasons:             append([]string{}, r.Reasons...),
			CommonInterests:     make([]CommonInterestResponse, 0, len(r.CommonInterests)),
			ComplementarySkills: make([]ComplementarySkillResponse, 0, len(r.ComplementarySkills)),
		}
		for _, ci := range r.CommonInterests {
			res.CommonInterests = append(res.CommonInterests, CommonInterestResponse{
				Name: ci.Name,
				Type: string(ci.Type),
			})
		}
		for _, cs := range r.ComplementarySkills {
			res.ComplementarySkills = append(res.ComplementarySkills, ComplementarySkillResponse{
				Name:      cs.Name,
				Category:  string(cs.Category),
				Direction: string(cs.Direction),
			})
		}
		out = append(out, res)
	}
	return out
}

func NewSimilarUserResponses(in []matching.SimilarityResult) []SimilarUserResponse {
	out := make([]SimilarUserResponse, 0, len(in))
	for _, r := range in {
		out = append(out, SimilarUserResponse{
			User:             NewUserSummaryResponse(r.Candidate),
			SimilarityScore:  r.SimilarityScore,
			CommonCategories: categoryNames(r.CommonCategories),
		})
	}
	return out
}

func NewSkillRecommendationResponses(in []matching.Recommendation) []SkillRecommendationResponse {
	out := make([]SkillRecommendationResponse, 0, len(in))
	for _, r := range in {
		out = append(out, SkillRecommendationResponse{
			Skill: SkillResponse{
				ID:       r.Skill.ID,
				Name:     r.Skill.Name,
				Category: string(r.Skill.Category),
				Level:    string(r.Skill.Level),
			},
			Owner: SkillOwnerResponse{
				ID:     r.Owner.ID,
				Name:   r.Owner.Name,
				Rating: r.Owner.Rating,
			},
			Popularity: r.Popularity,
		})
	}
	return out
}

func categoryNames(in []skill.Category) []string {
	out := make([]string, 0, len(in))
	for _, c := range in {
		out = append(out, string(c))
	}
	return out
}
