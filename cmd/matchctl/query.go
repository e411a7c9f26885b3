package main

import (
	"context"
	"fmt"

	"skill-exchange/internal/app"
	"skill-exchange/internal/delivery/http/dto"
	"skill-exchange/internal/domain/skill"
	"skill-exchange/internal/usecase"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	queryUserID    string
	queryCategory  string
	queryMinRating float64
	queryLocation  string
	querySimilarN  int
)

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "Rank complementary exchange partners for a user",
	RunE: func(cmd *cobra.Command, _ []string) error {
		userID, err := parseUserID(queryUserID)
		if err != nil {
			return err
		}
		filters, err := buildMatchFilters(cmd, queryCategory, queryMinRating, queryLocation)
		if err != nil {
			return err
		}

		return withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
			res, err := c.Matching.FindMatches(ctx, userID, filters)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), dto.NewMatchResultResponses(res))
		})
	},
}

var similarCmd = &cobra.Command{
	Use:   "similar",
	Short: "List users offering skills in the same categories",
	RunE: func(cmd *cobra.Command, _ []string) error {
		userID, err := parseUserID(queryUserID)
		if err != nil {
			return err
		}

		return withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
			res, err := c.Similarity.FindSimilarUsers(ctx, userID, querySimilarN)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), dto.NewSimilarUserResponses(res))
		})
	},
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Suggest popular skills the user neither offers nor wants",
	RunE: func(cmd *cobra.Command, _ []string) error {
		userID, err := parseUserID(queryUserID)
		if err != nil {
			return err
		}

		return withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
			res, err := c.Recommendations.GetSkillRecommendations(ctx, userID)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), dto.NewSkillRecommendationResponses(res))
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{matchesCmd, similarCmd, recommendCmd} {
		c.Flags().StringVarP(&queryUserID, "user-id", "u", "", "Requesting user id (required)")
		if err := c.MarkFlagRequired("user-id"); err != nil {
			panic(fmt.Sprintf("failed to mark user-id flag as required: %v", err))
		}
		rootCmd.AddCommand(c)
	}

	matchesCmd.Flags().StringVar(&queryCategory, "category", "", "Only keep matches with a complementary skill in this category")
	matchesCmd.Flags().Float64Var(&queryMinRating, "min-rating", 0, "Minimum candidate rating (0-5)")
	matchesCmd.Flags().StringVar(&queryLocation, "location", "", "City or country, case-insensitive")

	similarCmd.Flags().IntVarP(&querySimilarN, "limit", "n", usecase.DefaultSimilarLimit, "Maximum number of users")
}

func parseUserID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid --user-id %q: %w", raw, err)
	}
	return id, nil
}

// buildMatchFilters applies a min rating only when --min-rating was given.
func buildMatchFilters(cmd *cobra.Command, category string, minRating float64, location string) (usecase.MatchFilters, error) {
	f := usecase.MatchFilters{Location: location}
	if category != "" {
		cat, err := skill.ParseCategory(category)
		if err != nil {
			return usecase.MatchFilters{}, fmt.Errorf("invalid --category %q: %w", category, err)
		}
		f.Category = &cat
	}
	if cmd != nil && cmd.Flags().Changed("min-rating") {
		f.MinRating = &minRating
	}
	return f, nil
}
