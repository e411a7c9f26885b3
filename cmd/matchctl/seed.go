package main

import (
	"context"
	"time"

	"skill-exchange/internal/app"
	"skill-exchange/internal/database/seeder"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upsert demo profiles and skills",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		return withContainer(ctx, func(ctx context.Context, c *app.Container) error {
			r := seeder.Runner{Seeders: seeder.Defaults(), Logger: c.Logger}
			if err := r.Run(ctx, c.DB); err != nil {
				return err
			}
			if err := c.InvalidateCache(ctx); err != nil {
				c.Logger.Warn().Err(err).Msg("cache invalidation failed")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
