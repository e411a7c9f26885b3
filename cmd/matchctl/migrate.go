package main

import (
	"context"
	"fmt"
	"time"

	"skill-exchange/internal/app"
	"skill-exchange/internal/database/migration"

	"github.com/spf13/cobra"
)

var migrateDir string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		return withContainer(ctx, func(ctx context.Context, c *app.Container) error {
			n, err := migration.Runner{Dir: migrateDir}.Run(ctx, c.DB.SQLDB())
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			c.Logger.Info().Int("applied", n).Msg("migrations up to date")
			return nil
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "List migrations and when they were applied",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
			sts, err := migration.Runner{Dir: migrateDir}.Status(ctx, c.DB.SQLDB())
			if err != nil {
				return err
			}
			for _, st := range sts {
				applied := "pending"
				if st.AppliedAt != nil {
					applied = st.AppliedAt.Format(time.RFC3339)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "V%d\t%s\t%s\n", st.Version, st.Name, applied)
			}
			return nil
		})
	},
}

func init() {
	migrateCmd.PersistentFlags().StringVar(&migrateDir, "dir", "", "Read migrations from this directory instead of the embedded set")
	migrateCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(migrateCmd)
}
