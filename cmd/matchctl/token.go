package main

import (
	"fmt"
	"time"

	"skill-exchange/internal/config"
	"skill-exchange/internal/pkg/jwt"

	"github.com/spf13/cobra"
)

var (
	tokenUserID string
	tokenTTL    time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an access token for local API testing",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		userID, err := parseUserID(tokenUserID)
		if err != nil {
			return err
		}

		ttl := cfg.JWT.AccessTTL
		if tokenTTL > 0 {
			ttl = tokenTTL
		}
		tok, err := jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.Issuer, ttl).Issue(userID)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
		return err
	},
}

func init() {
	tokenCmd.Flags().StringVarP(&tokenUserID, "user-id", "u", "", "Subject user id (required)")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "Token lifetime, defaults to JWT_ACCESS_TTL")
	if err := tokenCmd.MarkFlagRequired("user-id"); err != nil {
		panic(fmt.Sprintf("failed to mark user-id flag as required: %v", err))
	}
	rootCmd.AddCommand(tokenCmd)
}
