// Command matchctl runs migrations, seeds demo data and queries the matching
// engine from a terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"skill-exchange/internal/app"
	"skill-exchange/internal/config"
	"skill-exchange/internal/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "matchctl",
	Short:         "Skill exchange matching engine tooling",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func withContainer(ctx context.Context, fn func(ctx context.Context, c *app.Container) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	c, err := app.NewContainer(cfg, logger.New(cfg))
	if err != nil {
		return fmt.Errorf("failed to init container: %w", err)
	}
	defer func() {
		_ = c.Close()
	}()

	return fn(ctx, c)
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
