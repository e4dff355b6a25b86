package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tradelingo/superbear/config"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check connectivity to the TradeLingo backend",
	RunE:  runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := buildClient(cfg).Health(ctx); err != nil {
		return fmt.Errorf("backend unhealthy at %s: %w", cfg.Backend.BaseURL, err)
	}
	fmt.Println("Backend healthy at:", cfg.Backend.BaseURL)
	return nil
}
