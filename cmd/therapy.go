package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tradelingo/superbear/bus"
	"github.com/tradelingo/superbear/config"
	"github.com/tradelingo/superbear/tui"
	"github.com/tradelingo/superbear/widget"
)

var therapyCmd = &cobra.Command{
	Use:   "therapy",
	Short: "Open the therapy mascot",
	Long: `Open the SuperBear therapy mascot: a wellness-focused companion for the
emotional side of trading, backed by the TradeLingo therapy endpoint.`,
	RunE: runTherapy,
}

func init() {
	rootCmd.AddCommand(therapyCmd)
}

func runTherapy(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	eventBus := bus.NewBus(64)
	defer eventBus.Close()

	w := widget.New(therapyVariant(cfg), buildClient(cfg), eventBus, buildProfile(cfg))
	return tui.Run(w, eventBus)
}
