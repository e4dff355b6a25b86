package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tradelingo/superbear/bus"
	"github.com/tradelingo/superbear/config"
	"github.com/tradelingo/superbear/tui"
	"github.com/tradelingo/superbear/widget"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open the tutoring mascot",
	Long: `Open the SuperBear tutoring mascot: the bear reveals itself, types its
greeting, and answers trading questions via the TradeLingo chat endpoint.`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	eventBus := bus.NewBus(64)
	defer eventBus.Close()

	w := widget.New(tutorVariant(cfg), buildClient(cfg), eventBus, buildProfile(cfg))
	return tui.Run(w, eventBus)
}
