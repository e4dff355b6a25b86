// Package cmd contains the superbear CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "superbear",
	Short: "SuperBear - the TradeLingo companion mascot in your terminal",
	Long: `SuperBear is the TradeLingo companion mascot: a trading tutor and a
trading-therapy buddy that chats with you from the terminal, backed by the
TradeLingo inference API.

Run "superbear onboard" first to point it at your backend and fill in your
trader profile.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
