package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tradelingo/superbear/internal/devserver"
)

var devserverCmd = &cobra.Command{
	Use:   "devserver",
	Short: "Run a stub TradeLingo backend for local development",
	Long: `Run a stub backend that serves the chat, therapy, and health endpoints
with canned payloads. Point the config's baseUrl at it to try the mascot
without the real inference stack.`,
	RunE: runDevserver,
}

var devserverAddr string

func init() {
	devserverCmd.Flags().StringVar(&devserverAddr, "addr", "127.0.0.1:8000", "Listen address")
	rootCmd.AddCommand(devserverCmd)
}

func runDevserver(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return devserver.Run(ctx, devserverAddr)
}
