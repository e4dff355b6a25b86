// superbear is the TradeLingo companion mascot for the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/tradelingo/superbear/cmd"
	"github.com/tradelingo/superbear/config"
	"github.com/tradelingo/superbear/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	dir, _ := config.Dir()
	if err := logger.Init(cfg.BuildLoggerConfig(), dir); err != nil {
		fmt.Fprintln(os.Stderr, "logger init error:", err)
	}
	cmd.Execute()
}
