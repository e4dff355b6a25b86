package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/tradelingo/superbear/config"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Initialize superbear configuration",
	Long:  `Create the superbear config file: backend endpoint and trader profile.`,
	RunE:  runOnboard,
}

func init() {
	rootCmd.AddCommand(onboardCmd)
}

func runOnboard(_ *cobra.Command, _ []string) error {
	configPath, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(configPath); err == nil {
		fmt.Println("Config already exists at:", configPath)
		fmt.Println("To reconfigure, edit the file directly or delete it first.")
		return nil
	}

	cfg := config.DefaultConfig()

	// Step 1: backend endpoint.
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("TradeLingo backend URL").
				Description("Base URL of the TradeLingo API.").
				Value(&cfg.Backend.BaseURL).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("backend URL is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("API token").
				Description("Bearer token for the backend. Leave empty for a local devserver.").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.Backend.Token),
		),
	).Run()
	if err != nil {
		return err
	}

	// Step 2: trader profile. It rides along with every chat request so the
	// bear can pitch explanations at the right level.
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Your name").
				Value(&cfg.Profile.Name),
			huh.NewSelect[string]().
				Title("Trading level").
				Options(
					huh.NewOption("Beginner", "beginner"),
					huh.NewOption("Intermediate", "intermediate"),
					huh.NewOption("Advanced", "advanced"),
				).
				Value(&cfg.Profile.TradingLevel),
			huh.NewSelect[string]().
				Title("Learning style").
				Options(
					huh.NewOption("Visual", "visual"),
					huh.NewOption("Auditory", "auditory"),
					huh.NewOption("Reading", "reading"),
					huh.NewOption("Hands-on", "kinesthetic"),
				).
				Value(&cfg.Profile.LearningStyle),
			huh.NewSelect[string]().
				Title("Risk tolerance").
				Options(
					huh.NewOption("Low", "low"),
					huh.NewOption("Medium", "medium"),
					huh.NewOption("High", "high"),
				).
				Value(&cfg.Profile.RiskTolerance),
			huh.NewSelect[string]().
				Title("Preferred markets").
				Options(
					huh.NewOption("Stocks", "Stocks"),
					huh.NewOption("Crypto", "Crypto"),
					huh.NewOption("Forex", "Forex"),
					huh.NewOption("Options", "Options"),
				).
				Value(&cfg.Profile.PreferredMarkets),
			huh.NewSelect[string]().
				Title("Trading frequency").
				Options(
					huh.NewOption("Daily", "daily"),
					huh.NewOption("Weekly", "weekly"),
					huh.NewOption("Monthly", "monthly"),
				).
				Value(&cfg.Profile.TradingFrequency),
		),
	).Run()
	if err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println("Config written to:", configPath)
	fmt.Println("Try it out:  superbear chat")
	return nil
}
