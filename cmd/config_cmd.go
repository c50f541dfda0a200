// Package cmd implements the paydown CLI commands.
package cmd

import (
	"fmt"

	"paydown/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default strategy: %s\n", cfg.General.DefaultStrategy)
	fmt.Printf("    Ledger database:  %s\n", dbPath(cfg))
	fmt.Println()

	fmt.Println("  [Profile]")
	if cfg.Profile.MonthlyIncome > 0 {
		fmt.Printf("    Monthly income: %.0f\n", cfg.Profile.MonthlyIncome)
	} else {
		fmt.Println("    Monthly income: not set")
	}
	if cfg.Profile.ExtraPayment > 0 {
		fmt.Printf("    Extra payment:  %.0f\n", cfg.Profile.ExtraPayment)
	} else {
		fmt.Println("    Extra payment:  none")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `paydown setup` to reconfigure.")
	return nil
}
