package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"paydown/internal/config"
	"paydown/internal/model"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to paydown!")
	fmt.Println()

	// 1. Monthly income
	fmt.Println("  1. Monthly take-home income")
	fmt.Println("     Used for the stress score and payment headroom.")
	if cfg.Profile.MonthlyIncome > 0 {
		fmt.Printf("     Current: %.0f\n", cfg.Profile.MonthlyIncome)
	}
	fmt.Print("     > ")
	if v, ok := readAmount(reader); ok {
		cfg.Profile.MonthlyIncome = v
	}
	fmt.Println()

	// 2. Extra payment
	fmt.Println("  2. Extra monthly payment toward debt (0 for none)")
	if cfg.Profile.ExtraPayment > 0 {
		fmt.Printf("     Current: %.0f\n", cfg.Profile.ExtraPayment)
	}
	fmt.Print("     > ")
	if v, ok := readAmount(reader); ok {
		cfg.Profile.ExtraPayment = v
	}
	fmt.Println()

	// 3. Default strategy
	fmt.Println("  3. Default payoff strategy")
	fmt.Println("     (1) Avalanche, highest rate first [default]")
	fmt.Println("     (2) Snowball, smallest balance first")
	fmt.Println("     (3) Hybrid, rate x balance")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		cfg.General.DefaultStrategy = string(model.StrategySnowball)
	case "3":
		cfg.General.DefaultStrategy = string(model.StrategyHybrid)
	default:
		cfg.General.DefaultStrategy = string(model.StrategyAvalanche)
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `paydown setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

// readAmount parses a non-negative number from one input line. Blank
// input means keep the current value.
func readAmount(reader *bufio.Reader) (float64, bool) {
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(strings.ReplaceAll(line, ",", ""))
	if line == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil || v < 0 {
		fmt.Println("     (ignored, not a valid amount)")
		return 0, false
	}
	return v, true
}
