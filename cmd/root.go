package cmd

import (
	"fmt"
	"os"

	"paydown/internal/config"
	"paydown/internal/model"
	"paydown/internal/pipeline"
	"paydown/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDB     string
	flagIncome float64
	flagExtra  float64
	flagQuiet  bool
)

var rootCmd = &cobra.Command{
	Use:   "paydown",
	Short: "Household debt stress and payoff analyzer",
	Long:  "Analyze your debts: stress score, payoff projections, and plain-language insights.",
	RunE:  runOverview,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDB, "db", "d", "", "Ledger database path (default: XDG data dir)")
	rootCmd.PersistentFlags().Float64VarP(&flagIncome, "income", "i", 0, "Monthly take-home income (overrides config)")
	rootCmd.PersistentFlags().Float64VarP(&flagExtra, "extra", "x", 0, "Extra monthly payment (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// dbPath resolves the ledger database path: flag, then config, then
// the XDG default.
func dbPath(cfg config.Config) string {
	if flagDB != "" {
		return flagDB
	}
	if cfg.General.DBPath != "" {
		return cfg.General.DBPath
	}
	return store.DefaultPath()
}

// loadLedger is the shared loading path used by all commands.
func loadLedger() ([]model.Debt, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}

	ledger, err := store.Open(dbPath(cfg))
	if err != nil {
		return nil, cfg, err
	}
	defer func() { _ = ledger.Close() }()

	debts, err := ledger.List()
	if err != nil {
		return nil, cfg, err
	}

	if !flagQuiet && len(debts) > 0 {
		fmt.Fprintf(os.Stderr, "  Loaded %d debts\n", len(debts))
	}
	return debts, cfg, nil
}

// openLedger opens the debt store for commands that mutate it.
func openLedger() (*store.Ledger, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}
	l, err := store.Open(dbPath(cfg))
	if err != nil {
		return nil, cfg, err
	}
	return l, cfg, nil
}

// resolveProfile returns the effective income and extra payment,
// flags over config.
func resolveProfile(cfg config.Config) (income, extra float64) {
	income = cfg.Profile.MonthlyIncome
	if flagIncome > 0 {
		income = flagIncome
	}
	extra = cfg.Profile.ExtraPayment
	if flagExtra > 0 {
		extra = flagExtra
	}
	return income, extra
}

// buildReport loads the ledger and runs the full analysis.
func buildReport() (*pipeline.Report, config.Config, error) {
	debts, cfg, err := loadLedger()
	if err != nil {
		return nil, cfg, err
	}
	income, extra := resolveProfile(cfg)
	return pipeline.BuildReport(debts, income, extra), cfg, nil
}

// requireDebts prints the getting-started hint when the ledger is
// empty. Returns true when there is something to analyze.
func requireDebts(debts []model.Debt) bool {
	if len(debts) > 0 {
		return true
	}
	fmt.Println("\n  No debts in your ledger yet.")
	fmt.Println("  Add one with `paydown debts add`, or try `paydown debts sample`.")
	return false
}

// requireIncome prints a hint when no income is configured. Returns
// true when income is usable.
func requireIncome(income float64) bool {
	if income > 0 {
		return true
	}
	fmt.Println("\n  Monthly income is not set.")
	fmt.Println("  Run `paydown setup`, or pass --income.")
	return false
}
