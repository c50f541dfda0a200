package cmd

import (
	"fmt"

	"paydown/internal/cli"
	"paydown/internal/model"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare all payoff strategies side by side",
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, _ []string) error {
	report, _, err := buildReport()
	if err != nil {
		return err
	}
	if !requireDebts(report.Ledger) {
		return nil
	}

	bestStrategy, _, hasBest := report.Best()
	baseline := report.Baseline()

	fmt.Println()
	fmt.Println(cli.RenderTitle("STRATEGY COMPARISON"))
	fmt.Println()

	rows := make([][]string, 0, len(model.Strategies))
	for _, s := range model.Strategies {
		r := report.Results[s]

		name := string(s)
		if hasBest && s == bestStrategy {
			name += " ★"
		}

		months := cli.FormatMonths(r.Months)
		if r.CapReached() {
			months = "50y+ (capped)"
		}

		saved := ""
		if s != model.StrategyBaseline {
			if delta := baseline.TotalInterest - r.TotalInterest; delta > 0 {
				saved = cli.FormatMoney(delta)
			}
		}

		rows = append(rows, []string{name, months, cli.FormatMoney(r.TotalInterest), saved})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Strategy", "Debt-free in", "Total interest", "Saved vs baseline"},
		Rows:    rows,
	}))

	maxInterest := 0.0
	for _, s := range model.Strategies {
		if ti := report.Results[s].TotalInterest; ti > maxInterest {
			maxInterest = ti
		}
	}
	if maxInterest > 0 {
		fmt.Println()
		for _, s := range model.Strategies {
			fmt.Printf("  %-10s %s\n", s,
				cli.RenderHorizontalBar(report.Results[s].TotalInterest, maxInterest, 32))
		}
	}

	if report.Extra > 0 {
		fmt.Printf("\n  With %s/month extra payment.\n", cli.FormatMoney(report.Extra))
	} else {
		fmt.Println("\n  No extra payment configured; strategies differ only with one.")
		fmt.Println("  Set one with `paydown setup` or --extra.")
	}

	return nil
}
