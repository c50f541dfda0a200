package cmd

import (
	"fmt"

	"paydown/internal/cli"
	"paydown/internal/engine"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute the debt stress score with its factor breakdown",
	RunE:  runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	debts, cfg, err := loadLedger()
	if err != nil {
		return err
	}
	if !requireDebts(debts) {
		return nil
	}
	income, _ := resolveProfile(cfg)
	if !requireIncome(income) {
		return nil
	}

	result := engine.Score(debts, income)
	f := result.Factors

	fmt.Println()
	fmt.Println(cli.RenderTitle("DEBT STRESS SCORE"))
	fmt.Println()
	fmt.Printf("  %s  %s\n\n",
		cli.RenderScoreGauge(result.Score, result.Grade, 40),
		cli.GradeStyle(result.Grade).Render(string(result.Grade)))

	table := cli.Table{
		Headers: []string{"Factor", "Value"},
		Rows: [][]string{
			{"EMI / income", cli.FormatPercent(f.EMIToIncome)},
			{"Debt / annual income", fmt.Sprintf("%.2fx", f.DebtToAnnualIncome)},
			{"Weighted interest rate", cli.FormatPercent(f.WeightedRate)},
			{"High-rate debt share", cli.FormatPercent(f.HighRateRatio)},
			{"Number of debts", fmt.Sprintf("%d", f.NumDebts)},
			{"---"},
			{"Total EMI", cli.FormatMoney(f.TotalEMI)},
			{"Total balance", cli.FormatMoney(f.TotalBalance)},
		},
	}
	fmt.Print(cli.RenderTable(table))

	return nil
}
