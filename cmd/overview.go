package cmd

import (
	"fmt"

	"paydown/internal/cli"

	"github.com/spf13/cobra"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "One-screen summary: score, best plan, top insights",
	RunE:  runOverview,
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

func runOverview(_ *cobra.Command, _ []string) error {
	report, _, err := buildReport()
	if err != nil {
		return err
	}
	if !requireDebts(report.Ledger) {
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("PAYDOWN  Debt Overview"))
	fmt.Println()

	if report.Score.Applicable() {
		grade := report.Score.Grade
		fmt.Printf("  Stress score  %s  %s\n",
			cli.RenderScoreGauge(report.Score.Score, grade, 30),
			cli.GradeStyle(grade).Render(string(grade)))
		fmt.Println()
	} else if !requireIncome(report.Income) {
		return nil
	}

	f := report.Score.Factors
	rows := [][]string{
		{"Debts", fmt.Sprintf("%d", f.NumDebts)},
		{"Total balance", cli.FormatMoney(f.TotalBalance)},
		{"Total EMI", cli.FormatMoney(f.TotalEMI)},
		{"EMI / income", cli.FormatPercent(f.EMIToIncome)},
		{"Weighted rate", cli.FormatPercent(f.WeightedRate)},
	}

	if strategy, best, ok := report.Best(); ok {
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{"Best strategy", string(strategy)})
		rows = append(rows, []string{"Debt-free in", cli.FormatMonths(best.Months)})
		if saved := report.InterestSaved(); saved > 0 {
			rows = append(rows, []string{"Interest saved", cli.FormatMoney(saved)})
		}
	}

	fmt.Print(cli.RenderTable(cli.Table{Headers: []string{"Metric", "Value"}, Rows: rows}))

	if len(report.Insights) > 0 {
		fmt.Println()
		for i, ins := range report.Insights {
			if i >= 3 {
				break
			}
			fmt.Printf("  %s %s\n", ins.Icon, ins.Title)
		}
		fmt.Println("\n  Run `paydown insights` for details.")
	}

	return nil
}
