package cmd

import (
	"fmt"

	"paydown/internal/cli"
	"paydown/internal/engine"
	"paydown/internal/model"

	"github.com/spf13/cobra"
)

var flagStrategy string

var payoffCmd = &cobra.Command{
	Use:   "payoff",
	Short: "Project the payoff timeline for one strategy",
	RunE:  runPayoff,
}

func init() {
	payoffCmd.Flags().StringVarP(&flagStrategy, "strategy", "s", "", "Payoff strategy: baseline, avalanche, snowball, hybrid")
	rootCmd.AddCommand(payoffCmd)
}

func runPayoff(_ *cobra.Command, _ []string) error {
	debts, cfg, err := loadLedger()
	if err != nil {
		return err
	}
	if !requireDebts(debts) {
		return nil
	}
	_, extra := resolveProfile(cfg)

	strategy := model.Strategy(flagStrategy)
	if flagStrategy == "" {
		strategy = model.Strategy(cfg.General.DefaultStrategy)
	}
	if !model.ValidStrategy(strategy) {
		return fmt.Errorf("unknown strategy %q (want baseline, avalanche, snowball, or hybrid)", strategy)
	}

	result := engine.Simulate(debts, strategy, extra)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PAYOFF PLAN  %s", strategy)))
	fmt.Println()

	if result.CapReached() {
		fmt.Println("  Minimum payments never clear these debts.")
		fmt.Println("  The projection stops at the 50-year safety cap.")
		fmt.Println()
	}

	rows := [][]string{
		{"Strategy", string(result.Strategy)},
		{"Debt-free in", cli.FormatMonths(result.Months)},
		{"Total interest", cli.FormatMoney(result.TotalInterest)},
		{"Extra payment", cli.FormatMoney(extra)},
	}
	fmt.Print(cli.RenderTable(cli.Table{Headers: []string{"Metric", "Value"}, Rows: rows}))

	if len(result.Timeline) > 1 {
		balances := make([]float64, len(result.Timeline))
		for i, p := range result.Timeline {
			balances[i] = p.Balance
		}
		fmt.Println()
		fmt.Printf("  Balance  %s\n", cli.RenderSparkline(balances))

		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Timeline",
			Headers: []string{"When", "Balance", "Interest /mo", "Principal /mo"},
			Rows:    timelineRows(result.Timeline, 8),
		}))
	}

	if len(result.Milestones) > 0 {
		mrows := make([][]string, 0, len(result.Milestones))
		for _, m := range result.Milestones {
			mrows = append(mrows, []string{cli.FormatMonths(m.Month), m.Label, fmt.Sprintf("%d%%", m.Pct)})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Milestones",
			Headers: []string{"When", "Event", "Paid"},
			Rows:    mrows,
		}))
	}

	return nil
}

// timelineRows picks up to limit evenly spaced samples, always keeping
// the final one.
func timelineRows(timeline []model.TimelinePoint, limit int) [][]string {
	step := 1
	if len(timeline) > limit {
		step = (len(timeline) + limit - 1) / limit
	}

	rows := make([][]string, 0, limit+1)
	for i := 0; i < len(timeline); i += step {
		rows = append(rows, timelineRow(timeline[i]))
	}
	if last := timeline[len(timeline)-1]; (len(timeline)-1)%step != 0 {
		rows = append(rows, timelineRow(last))
	}
	return rows
}

func timelineRow(p model.TimelinePoint) []string {
	return []string{
		cli.FormatMonths(p.Month),
		cli.FormatMoney(p.Balance),
		cli.FormatMoney(p.Interest),
		cli.FormatMoney(p.Principal),
	}
}
