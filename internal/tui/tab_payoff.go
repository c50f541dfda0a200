package tui

import (
	"fmt"
	"strings"

	"paydown/internal/cli"
	"paydown/internal/model"
	"paydown/internal/tui/components"
	"paydown/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderPayoffTab(cw int) string {
	t := theme.Active

	if a.loadErr != nil {
		return components.ContentCard("Error", a.loadErr.Error(), cw/2)
	}
	r := a.report
	if r == nil || len(r.Ledger) == 0 {
		return a.renderEmptyLedger(cw)
	}

	strategy := model.Strategies[a.payoffStrategy]
	res := r.Results[strategy]
	var b strings.Builder

	// Strategy selector line
	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var sel []string
	for i, s := range model.Strategies {
		if i == a.payoffStrategy {
			sel = append(sel, activeStyle.Render("● "+string(s)))
		} else {
			sel = append(sel, inactiveStyle.Render("○ "+string(s)))
		}
	}
	b.WriteString(" " + strings.Join(sel, "  ") + "  " + hintStyle.Render("[s] cycle"))
	b.WriteString("\n\n")

	// Metric cards
	months := cli.FormatMonths(res.Months)
	monthsHint := ""
	if res.CapReached() {
		months = "50y+"
		monthsHint = "payments never amortize"
	}

	interestHint := ""
	if strategy != model.StrategyBaseline {
		if delta := r.Baseline().TotalInterest - res.TotalInterest; delta > 0 {
			interestHint = "saves " + cli.FormatMoney(delta)
		}
	}

	cards := []components.Card{
		{Label: "Debt-free in", Value: months, Hint: monthsHint},
		{Label: "Total interest", Value: cli.FormatMoney(res.TotalInterest), Hint: interestHint},
		{Label: "Extra payment", Value: cli.FormatMoney(r.Extra) + "/mo", Hint: ""},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Interest vs principal mix across the sampled months
	var sumInterest, sumPaid float64
	for _, p := range res.Timeline {
		sumInterest += p.Interest
		sumPaid += p.Interest + p.Principal
	}
	if sumPaid > 0 {
		mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		share := sumInterest / sumPaid
		bar := fmt.Sprintf("%s %s\n%s",
			components.ProgressBar(share, components.CardInnerWidth(cw)-7),
			mutedStyle.Render(fmt.Sprintf("%4.0f%%", share*100)),
			mutedStyle.Render("of every unit paid goes to interest"))
		b.WriteString(components.ContentCard("Interest Share", bar, cw))
		b.WriteString("\n")
	}

	// Balance timeline chart
	if len(res.Timeline) > 1 {
		vals := make([]float64, len(res.Timeline))
		labels := make([]string, len(res.Timeline))
		for i, p := range res.Timeline {
			vals[i] = p.Balance
			labels[i] = cli.FormatMonths(p.Month)
		}
		chartH := 10
		if a.isCompactLayout() {
			chartH = 7
		}
		b.WriteString(components.ContentCard(
			"Remaining Balance",
			components.BarChart(vals, labels, t.Blue, components.CardInnerWidth(cw), chartH),
			cw,
		))
		b.WriteString("\n")
	}

	// Milestones
	if len(res.Milestones) > 0 {
		whenStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		eventStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
		pctStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)

		var ms strings.Builder
		for _, m := range res.Milestones {
			fmt.Fprintf(&ms, "%s %s %s\n",
				whenStyle.Render(fmt.Sprintf("%8s", cli.FormatMonths(m.Month))),
				eventStyle.Render(fmt.Sprintf("%-24s", truncStr(m.Label, 24))),
				pctStyle.Render(fmt.Sprintf("%3d%%", m.Pct)))
		}
		b.WriteString(components.ContentCard("Milestones", ms.String(), cw))
	}

	return b.String()
}
