package tui

import (
	"fmt"
	"strings"

	"paydown/internal/cli"
	"paydown/internal/model"
	"paydown/internal/pipeline"
	"paydown/internal/tui/components"
	"paydown/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderDebtsTab(cw int) string {
	t := theme.Active

	if a.loadErr != nil {
		return components.ContentCard("Error", a.loadErr.Error(), cw/2)
	}
	if a.debtForm != nil {
		return a.debtForm.view(cw)
	}
	r := a.report
	if r == nil || len(r.Ledger) == 0 {
		return a.renderEmptyLedger(cw)
	}

	var b strings.Builder

	// Debt table with cursor
	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	nameW := 20
	if a.isCompactLayout() {
		nameW = 14
	}

	var table strings.Builder
	table.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %-10s %12s %8s %10s %9s",
		nameW, "Name", "Type", "Balance", "Rate", "EMI", "Int/mo")))
	table.WriteString("\n")

	var totalBalance, totalEMI float64
	for i, d := range r.Ledger {
		totalBalance += d.Balance
		totalEMI += d.EMI

		style := rowStyle
		marker := " "
		if i == a.debtsCursor {
			style = selStyle
			marker = "▸"
		}

		line := fmt.Sprintf("%s%-*s %-10s %12s %8s %10s %9s",
			marker,
			nameW-1, truncStr(d.Name, nameW-1),
			string(d.Type),
			cli.FormatMoney(d.Balance),
			cli.FormatRate(d.Rate),
			cli.FormatMoney(d.EMI),
			cli.FormatMoney(d.MonthlyInterest()))
		table.WriteString(style.Render(line))
		table.WriteString("\n")
	}

	table.WriteString(mutedStyle.Render(fmt.Sprintf("%-*s %-10s %12s %8s %10s",
		nameW, "Total", "", cli.FormatMoney(totalBalance), "", cli.FormatMoney(totalEMI))))

	b.WriteString(components.ContentCard("Ledger", table.String(), cw))
	b.WriteString("\n")

	// Selected debt detail: payoff order position + share of the total
	if a.debtsCursor < len(r.Ledger) {
		d := r.Ledger[a.debtsCursor]

		share := 0.0
		if totalBalance > 0 {
			share = d.Balance / totalBalance
		}

		innerW := components.CardInnerWidth(cw)
		barW := innerW - 28
		if barW < 10 {
			barW = 10
		}

		var detail strings.Builder
		detail.WriteString(components.DebtBar("Share of total", share, 16, barW))
		detail.WriteString("\n")
		fmt.Fprintf(&detail, "%s %s\n",
			mutedStyle.Render(fmt.Sprintf("%-16s", "Monthly interest")),
			rowStyle.Render(cli.FormatMoney(d.MonthlyInterest())))

		if pos := payoffPosition(r, d.ID); pos > 0 {
			fmt.Fprintf(&detail, "%s %s\n",
				mutedStyle.Render(fmt.Sprintf("%-16s", "Payoff priority")),
				rowStyle.Render(fmt.Sprintf("#%d under %s", pos, bestStrategyName(r))))
		}

		b.WriteString(components.ContentCard(d.Name, detail.String(), cw))
	}

	return b.String()
}

// payoffPosition returns the 1-based extra-payment priority of the
// debt under the best strategy, or 0 when there is none.
func payoffPosition(r *pipeline.Report, id int64) int {
	strategy, _, ok := r.Best()
	if !ok {
		return 0
	}

	ordered := make([]model.Debt, len(r.Ledger))
	copy(ordered, r.Ledger)
	// Insertion sort keeps ties in ledger order, matching the engine
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && strategy.Less(ordered[j], ordered[j-1], ordered[j].Balance, ordered[j-1].Balance); j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}

	for i, d := range ordered {
		if d.ID == id {
			return i + 1
		}
	}
	return 0
}

func bestStrategyName(r *pipeline.Report) string {
	strategy, _, ok := r.Best()
	if !ok {
		return ""
	}
	return string(strategy)
}
