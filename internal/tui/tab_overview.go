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

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active

	if a.loadErr != nil {
		return components.ContentCard("Error", a.loadErr.Error(), cw/2)
	}
	r := a.report
	if r == nil || len(r.Ledger) == 0 {
		return a.renderEmptyLedger(cw)
	}

	f := r.Score.Factors
	var b strings.Builder

	// Row 1: Metric cards
	scoreValue := "n/a"
	scoreHint := "set income to score"
	scoreColor := t.TextMuted
	if r.Score.Applicable() {
		scoreValue = fmt.Sprintf("%d/100", r.Score.Score)
		scoreHint = string(r.Score.Grade)
		scoreColor = lipgloss.Color(components.ColorForScore(r.Score.Score))
	}

	freeIn := "never"
	freeHint := "minimum payments"
	if strategy, best, ok := r.Best(); ok {
		if best.CapReached() {
			freeIn = "50y+"
		} else {
			freeIn = cli.FormatMonths(best.Months)
		}
		freeHint = string(strategy) + " plan"
	}

	cards := []components.Card{
		{Label: "Stress score", Value: scoreValue, Hint: scoreHint, Color: scoreColor},
		{Label: "Total balance", Value: cli.FormatMoney(f.TotalBalance), Hint: fmt.Sprintf("%d debts", f.NumDebts)},
		{Label: "Monthly EMI", Value: cli.FormatMoney(f.TotalEMI), Hint: cli.FormatPercent(f.EMIToIncome) + " of income"},
		{Label: "Debt-free in", Value: freeIn, Hint: freeHint},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Score gauge + factor breakdown
	halves := components.LayoutRow(cw, 2)

	var gauge strings.Builder
	if r.Score.Applicable() {
		innerW := components.CardInnerWidth(halves[0])
		barW := innerW - 6
		if barW < 10 {
			barW = 10
		}
		gauge.WriteString(components.ProgressBar(float64(r.Score.Score)/100, barW))
		gauge.WriteString("\n\n")
		gradeStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(components.ColorForScore(r.Score.Score))).
			Background(t.Surface).
			Bold(true)
		gauge.WriteString(gradeStyle.Render(string(r.Score.Grade)))
	} else {
		muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		gauge.WriteString(muted.Render("Set your income to compute the score.\nRun `paydown setup` or pass --income."))
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	var factors strings.Builder
	factorRows := []struct{ label, value string }{
		{"EMI / income", cli.FormatPercent(f.EMIToIncome)},
		{"Debt / annual income", fmt.Sprintf("%.2fx", f.DebtToAnnualIncome)},
		{"Weighted rate", cli.FormatPercent(f.WeightedRate)},
		{"High-rate share", cli.FormatPercent(f.HighRateRatio)},
	}
	for _, row := range factorRows {
		fmt.Fprintf(&factors, "%s %s\n",
			labelStyle.Render(fmt.Sprintf("%-22s", row.label)),
			valStyle.Render(row.value))
	}

	gaugeCard := components.ContentCard("Score", gauge.String(), halves[0])
	factorCard := components.ContentCard("Factors", factors.String(), halves[1])
	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Score", gauge.String(), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Factors", factors.String(), cw))
	} else {
		b.WriteString(components.CardRow([]string{gaugeCard, factorCard}))
	}
	b.WriteString("\n")

	// Row 3: Strategy comparison
	baseline := r.Baseline()
	bestStrategy, _, hasBest := r.Best()

	var comp strings.Builder
	for _, s := range model.Strategies {
		res := r.Results[s]
		marker := " "
		nameStyle := labelStyle
		if hasBest && s == bestStrategy {
			marker = "★"
			nameStyle = lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
		}

		months := cli.FormatMonths(res.Months)
		if res.CapReached() {
			months = "50y+"
		}
		saved := ""
		if s != model.StrategyBaseline {
			if delta := baseline.TotalInterest - res.TotalInterest; delta > 0 {
				saved = "saves " + cli.FormatMoney(delta)
			}
		}

		fmt.Fprintf(&comp, "%s %s %s %s\n",
			nameStyle.Render(marker),
			nameStyle.Render(fmt.Sprintf("%-10s", string(s))),
			valStyle.Render(fmt.Sprintf("%8s", months)),
			labelStyle.Render(saved))
	}
	b.WriteString(components.ContentCard("Strategies", comp.String(), cw))

	// Row 4: Top insights preview
	if len(r.Insights) > 0 {
		b.WriteString("\n")
		var preview strings.Builder
		for i, ins := range r.Insights {
			if i >= 2 {
				break
			}
			titleStyle := lipgloss.NewStyle().Foreground(insightColor(t, ins.Type)).Background(t.Surface).Bold(true)
			fmt.Fprintf(&preview, "%s %s\n", ins.Icon, titleStyle.Render(ins.Title))
		}
		preview.WriteString(labelStyle.Render("See the Insights tab for details."))
		b.WriteString(components.ContentCard("Insights", preview.String(), cw))
	}

	return b.String()
}
