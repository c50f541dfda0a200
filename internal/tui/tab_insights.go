package tui

import (
	"strings"

	"paydown/internal/model"
	"paydown/internal/tui/components"
	"paydown/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func insightColor(t theme.Theme, typ model.InsightType) lipgloss.Color {
	switch typ {
	case model.InsightCritical:
		return t.Red
	case model.InsightWarning:
		return t.Orange
	case model.InsightSuccess:
		return t.Green
	case model.InsightOpportunity:
		return t.Yellow
	}
	return t.Blue
}

func (a App) renderInsightsTab(cw int) string {
	t := theme.Active

	if a.loadErr != nil {
		return components.ContentCard("Error", a.loadErr.Error(), cw/2)
	}
	r := a.report
	if r == nil {
		return a.renderEmptyLedger(cw)
	}

	if len(r.Insights) == 0 {
		muted := lipgloss.NewStyle().Foreground(t.TextMuted).Render("Nothing to report.")
		return components.ContentCard("Insights", muted, cw/2)
	}

	bodyStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var b strings.Builder
	for _, ins := range r.Insights {
		titleStyle := lipgloss.NewStyle().
			Foreground(insightColor(t, ins.Type)).
			Background(t.Surface).
			Bold(true)

		body := titleStyle.Render(ins.Icon+" "+ins.Title) + "\n" +
			bodyStyle.Render(wrapText(ins.Body, components.CardInnerWidth(cw)))
		b.WriteString(components.ContentCard("", body, cw))
		b.WriteString("\n")
	}

	return b.String()
}

// wrapText breaks s into lines no longer than width, on word boundaries.
func wrapText(s string, width int) string {
	if width < 10 {
		width = 10
	}

	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}

	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		wl := len([]rune(w))
		if lineLen > 0 && lineLen+1+wl > width {
			b.WriteString("\n")
			lineLen = 0
		} else if i > 0 {
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(w)
		lineLen += wl
	}
	return b.String()
}
