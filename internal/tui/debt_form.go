package tui

import (
	"fmt"
	"strings"
	"time"

	"paydown/internal/model"
	"paydown/internal/pipeline"
	"paydown/internal/store"
	"paydown/internal/tui/components"
	"paydown/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	debtFieldName = iota
	debtFieldBalance
	debtFieldRate
	debtFieldEMI
	debtFieldType
	debtFieldCount
)

var debtFormTypes = []model.DebtType{
	model.DebtUnsecured,
	model.DebtSecured,
	model.DebtRevolving,
}

// debtForm collects a new debt inline on the Debts tab.
type debtForm struct {
	inputs  [4]textinput.Model // name, balance, rate, emi
	typeIdx int                // index into debtFormTypes
	focus   int
	errMsg  string
}

func newDebtForm() *debtForm {
	f := &debtForm{}

	placeholders := [4]string{"Car Loan", "600,000", "9.5", "12,000"}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 40
		ti.Width = 24
		f.inputs[i] = ti
	}
	f.inputs[debtFieldName].Focus()
	return f
}

func (f *debtForm) setFocus(idx int) {
	f.focus = idx
	for i := range f.inputs {
		if i == idx {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

func (a App) updateDebtForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := a.debtForm
	key := msg.String()

	switch key {
	case "esc":
		a.debtForm = nil
		return a, nil

	case "enter":
		if f.focus < debtFieldType {
			f.setFocus(f.focus + 1)
			return a, f.inputs[f.focus].Cursor.BlinkCmd()
		}
		d, err := f.debt()
		if err != nil {
			f.errMsg = err.Error()
			return a, nil
		}
		a.debtForm = nil
		a.loaded = false
		return a, tea.Batch(
			addDebtCmd(a.dbPath, d, a.income, a.extra),
			a.spinner.Tick,
		)

	case "tab", "down":
		f.setFocus((f.focus + 1) % debtFieldCount)
		if f.focus < debtFieldType {
			return a, f.inputs[f.focus].Cursor.BlinkCmd()
		}
		return a, nil

	case "shift+tab", "up":
		f.setFocus((f.focus - 1 + debtFieldCount) % debtFieldCount)
		if f.focus < debtFieldType {
			return a, f.inputs[f.focus].Cursor.BlinkCmd()
		}
		return a, nil
	}

	if f.focus == debtFieldType {
		switch key {
		case "left", "h":
			f.typeIdx = (f.typeIdx - 1 + len(debtFormTypes)) % len(debtFormTypes)
		case "right", "l", " ":
			f.typeIdx = (f.typeIdx + 1) % len(debtFormTypes)
		}
		return a, nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return a, cmd
}

// debt validates the form fields into a Debt ready for the store.
func (f *debtForm) debt() (model.Debt, error) {
	name := strings.TrimSpace(f.inputs[debtFieldName].Value())
	if name == "" {
		return model.Debt{}, fmt.Errorf("name is required")
	}
	return model.NewDebt(
		0, // the store assigns the real ID
		name,
		parseAmount(f.inputs[debtFieldBalance].Value()),
		parseAmount(f.inputs[debtFieldRate].Value()),
		parseAmount(f.inputs[debtFieldEMI].Value()),
		debtFormTypes[f.typeIdx],
	)
}

func (f *debtForm) view(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	activeLabel := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	errStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)

	labels := [4]string{"Name", "Balance", "Rate %/yr", "EMI /mo"}

	var b strings.Builder
	for i, in := range f.inputs {
		style := labelStyle
		if f.focus == i {
			style = activeLabel
		}
		fmt.Fprintf(&b, "%s %s\n", style.Render(fmt.Sprintf("%-10s", labels[i])), in.View())
	}

	typeLabel := labelStyle
	if f.focus == debtFieldType {
		typeLabel = activeLabel
	}
	b.WriteString(typeLabel.Render(fmt.Sprintf("%-10s", "Type")))
	for i, dt := range debtFormTypes {
		marker := "( )"
		style := labelStyle
		if i == f.typeIdx {
			marker = "(o)"
			style = activeLabel
		}
		b.WriteString(style.Render(fmt.Sprintf(" %s %s", marker, dt)))
	}
	b.WriteString("\n\n")

	if f.errMsg != "" {
		b.WriteString(errStyle.Render(f.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("tab/enter next · ←/→ type · enter on last saves · esc cancels"))

	return components.ContentCard("Add debt", b.String(), cw*2/3)
}

// addDebtCmd persists the debt and reruns the analysis.
func addDebtCmd(dbPath string, d model.Debt, income, extra float64) tea.Cmd {
	return reloadAfter(dbPath, income, extra, func(l *store.Ledger) error {
		_, err := l.Add(d)
		return err
	})
}

// removeDebtCmd deletes the debt and reruns the analysis.
func removeDebtCmd(dbPath string, id int64, income, extra float64) tea.Cmd {
	return reloadAfter(dbPath, income, extra, func(l *store.Ledger) error {
		return l.Remove(id)
	})
}

// reloadAfter applies a ledger mutation, then rebuilds the report in
// the same command so the UI sees a single refresh.
func reloadAfter(dbPath string, income, extra float64, mutate func(*store.Ledger) error) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()

		l, err := store.Open(dbPath)
		if err != nil {
			return ReportMsg{Err: err, LoadTime: time.Since(start)}
		}
		defer func() { _ = l.Close() }()

		if err := mutate(l); err != nil {
			return ReportMsg{Err: err, LoadTime: time.Since(start)}
		}

		debts, err := l.List()
		if err != nil {
			return ReportMsg{Err: err, LoadTime: time.Since(start)}
		}

		return ReportMsg{
			Report:   pipeline.BuildReport(debts, income, extra),
			LoadTime: time.Since(start),
		}
	}
}
