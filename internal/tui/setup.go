package tui

import (
	"fmt"
	"strconv"
	"strings"

	"paydown/internal/config"
	"paydown/internal/model"
	"paydown/internal/store"
	"paydown/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// setupValues holds the raw first-run form inputs.
type setupValues struct {
	income     string
	extra      string
	themeName  string
	seedSample bool
}

// newSetupForm builds the first-run wizard. ledgerSize controls
// whether the sample-ledger offer is shown.
func newSetupForm(ledgerSize int, vals *setupValues) *huh.Form {
	vals.themeName = theme.Active.Name

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	fields := []huh.Field{
		huh.NewInput().
			Title("Monthly take-home income").
			Description("Used for the stress score and payment headroom.").
			Placeholder("125000").
			Validate(validateAmount).
			Value(&vals.income),
		huh.NewInput().
			Title("Extra monthly payment toward debt").
			Description("Leave blank for none.").
			Placeholder("5000").
			Validate(validateAmount).
			Value(&vals.extra),
		huh.NewSelect[string]().
			Title("Color theme").
			Options(themeOpts...).
			Value(&vals.themeName),
	}

	if ledgerSize == 0 {
		fields = append(fields, huh.NewConfirm().
			Title("Load the example ledger?").
			Description("Four sample debts so you can explore right away.").
			Value(&vals.seedSample))
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

func validateAmount(s string) error {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

func parseAmount(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.saveSetupConfig()
		a.needSetup = false
		a.setupForm = nil
		// Reload so new income, extra, and sample debts take effect
		a.loaded = false
		return a, tea.Batch(
			loadReportCmd(a.dbPath, a.income, a.extra),
			a.spinner.Tick,
		)
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

// saveSetupConfig persists the wizard results and applies them to the
// running app.
func (a *App) saveSetupConfig() {
	cfg, _ := config.Load()

	if income := parseAmount(a.setupVals.income); income > 0 {
		cfg.Profile.MonthlyIncome = income
		a.income = income
	}
	if extra := parseAmount(a.setupVals.extra); extra > 0 {
		cfg.Profile.ExtraPayment = extra
		a.extra = extra
	}

	cfg.Appearance.Theme = a.setupVals.themeName
	theme.SetActive(cfg.Appearance.Theme)

	_ = config.Save(cfg)

	if a.setupVals.seedSample {
		if l, err := store.Open(a.dbPath); err == nil {
			_ = l.Replace(model.SampleLedger())
			_ = l.Close()
		}
	}
}
