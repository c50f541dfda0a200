// Package tui provides the interactive Bubble Tea dashboard for paydown.
package tui

import (
	"fmt"
	"strings"
	"time"

	"paydown/internal/config"
	"paydown/internal/model"
	"paydown/internal/pipeline"
	"paydown/internal/store"
	"paydown/internal/tui/components"
	"paydown/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ReportMsg is sent when the analysis pipeline finishes.
type ReportMsg struct {
	Report   *pipeline.Report
	LoadTime time.Duration
	Err      error
}

// App is the root Bubble Tea model.
type App struct {
	// Data
	report   *pipeline.Report
	loaded   bool
	loadTime time.Duration
	loadErr  error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	payoffStrategy int // index into model.Strategies
	debtsCursor    int
	debtForm       *debtForm

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	// Loading
	spinner spinner.Model

	// Analysis inputs
	dbPath string
	income float64
	extra  float64
}

const (
	minTerminalWidth = 70
	compactWidth     = 110
	maxContentWidth  = 160

	minContentHeight = 5
)

// NewApp creates a new TUI app model.
func NewApp(dbPath string, income, extra float64) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		dbPath:         dbPath,
		income:         income,
		extra:          extra,
		needSetup:      !config.Exists(),
		payoffStrategy: 1, // avalanche
		spinner:        sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		loadReportCmd(a.dbPath, a.income, a.extra),
		a.spinner.Tick,
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Forward to setup form if active
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Inline add-debt form intercepts all keys
		if a.debtForm != nil {
			return a.updateDebtForm(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		// Dismiss help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Reload ledger and recompute
		if key == "r" {
			a.loaded = false
			return a, tea.Batch(
				loadReportCmd(a.dbPath, a.income, a.extra),
				a.spinner.Tick,
			)
		}

		// Payoff tab: cycle strategies
		if a.activeTab == 1 {
			switch key {
			case "tab", "s":
				a.payoffStrategy = (a.payoffStrategy + 1) % len(model.Strategies)
				return a, nil
			case "S":
				a.payoffStrategy = (a.payoffStrategy - 1 + len(model.Strategies)) % len(model.Strategies)
				return a, nil
			}
		}

		// Debts tab: cursor movement and ledger edits
		if a.activeTab == 3 && a.report != nil {
			switch key {
			case "j", "down":
				if a.debtsCursor < len(a.report.Ledger)-1 {
					a.debtsCursor++
				}
				return a, nil
			case "k", "up":
				if a.debtsCursor > 0 {
					a.debtsCursor--
				}
				return a, nil
			case "a":
				a.debtForm = newDebtForm()
				return a, a.debtForm.inputs[debtFieldName].Cursor.BlinkCmd()
			case "x":
				if a.debtsCursor < len(a.report.Ledger) {
					id := a.report.Ledger[a.debtsCursor].ID
					a.loaded = false
					return a, tea.Batch(
						removeDebtCmd(a.dbPath, id, a.income, a.extra),
						a.spinner.Tick,
					)
				}
				return a, nil
			}
		}

		// Tab navigation
		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if len(key) == 1 {
				if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil

	case ReportMsg:
		a.report = msg.Report
		a.loadErr = msg.Err
		a.loadTime = msg.LoadTime
		a.loaded = true

		if a.debtsCursor >= a.ledgerSize() {
			a.debtsCursor = a.ledgerSize() - 1
		}
		if a.debtsCursor < 0 {
			a.debtsCursor = 0
		}

		// Activate first-run setup after the first load
		if a.needSetup {
			a.setupForm = newSetupForm(a.ledgerSize(), &a.setupVals)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}

		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	if f := a.debtForm; f != nil && f.focus < debtFieldType {
		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) ledgerSize() int {
	if a.report == nil {
		return 0
	}
	return len(a.report.Ledger)
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	// First-run setup wizard
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  paydown needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ paydown"))
	b.WriteString(subtitleStyle.Render(" · Debt Analyzer"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Render(a.spinner.View()))
	b.WriteString(subtitleStyle.Render(" Crunching the numbers..."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o p i d", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate debts"},
		{"a / x", "Add / delete debt"},
		{"s / S", "Cycle payoff strategy"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"r", "Reload ledger"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	status := fmt.Sprintf("%.0fms", float64(a.loadTime.Microseconds())/1000)
	statusBar := components.RenderStatusBar(w, status)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderPayoffTab(cw)
	case 2:
		content = a.renderInsightsTab(cw)
	case 3:
		content = a.renderDebtsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// renderEmptyLedger is shown by tabs when there is nothing to analyze.
func (a App) renderEmptyLedger(cw int) string {
	t := theme.Active
	body := lipgloss.NewStyle().Foreground(t.TextMuted).Render(
		"No debts in your ledger yet.\n\n" +
			"Press a on the Debts tab to add one,\n" +
			"or load the example: `paydown debts sample`.")
	return components.ContentCard("Empty ledger", body, cw/2)
}

// ─── Loading ────────────────────────────────────────────────────

// loadReportCmd opens the ledger and runs the full analysis in a
// background command.
func loadReportCmd(dbPath string, income, extra float64) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()

		ledger, err := store.Open(dbPath)
		if err != nil {
			return ReportMsg{Err: err, LoadTime: time.Since(start)}
		}
		defer func() { _ = ledger.Close() }()

		debts, err := ledger.List()
		if err != nil {
			return ReportMsg{Err: err, LoadTime: time.Since(start)}
		}

		return ReportMsg{
			Report:   pipeline.BuildReport(debts, income, extra),
			LoadTime: time.Since(start),
		}
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
