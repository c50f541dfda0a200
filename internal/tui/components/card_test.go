package components

import (
	"strings"
	"testing"

	"paydown/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsExactly(t *testing.T) {
	cases := []struct{ total, n int }{
		{100, 4},
		{101, 4},
		{103, 4},
		{80, 3},
		{7, 2},
	}
	for _, c := range cases {
		widths := LayoutRow(c.total, c.n)
		if len(widths) != c.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", c.total, c.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != c.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", c.total, c.n, sum)
		}
	}
}

func TestLayoutRowDegenerate(t *testing.T) {
	if got := LayoutRow(100, 0); got != nil {
		t.Errorf("LayoutRow(100, 0) = %v, want nil", got)
	}
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	if got := len(strings.Split(joined, "\n")); got != tallLines {
		t.Errorf("joined height = %d, want %d (tallest card)", got, tallLines)
	}
}

func TestSparklineEmpty(t *testing.T) {
	if got := Sparkline(nil, theme.Active.Blue); got != "" {
		t.Errorf("Sparkline(nil) = %q, want empty", got)
	}
}

func TestBarChartFallsBackToSparkline(t *testing.T) {
	theme.SetActive("flexoki-dark")
	vals := []float64{1, 2, 3}

	small := BarChart(vals, nil, theme.Active.Blue, 10, 2)
	if strings.Contains(small, "\n") {
		t.Error("tiny chart area should fall back to a one-line sparkline")
	}
}
