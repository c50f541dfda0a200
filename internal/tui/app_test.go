package tui

import (
	"strings"
	"testing"

	"paydown/internal/model"
	"paydown/internal/tui/components"
)

func TestTabKeysResolve(t *testing.T) {
	cases := []struct {
		key  rune
		want int
	}{
		{'o', 0},
		{'p', 1},
		{'i', 2},
		{'d', 3},
		{'z', -1},
	}
	for _, c := range cases {
		if got := components.TabIdxByKey(c.key); got != c.want {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", c.key, got, c.want)
		}
	}
}

func TestWrapTextRespectsWidth(t *testing.T) {
	text := "High-rate debt is burning you and every month of delay costs real money"
	wrapped := wrapText(text, 20)

	for _, line := range strings.Split(wrapped, "\n") {
		if len([]rune(line)) > 20 {
			t.Errorf("line %q exceeds width 20", line)
		}
	}

	// No words lost
	if strings.Join(strings.Fields(wrapped), " ") != strings.Join(strings.Fields(text), " ") {
		t.Error("wrapping changed the text content")
	}
}

func TestDebtFormBuildsDebt(t *testing.T) {
	f := newDebtForm()
	f.inputs[debtFieldName].SetValue("Car Loan")
	f.inputs[debtFieldBalance].SetValue("600,000")
	f.inputs[debtFieldRate].SetValue("9.5")
	f.inputs[debtFieldEMI].SetValue("12,000")
	f.typeIdx = 1 // secured

	d, err := f.debt()
	if err != nil {
		t.Fatalf("debt() error: %v", err)
	}
	if d.Name != "Car Loan" || d.Balance != 600000 || d.Rate != 9.5 || d.EMI != 12000 {
		t.Errorf("debt() = %+v", d)
	}
	if d.Type != model.DebtSecured {
		t.Errorf("debt() type = %q, want secured", d.Type)
	}
}

func TestDebtFormRequiresName(t *testing.T) {
	f := newDebtForm()
	f.inputs[debtFieldBalance].SetValue("1000")
	f.inputs[debtFieldEMI].SetValue("100")

	if _, err := f.debt(); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestTruncStr(t *testing.T) {
	if got := truncStr("Credit Card", 20); got != "Credit Card" {
		t.Errorf("truncStr short = %q", got)
	}
	if got := truncStr("Credit Card", 6); got != "Credi…" {
		t.Errorf("truncStr long = %q", got)
	}
	if got := truncStr("abc", 0); got != "" {
		t.Errorf("truncStr zero = %q", got)
	}
}
