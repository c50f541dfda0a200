package engine

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"paydown/internal/model"
)

func singleDebt(balance, rate, emi float64) []model.Debt {
	return []model.Debt{
		{ID: 1, Name: "Loan", Balance: balance, Rate: rate, EMI: emi, Type: model.DebtUnsecured},
	}
}

func TestSimulate_EmptyLedger(t *testing.T) {
	r := Simulate(nil, model.StrategyAvalanche, 5000)
	if r.Months != 0 {
		t.Errorf("Months = %d, want 0", r.Months)
	}
	if r.TotalInterest != 0 {
		t.Errorf("TotalInterest = %g, want 0", r.TotalInterest)
	}
	if len(r.Timeline) != 0 || len(r.Milestones) != 0 {
		t.Errorf("timeline/milestones not empty: %d/%d", len(r.Timeline), len(r.Milestones))
	}
}

func TestSimulate_SingleDebtAmortizes(t *testing.T) {
	// 100,000 at 12% with EMI 5,000: standard amortization, must clear
	// well before the cap. Months follow the closed-form annuity count.
	r := Simulate(singleDebt(100000, 12, 5000), model.StrategyBaseline, 0)

	if r.Months >= model.SimulationCapMonths {
		t.Fatalf("Months = %d, expected termination before the cap", r.Months)
	}

	i := 12.0 / 1200
	wantMonths := int(math.Ceil(-math.Log(1-100000*i/5000) / math.Log(1+i)))
	if r.Months != wantMonths {
		t.Errorf("Months = %d, want %d (annuity formula)", r.Months, wantMonths)
	}

	// Reference month-by-month model.
	balance := 100000.0
	var refInterest float64
	for balance > 0 {
		interest := balance * i
		refInterest += interest
		principal := math.Min(5000-interest, balance)
		balance -= principal
	}
	if r.TotalInterest != math.Round(refInterest) {
		t.Errorf("TotalInterest = %g, want %g", r.TotalInterest, math.Round(refInterest))
	}
}

func TestSimulate_NegativeAmortizationHitsCap(t *testing.T) {
	// EMI 1,000 against 2,000/month interest: the balance never moves
	// and the run must stop at the cap, not loop or panic.
	r := Simulate(singleDebt(100000, 24, 1000), model.StrategyBaseline, 0)

	if r.Months != model.SimulationCapMonths {
		t.Fatalf("Months = %d, want %d", r.Months, model.SimulationCapMonths)
	}
	if !r.CapReached() {
		t.Error("CapReached() = false, want true")
	}

	// Flat balance: 600 months of 2,000 interest.
	if r.TotalInterest != 1200000 {
		t.Errorf("TotalInterest = %g, want 1200000", r.TotalInterest)
	}

	// Sampling stops at month 360 even though the run continues.
	for _, p := range r.Timeline {
		if p.Month > model.TimelineSampleCapMonths {
			t.Errorf("timeline sample at month %d, past the %d cap", p.Month, model.TimelineSampleCapMonths)
		}
	}
	last := r.Timeline[len(r.Timeline)-1]
	if last.Month != model.TimelineSampleCapMonths {
		t.Errorf("last sample month = %d, want %d", last.Month, model.TimelineSampleCapMonths)
	}
	if last.Balance != 100000 {
		t.Errorf("last sampled balance = %g, want 100000 (flat)", last.Balance)
	}
}

func TestSimulate_ClearingAtCapIsNotCapped(t *testing.T) {
	// Zero-rate debt sized to clear in exactly 600 EMI payments. The
	// last timeline sample (month 360) still shows a positive balance,
	// so cap state must come from the terminal balance, not the
	// truncated timeline.
	r := Simulate(singleDebt(6000, 0, 10), model.StrategyBaseline, 0)

	if r.Months != model.SimulationCapMonths {
		t.Fatalf("Months = %d, want %d", r.Months, model.SimulationCapMonths)
	}
	if r.FinalBalance != 0 {
		t.Errorf("FinalBalance = %g, want 0", r.FinalBalance)
	}
	if r.CapReached() {
		t.Error("CapReached() = true for a run that cleared at the final month")
	}
}

func TestSimulate_ClearingPastSamplingCapIsNotCapped(t *testing.T) {
	// Clears at month 500; sampling stopped at 360 with balance left.
	r := Simulate(singleDebt(5000, 0, 10), model.StrategyBaseline, 0)

	if r.Months != 500 {
		t.Fatalf("Months = %d, want 500", r.Months)
	}
	if last := r.Timeline[len(r.Timeline)-1]; last.Balance <= 0 {
		t.Fatalf("fixture wrong: last sample balance = %g, want positive", last.Balance)
	}
	if r.CapReached() {
		t.Error("CapReached() = true for a debt-free run")
	}
}

func TestSimulate_Idempotent(t *testing.T) {
	ledger := model.SampleLedger()
	a := Simulate(ledger, model.StrategyHybrid, 5000)
	b := Simulate(ledger, model.StrategyHybrid, 5000)
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different results")
	}
}

func TestSimulate_DoesNotMutateLedger(t *testing.T) {
	ledger := model.SampleLedger()
	before := make([]model.Debt, len(ledger))
	copy(before, ledger)

	Simulate(ledger, model.StrategyAvalanche, 10000)

	if !reflect.DeepEqual(ledger, before) {
		t.Error("Simulate mutated the ledger")
	}
}

func TestSimulate_BaselineIgnoresExtra(t *testing.T) {
	ledger := model.SampleLedger()
	a := Simulate(ledger, model.StrategyBaseline, 0)
	b := Simulate(ledger, model.StrategyBaseline, 25000)
	if !reflect.DeepEqual(a, b) {
		t.Error("baseline run changed with extra payment; it must ignore it")
	}
}

func TestSimulate_ExtraNeverIncreasesInterest(t *testing.T) {
	ledger := model.SampleLedger()
	baseline := Simulate(ledger, model.StrategyBaseline, 5000)

	for _, s := range []model.Strategy{model.StrategyAvalanche, model.StrategySnowball, model.StrategyHybrid} {
		r := Simulate(ledger, s, 5000)
		if r.TotalInterest > baseline.TotalInterest {
			t.Errorf("%s interest %g exceeds baseline %g", s, r.TotalInterest, baseline.TotalInterest)
		}
		if r.Months > baseline.Months {
			t.Errorf("%s months %d exceeds baseline %d", s, r.Months, baseline.Months)
		}
	}
}

func TestSimulate_MonotonicInExtra(t *testing.T) {
	ledger := model.SampleLedger()
	for _, s := range []model.Strategy{model.StrategyAvalanche, model.StrategySnowball, model.StrategyHybrid} {
		prev := Simulate(ledger, s, 0)
		for _, extra := range []float64{2000, 5000, 10000, 50000} {
			r := Simulate(ledger, s, extra)
			if r.Months > prev.Months {
				t.Errorf("%s: months %d > %d with larger extra", s, r.Months, prev.Months)
			}
			if r.TotalInterest > prev.TotalInterest {
				t.Errorf("%s: interest %g > %g with larger extra", s, r.TotalInterest, prev.TotalInterest)
			}
			prev = r
		}
	}
}

func TestSimulate_MilestoneOrdering(t *testing.T) {
	for _, s := range model.Strategies {
		r := Simulate(model.SampleLedger(), s, 5000)

		lastMonth := 0
		var thresholdPcts []int
		for _, m := range r.Milestones {
			if m.Month < lastMonth {
				t.Errorf("%s: milestone month %d after %d", s, m.Month, lastMonth)
			}
			lastMonth = m.Month
			if !strings.Contains(m.Label, "cleared") {
				thresholdPcts = append(thresholdPcts, m.Pct)
			}
		}
		for i := 1; i < len(thresholdPcts); i++ {
			if thresholdPcts[i] <= thresholdPcts[i-1] {
				t.Errorf("%s: threshold pcts not strictly increasing: %v", s, thresholdPcts)
			}
		}
	}
}

func TestSimulate_TerminalMilestoneWhenFewEvents(t *testing.T) {
	// A never-amortizing debt fires no threshold or cleared events, so
	// the synthetic terminal milestone must close the list on its own,
	// at the cap month.
	r := Simulate(singleDebt(100000, 24, 1000), model.StrategyBaseline, 0)

	if len(r.Milestones) != 1 {
		t.Fatalf("milestones = %d, want exactly the terminal one", len(r.Milestones))
	}
	last := r.Milestones[0]
	if last.Label != "Debt free!" || last.Pct != 100 {
		t.Errorf("terminal milestone = %+v, want Debt free! at pct 100", last)
	}
	if last.Month != r.Months {
		t.Errorf("terminal milestone month = %d, want %d", last.Month, r.Months)
	}
}

func TestSimulate_ClearedMilestonePerDebt(t *testing.T) {
	r := Simulate(model.SampleLedger(), model.StrategyAvalanche, 20000)

	seen := map[string]int{}
	for _, m := range r.Milestones {
		if strings.HasSuffix(m.Label, "cleared!") {
			seen[m.Label]++
		}
	}
	for _, d := range model.SampleLedger() {
		label := d.Name + " cleared!"
		if seen[label] != 1 {
			t.Errorf("%q fired %d times, want exactly 1", label, seen[label])
		}
	}
}

func TestSimulate_TimelineSamplingStride(t *testing.T) {
	r := Simulate(model.SampleLedger(), model.StrategySnowball, 5000)

	for i, p := range r.Timeline {
		terminal := i == len(r.Timeline)-1
		if p.Month%3 != 0 && !terminal {
			t.Errorf("sample %d at month %d is neither a 3rd month nor terminal", i, p.Month)
		}
	}
	last := r.Timeline[len(r.Timeline)-1]
	if last.Month != r.Months {
		t.Errorf("last sample month = %d, want terminal month %d", last.Month, r.Months)
	}
	if last.Balance != 0 {
		t.Errorf("terminal balance = %g, want 0", last.Balance)
	}
}

func TestSimulate_AvalancheClearsHighestRateFirst(t *testing.T) {
	ledger := []model.Debt{
		{ID: 1, Name: "Cheap", Balance: 50000, Rate: 6, EMI: 2000, Type: model.DebtSecured},
		{ID: 2, Name: "Costly", Balance: 50000, Rate: 30, EMI: 2000, Type: model.DebtRevolving},
	}
	r := Simulate(ledger, model.StrategyAvalanche, 10000)

	var order []string
	for _, m := range r.Milestones {
		if strings.HasSuffix(m.Label, "cleared!") {
			order = append(order, m.Label)
		}
	}
	if len(order) != 2 || order[0] != "Costly cleared!" {
		t.Errorf("cleared order = %v, want Costly first", order)
	}
}

func TestSimulate_SnowballClearsSmallestFirst(t *testing.T) {
	ledger := []model.Debt{
		{ID: 1, Name: "Big", Balance: 80000, Rate: 20, EMI: 3000, Type: model.DebtUnsecured},
		{ID: 2, Name: "Small", Balance: 10000, Rate: 10, EMI: 1000, Type: model.DebtUnsecured},
	}
	r := Simulate(ledger, model.StrategySnowball, 5000)

	for _, m := range r.Milestones {
		if strings.HasSuffix(m.Label, "cleared!") {
			if m.Label != "Small cleared!" {
				t.Errorf("first cleared = %q, want Small", m.Label)
			}
			break
		}
	}
}

func TestAllocationOrder_StableOnTies(t *testing.T) {
	// Equal rates under avalanche: ledger order must be preserved.
	ledger := []model.Debt{
		{ID: 1, Name: "First", Balance: 5000, Rate: 18, EMI: 500, Type: model.DebtUnsecured},
		{ID: 2, Name: "Second", Balance: 4000, Rate: 18, EMI: 500, Type: model.DebtUnsecured},
		{ID: 3, Name: "Third", Balance: 3000, Rate: 18, EMI: 500, Type: model.DebtUnsecured},
	}
	remaining := []float64{5000, 4000, 3000}

	order := allocationOrder(ledger, remaining, model.StrategyAvalanche)
	if !reflect.DeepEqual(order, []int{0, 1, 2}) {
		t.Errorf("order = %v, want original ledger order on ties", order)
	}
}

func TestSimulate_ExtraSpillsAcrossDebts(t *testing.T) {
	// Extra large enough to clear the first-ordered debt in month one
	// must spill the remainder into the next debt.
	ledger := []model.Debt{
		{ID: 1, Name: "A", Balance: 3000, Rate: 24, EMI: 100, Type: model.DebtRevolving},
		{ID: 2, Name: "B", Balance: 50000, Rate: 12, EMI: 2000, Type: model.DebtSecured},
	}
	r := Simulate(ledger, model.StrategyAvalanche, 10000)

	if len(r.Milestones) == 0 || r.Milestones[0].Month != 1 {
		t.Fatalf("expected a first-month milestone, got %+v", r.Milestones)
	}

	// Month 1: A cleared (3000 minus EMI principal, rest from extra),
	// spill reduces B below its EMI-only trajectory.
	first := r.Timeline[0]
	bOnly := Simulate(ledger[1:], model.StrategyBaseline, 0)
	if first.Balance >= bOnly.Timeline[0].Balance {
		t.Errorf("no spill detected: combined balance %g, B alone %g", first.Balance, bOnly.Timeline[0].Balance)
	}
}
