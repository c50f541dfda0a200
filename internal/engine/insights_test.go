package engine

import (
	"strings"
	"testing"

	"paydown/internal/model"
)

func runAll(ledger []model.Debt, extra float64) map[model.Strategy]model.StrategyResult {
	results := make(map[model.Strategy]model.StrategyResult, len(model.Strategies))
	for _, s := range model.Strategies {
		results[s] = Simulate(ledger, s, extra)
	}
	return results
}

func TestInsights_EmptyLedgerShortCircuits(t *testing.T) {
	got := Insights(nil, 50000, model.ScoreResult{Grade: model.GradeNotApplicable}, nil, 0)
	if len(got) != 1 {
		t.Fatalf("insights = %d, want exactly 1", len(got))
	}
	if got[0].Type != model.InsightInfo || got[0].Title != "Getting started" {
		t.Errorf("got %+v, want the getting-started insight", got[0])
	}
}

func TestInsights_ZeroIncomeShortCircuits(t *testing.T) {
	ledger := model.SampleLedger()
	got := Insights(ledger, 0, Score(ledger, 0), runAll(ledger, 0), 0)
	if len(got) != 1 || got[0].Title != "Getting started" {
		t.Errorf("zero income should yield only the getting-started insight, got %d", len(got))
	}
}

func TestInsights_EvaluationOrder(t *testing.T) {
	// A stressed ledger that trips five rules; they must surface in
	// evaluation order, critical first.
	ledger := []model.Debt{
		{ID: 1, Name: "Card A", Balance: 200000, Rate: 30, EMI: 3000, Type: model.DebtRevolving},
		{ID: 2, Name: "Card B", Balance: 150000, Rate: 25, EMI: 2500, Type: model.DebtRevolving},
		{ID: 3, Name: "Auto", Balance: 100000, Rate: 8, EMI: 500, Type: model.DebtSecured},
	}
	income, extra := 10000.0, 2500.0

	got := Insights(ledger, income, Score(ledger, income), runAll(ledger, extra), extra)

	if len(got) != 5 {
		t.Fatalf("insights = %d, want 5 (truncated)", len(got))
	}
	if got[0].Type != model.InsightCritical {
		t.Errorf("first insight type = %q, want critical (EMI overload)", got[0].Type)
	}
	if got[1].Title != "High-rate debt is burning you" {
		t.Errorf("second insight = %q, want the toxic-debt alert", got[1].Title)
	}
}

func TestInsights_ConsolidationAndTruncation(t *testing.T) {
	// Two cards more than 3pp above the 11.5% weighted average
	// ((1,000,000*8 + 100,000*30 + 100,000*28) / 1,200,000) trip the
	// consolidation rule, and six rules fire in total: EMI overload
	// (65%), toxic debt, best-strategy savings, thin buffer (15% left),
	// consolidation, and high leverage (5x). The list stops at five, so
	// the leverage warning is dropped.
	ledger := []model.Debt{
		{ID: 1, Name: "Home", Balance: 1000000, Rate: 8, EMI: 8000, Type: model.DebtSecured},
		{ID: 2, Name: "Card A", Balance: 100000, Rate: 30, EMI: 2500, Type: model.DebtRevolving},
		{ID: 3, Name: "Card B", Balance: 100000, Rate: 28, EMI: 2500, Type: model.DebtRevolving},
	}
	income, extra := 20000.0, 4000.0

	got := Insights(ledger, income, Score(ledger, income), runAll(ledger, extra), extra)

	if len(got) != 5 {
		t.Fatalf("insights = %d, want 5 (six rules fired, truncated)", len(got))
	}

	cons := got[4]
	if cons.Title != "Consolidation may help" {
		t.Fatalf("fifth insight = %q, want the consolidation insight", cons.Title)
	}
	if !strings.Contains(cons.Body, "2 debts") {
		t.Errorf("body should count the two above-average debts: %q", cons.Body)
	}
	if !strings.Contains(cons.Body, "11.5%") {
		t.Errorf("body should report the 11.5%% average rate: %q", cons.Body)
	}

	for _, ins := range got {
		if ins.Title == "High leverage" {
			t.Error("sixth-priority leverage warning should have been truncated")
		}
	}
}

func TestInsights_ToxicDebtUsesFirstRate(t *testing.T) {
	// Two qualifying debts at different rates: the cost of delay is the
	// combined balance priced at the FIRST debt's rate only.
	ledger := []model.Debt{
		{ID: 1, Name: "Store Card", Balance: 1000, Rate: 20, EMI: 100, Type: model.DebtRevolving},
		{ID: 2, Name: "Payday", Balance: 2000, Rate: 36, EMI: 200, Type: model.DebtUnsecured},
	}
	income := 100000.0

	got := Insights(ledger, income, Score(ledger, income), runAll(ledger, 0), 0)

	var toxic *model.Insight
	for i := range got {
		if got[i].Title == "High-rate debt is burning you" {
			toxic = &got[i]
			break
		}
	}
	if toxic == nil {
		t.Fatal("toxic-debt insight not emitted")
	}
	if !strings.Contains(toxic.Body, "Store Card, Payday") {
		t.Errorf("body should name both debts: %q", toxic.Body)
	}
	if !strings.Contains(toxic.Body, "3,000") {
		t.Errorf("body should report the combined balance: %q", toxic.Body)
	}
	// 3000 * 20 / 1200 = 50, not the blended or per-debt figure.
	if !strings.Contains(toxic.Body, "50") {
		t.Errorf("cost of delay should be 50 (first rate applied to combined balance): %q", toxic.Body)
	}
}

func TestInsights_BestStrategySavings(t *testing.T) {
	ledger := model.SampleLedger()
	income, extra := 125000.0, 5000.0
	results := runAll(ledger, extra)

	got := Insights(ledger, income, Score(ledger, income), results, extra)

	var found bool
	for _, ins := range got {
		if ins.Type == model.InsightSuccess && strings.Contains(ins.Title, "saves you") {
			found = true
		}
	}
	if !found {
		t.Error("expected a best-strategy savings insight for the sample ledger with extra payment")
	}
}

func TestInsights_SafeExtraSuggestion(t *testing.T) {
	ledger := []model.Debt{
		{ID: 1, Name: "Loan", Balance: 500000, Rate: 9, EMI: 20000, Type: model.DebtSecured},
	}
	income := 100000.0

	// remaining = 80,000 (80%), suggestion = round((80000-30000)/1000)*1000 = 50,000.
	got := Insights(ledger, income, Score(ledger, income), runAll(ledger, 0), 0)

	var opp *model.Insight
	for i := range got {
		if got[i].Type == model.InsightOpportunity {
			opp = &got[i]
			break
		}
	}
	if opp == nil {
		t.Fatal("opportunity insight not emitted with 80% income remaining")
	}
	if !strings.Contains(opp.Body, "50,000") {
		t.Errorf("suggested extra should be 50,000: %q", opp.Body)
	}

	// With extra already at the suggestion, the rule stays silent.
	got = Insights(ledger, income, Score(ledger, income), runAll(ledger, 50000), 50000)
	for _, ins := range got {
		if ins.Type == model.InsightOpportunity {
			t.Errorf("opportunity emitted even though suggestion does not exceed current extra")
		}
	}
}

func TestInsights_ThinBufferWarning(t *testing.T) {
	ledger := []model.Debt{
		{ID: 1, Name: "Loan", Balance: 900000, Rate: 11, EMI: 45000, Type: model.DebtSecured},
	}
	income := 50000.0 // 10% left after EMI

	got := Insights(ledger, income, Score(ledger, income), runAll(ledger, 0), 0)

	var found bool
	for _, ins := range got {
		if ins.Title == "Thin safety buffer" {
			found = true
			if !strings.Contains(ins.Body, "135,000") {
				t.Errorf("emergency fund should be 3x EMI = 135,000: %q", ins.Body)
			}
		}
	}
	if !found {
		t.Error("thin-buffer warning not emitted at 10% remaining income")
	}
}

func TestInsights_PositiveReinforcement(t *testing.T) {
	ledger := []model.Debt{
		{ID: 1, Name: "Small Loan", Balance: 50000, Rate: 8, EMI: 5000, Type: model.DebtSecured},
	}
	income := 200000.0

	score := Score(ledger, income)
	if score.Score < 70 {
		t.Fatalf("fixture score = %d, expected >= 70", score.Score)
	}

	got := Insights(ledger, income, score, runAll(ledger, 0), 0)
	var found bool
	for _, ins := range got {
		if ins.Title == "Healthy debt position" {
			found = true
		}
	}
	if !found {
		t.Error("positive reinforcement not emitted for score >= 70")
	}
}

func TestBestStrategy_TieBreak(t *testing.T) {
	results := map[model.Strategy]model.StrategyResult{
		model.StrategyAvalanche: {Strategy: model.StrategyAvalanche, TotalInterest: 1000, Months: 20},
		model.StrategySnowball:  {Strategy: model.StrategySnowball, TotalInterest: 1000, Months: 18},
		model.StrategyHybrid:    {Strategy: model.StrategyHybrid, TotalInterest: 1000, Months: 19},
	}

	best, _, ok := BestStrategy(results)
	if !ok {
		t.Fatal("BestStrategy returned !ok")
	}
	if best != model.StrategyAvalanche {
		t.Errorf("tie winner = %q, want avalanche (first checked)", best)
	}

	// Without avalanche, snowball wins the remaining tie.
	delete(results, model.StrategyAvalanche)
	best, _, _ = BestStrategy(results)
	if best != model.StrategySnowball {
		t.Errorf("tie winner = %q, want snowball", best)
	}
}

func TestBestStrategy_Empty(t *testing.T) {
	if _, _, ok := BestStrategy(nil); ok {
		t.Error("BestStrategy(nil) returned ok")
	}
}

func TestMoney_Grouping(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-50000, "-50,000"},
		{49.6, "50"},
	}
	for _, tc := range cases {
		if got := money(tc.in); got != tc.want {
			t.Errorf("money(%g) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
