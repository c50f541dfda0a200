package engine

import (
	"math"
	"testing"

	"paydown/internal/model"
)

func approx(t *testing.T, label string, got, want, eps float64) {
	t.Helper()
	if math.Abs(got-want) > eps {
		t.Errorf("%s = %g, want %g (±%g)", label, got, want, eps)
	}
}

func TestScore_EmptyLedger(t *testing.T) {
	r := Score(nil, 50000)
	if r.Score != 0 {
		t.Errorf("Score = %d, want 0", r.Score)
	}
	if r.Grade != model.GradeNotApplicable {
		t.Errorf("Grade = %q, want %q", r.Grade, model.GradeNotApplicable)
	}
	if r.Applicable() {
		t.Error("Applicable() = true for empty ledger")
	}
}

func TestScore_ZeroIncome(t *testing.T) {
	r := Score(model.SampleLedger(), 0)
	if r.Grade != model.GradeNotApplicable {
		t.Errorf("Grade = %q, want sentinel for zero income", r.Grade)
	}
}

func TestScore_SampleLedgerGolden(t *testing.T) {
	r := Score(model.SampleLedger(), 125000)

	if r.Score != 63 {
		t.Errorf("Score = %d, want 63", r.Score)
	}
	if r.Grade != model.GradeStressed {
		t.Errorf("Grade = %q, want %q", r.Grade, model.GradeStressed)
	}

	f := r.Factors
	approx(t, "EMIToIncome", f.EMIToIncome, 43.6, 0.001)
	approx(t, "DebtToAnnualIncome", f.DebtToAnnualIncome, 2.36667, 0.0001)
	approx(t, "WeightedRate", f.WeightedRate, 10.29577, 0.0001)
	approx(t, "HighRateRatio", f.HighRateRatio, 4.22535, 0.0001)
	if f.NumDebts != 4 {
		t.Errorf("NumDebts = %d, want 4", f.NumDebts)
	}
	approx(t, "TotalEMI", f.TotalEMI, 54500, 0.001)
	approx(t, "TotalBalance", f.TotalBalance, 3550000, 0.001)
}

func TestScore_ClampsToZero(t *testing.T) {
	// Six high-rate debts on a tiny income push every factor into its
	// worst band; raw deductions exceed 100.
	var ledger []model.Debt
	for i := 0; i < 6; i++ {
		ledger = append(ledger, model.Debt{
			ID: int64(i + 1), Name: "loan", Balance: 20000, Rate: 30, EMI: 100,
			Type: model.DebtUnsecured,
		})
	}

	r := Score(ledger, 1000)
	if r.Score != 0 {
		t.Errorf("Score = %d, want 0 (clamped)", r.Score)
	}
	if r.Grade != model.GradeCritical {
		t.Errorf("Grade = %q, want %q", r.Grade, model.GradeCritical)
	}
}

func TestScore_AlwaysInRange(t *testing.T) {
	ledgers := [][]model.Debt{
		model.SampleLedger(),
		{{ID: 1, Balance: 0, Rate: 0, EMI: 0, Type: model.DebtSecured}},
		{{ID: 1, Balance: 1e9, Rate: 48, EMI: 10, Type: model.DebtRevolving}},
	}
	incomes := []float64{1, 1000, 125000, 1e7}

	for _, ledger := range ledgers {
		for _, income := range incomes {
			r := Score(ledger, income)
			if r.Score < 0 || r.Score > 100 {
				t.Errorf("Score(%d debts, income %g) = %d, out of [0,100]",
					len(ledger), income, r.Score)
			}
		}
	}
}

func TestScore_BandsAreExclusive(t *testing.T) {
	// One debt, EMI at 60% of income: only the worst EMI band applies
	// (-40), never the sum of all matching bands.
	ledger := []model.Debt{
		{ID: 1, Name: "big", Balance: 1000, Rate: 5, EMI: 6000, Type: model.DebtSecured},
	}
	r := Score(ledger, 10000)

	// 100 - 40 (EMI > 55) and nothing else: leverage 1000/120000,
	// weighted rate 5, high-rate ratio 0, one debt.
	if r.Score != 60 {
		t.Errorf("Score = %d, want 60", r.Score)
	}
}

func TestGradeFor_Boundaries(t *testing.T) {
	cases := []struct {
		score int
		want  model.Grade
	}{
		{100, model.GradeExcellent},
		{80, model.GradeExcellent},
		{79, model.GradeGood},
		{65, model.GradeGood},
		{64, model.GradeStressed},
		{45, model.GradeStressed},
		{44, model.GradeCritical},
		{0, model.GradeCritical},
	}
	for _, tc := range cases {
		if got := model.GradeFor(tc.score); got != tc.want {
			t.Errorf("GradeFor(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestFactors_ZeroBalanceLedger(t *testing.T) {
	ledger := []model.Debt{
		{ID: 1, Name: "paid", Balance: 0, Rate: 12, EMI: 500, Type: model.DebtSecured},
	}
	f := Factors(ledger, 10000)
	if f.WeightedRate != 0 {
		t.Errorf("WeightedRate = %g, want 0 for zero total balance", f.WeightedRate)
	}
	if f.HighRateRatio != 0 {
		t.Errorf("HighRateRatio = %g, want 0 for zero total balance", f.HighRateRatio)
	}
}
