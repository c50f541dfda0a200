// Package engine implements the paydown core: the stress score
// calculator, the payoff simulator, and the insight rule engine. All
// three are pure functions over an immutable ledger snapshot; they
// never mutate their inputs and are safe to call concurrently.
package engine

import (
	"math"

	"paydown/internal/model"
)

// band pairs a factor threshold with its score deduction. Bands are
// checked most-severe first and at most one applies per factor.
type band struct {
	above  float64
	deduct int
}

var (
	emiBurdenBands = []band{
		{55, 40}, {45, 30}, {35, 20}, {25, 10}, {15, 3},
	}
	leverageBands = []band{
		{6, 25}, {4, 18}, {2.5, 12}, {1, 5},
	}
	weightedRateBands = []band{
		{24, 22}, {16, 14}, {10, 7},
	}
	toxicRatioBands = []band{
		{40, 18}, {25, 12}, {10, 5},
	}
	complexityBands = []band{
		{5, 10}, {3, 5},
	}
)

func deduction(value float64, bands []band) int {
	for _, b := range bands {
		if value > b.above {
			return b.deduct
		}
	}
	return 0
}

// highRateThreshold is the APR above which a balance counts toward the
// high-rate (toxic) ratio for scoring purposes.
const highRateThreshold = 15

// Factors computes the derived stress factors for a ledger and income.
// It is total: a nil/empty ledger or zero totals yield zero factors.
func Factors(ledger []model.Debt, monthlyIncome float64) model.StressFactors {
	f := model.StressFactors{NumDebts: len(ledger)}

	var rateWeighted, highRateBalance float64
	for _, d := range ledger {
		f.TotalEMI += d.EMI
		f.TotalBalance += d.Balance
		rateWeighted += d.Rate * d.Balance
		if d.Rate > highRateThreshold {
			highRateBalance += d.Balance
		}
	}

	if f.TotalBalance > 0 {
		f.WeightedRate = rateWeighted / f.TotalBalance
		f.HighRateRatio = 100 * highRateBalance / f.TotalBalance
	}
	if monthlyIncome > 0 {
		f.EMIToIncome = 100 * f.TotalEMI / monthlyIncome
		f.DebtToAnnualIncome = f.TotalBalance / (monthlyIncome * 12)
	}

	return f
}

// Score computes the composite stress score for a ledger and monthly
// income. An empty ledger or non-positive income returns the
// not-applicable sentinel (score 0, GradeNotApplicable) rather than a
// real score of zero.
func Score(ledger []model.Debt, monthlyIncome float64) model.ScoreResult {
	if len(ledger) == 0 || monthlyIncome <= 0 {
		return model.ScoreResult{Grade: model.GradeNotApplicable}
	}

	f := Factors(ledger, monthlyIncome)

	score := 100
	score -= deduction(f.EMIToIncome, emiBurdenBands)
	score -= deduction(f.DebtToAnnualIncome, leverageBands)
	score -= deduction(f.WeightedRate, weightedRateBands)
	score -= deduction(f.HighRateRatio, toxicRatioBands)
	score -= deduction(float64(f.NumDebts), complexityBands)

	rounded := int(math.Round(float64(score)))
	if rounded < 0 {
		rounded = 0
	}
	if rounded > 100 {
		rounded = 100
	}

	return model.ScoreResult{
		Score:   rounded,
		Grade:   model.GradeFor(rounded),
		Factors: f,
	}
}
