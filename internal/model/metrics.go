package model

// StressFactors is the derived snapshot of the five inputs to the
// stress score. It is recomputed in full on every scoring call and
// never mutated in place.
type StressFactors struct {
	EMIToIncome        float64 // total EMI as % of monthly income
	DebtToAnnualIncome float64 // total balance / (monthly income * 12)
	WeightedRate       float64 // balance-weighted average APR, %
	HighRateRatio      float64 // % of balance held at rate > 15
	NumDebts           int
	TotalEMI           float64
	TotalBalance       float64
}

// Grade buckets a stress score for display.
type Grade string

const (
	// GradeNotApplicable marks the empty-ledger / zero-income sentinel.
	// A score of 0 with this grade means insufficient data, not a real
	// score of zero; callers must special-case it.
	GradeNotApplicable Grade = "n/a"

	GradeCritical  Grade = "Critical"
	GradeStressed  Grade = "Stressed"
	GradeGood      Grade = "Good"
	GradeExcellent Grade = "Excellent"
)

// GradeFor maps a score in [0,100] to its grade band.
func GradeFor(score int) Grade {
	switch {
	case score >= 80:
		return GradeExcellent
	case score >= 65:
		return GradeGood
	case score >= 45:
		return GradeStressed
	default:
		return GradeCritical
	}
}

// ScoreResult is the output of the stress score calculator.
type ScoreResult struct {
	Score   int // 0-100
	Grade   Grade
	Factors StressFactors
}

// Applicable reports whether the result carries a real score.
func (r ScoreResult) Applicable() bool {
	return r.Grade != GradeNotApplicable
}
