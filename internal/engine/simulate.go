package engine

import (
	"math"
	"sort"

	"paydown/internal/model"
)

// Milestone labels. The percentage thresholds carry fixed pct values;
// debt-cleared events carry the rounded percent paid at that month.
const (
	labelQuarter  = "25% paid off"
	labelHalfway  = "Halfway!"
	labelThreeQtr = "75% paid off"
	labelDebtFree = "Debt free!"
)

// Simulate projects the payoff of the ledger month by month under the
// given strategy. The ledger is never mutated; balances are copied
// into a working set. The run terminates when every balance reaches
// zero or at the 600-month safety cap, whichever comes first — an EMI
// that cannot cover its own interest is a valid, reportable outcome,
// not an error.
func Simulate(ledger []model.Debt, strategy model.Strategy, extra float64) model.StrategyResult {
	res := model.StrategyResult{Strategy: strategy}
	if len(ledger) == 0 {
		return res
	}

	// Baseline is minimum payments only, whatever the caller passed.
	if strategy == model.StrategyBaseline {
		extra = 0
	}

	remaining := make([]float64, len(ledger))
	var initialTotal float64
	for i, d := range ledger {
		remaining[i] = d.Balance
		initialTotal += d.Balance
	}
	if initialTotal <= 0 {
		return res
	}

	cleared := make([]bool, len(ledger))
	var thresholdFired [3]bool // 25, 50, 75
	thresholds := []struct {
		pct   float64
		label string
	}{
		{25, labelQuarter},
		{50, labelHalfway},
		{75, labelThreeQtr},
	}

	var totalInterest float64
	var monthInterest, monthPrincipal float64
	month := 0

	for month < model.SimulationCapMonths && anyPositive(remaining) {
		month++
		monthInterest, monthPrincipal = 0, 0

		// Scheduled payments: accrue interest, apply EMI principal.
		// Principal floors at zero, so an EMI below the month's
		// interest holds the balance flat (negative amortization).
		for i, d := range ledger {
			if remaining[i] <= 0 {
				continue
			}
			interest := remaining[i] * d.Rate / 1200
			principal := d.EMI - interest
			if principal < 0 {
				principal = 0
			}
			if principal > remaining[i] {
				principal = remaining[i]
			}
			remaining[i] -= principal
			monthInterest += interest
			monthPrincipal += principal
		}
		totalInterest += monthInterest

		// Extra payment pool: fill the first-ordered debt, spill to
		// the next until the pool or the debts run out.
		if extra > 0 {
			pool := extra
			for _, i := range allocationOrder(ledger, remaining, strategy) {
				if pool <= 0 {
					break
				}
				if remaining[i] <= 0 {
					continue
				}
				pay := math.Min(pool, remaining[i])
				remaining[i] -= pay
				monthPrincipal += pay
				pool -= pay
			}
		}

		// Milestones, in strict order: thresholds, then cleared debts.
		currentTotal := sum(remaining)
		pctPaid := 100 * (initialTotal - currentTotal) / initialTotal
		for t, th := range thresholds {
			if !thresholdFired[t] && pctPaid >= th.pct {
				thresholdFired[t] = true
				res.Milestones = append(res.Milestones, model.Milestone{
					Month: month,
					Label: th.label,
					Pct:   int(th.pct),
				})
			}
		}
		for i, d := range ledger {
			if !cleared[i] && remaining[i] <= 0 {
				cleared[i] = true
				res.Milestones = append(res.Milestones, model.Milestone{
					Month: month,
					Label: d.Name + " cleared!",
					Pct:   int(math.Round(pctPaid)),
				})
			}
		}

		if month%3 == 0 && month <= model.TimelineSampleCapMonths {
			res.Timeline = append(res.Timeline, samplePoint(month, currentTotal, monthInterest, monthPrincipal))
		}
	}

	// Terminal timeline sample, unless the month is already sampled or
	// past the sampling cap.
	if month > 0 && month <= model.TimelineSampleCapMonths {
		if n := len(res.Timeline); n == 0 || res.Timeline[n-1].Month != month {
			res.Timeline = append(res.Timeline, samplePoint(month, sum(remaining), monthInterest, monthPrincipal))
		}
	}

	if len(res.Milestones) < 4 {
		res.Milestones = append(res.Milestones, model.Milestone{
			Month: month,
			Label: labelDebtFree,
			Pct:   100,
		})
	}

	res.Months = month
	res.TotalInterest = math.Round(totalInterest)
	res.FinalBalance = math.Round(sum(remaining))
	return res
}

// allocationOrder returns indices of the debts sorted by the
// strategy's priority over current remaining balances. The sort is
// stable, so ties keep original ledger order.
func allocationOrder(ledger []model.Debt, remaining []float64, strategy model.Strategy) []int {
	order := make([]int, len(ledger))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		i, j := order[a], order[b]
		return strategy.Less(ledger[i], ledger[j], remaining[i], remaining[j])
	})
	return order
}

func samplePoint(month int, balance, interest, principal float64) model.TimelinePoint {
	return model.TimelinePoint{
		Month:     month,
		Balance:   math.Round(balance),
		Interest:  math.Round(interest),
		Principal: math.Round(principal),
	}
}

func anyPositive(vals []float64) bool {
	for _, v := range vals {
		if v > 0 {
			return true
		}
	}
	return false
}

func sum(vals []float64) float64 {
	var total float64
	for _, v := range vals {
		total += v
	}
	return total
}
