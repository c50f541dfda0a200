// Package pipeline orchestrates the full analysis run: scoring,
// strategy simulations, and insights over one ledger snapshot.
package pipeline

import (
	"sync"

	"paydown/internal/engine"
	"paydown/internal/model"
)

// Report bundles everything the presentation layer needs for one
// ledger snapshot. It is always derived fresh; nothing in it is
// persisted or partially updated.
type Report struct {
	Income float64
	Extra  float64
	Ledger []model.Debt

	Score    model.ScoreResult
	Results  map[model.Strategy]model.StrategyResult
	Insights []model.Insight
}

// BuildReport runs the scorer, all four strategy simulations, and the
// insight engine. The simulations run concurrently — the engine is
// pure and copies balances per run, so no locking is needed.
func BuildReport(ledger []model.Debt, income, extra float64) *Report {
	r := &Report{
		Income:  income,
		Extra:   extra,
		Ledger:  ledger,
		Results: make(map[model.Strategy]model.StrategyResult, len(model.Strategies)),
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	wg.Add(len(model.Strategies))
	for _, s := range model.Strategies {
		go func(s model.Strategy) {
			defer wg.Done()
			res := engine.Simulate(ledger, s, extra)
			mu.Lock()
			r.Results[s] = res
			mu.Unlock()
		}(s)
	}

	r.Score = engine.Score(ledger, income)
	wg.Wait()

	r.Insights = engine.Insights(ledger, income, r.Score, r.Results, extra)
	return r
}

// Best returns the winning non-baseline strategy for this report.
// Ties resolve avalanche, then snowball, then hybrid.
func (r *Report) Best() (model.Strategy, model.StrategyResult, bool) {
	return engine.BestStrategy(r.Results)
}

// Baseline returns the minimum-payments-only run.
func (r *Report) Baseline() model.StrategyResult {
	return r.Results[model.StrategyBaseline]
}

// InterestSaved returns how much interest the best strategy saves
// against baseline (zero when there is nothing to save).
func (r *Report) InterestSaved() float64 {
	_, best, ok := r.Best()
	if !ok {
		return 0
	}
	saved := r.Baseline().TotalInterest - best.TotalInterest
	if saved < 0 {
		return 0
	}
	return saved
}

// MonthsSaved returns how many months the best strategy saves against
// baseline.
func (r *Report) MonthsSaved() int {
	_, best, ok := r.Best()
	if !ok {
		return 0
	}
	saved := r.Baseline().Months - best.Months
	if saved < 0 {
		return 0
	}
	return saved
}
