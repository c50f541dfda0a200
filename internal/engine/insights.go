package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"paydown/internal/model"
)

// maxInsights caps the list; rules past the first five matches never
// surface, which is why the evaluation order below is a contract.
const maxInsights = 5

// toxicRateThreshold is the APR above which a debt triggers the
// high-rate alert (distinct from the 15% scoring threshold).
const toxicRateThreshold = 18

// Insights evaluates the fixed, priority-ordered rule set over the
// scorer's and simulator's outputs. Each rule independently appends at
// most one insight; the list is truncated to the first five in
// evaluation order. Critical alerts are ordered before opportunities
// by construction.
func Insights(
	ledger []model.Debt,
	income float64,
	score model.ScoreResult,
	results map[model.Strategy]model.StrategyResult,
	extra float64,
) []model.Insight {
	if len(ledger) == 0 || income <= 0 {
		return []model.Insight{{
			Type:  model.InsightInfo,
			Icon:  "👋",
			Title: "Getting started",
			Body:  "Add your debts and monthly income to see your stress score, payoff projections, and personalized insights.",
		}}
	}

	f := score.Factors
	var out []model.Insight
	add := func(ins model.Insight) {
		out = append(out, ins)
	}

	// 1. EMI overload.
	if f.EMIToIncome > 50 {
		add(model.Insight{
			Type:  model.InsightCritical,
			Icon:  "🚨",
			Title: "EMI overload",
			Body: fmt.Sprintf("Your EMIs eat %.0f%% of your income. Above 50%% is a debt trap risk — restructure or refinance before taking on anything new.",
				f.EMIToIncome),
		})
	}

	// 2. Toxic debt. The cost-of-delay proxy applies the FIRST
	// qualifying debt's rate to the combined balance even when several
	// debts qualify at different rates.
	var toxicNames []string
	var toxicBalance, firstToxicRate float64
	for _, d := range ledger {
		if d.Rate > toxicRateThreshold {
			if len(toxicNames) == 0 {
				firstToxicRate = d.Rate
			}
			toxicNames = append(toxicNames, d.Name)
			toxicBalance += d.Balance
		}
	}
	if len(toxicNames) > 0 {
		costOfDelay := toxicBalance * firstToxicRate / 1200
		add(model.Insight{
			Type:  model.InsightWarning,
			Icon:  "🔥",
			Title: "High-rate debt is burning you",
			Body: fmt.Sprintf("%s carry %s at over %d%% APR. Every month of delay costs roughly %s in interest. Clear these first.",
				strings.Join(toxicNames, ", "), money(toxicBalance), toxicRateThreshold, money(costOfDelay)),
		})
	}

	// 3. Best strategy vs baseline.
	if best, bestRes, ok := BestStrategy(results); ok {
		if baseline, has := results[model.StrategyBaseline]; has {
			saved := baseline.TotalInterest - bestRes.TotalInterest
			monthsSaved := baseline.Months - bestRes.Months
			if saved > 0 {
				add(model.Insight{
					Type:  model.InsightSuccess,
					Icon:  "🎯",
					Title: fmt.Sprintf("The %s method saves you %s", best, money(saved)),
					Body: fmt.Sprintf("Versus minimum payments only, the %s strategy with your extra payment saves %s in interest and %d months.",
						best, money(saved), monthsSaved),
				})
			}
		}
	}

	// 4. Buffer after EMIs and extra payment.
	remainingIncome := income - f.TotalEMI - extra
	remainingPct := 100 * remainingIncome / income
	if remainingPct < 20 {
		add(model.Insight{
			Type:  model.InsightWarning,
			Icon:  "🛡️",
			Title: "Thin safety buffer",
			Body: fmt.Sprintf("Only %.0f%% of income is left after debt payments. Build a %s emergency fund (3 months of EMIs) before paying extra.",
				remainingPct, money(3*f.TotalEMI)),
		})
	}
	if remainingPct > 40 {
		suggested := math.Round((remainingIncome-0.3*income)/1000) * 1000
		if suggested > extra {
			add(model.Insight{
				Type:  model.InsightOpportunity,
				Icon:  "🚀",
				Title: "Room to pay more",
				Body: fmt.Sprintf("You could safely put %s/month toward debt while keeping 30%% of income free. Raising your extra payment shortens every projection.",
					money(suggested)),
			})
		}
	}

	// 5. Consolidation.
	if f.WeightedRate > 10 {
		aboveAvg := 0
		for _, d := range ledger {
			if d.Rate > f.WeightedRate+3 {
				aboveAvg++
			}
		}
		if aboveAvg >= 2 {
			add(model.Insight{
				Type:  model.InsightInfo,
				Icon:  "🔄",
				Title: "Consolidation may help",
				Body: fmt.Sprintf("%d debts sit well above your %.1f%% average rate. A consolidation loan near the average could simplify payments and cut interest.",
					aboveAvg, f.WeightedRate),
			})
		}
	}

	// 6. Positive reinforcement.
	if score.Score >= 70 {
		add(model.Insight{
			Type:  model.InsightSuccess,
			Icon:  "✅",
			Title: "Healthy debt position",
			Body: fmt.Sprintf("A stress score of %d means your debts are under control. Keep payments consistent and avoid new high-rate borrowing.",
				score.Score),
		})
	}

	// 7. Leverage warning.
	if f.DebtToAnnualIncome > 3 {
		add(model.Insight{
			Type:  model.InsightWarning,
			Icon:  "⚖️",
			Title: "High leverage",
			Body: fmt.Sprintf("Total debt is %.1fx your annual income. Above 3x, focus on principal reduction before any new commitments.",
				f.DebtToAnnualIncome),
		})
	}

	if len(out) > maxInsights {
		out = out[:maxInsights]
	}
	return out
}

// BestStrategy picks the non-baseline strategy with the lowest total
// interest. Ties resolve first-checked-wins in the fixed order
// avalanche, snowball, hybrid. ok is false when none of the three
// results are present.
func BestStrategy(results map[model.Strategy]model.StrategyResult) (model.Strategy, model.StrategyResult, bool) {
	var best model.Strategy
	var bestRes model.StrategyResult
	found := false
	for _, s := range []model.Strategy{model.StrategyAvalanche, model.StrategySnowball, model.StrategyHybrid} {
		r, ok := results[s]
		if !ok {
			continue
		}
		if !found || r.TotalInterest < bestRes.TotalInterest {
			best, bestRes, found = s, r, true
		}
	}
	return best, bestRes, found
}

// money renders a currency amount rounded to whole units with
// thousands separators, for insight bodies. It mirrors
// cli.FormatMoney (the engine does not import the presentation
// layer); changes to the grouping there must be reflected here.
func money(v float64) string {
	n := int64(math.Round(v))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	if len(s) > 3 {
		var b strings.Builder
		rem := len(s) % 3
		if rem > 0 {
			b.WriteString(s[:rem])
		}
		for i := rem; i < len(s); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}
	return sign + s
}
