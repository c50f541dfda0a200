package model

// Strategy selects how extra payments are allocated across debts.
type Strategy string

const (
	// StrategyBaseline is minimum payments only; any extra payment is
	// ignored for this run.
	StrategyBaseline Strategy = "baseline"
	// StrategyAvalanche targets the highest interest rate first.
	StrategyAvalanche Strategy = "avalanche"
	// StrategySnowball targets the smallest remaining balance first.
	StrategySnowball Strategy = "snowball"
	// StrategyHybrid targets the largest rate x balance product first.
	StrategyHybrid Strategy = "hybrid"
)

// Strategies lists all strategies in their canonical order. The order
// matters: best-strategy ties resolve first-listed-wins among the
// non-baseline entries.
var Strategies = []Strategy{
	StrategyBaseline,
	StrategyAvalanche,
	StrategySnowball,
	StrategyHybrid,
}

// ValidStrategy reports whether s is a known strategy.
func ValidStrategy(s Strategy) bool {
	for _, known := range Strategies {
		if s == known {
			return true
		}
	}
	return false
}

// Less reports whether debt a should receive extra payment before debt
// b under this strategy, given their remaining balances. Baseline has
// no ordering (always false: ties everywhere, original order kept).
func (s Strategy) Less(a, b Debt, remainingA, remainingB float64) bool {
	switch s {
	case StrategyAvalanche:
		return a.Rate > b.Rate
	case StrategySnowball:
		return remainingA < remainingB
	case StrategyHybrid:
		return a.Rate*remainingA > b.Rate*remainingB
	}
	return false
}

// TimelinePoint is one sampled month of a payoff projection. Amounts
// are rounded to the nearest currency unit at sampling time.
type TimelinePoint struct {
	Month     int
	Balance   float64 // total remaining across all debts
	Interest  float64 // interest accrued this month
	Principal float64 // principal paid this month
}

// Milestone records a progress event: a percentage threshold crossed,
// a debt fully cleared, or the terminal debt-free event.
type Milestone struct {
	Month int
	Label string
	Pct   int // rounded percent of initial principal paid at the event
}

// StrategyResult is the output of one payoff simulation run.
type StrategyResult struct {
	Strategy      Strategy
	Months        int     // month counter at termination; 600 means the safety cap
	TotalInterest float64 // rounded accumulated interest
	FinalBalance  float64 // rounded balance left at termination; 0 means debt-free
	Timeline      []TimelinePoint
	Milestones    []Milestone
}

// CapReached reports whether the run terminated at the safety cap
// rather than by clearing every debt. The timeline cannot answer this
// — sampling stops at month 360 — so the simulator records the
// terminal balance directly.
func (r StrategyResult) CapReached() bool {
	return r.Months >= SimulationCapMonths && r.FinalBalance > 0
}

// SimulationCapMonths bounds every simulation run. Debts whose EMI
// cannot cover their own interest never amortize; the cap turns that
// into a reportable outcome instead of an endless loop.
const SimulationCapMonths = 600

// TimelineSampleCapMonths bounds timeline sampling. Months past this
// point are reflected only in Months and TotalInterest.
const TimelineSampleCapMonths = 360

// InsightType categorizes an insight for ordering and display.
type InsightType string

const (
	InsightCritical    InsightType = "critical"
	InsightWarning     InsightType = "warning"
	InsightSuccess     InsightType = "success"
	InsightOpportunity InsightType = "opportunity"
	InsightInfo        InsightType = "info"
)

// Insight is one heuristic finding produced by the rule engine.
type Insight struct {
	Type  InsightType
	Icon  string
	Title string
	Body  string
}
