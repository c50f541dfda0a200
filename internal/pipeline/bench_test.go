package pipeline

import (
	"testing"

	"paydown/internal/engine"
	"paydown/internal/model"
)

func BenchmarkSimulate(b *testing.B) {
	ledger := model.SampleLedger()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.Simulate(ledger, model.StrategyAvalanche, 5000)
	}
}

func BenchmarkSimulateCapReached(b *testing.B) {
	// Worst case: the full 600-month loop.
	ledger := []model.Debt{
		{ID: 1, Name: "Frozen", Balance: 100000, Rate: 24, EMI: 1000, Type: model.DebtRevolving},
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.Simulate(ledger, model.StrategyBaseline, 0)
	}
}

func BenchmarkBuildReport(b *testing.B) {
	ledger := model.SampleLedger()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = BuildReport(ledger, 125000, 5000)
	}
}

func BenchmarkScore(b *testing.B) {
	ledger := model.SampleLedger()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.Score(ledger, 125000)
	}
}
