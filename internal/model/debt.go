// Package model defines domain types for paydown: debts, stress
// factors, and payoff projections.
package model

import (
	"fmt"
	"math"
)

// DebtType classifies a liability. It is not used by any current
// numeric rule; it exists for display and future policy branching.
type DebtType string

const (
	DebtSecured   DebtType = "secured"
	DebtUnsecured DebtType = "unsecured"
	DebtRevolving DebtType = "revolving"
)

// ValidDebtType reports whether t is one of the known debt types.
func ValidDebtType(t DebtType) bool {
	switch t {
	case DebtSecured, DebtUnsecured, DebtRevolving:
		return true
	}
	return false
}

// Debt is a single outstanding liability.
//
// Balance is the outstanding principal, Rate the nominal annual
// percentage rate (8.5 means 8.5%), and EMI the fixed scheduled
// monthly payment. All amounts are plain currency units.
type Debt struct {
	ID      int64
	Name    string
	Balance float64
	Rate    float64
	EMI     float64
	Type    DebtType
}

// NewDebt validates and constructs a Debt. Numeric fields must be
// finite and non-negative; the type must be a known DebtType. Name may
// be empty (it is never used in a calculation).
func NewDebt(id int64, name string, balance, rate, emi float64, typ DebtType) (Debt, error) {
	for _, f := range []struct {
		label string
		value float64
	}{
		{"balance", balance},
		{"rate", rate},
		{"emi", emi},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return Debt{}, fmt.Errorf("debt %q: %s is not a finite number", name, f.label)
		}
		if f.value < 0 {
			return Debt{}, fmt.Errorf("debt %q: %s must be non-negative, got %g", name, f.label, f.value)
		}
	}
	if !ValidDebtType(typ) {
		return Debt{}, fmt.Errorf("debt %q: unknown type %q", name, typ)
	}

	return Debt{
		ID:      id,
		Name:    name,
		Balance: balance,
		Rate:    rate,
		EMI:     emi,
		Type:    typ,
	}, nil
}

// MonthlyInterest returns the interest this debt accrues in one month
// at its current balance.
func (d Debt) MonthlyInterest() float64 {
	return d.Balance * d.Rate / 1200
}

// SampleLedger returns the built-in example ledger used by `debts
// sample`, the setup wizard, and the golden tests.
func SampleLedger() []Debt {
	return []Debt{
		{ID: 1, Name: "Home Loan", Balance: 2500000, Rate: 8.5, EMI: 25000, Type: DebtSecured},
		{ID: 2, Name: "Car Loan", Balance: 600000, Rate: 9.5, EMI: 12000, Type: DebtSecured},
		{ID: 3, Name: "Personal Loan", Balance: 300000, Rate: 14, EMI: 10000, Type: DebtUnsecured},
		{ID: 4, Name: "Credit Card", Balance: 150000, Rate: 36, EMI: 7500, Type: DebtRevolving},
	}
}
