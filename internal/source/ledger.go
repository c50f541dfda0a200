// Package source reads and writes ledger files in JSON form.
package source

import (
	"encoding/json"
	"fmt"
	"os"

	"paydown/internal/model"
)

// debtRecord is the on-disk shape of a single debt.
type debtRecord struct {
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
	Rate    float64 `json:"rate"`
	EMI     float64 `json:"emi"`
	Type    string  `json:"type,omitempty"`
}

// ReadLedgerFile parses a ledger JSON file into debts.
// Malformed entries are skipped rather than failing the whole import;
// the second return value is the number skipped.
func ReadLedgerFile(path string) ([]model.Debt, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("reading ledger file: %w", err)
	}

	var records []debtRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, 0, fmt.Errorf("parsing ledger file: %w", err)
	}

	var debts []model.Debt
	skipped := 0
	for i, r := range records {
		typ := model.DebtType(r.Type)
		if r.Type == "" {
			typ = model.DebtUnsecured
		}
		d, err := model.NewDebt(int64(i+1), r.Name, r.Balance, r.Rate, r.EMI, typ)
		if err != nil {
			skipped++
			continue
		}
		debts = append(debts, d)
	}
	return debts, skipped, nil
}

// WriteLedgerFile writes debts to path as indented JSON.
func WriteLedgerFile(path string, debts []model.Debt) error {
	records := make([]debtRecord, 0, len(debts))
	for _, d := range debts {
		records = append(records, debtRecord{
			Name:    d.Name,
			Balance: d.Balance,
			Rate:    d.Rate,
			EMI:     d.EMI,
			Type:    string(d.Type),
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing ledger file: %w", err)
	}
	return nil
}
