// Package store provides the SQLite-backed debt ledger.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"paydown/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Ledger provides SQLite-backed debt persistence.
type Ledger struct {
	db *sql.DB
}

// DefaultPath returns the default ledger database location.
func DefaultPath() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "paydown", "ledger.db")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "ledger.db")
	}
	return filepath.Join(home, ".local", "share", "paydown", "ledger.db")
}

// Open opens or creates the ledger database at the given path.
func Open(dbPath string) (*Ledger, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating ledger dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Ledger{db: db}, nil
}

// Close closes the ledger database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// List returns all debts in insertion order.
func (l *Ledger) List() ([]model.Debt, error) {
	rows, err := l.db.Query("SELECT id, name, balance, rate, emi, type FROM debts ORDER BY position, id")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var debts []model.Debt
	for rows.Next() {
		var d model.Debt
		var typ string
		if err := rows.Scan(&d.ID, &d.Name, &d.Balance, &d.Rate, &d.EMI, &typ); err != nil {
			return nil, err
		}
		d.Type = model.DebtType(typ)
		debts = append(debts, d)
	}
	return debts, rows.Err()
}

// Get returns a single debt by id.
func (l *Ledger) Get(id int64) (model.Debt, error) {
	var d model.Debt
	var typ string
	err := l.db.QueryRow("SELECT id, name, balance, rate, emi, type FROM debts WHERE id = ?", id).
		Scan(&d.ID, &d.Name, &d.Balance, &d.Rate, &d.EMI, &typ)
	if err == sql.ErrNoRows {
		return d, fmt.Errorf("debt %d not found", id)
	}
	if err != nil {
		return d, err
	}
	d.Type = model.DebtType(typ)
	return d, nil
}

// Add inserts a debt and returns it with its assigned id.
func (l *Ledger) Add(d model.Debt) (model.Debt, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := l.db.Exec(`INSERT INTO debts (name, balance, rate, emi, type, position, created_at)
		VALUES (?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM debts), ?)`,
		d.Name, d.Balance, d.Rate, d.EMI, string(d.Type), now)
	if err != nil {
		return d, err
	}
	d.ID, err = res.LastInsertId()
	return d, err
}

// Update overwrites an existing debt's fields.
func (l *Ledger) Update(d model.Debt) error {
	res, err := l.db.Exec(`UPDATE debts SET name = ?, balance = ?, rate = ?, emi = ?, type = ?
		WHERE id = ?`, d.Name, d.Balance, d.Rate, d.EMI, string(d.Type), d.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("debt %d not found", d.ID)
	}
	return nil
}

// Remove deletes a debt by id.
func (l *Ledger) Remove(id int64) error {
	res, err := l.db.Exec("DELETE FROM debts WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("debt %d not found", id)
	}
	return nil
}

// Clear removes all debts.
func (l *Ledger) Clear() error {
	_, err := l.db.Exec("DELETE FROM debts")
	return err
}

// Replace atomically swaps the whole ledger for the given debts.
func (l *Ledger) Replace(debts []model.Debt) error {
	tx, err := l.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM debts"); err != nil {
		return err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	for i, d := range debts {
		_, err := tx.Exec(`INSERT INTO debts (name, balance, rate, emi, type, position, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			d.Name, d.Balance, d.Rate, d.EMI, string(d.Type), i+1, now)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Count returns the number of debts in the ledger.
func (l *Ledger) Count() (int, error) {
	var count int
	err := l.db.QueryRow("SELECT COUNT(*) FROM debts").Scan(&count)
	return count, err
}
