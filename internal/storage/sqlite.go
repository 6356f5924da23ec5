package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"kharcha/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository is the database-backed expense collection. It exposes
// the same append-only surface as the slot-backed ledger.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Add inserts the expense with a fresh identifier and returns the stored
// record. Validation is the caller's responsibility.
func (r *SQLiteRepository) Add(ctx context.Context, e core.Expense) (core.Expense, error) {
	e.ID = uuid.NewString()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (id, amount_paise, category, notes, spent_at, payment_mode)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Amount.Paise, string(e.Category), e.Notes,
		e.Date.Format(time.RFC3339), string(e.PaymentMode))
	if err != nil {
		return core.Expense{}, fmt.Errorf("insert expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved to SQLite",
		"id", e.ID,
		"amount_paise", e.Amount.Paise,
		"category", e.Category,
		"payment_mode", e.PaymentMode)

	return e, nil
}

// Expenses returns the full collection in insertion order.
func (r *SQLiteRepository) Expenses(ctx context.Context) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, amount_paise, category, notes, spent_at, payment_mode
		 FROM expenses ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	var out []core.Expense
	for rows.Next() {
		var (
			e       core.Expense
			paise   int64
			cat     string
			spentAt string
			mode    string
		)
		if err := rows.Scan(&e.ID, &paise, &cat, &e.Notes, &spentAt, &mode); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		t, err := time.Parse(time.RFC3339, spentAt)
		if err != nil {
			return nil, fmt.Errorf("parse expense date %q: %w", spentAt, err)
		}
		e.Amount = core.Money{Paise: paise}
		e.Category = core.Category(cat)
		e.Date = core.Date{Time: t}
		e.PaymentMode = core.PaymentMode(mode)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return out, nil
}
