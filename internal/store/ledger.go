// Package store owns the authoritative in-memory expense collection and
// keeps it synchronized with an injected durable slot.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"kharcha/internal/core"
	"kharcha/internal/storage"
)

// Ledger is the append-only expense collection. Records are created through
// Add and never mutated or deleted afterwards. The full collection is read
// from the slot once at construction and rewritten after every add.
type Ledger struct {
	mu       sync.RWMutex
	slot     storage.Slot
	expenses []core.Expense

	// persistMu serializes slot writes. The snapshot is taken while it is
	// held, so a later write always carries a superset of an earlier one and
	// a stale snapshot can never overwrite a newer one.
	persistMu sync.Mutex
}

// New loads the previously saved collection from the slot. An empty slot
// starts an empty ledger; a payload that fails to decode is logged and
// discarded so a corrupt slot never prevents startup.
func New(ctx context.Context, slot storage.Slot) *Ledger {
	l := &Ledger{slot: slot}

	data, err := slot.Read(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrSlotEmpty) {
			slog.WarnContext(ctx, "Failed reading expense slot, starting empty", "error", err)
		}
		return l
	}

	var expenses []core.Expense
	if err := json.Unmarshal(data, &expenses); err != nil {
		slog.WarnContext(ctx, "Failed decoding persisted expenses, starting empty",
			"error", err, "bytes", len(data))
		return l
	}

	l.expenses = expenses
	slog.InfoContext(ctx, "Loaded expenses from slot", "count", len(expenses))
	return l
}

// Add assigns a fresh identifier, appends the record preserving insertion
// order, and rewrites the whole collection to the slot. The store performs
// no validation; that is the entry boundary's job. A failed slot write is
// logged and swallowed: the in-memory append has already happened and the
// caller is never failed for it.
func (l *Ledger) Add(ctx context.Context, e core.Expense) (core.Expense, error) {
	e.ID = uuid.NewString()

	l.mu.Lock()
	l.expenses = append(l.expenses, e)
	l.mu.Unlock()

	l.persist(ctx)

	slog.InfoContext(ctx, "Expense recorded",
		"id", e.ID,
		"amount_paise", e.Amount.Paise,
		"category", e.Category,
		"payment_mode", e.PaymentMode)

	return e, nil
}

// Expenses returns a copy of the full collection in insertion order.
func (l *Ledger) Expenses(_ context.Context) ([]core.Expense, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]core.Expense, len(l.expenses))
	copy(out, l.expenses)
	return out, nil
}

// Len reports the number of records currently held.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.expenses)
}

// persist overwrites the slot with the current full collection, best effort.
// Writes are serialized: the snapshot is taken under persistMu, so whichever
// write reaches the slot last reflects every append that preceded it.
func (l *Ledger) persist(ctx context.Context) {
	l.persistMu.Lock()
	defer l.persistMu.Unlock()

	l.mu.RLock()
	snapshot := make([]core.Expense, len(l.expenses))
	copy(snapshot, l.expenses)
	l.mu.RUnlock()

	data, err := json.Marshal(snapshot)
	if err != nil {
		slog.ErrorContext(ctx, "Failed encoding expenses for persistence", "error", err)
		return
	}
	if err := l.slot.Write(ctx, data); err != nil {
		slog.ErrorContext(ctx, "Failed writing expense slot", "error", err, "count", len(snapshot))
	}
}
