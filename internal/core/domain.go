package core

import (
	"errors"
	"time"
)

const (
	CategoryRental        Category = "Rental"
	CategoryGroceries     Category = "Groceries"
	CategoryEntertainment Category = "Entertainment"
	CategoryTravel        Category = "Travel"
	CategoryOthers        Category = "Others"
)

const (
	ModeUPI        PaymentMode = "UPI"
	ModeCreditCard PaymentMode = "Credit Card"
	ModeNetBanking PaymentMode = "Net Banking"
	ModeCash       PaymentMode = "Cash"
)

// MaxNotesLength bounds the free-text notes field at the entry boundary.
const MaxNotesLength = 100

type (
	// Category is the fixed classification of spending.
	Category string

	// PaymentMode is the fixed classification of how an expense was paid.
	PaymentMode string

	// Date is a calendar date. Time-of-day may be carried but no query uses it.
	Date struct {
		time.Time
	}

	// Expense is one user-entered spending entry. Records are append-only:
	// once created they are never mutated or deleted.
	Expense struct {
		ID          string      `json:"id"`
		Amount      Money       `json:"amount"`
		Category    Category    `json:"category"`
		Notes       string      `json:"notes"`
		Date        Date        `json:"date"`
		PaymentMode PaymentMode `json:"paymentMode"`
	}
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidPaymentMode = errors.New("invalid payment mode")
	ErrNotesTooLong       = errors.New("notes too long")
)

// Categories returns the closed category set in display order.
func Categories() []Category {
	return []Category{CategoryRental, CategoryGroceries, CategoryEntertainment, CategoryTravel, CategoryOthers}
}

// IsValid reports whether c is a member of the closed category set.
func (c Category) IsValid() bool {
	switch c {
	case CategoryRental, CategoryGroceries, CategoryEntertainment, CategoryTravel, CategoryOthers:
		return true
	default:
		return false
	}
}

// PaymentModes returns the closed payment-mode set in display order.
func PaymentModes() []PaymentMode {
	return []PaymentMode{ModeUPI, ModeCreditCard, ModeNetBanking, ModeCash}
}

// IsValid reports whether m is a member of the closed payment-mode set.
func (m PaymentMode) IsValid() bool {
	switch m {
	case ModeUPI, ModeCreditCard, ModeNetBanking, ModeCash:
		return true
	default:
		return false
	}
}

// NewDate creates a Date from year, month and day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// UnmarshalJSON accepts both full RFC 3339 timestamps and bare YYYY-MM-DD dates.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return ErrInvalidDate
	}
	d.Time = t
	return nil
}

// Validate enforces the entry-form rules. The expense store never calls it:
// validation is the caller's responsibility at the input boundary.
func (e Expense) Validate() error {
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if !e.Category.IsValid() {
		return ErrInvalidCategory
	}
	if len(e.Notes) > MaxNotesLength {
		return ErrNotesTooLong
	}
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if !e.PaymentMode.IsValid() {
		return ErrInvalidPaymentMode
	}
	return nil
}
