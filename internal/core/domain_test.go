package core

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestExpenseValidate(t *testing.T) {
	good := Expense{
		Amount:      Money{Paise: 12345},
		Category:    CategoryGroceries,
		Notes:       "weekly groceries",
		Date:        NewDate(2025, 6, 1),
		PaymentMode: ModeUPI,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []struct {
		name string
		exp  Expense
		want error
	}{
		{"zero amount", Expense{Amount: Money{}, Category: CategoryGroceries, Date: NewDate(2025, 6, 1), PaymentMode: ModeUPI}, ErrInvalidAmount},
		{"negative amount", Expense{Amount: Money{Paise: -1}, Category: CategoryGroceries, Date: NewDate(2025, 6, 1), PaymentMode: ModeUPI}, ErrInvalidAmount},
		{"unknown category", Expense{Amount: Money{Paise: 1}, Category: "Food", Date: NewDate(2025, 6, 1), PaymentMode: ModeUPI}, ErrInvalidCategory},
		{"notes too long", Expense{Amount: Money{Paise: 1}, Category: CategoryOthers, Notes: strings.Repeat("x", MaxNotesLength+1), Date: NewDate(2025, 6, 1), PaymentMode: ModeCash}, ErrNotesTooLong},
		{"zero date", Expense{Amount: Money{Paise: 1}, Category: CategoryOthers, PaymentMode: ModeCash}, ErrInvalidDate},
		{"unknown mode", Expense{Amount: Money{Paise: 1}, Category: CategoryOthers, Date: NewDate(2025, 6, 1), PaymentMode: "Cheque"}, ErrInvalidPaymentMode},
	}
	for _, tc := range bads {
		if err := tc.exp.Validate(); err != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestNotesAtLimitIsValid(t *testing.T) {
	e := Expense{
		Amount:      Money{Paise: 1},
		Category:    CategoryOthers,
		Notes:       strings.Repeat("x", MaxNotesLength),
		Date:        NewDate(2025, 6, 1),
		PaymentMode: ModeCash,
	}
	if err := e.Validate(); err != nil {
		t.Fatalf("expected notes at the limit to validate, got %v", err)
	}
}

func TestClosedSets(t *testing.T) {
	for _, c := range Categories() {
		if !c.IsValid() {
			t.Fatalf("category %q should be valid", c)
		}
	}
	if Category("Rent").IsValid() {
		t.Fatalf("Rent should not be a valid category")
	}
	for _, m := range PaymentModes() {
		if !m.IsValid() {
			t.Fatalf("payment mode %q should be valid", m)
		}
	}
	if PaymentMode("Debit Card").IsValid() {
		t.Fatalf("Debit Card should not be a valid payment mode")
	}
}

func TestDateUnmarshal(t *testing.T) {
	cases := []struct {
		in    string
		year  int
		month int
		day   int
		ok    bool
	}{
		{`"2024-01-15"`, 2024, 1, 15, true},
		{`"2024-01-15T10:30:00Z"`, 2024, 1, 15, true},
		{`"2024-01-15T10:30:00.000+05:30"`, 2024, 1, 15, true},
		{`"15/01/2024"`, 0, 0, 0, false},
		{`""`, 0, 0, 0, false},
	}
	for _, tc := range cases {
		var d Date
		err := json.Unmarshal([]byte(tc.in), &d)
		if !tc.ok {
			if err == nil {
				t.Fatalf("%s: expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.in, err)
		}
		if d.Year() != tc.year || int(d.Month()) != tc.month || d.Day() != tc.day {
			t.Fatalf("%s: got %v", tc.in, d)
		}
	}
}

func TestExpenseJSONShape(t *testing.T) {
	e := Expense{
		ID:          "abc-123",
		Amount:      Money{Paise: 12550},
		Category:    CategoryTravel,
		Notes:       "train tickets",
		Date:        NewDate(2024, 3, 10),
		PaymentMode: ModeNetBanking,
	}
	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{`"id":"abc-123"`, `"amount":125.50`, `"category":"Travel"`, `"paymentMode":"Net Banking"`} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("JSON missing %s: %s", want, data)
		}
	}

	var back Expense
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.ID != e.ID || back.Amount != e.Amount || back.Category != e.Category ||
		back.Notes != e.Notes || back.PaymentMode != e.PaymentMode || !back.Date.Equal(e.Date.Time) {
		t.Fatalf("round-trip mismatch: %+v vs %+v", back, e)
	}
}
