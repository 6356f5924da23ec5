// This file parses and validates request data for the expense form and the
// list-view filter widgets.

package http

import (
	"net/url"
	"strings"
	"time"

	"kharcha/internal/core"
)

// FilterParams holds the list-view state owned by the presentation layer:
// the core filter inputs plus search and sort, which are applied after the
// core query engine runs.
type FilterParams struct {
	Range      core.DateRange
	Categories []core.Category
	Modes      []core.PaymentMode
	Query      string
	SortField  string // date | amount
	SortDir    string // asc | desc
}

// ParseFilterParams extracts filter state from query parameters. Unknown
// ranges fall back to all-time; values outside the closed category and
// payment-mode sets are dropped.
func ParseFilterParams(q url.Values) FilterParams {
	p := FilterParams{
		Range:     core.RangeAllTime,
		SortField: "date",
		SortDir:   "desc",
	}

	if r := core.DateRange(strings.TrimSpace(q.Get("range"))); r.IsValid() {
		p.Range = r
	}
	for _, v := range q["category"] {
		if c := core.Category(strings.TrimSpace(v)); c.IsValid() {
			p.Categories = append(p.Categories, c)
		}
	}
	for _, v := range q["mode"] {
		if m := core.PaymentMode(strings.TrimSpace(v)); m.IsValid() {
			p.Modes = append(p.Modes, m)
		}
	}

	p.Query = sanitizeInput(q.Get("q"))

	switch q.Get("sort") {
	case "amount":
		p.SortField = "amount"
	case "date":
		p.SortField = "date"
	}
	switch q.Get("dir") {
	case "asc":
		p.SortDir = "asc"
	case "desc":
		p.SortDir = "desc"
	}

	return p
}

// ParseFormDate reads the form's date field (YYYY-MM-DD from the date
// input), defaulting to today when absent.
func ParseFormDate(form url.Values, now time.Time) (core.Date, error) {
	v := strings.TrimSpace(form.Get("date"))
	if v == "" {
		return core.NewDate(now.Year(), int(now.Month()), now.Day()), nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return core.Date{}, core.ErrInvalidDate
	}
	return core.Date{Time: t}, nil
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
