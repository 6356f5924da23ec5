package core

import "time"

const (
	RangeThisMonth  DateRange = "this-month"
	RangeLast30Days DateRange = "last-30-days"
	RangeLast90Days DateRange = "last-90-days"
	RangeAllTime    DateRange = "all-time"
)

// DateRange is a named date predicate evaluated against a caller-supplied
// "now". Queries never read the wall clock themselves.
type DateRange string

// DateRanges returns the supported ranges in display order.
func DateRanges() []DateRange {
	return []DateRange{RangeThisMonth, RangeLast30Days, RangeLast90Days, RangeAllTime}
}

// IsValid reports whether r is a supported range.
func (r DateRange) IsValid() bool {
	switch r {
	case RangeThisMonth, RangeLast30Days, RangeLast90Days, RangeAllTime:
		return true
	default:
		return false
	}
}

// Filter returns the expenses matching the date range, category set and
// payment-mode set, all applied as a conjunction. An empty category or mode
// set disables that predicate. The result is a fresh slice preserving the
// input order; the input is never mutated.
func Filter(expenses []Expense, r DateRange, categories []Category, modes []PaymentMode, now time.Time) []Expense {
	catSet := make(map[Category]struct{}, len(categories))
	for _, c := range categories {
		catSet[c] = struct{}{}
	}
	modeSet := make(map[PaymentMode]struct{}, len(modes))
	for _, m := range modes {
		modeSet[m] = struct{}{}
	}

	out := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if !inRange(e.Date, r, now) {
			continue
		}
		if len(catSet) > 0 {
			if _, ok := catSet[e.Category]; !ok {
				continue
			}
		}
		if len(modeSet) > 0 {
			if _, ok := modeSet[e.PaymentMode]; !ok {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

func inRange(d Date, r DateRange, now time.Time) bool {
	switch r {
	case RangeThisMonth:
		return d.Year() == now.Year() && d.Month() == now.Month()
	case RangeLast30Days:
		return !d.Before(startOfDay(now).AddDate(0, 0, -30))
	case RangeLast90Days:
		return !d.Before(startOfDay(now).AddDate(0, 0, -90))
	default:
		// all-time and anything unrecognized: no date constraint.
		return true
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
