package core

import "time"

// MonthlyTotal carries the per-category running totals for one calendar
// month. Totals always holds every category, zero when nothing was spent.
type MonthlyTotal struct {
	Year   int                `json:"year"`
	Month  time.Month         `json:"month"`
	Label  string             `json:"label"`
	Totals map[Category]Money `json:"totals"`
}

// Total returns the sum across all categories for the month.
func (mt MonthlyTotal) Total() Money {
	var sum Money
	for _, m := range mt.Totals {
		sum = sum.Add(m)
	}
	return sum
}

// AggregateMonthly buckets expense amounts by calendar month and category.
// It emits one entry per month from the earliest record's month to the
// latest record's month inclusive, in chronological order; months with no
// expenses appear with all-zero totals. An empty input yields nil. The
// aggregate is recomputed from scratch on every call and the input is never
// mutated.
func AggregateMonthly(expenses []Expense) []MonthlyTotal {
	if len(expenses) == 0 {
		return nil
	}

	first := expenses[0].Date.Time
	last := expenses[0].Date.Time
	for _, e := range expenses[1:] {
		if e.Date.Before(first) {
			first = e.Date.Time
		}
		if e.Date.After(last) {
			last = e.Date.Time
		}
	}

	start := time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(last.Year(), last.Month(), 1, 0, 0, 0, 0, time.UTC)

	var out []MonthlyTotal
	index := make(map[string]int)
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 1, 0) {
		totals := make(map[Category]Money, len(Categories()))
		for _, c := range Categories() {
			totals[c] = Money{}
		}
		index[monthKey(cur.Year(), cur.Month())] = len(out)
		out = append(out, MonthlyTotal{
			Year:   cur.Year(),
			Month:  cur.Month(),
			Label:  cur.Format("Jan 2006"),
			Totals: totals,
		})
	}

	for _, e := range expenses {
		i := index[monthKey(e.Date.Year(), e.Date.Month())]
		out[i].Totals[e.Category] = out[i].Totals[e.Category].Add(e.Amount)
	}
	return out
}

func monthKey(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}
