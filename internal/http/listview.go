package http

import (
	"sort"
	"strings"

	"kharcha/internal/core"
)

// searchNotes keeps expenses whose notes contain q, case-insensitively.
// An empty query keeps everything.
func searchNotes(items []core.Expense, q string) []core.Expense {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return items
	}
	out := make([]core.Expense, 0, len(items))
	for _, e := range items {
		if strings.Contains(strings.ToLower(e.Notes), q) {
			out = append(out, e)
		}
	}
	return out
}

// sortExpenses orders a list-view page by date or amount. The sort is
// stable so records sharing a key keep their insertion order.
func sortExpenses(items []core.Expense, field, dir string) []core.Expense {
	out := make([]core.Expense, len(items))
	copy(out, items)

	asc := dir == "asc"
	sort.SliceStable(out, func(i, j int) bool {
		var less bool
		switch field {
		case "amount":
			less = out[i].Amount.Paise < out[j].Amount.Paise
		default:
			less = out[i].Date.Before(out[j].Date.Time)
		}
		if asc {
			return less
		}
		return !less && !equalKey(out[i], out[j], field)
	})
	return out
}

func equalKey(a, b core.Expense, field string) bool {
	if field == "amount" {
		return a.Amount.Paise == b.Amount.Paise
	}
	return a.Date.Equal(b.Date.Time)
}
