package http

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kharcha/internal/core"
)

func listFixture() []core.Expense {
	return []core.Expense{
		{ID: "1", Amount: core.Money{Paise: 300}, Notes: "Chai with friends", Date: core.NewDate(2025, 6, 1)},
		{ID: "2", Amount: core.Money{Paise: 100}, Notes: "auto fare", Date: core.NewDate(2025, 6, 3)},
		{ID: "3", Amount: core.Money{Paise: 200}, Notes: "chai again", Date: core.NewDate(2025, 6, 2)},
	}
}

func listIDs(items []core.Expense) []string {
	out := make([]string, len(items))
	for i, e := range items {
		out[i] = e.ID
	}
	return out
}

func TestSearchNotesCaseInsensitive(t *testing.T) {
	got := searchNotes(listFixture(), "CHAI")
	assert.Equal(t, []string{"1", "3"}, listIDs(got))

	got = searchNotes(listFixture(), "")
	assert.Len(t, got, 3, "empty query keeps everything")
}

func TestSortExpenses(t *testing.T) {
	in := listFixture()

	assert.Equal(t, []string{"1", "3", "2"}, listIDs(sortExpenses(in, "date", "asc")))
	assert.Equal(t, []string{"2", "3", "1"}, listIDs(sortExpenses(in, "date", "desc")))
	assert.Equal(t, []string{"2", "3", "1"}, listIDs(sortExpenses(in, "amount", "asc")))
	assert.Equal(t, []string{"1", "3", "2"}, listIDs(sortExpenses(in, "amount", "desc")))

	// The input itself stays untouched.
	assert.Equal(t, []string{"1", "2", "3"}, listIDs(in))
}
