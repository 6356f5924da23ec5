package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateMonthlyEmpty(t *testing.T) {
	assert.Empty(t, AggregateMonthly(nil))
	assert.Empty(t, AggregateMonthly([]Expense{}))
}

func TestAggregateMonthlyFillsInterveningMonths(t *testing.T) {
	in := []Expense{
		{ID: "a", Amount: Money{Paise: 10000}, Category: CategoryGroceries, Date: NewDate(2024, 1, 15), PaymentMode: ModeUPI},
		{ID: "b", Amount: Money{Paise: 5000}, Category: CategoryTravel, Date: NewDate(2024, 3, 10), PaymentMode: ModeCash},
	}

	got := AggregateMonthly(in)

	require.Len(t, got, 3, "Jan through Mar inclusive, Feb zero-filled")

	jan, feb, mar := got[0], got[1], got[2]
	assert.Equal(t, "Jan 2024", jan.Label)
	assert.Equal(t, "Feb 2024", feb.Label)
	assert.Equal(t, "Mar 2024", mar.Label)

	assert.Equal(t, int64(10000), jan.Totals[CategoryGroceries].Paise)
	assert.Equal(t, int64(5000), mar.Totals[CategoryTravel].Paise)

	for _, mt := range got {
		require.Len(t, mt.Totals, len(Categories()), "every category present in every month")
	}
	for _, c := range Categories() {
		assert.Zero(t, feb.Totals[c].Paise, "Feb %s", c)
		if c != CategoryGroceries {
			assert.Zero(t, jan.Totals[c].Paise, "Jan %s", c)
		}
		if c != CategoryTravel {
			assert.Zero(t, mar.Totals[c].Paise, "Mar %s", c)
		}
	}
}

func TestAggregateMonthlySingleMonth(t *testing.T) {
	in := []Expense{
		{Amount: Money{Paise: 100}, Category: CategoryRental, Date: NewDate(2025, 7, 1)},
		{Amount: Money{Paise: 200}, Category: CategoryRental, Date: NewDate(2025, 7, 31)},
		{Amount: Money{Paise: 50}, Category: CategoryOthers, Date: NewDate(2025, 7, 15)},
	}

	got := AggregateMonthly(in)

	require.Len(t, got, 1)
	assert.Equal(t, 2025, got[0].Year)
	assert.Equal(t, time.July, got[0].Month)
	assert.Equal(t, int64(300), got[0].Totals[CategoryRental].Paise)
	assert.Equal(t, int64(50), got[0].Totals[CategoryOthers].Paise)
	assert.Equal(t, int64(350), got[0].Total().Paise)
}

func TestAggregateMonthlyUnsortedInput(t *testing.T) {
	// Earliest and latest records are not at the slice ends.
	in := []Expense{
		{Amount: Money{Paise: 100}, Category: CategoryOthers, Date: NewDate(2024, 11, 2)},
		{Amount: Money{Paise: 100}, Category: CategoryOthers, Date: NewDate(2024, 9, 20)},
		{Amount: Money{Paise: 100}, Category: CategoryOthers, Date: NewDate(2025, 1, 5)},
		{Amount: Money{Paise: 100}, Category: CategoryOthers, Date: NewDate(2024, 12, 1)},
	}

	got := AggregateMonthly(in)

	require.Len(t, got, 5, "Sep 2024 through Jan 2025, year boundary crossed")
	assert.Equal(t, "Sep 2024", got[0].Label)
	assert.Equal(t, "Jan 2025", got[4].Label)
	assert.Zero(t, got[1].Totals[CategoryOthers].Paise, "Oct 2024 has no expenses")
}

func TestAggregateMonthlyDoesNotMutateInput(t *testing.T) {
	in := []Expense{
		{Amount: Money{Paise: 100}, Category: CategoryTravel, Date: NewDate(2024, 2, 1)},
	}
	want := make([]Expense, len(in))
	copy(want, in)

	first := AggregateMonthly(in)
	second := AggregateMonthly(in)

	assert.Equal(t, want, in)
	assert.Equal(t, first, second)
}
