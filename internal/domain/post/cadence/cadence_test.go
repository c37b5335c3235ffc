package cadence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthDatesJanuary2025(t *testing.T) {
	// January 2025 starts on a Wednesday; the schedule anchors on the
	// first Monday, the 6th.
	dates := MonthDates(2025, time.January, 5)
	require.Len(t, dates, 5)

	expected := []time.Time{
		time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 8, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 13, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, expected, dates)
}

func TestMonthDatesCadenceWeekdays(t *testing.T) {
	months := []struct {
		year  int
		month time.Month
	}{
		{2025, time.January},
		{2025, time.February},
		{2025, time.June},
		{2024, time.February}, // leap year
		{2025, time.December},
	}

	for _, m := range months {
		dates := MonthDates(m.year, m.month, 13)
		require.Len(t, dates, 13)

		assert.Equal(t, time.Monday, dates[0].Weekday(), "%v %d should anchor on Monday", m.month, m.year)

		for i, d := range dates {
			wd := d.Weekday()
			assert.Contains(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, wd,
				"%v %d slot %d fell on %v", m.month, m.year, i, wd)
			if i > 0 {
				assert.True(t, d.After(dates[i-1]), "dates must be strictly increasing")
			}
		}
	}
}

func TestMonthDatesExactQuantity(t *testing.T) {
	for quantity := 1; quantity <= 40; quantity++ {
		dates := MonthDates(2025, time.March, quantity)
		assert.Len(t, dates, quantity, "quantity %d", quantity)
	}
}

func TestMonthDatesPaddingTail(t *testing.T) {
	// Far beyond the search window the tail is padded every two days and
	// stops respecting the weekday cadence, but the count still holds.
	const quantity = 35
	dates := MonthDates(2025, time.January, quantity)
	require.Len(t, dates, quantity)

	for i := 1; i < quantity; i++ {
		assert.True(t, dates[i].After(dates[i-1]), "padded dates must keep increasing")
	}
}

func TestMonthDatesInvalidQuantity(t *testing.T) {
	assert.Nil(t, MonthDates(2025, time.January, 0))
	assert.Nil(t, MonthDates(2025, time.January, -3))
}

func TestObjectiveIndexes(t *testing.T) {
	t.Run("round robin over two objectives", func(t *testing.T) {
		assert.Equal(t, []int{0, 1, 0, 1, 0}, ObjectiveIndexes(2, 5))
	})

	t.Run("more objectives than slots", func(t *testing.T) {
		assert.Equal(t, []int{0, 1}, ObjectiveIndexes(5, 2))
	})

	t.Run("fair distribution counts", func(t *testing.T) {
		idx := ObjectiveIndexes(3, 10)
		counts := map[int]int{}
		for _, i := range idx {
			counts[i]++
		}
		// 10 slots over 3 objectives: earlier objectives take the remainder.
		assert.Equal(t, 4, counts[0])
		assert.Equal(t, 3, counts[1])
		assert.Equal(t, 3, counts[2])
	})

	t.Run("no objectives", func(t *testing.T) {
		assert.Nil(t, ObjectiveIndexes(0, 5))
	})

	t.Run("no slots", func(t *testing.T) {
		assert.Nil(t, ObjectiveIndexes(2, 0))
	})
}
