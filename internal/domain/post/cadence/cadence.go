// Package cadence implements the date arithmetic behind the schedule
// generator: the Monday/Wednesday/Friday publication cadence and the
// round-robin distribution of objectives over generated slots.
package cadence

import (
	"time"
)

// searchWindowDays bounds the forward walk from the first day of the
// reference month. With three cadence weekdays per week the window yields
// roughly 26 slots; requests beyond that fall back to padding.
const searchWindowDays = 60

// padStepDays is the spacing used for slots generated past the search window
const padStepDays = 2

// isCadenceDay returns true for the fixed publication weekdays
func isCadenceDay(d time.Time) bool {
	switch d.Weekday() {
	case time.Monday, time.Wednesday, time.Friday:
		return true
	default:
		return false
	}
}

// MonthDates returns exactly quantity publication dates for the given
// reference month. The schedule anchors on the first Monday of the month
// and from there walks forward one day at a time collecting every Monday,
// Wednesday and Friday. If the search window is exhausted before quantity
// dates are found, the remaining slots are padded by stepping two days
// past the previously generated date, so the result length is always
// quantity even for degenerate input. The padded tail no longer respects
// the weekday cadence.
func MonthDates(year int, month time.Month, quantity int) []time.Time {
	if quantity <= 0 {
		return nil
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	dates := make([]time.Time, 0, quantity)

	anchored := false
	for offset := 0; offset < searchWindowDays && len(dates) < quantity; offset++ {
		day := start.AddDate(0, 0, offset)
		if !anchored {
			if day.Weekday() != time.Monday {
				continue
			}
			anchored = true
		}
		if isCadenceDay(day) {
			dates = append(dates, day)
		}
	}

	// Padding fallback: never return fewer than quantity dates.
	last := start
	if len(dates) > 0 {
		last = dates[len(dates)-1]
	}
	for len(dates) < quantity {
		last = last.AddDate(0, 0, padStepDays)
		dates = append(dates, last)
	}

	return dates
}

// ObjectiveIndexes returns the objective index assigned to each of quantity
// slots, rotating positionally through numObjectives: slot i gets
// i % numObjectives. Earlier objectives receive the remainder assignments.
// Returns nil when there are no objectives.
func ObjectiveIndexes(numObjectives, quantity int) []int {
	if numObjectives <= 0 || quantity <= 0 {
		return nil
	}
	idx := make([]int, quantity)
	for i := range idx {
		idx[i] = i % numObjectives
	}
	return idx
}
