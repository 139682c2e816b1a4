package export

import (
	"time"

	"github.com/vacaytracker/vacaytracker/pkg/trip"
)

// Filter returns the expenses satisfying the date range and category
// criteria of opts. It is pure: the input is never mutated and the
// result preserves the original relative order. A criterion that is
// not present passes everything through; an empty category list is
// treated the same as no category filter.
func Filter(expenses []trip.Expense, opts Options) []trip.Expense {
	var from, to time.Time
	if opts.DateRange != nil {
		if parsed, err := parseCalendarDate(opts.DateRange.From); err == nil {
			from = parsed
		}
		if parsed, err := parseCalendarDate(opts.DateRange.To); err == nil {
			// Both bounds inclusive: push "to" to the end of its day.
			to = parsed.Add(24*time.Hour - time.Millisecond)
		}
	}

	included := make(map[string]bool, len(opts.Categories))
	for _, id := range opts.Categories {
		included[id] = true
	}

	matched := make([]trip.Expense, 0, len(expenses))
	for _, exp := range expenses {
		if opts.DateRange != nil && !inRange(exp, from, to) {
			continue
		}
		if len(included) > 0 && !included[exp.Category] {
			continue
		}
		matched = append(matched, exp)
	}
	return matched
}

// inRange checks the expense's full timestamp, falling back to its
// calendar date when no timestamp was recorded.
func inRange(exp trip.Expense, from, to time.Time) bool {
	when := exp.FullDate
	if when.IsZero() {
		parsed, err := parseCalendarDate(exp.Date)
		if err != nil {
			return false
		}
		when = parsed
	}

	if !from.IsZero() && when.Before(from) {
		return false
	}
	if !to.IsZero() && when.After(to) {
		return false
	}
	return true
}
