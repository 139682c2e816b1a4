package stats

import (
	"math"

	"github.com/vacaytracker/vacaytracker/pkg/category"
	"github.com/vacaytracker/vacaytracker/pkg/trip"
)

// The aggregation functions are pure and treat a nil trip as "no data",
// returning zero values so display layers never need nil guards.

// SpentInCategory sums the amounts of the trip's expenses in the given
// category.
func SpentInCategory(t *trip.Trip, categoryID string) float64 {
	if t == nil {
		return 0
	}
	var total float64
	for _, exp := range t.Expenses {
		if exp.Category == categoryID {
			total += exp.Amount
		}
	}
	return total
}

// TotalExpenses sums all expense amounts of the trip.
func TotalExpenses(t *trip.Trip) float64 {
	if t == nil {
		return 0
	}
	var total float64
	for _, exp := range t.Expenses {
		total += exp.Amount
	}
	return total
}

// TotalBudget sums all allocations of the trip's budget mapping. A trip
// without a budget mapping behaves as all-zero allocations.
func TotalBudget(t *trip.Trip) float64 {
	if t == nil {
		return 0
	}
	var total float64
	for _, amount := range t.Budget {
		total += amount
	}
	return total
}

// ExpensesByDay returns per-date sums in the order each date is first
// encountered in the expense list.
func ExpensesByDay(t *trip.Trip) []DailyTotal {
	if t == nil {
		return []DailyTotal{}
	}

	totals := make(map[string]float64)
	order := make([]string, 0)
	for _, exp := range t.Expenses {
		if _, seen := totals[exp.Date]; !seen {
			order = append(order, exp.Date)
		}
		totals[exp.Date] += exp.Amount
	}

	daily := make([]DailyTotal, 0, len(order))
	for _, date := range order {
		daily = append(daily, DailyTotal{Date: date, Amount: totals[date]})
	}
	return daily
}

// ExpensesByCategory returns per-category sums in first-encounter
// order. Display names are resolved through nameFor, keeping this
// package decoupled from the category catalog.
func ExpensesByCategory(t *trip.Trip, nameFor func(string) string) []CategoryTotal {
	if t == nil {
		return []CategoryTotal{}
	}

	totals := make(map[string]float64)
	order := make([]string, 0)
	for _, exp := range t.Expenses {
		if _, seen := totals[exp.Category]; !seen {
			order = append(order, exp.Category)
		}
		totals[exp.Category] += exp.Amount
	}

	byCategory := make([]CategoryTotal, 0, len(order))
	for _, id := range order {
		byCategory = append(byCategory, CategoryTotal{
			Category: nameFor(id),
			Amount:   totals[id],
			ID:       id,
		})
	}
	return byCategory
}

// Summarize computes the trip-wide budget usage overview.
func Summarize(t *trip.Trip) Summary {
	totalBudget := TotalBudget(t)
	totalExpenses := TotalExpenses(t)

	percentUsed := 0
	if totalBudget > 0 {
		percentUsed = int(math.Round(totalExpenses / totalBudget * 100))
	}

	return Summary{
		TotalBudget:   totalBudget,
		TotalExpenses: totalExpenses,
		Remaining:     totalBudget - totalExpenses,
		PercentUsed:   percentUsed,
	}
}

// HighestSpendingCategory returns the catalog category with the highest
// total. Ties break in catalog order, first maximum wins. The second
// return value is false for a nil trip or an empty catalog.
func HighestSpendingCategory(t *trip.Trip, catalog []category.Category) (string, bool) {
	if t == nil || len(catalog) == 0 {
		return "", false
	}

	highestID := catalog[0].ID
	highestTotal := SpentInCategory(t, highestID)
	for _, cat := range catalog[1:] {
		if total := SpentInCategory(t, cat.ID); total > highestTotal {
			highestID = cat.ID
			highestTotal = total
		}
	}
	return highestID, true
}
