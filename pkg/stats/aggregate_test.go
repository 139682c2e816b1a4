package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vacaytracker/vacaytracker/pkg/category"
	"github.com/vacaytracker/vacaytracker/pkg/trip"
)

var resolver = category.NewResolver(category.Defaults())

func sampleTrip() *trip.Trip {
	return &trip.Trip{
		ID:     "trip-1",
		Name:   "Lisbon",
		Status: trip.StatusOpen,
		Expenses: []trip.Expense{
			{ID: "e1", Description: "Hotel", Amount: 200, Category: "accommodation", Date: "2024-01-01"},
			{ID: "e2", Description: "Lunch", Amount: 25.5, Category: "food", Date: "2024-01-02"},
			{ID: "e3", Description: "Dinner", Amount: 40, Category: "food", Date: "2024-01-01"},
		},
		Budget: map[string]float64{
			"accommodation": 500,
			"food":          100,
		},
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSpentInCategory(t *testing.T) {
	t.Run("should sum amounts of matching category", func(t *testing.T) {
		assert.Equal(t, 65.5, SpentInCategory(sampleTrip(), "food"))
	})

	t.Run("should return zero for category without expenses", func(t *testing.T) {
		assert.Equal(t, 0.0, SpentInCategory(sampleTrip(), "shopping"))
	})

	t.Run("should return zero for nil trip", func(t *testing.T) {
		assert.Equal(t, 0.0, SpentInCategory(nil, "food"))
	})
}

func TestTotalExpenses(t *testing.T) {
	t.Run("should sum all expenses", func(t *testing.T) {
		assert.Equal(t, 265.5, TotalExpenses(sampleTrip()))
	})

	t.Run("should return zero for nil trip", func(t *testing.T) {
		assert.Equal(t, 0.0, TotalExpenses(nil))
	})

	t.Run("should return zero for trip without expenses", func(t *testing.T) {
		assert.Equal(t, 0.0, TotalExpenses(&trip.Trip{}))
	})
}

func TestTotalBudget(t *testing.T) {
	t.Run("should equal the sum of all allocations", func(t *testing.T) {
		assert.Equal(t, 600.0, TotalBudget(sampleTrip()))
	})

	t.Run("should return zero for an all-zero budget", func(t *testing.T) {
		zero := &trip.Trip{Budget: category.BudgetTemplate(category.Defaults())}
		assert.Equal(t, 0.0, TotalBudget(zero))
	})

	t.Run("should return zero for trip without budget mapping", func(t *testing.T) {
		assert.Equal(t, 0.0, TotalBudget(&trip.Trip{}))
	})

	t.Run("should return zero for nil trip", func(t *testing.T) {
		assert.Equal(t, 0.0, TotalBudget(nil))
	})
}

func TestExpensesByDay(t *testing.T) {
	t.Run("should keep first-encounter date order", func(t *testing.T) {
		daily := ExpensesByDay(sampleTrip())

		assert.Equal(t, []DailyTotal{
			{Date: "2024-01-01", Amount: 240},
			{Date: "2024-01-02", Amount: 25.5},
		}, daily)
	})

	t.Run("should return empty slice for nil trip", func(t *testing.T) {
		assert.Empty(t, ExpensesByDay(nil))
	})
}

func TestExpensesByCategory(t *testing.T) {
	t.Run("should resolve display names through the lookup", func(t *testing.T) {
		byCategory := ExpensesByCategory(sampleTrip(), resolver.Name)

		assert.Equal(t, []CategoryTotal{
			{Category: "Accommodation", Amount: 200, ID: "accommodation"},
			{Category: "Food & Drinks", Amount: 65.5, ID: "food"},
		}, byCategory)
	})

	t.Run("should fall back to Unknown for stale category ids", func(t *testing.T) {
		stale := &trip.Trip{Expenses: []trip.Expense{
			{ID: "e1", Description: "Old", Amount: 10, Category: "souvenirs", Date: "2024-01-01"},
		}}

		byCategory := ExpensesByCategory(stale, resolver.Name)

		assert.Equal(t, "Unknown", byCategory[0].Category)
	})
}

func TestSummarize(t *testing.T) {
	t.Run("should compute remaining as budget minus expenses", func(t *testing.T) {
		summary := Summarize(sampleTrip())

		assert.Equal(t, 600.0, summary.TotalBudget)
		assert.Equal(t, 265.5, summary.TotalExpenses)
		assert.Equal(t, summary.TotalBudget-summary.TotalExpenses, summary.Remaining)
		assert.Equal(t, 44, summary.PercentUsed)
	})

	t.Run("should report zero percent used without budget", func(t *testing.T) {
		noBudget := &trip.Trip{Expenses: []trip.Expense{
			{ID: "e1", Description: "Lunch", Amount: 10, Category: "food", Date: "2024-01-01"},
		}}

		summary := Summarize(noBudget)

		assert.Equal(t, 0, summary.PercentUsed)
		assert.Equal(t, -10.0, summary.Remaining)
	})

	t.Run("should be all zero for nil trip", func(t *testing.T) {
		assert.Equal(t, Summary{}, Summarize(nil))
	})
}

func TestHighestSpendingCategory(t *testing.T) {
	t.Run("should pick the category with the highest total", func(t *testing.T) {
		highest, ok := HighestSpendingCategory(sampleTrip(), category.Defaults())

		assert.True(t, ok)
		assert.Equal(t, "accommodation", highest)
	})

	t.Run("should break ties in catalog order", func(t *testing.T) {
		tied := &trip.Trip{Expenses: []trip.Expense{
			{ID: "e1", Description: "Souvenir", Amount: 50, Category: "shopping", Date: "2024-01-01"},
			{ID: "e2", Description: "Dinner", Amount: 50, Category: "food", Date: "2024-01-01"},
		}}

		highest, ok := HighestSpendingCategory(tied, category.Defaults())

		assert.True(t, ok)
		assert.Equal(t, "food", highest)
	})

	t.Run("should report not ok for nil trip", func(t *testing.T) {
		_, ok := HighestSpendingCategory(nil, category.Defaults())
		assert.False(t, ok)
	})
}
