package stats

// DailyTotal is the summed expense amount for one calendar date.
type DailyTotal struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// CategoryTotal is the summed expense amount for one category, with the
// resolved display name.
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	ID       string  `json:"id"`
}

// Summary is the trip-wide budget/expense overview.
type Summary struct {
	TotalBudget   float64 `json:"totalBudget"`
	TotalExpenses float64 `json:"totalExpenses"`
	Remaining     float64 `json:"remaining"`
	PercentUsed   int     `json:"percentUsed"`
}

// Tips is saving advice for the category the trip spends most on, or
// general advice when there is nothing to aggregate yet.
type Tips struct {
	Category string   `json:"category"`
	Tips     []string `json:"tips"`
}
