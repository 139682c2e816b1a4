package events

const (
	TripCreated    EventType = "trip.created"
	TripClosed     EventType = "trip.closed"
	TripReopened   EventType = "trip.reopened"
	TripActivated  EventType = "trip.activated"
	ExpenseAdded   EventType = "expense.added"
	ExpenseUpdated EventType = "expense.updated"
	ExpenseDeleted EventType = "expense.deleted"
	BudgetUpdated  EventType = "budget.updated"
	ExportCreated  EventType = "export.created"
)

type TripEvent struct {
	TripID string
	Name   string
}

type ExpenseEvent struct {
	TripID     string
	ExpenseID  string
	CategoryID string
	Amount     float64
}

type BudgetEvent struct {
	TripID string
	Total  float64
}

type ExportEvent struct {
	Format   string
	Filename string
	Rows     int
}
