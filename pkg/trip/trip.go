package trip

import (
	"errors"
	"time"
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

var (
	ErrTripNotFound = errors.New("trip not found")
	ErrNoActiveTrip = errors.New("no active trip")
	ErrTripClosed   = errors.New("trip is closed")
)

// Expense is a single spend logged against a trip. Date is the calendar
// date as entered by the user (YYYY-MM-DD); FullDate is the creation
// timestamp used for range filtering.
type Expense struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	FullDate    time.Time `json:"fullDate"`
}

// Trip holds an ordered expense list and a per-category budget mapping.
// A category absent from Budget behaves as a zero allocation.
type Trip struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Destination string             `json:"destination"`
	StartDate   string             `json:"startDate"`
	EndDate     string             `json:"endDate"`
	Status      Status             `json:"status"`
	Expenses    []Expense          `json:"expenses"`
	Budget      map[string]float64 `json:"budget"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// Clone returns a deep copy so callers can mutate the result without
// affecting the stored trip.
func (t Trip) Clone() Trip {
	clone := t
	clone.Expenses = make([]Expense, len(t.Expenses))
	copy(clone.Expenses, t.Expenses)
	clone.Budget = make(map[string]float64, len(t.Budget))
	for k, v := range t.Budget {
		clone.Budget[k] = v
	}
	return clone
}
