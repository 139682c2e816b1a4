package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/vacaytracker/vacaytracker/internal/events"
	"github.com/vacaytracker/vacaytracker/internal/utils"
	"github.com/vacaytracker/vacaytracker/pkg/category"
	"github.com/vacaytracker/vacaytracker/pkg/notification"
	"github.com/vacaytracker/vacaytracker/pkg/trip"
	"github.com/vacaytracker/vacaytracker/pkg/validation"
)

const (
	// BudgetWarningThreshold is the category usage percentage at which
	// an "approaching" notice is raised.
	BudgetWarningThreshold = 80
	// BudgetDangerThreshold is the category usage percentage at which
	// an "exceeded" warning is raised.
	BudgetDangerThreshold = 100
)

var ErrExpenseNotFound = errors.New("expense not found")

// Input carries the user-entered fields of an expense.
type Input struct {
	Description string
	Amount      float64
	Category    string
	Date        string
}

type Service interface {
	Add(ctx context.Context, data Input) (trip.Expense, error)
	Update(ctx context.Context, id string, data Input) (trip.Expense, error)
	Delete(ctx context.Context, id string) error
}

type ServiceImpl struct {
	trips    trip.Repo
	resolver *category.Resolver
	notifier notification.Notifier
	bus      *events.Bus
	clock    utils.Clock
}

func NewServiceImpl(trips trip.Repo, resolver *category.Resolver, notifier notification.Notifier, bus *events.Bus, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{trips: trips, resolver: resolver, notifier: notifier, bus: bus, clock: clock}
}

// Add appends a new expense to the active trip and evaluates the
// budget-threshold notification for its category.
func (s *ServiceImpl) Add(ctx context.Context, data Input) (trip.Expense, error) {
	active, err := s.activeTrip(ctx)
	if err != nil {
		if errors.Is(err, trip.ErrNoActiveTrip) {
			s.notifier.Notify(notification.KindError, "Please create or select a trip first")
		}
		return trip.Expense{}, err
	}

	if err := s.validate(data); err != nil {
		return trip.Expense{}, err
	}

	priorTotal := categoryTotal(active, data.Category)

	exp := trip.Expense{
		ID:          uuid.NewString(),
		Description: data.Description,
		Amount:      data.Amount,
		Category:    data.Category,
		Date:        data.Date,
		FullDate:    s.clock.Now(),
	}
	active.Expenses = append(active.Expenses, exp)

	if err := s.trips.Update(ctx, active); err != nil {
		return trip.Expense{}, fmt.Errorf("store expense: %w", err)
	}

	s.notifyThreshold(active, data.Category, priorTotal+exp.Amount, "Expense added successfully!")
	s.bus.Publish(events.ExpenseAdded, events.ExpenseEvent{
		TripID: active.ID, ExpenseID: exp.ID, CategoryID: exp.Category, Amount: exp.Amount,
	})
	return exp, nil
}

// Update replaces the user-entered fields of an expense on the active
// trip and re-evaluates the budget threshold for the new category.
func (s *ServiceImpl) Update(ctx context.Context, id string, data Input) (trip.Expense, error) {
	active, err := s.activeTrip(ctx)
	if err != nil {
		return trip.Expense{}, err
	}

	if err := s.validate(data); err != nil {
		return trip.Expense{}, err
	}

	idx := -1
	for i := range active.Expenses {
		if active.Expenses[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return trip.Expense{}, ErrExpenseNotFound
	}

	active.Expenses[idx].Description = data.Description
	active.Expenses[idx].Amount = data.Amount
	active.Expenses[idx].Category = data.Category
	active.Expenses[idx].Date = data.Date
	updated := active.Expenses[idx]

	if err := s.trips.Update(ctx, active); err != nil {
		return trip.Expense{}, fmt.Errorf("store expense: %w", err)
	}

	s.notifyThreshold(active, data.Category, categoryTotal(active, data.Category), "Expense updated successfully!")
	s.bus.Publish(events.ExpenseUpdated, events.ExpenseEvent{
		TripID: active.ID, ExpenseID: updated.ID, CategoryID: updated.Category, Amount: updated.Amount,
	})
	return updated, nil
}

// Delete removes an expense from the active trip by id.
func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	active, err := s.activeTrip(ctx)
	if err != nil {
		return err
	}

	remaining := make([]trip.Expense, 0, len(active.Expenses))
	var deleted *trip.Expense
	for _, exp := range active.Expenses {
		if exp.ID == id {
			removed := exp
			deleted = &removed
			continue
		}
		remaining = append(remaining, exp)
	}
	if deleted == nil {
		return ErrExpenseNotFound
	}
	active.Expenses = remaining

	if err := s.trips.Update(ctx, active); err != nil {
		return fmt.Errorf("store expenses: %w", err)
	}

	s.notifier.Notify(notification.KindInfo, "Expense deleted successfully!")
	s.bus.Publish(events.ExpenseDeleted, events.ExpenseEvent{
		TripID: active.ID, ExpenseID: deleted.ID, CategoryID: deleted.Category, Amount: deleted.Amount,
	})
	return nil
}

func (s *ServiceImpl) activeTrip(ctx context.Context) (trip.Trip, error) {
	activeID, err := s.trips.ActiveID(ctx)
	if err != nil {
		return trip.Trip{}, err
	}
	if activeID == "" {
		return trip.Trip{}, trip.ErrNoActiveTrip
	}
	active, err := s.trips.Get(ctx, activeID)
	if err != nil {
		return trip.Trip{}, err
	}
	if active.Status != trip.StatusOpen {
		return trip.Trip{}, trip.ErrTripClosed
	}
	return active, nil
}

func (s *ServiceImpl) validate(data Input) error {
	vErr := validation.NewError()
	if strings.TrimSpace(data.Description) == "" {
		vErr.Add("description", "Description is required.")
	}
	if data.Amount <= 0 {
		vErr.Add("amount", "Amount must be greater than zero.")
	}
	if !s.resolver.Known(data.Category) {
		vErr.Add("category", "Unknown category.")
	}
	if strings.TrimSpace(data.Date) == "" {
		vErr.Add("date", "Date is required.")
	}
	if vErr.HasErrors() {
		return vErr
	}
	return nil
}

// notifyThreshold implements the advisory budget-threshold state
// machine: a zero category budget means "no limit", not zero tolerance.
func (s *ServiceImpl) notifyThreshold(t trip.Trip, categoryID string, categorySpend float64, successMessage string) {
	budget := t.Budget[categoryID]
	if budget <= 0 {
		s.notifier.Notify(notification.KindSuccess, successMessage)
		return
	}

	usage := categorySpend / budget * 100
	log.Debugf("category %s budget usage: %.1f%%", categoryID, usage)
	switch {
	case usage >= BudgetDangerThreshold:
		s.notifier.Notify(notification.KindWarning,
			fmt.Sprintf("You've exceeded your %s budget!", s.resolver.Name(categoryID)))
	case usage >= BudgetWarningThreshold:
		s.notifier.Notify(notification.KindInfo,
			fmt.Sprintf("You're approaching your %s budget limit", s.resolver.Name(categoryID)))
	default:
		s.notifier.Notify(notification.KindSuccess, successMessage)
	}
}

func categoryTotal(t trip.Trip, categoryID string) float64 {
	var total float64
	for _, exp := range t.Expenses {
		if exp.Category == categoryID {
			total += exp.Amount
		}
	}
	return total
}
