package budget

import (
	"context"
	"fmt"

	"github.com/vacaytracker/vacaytracker/internal/events"
	"github.com/vacaytracker/vacaytracker/pkg/notification"
	"github.com/vacaytracker/vacaytracker/pkg/trip"
	"github.com/vacaytracker/vacaytracker/pkg/validation"
)

type Service interface {
	Get(ctx context.Context) (map[string]float64, error)
	Update(ctx context.Context, allocations map[string]float64) error
}

type ServiceImpl struct {
	trips    trip.Repo
	notifier notification.Notifier
	bus      *events.Bus
}

func NewServiceImpl(trips trip.Repo, notifier notification.Notifier, bus *events.Bus) *ServiceImpl {
	return &ServiceImpl{trips: trips, notifier: notifier, bus: bus}
}

// Get returns the active trip's budget mapping.
func (s *ServiceImpl) Get(ctx context.Context) (map[string]float64, error) {
	active, err := s.activeTrip(ctx)
	if err != nil {
		return nil, err
	}
	return active.Budget, nil
}

// Update replaces the active trip's budget mapping wholesale. All
// allocations must be non-negative; a zero allocation means no limit.
func (s *ServiceImpl) Update(ctx context.Context, allocations map[string]float64) error {
	active, err := s.activeTrip(ctx)
	if err != nil {
		return err
	}

	vErr := validation.NewError()
	for categoryID, amount := range allocations {
		if amount < 0 {
			vErr.Add(categoryID, "Budget must not be negative.")
		}
	}
	if vErr.HasErrors() {
		return vErr
	}

	active.Budget = allocations
	if err := s.trips.Update(ctx, active); err != nil {
		return fmt.Errorf("store budget: %w", err)
	}

	var total float64
	for _, amount := range allocations {
		total += amount
	}

	s.notifier.Notify(notification.KindSuccess, "Budget updated successfully!")
	s.bus.Publish(events.BudgetUpdated, events.BudgetEvent{TripID: active.ID, Total: total})
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
