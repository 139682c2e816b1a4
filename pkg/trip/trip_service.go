package trip

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/vacaytracker/vacaytracker/internal/events"
	"github.com/vacaytracker/vacaytracker/internal/utils"
	"github.com/vacaytracker/vacaytracker/pkg/category"
	"github.com/vacaytracker/vacaytracker/pkg/notification"
	"github.com/vacaytracker/vacaytracker/pkg/validation"
)

type Service interface {
	Create(ctx context.Context, data Trip) (Trip, error)
	Close(ctx context.Context, id string) error
	Reopen(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string) error
	Active(ctx context.Context) (Trip, bool, error)
	List(ctx context.Context) ([]Trip, error)
}

type ServiceImpl struct {
	repo     Repo
	catalog  []category.Category
	notifier notification.Notifier
	bus      *events.Bus
	clock    utils.Clock
}

func NewServiceImpl(repo Repo, catalog []category.Category, notifier notification.Notifier, bus *events.Bus, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, catalog: catalog, notifier: notifier, bus: bus, clock: clock}
}

// Create assigns a fresh id, opens the trip with an empty expense list
// and a zero-filled budget template, and makes it the active trip.
func (s *ServiceImpl) Create(ctx context.Context, data Trip) (Trip, error) {
	vErr := validation.NewError()
	if strings.TrimSpace(data.Name) == "" {
		vErr.Add("name", "Trip name is required.")
	}
	if strings.TrimSpace(data.Destination) == "" {
		vErr.Add("destination", "Destination is required.")
	}
	if vErr.HasErrors() {
		return Trip{}, vErr
	}

	t := Trip{
		ID:          uuid.NewString(),
		Name:        data.Name,
		Destination: data.Destination,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		Status:      StatusOpen,
		Expenses:    []Expense{},
		Budget:      category.BudgetTemplate(s.catalog),
		CreatedAt:   s.clock.Now(),
	}

	if err := s.repo.Append(ctx, t); err != nil {
		return Trip{}, fmt.Errorf("store trip: %w", err)
	}
	if err := s.repo.SetActiveID(ctx, t.ID); err != nil {
		return Trip{}, fmt.Errorf("activate trip: %w", err)
	}

	s.notifier.Notify(notification.KindSuccess, fmt.Sprintf("Trip %q created successfully!", t.Name))
	s.bus.Publish(events.TripCreated, events.TripEvent{TripID: t.ID, Name: t.Name})
	return t, nil
}

// Close marks the trip closed. Closing the active trip selects the
// first remaining open trip as active, or none.
func (s *ServiceImpl) Close(ctx context.Context, id string) error {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	t.Status = StatusClosed
	if err := s.repo.Update(ctx, t); err != nil {
		return fmt.Errorf("close trip: %w", err)
	}

	activeID, err := s.repo.ActiveID(ctx)
	if err != nil {
		return err
	}
	if activeID == id {
		nextID := ""
		trips, err := s.repo.List(ctx)
		if err != nil {
			return err
		}
		for _, candidate := range trips {
			if candidate.Status == StatusOpen {
				nextID = candidate.ID
				break
			}
		}
		if err := s.repo.SetActiveID(ctx, nextID); err != nil {
			return err
		}
		log.Debugf("closed active trip %s, new active trip: %q", id, nextID)
	}

	s.notifier.Notify(notification.KindInfo, "Trip closed successfully")
	s.bus.Publish(events.TripClosed, events.TripEvent{TripID: t.ID, Name: t.Name})
	return nil
}

// Reopen sets the trip back to open. It does not reactivate it.
func (s *ServiceImpl) Reopen(ctx context.Context, id string) error {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	t.Status = StatusOpen
	if err := s.repo.Update(ctx, t); err != nil {
		return fmt.Errorf("reopen trip: %w", err)
	}

	s.notifier.Notify(notification.KindSuccess, "Trip reopened successfully")
	s.bus.Publish(events.TripReopened, events.TripEvent{TripID: t.ID, Name: t.Name})
	return nil
}

// SetActive selects an open trip as the active one.
func (s *ServiceImpl) SetActive(ctx context.Context, id string) error {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if t.Status != StatusOpen {
		return ErrTripClosed
	}
	if err := s.repo.SetActiveID(ctx, id); err != nil {
		return err
	}
	s.bus.Publish(events.TripActivated, events.TripEvent{TripID: t.ID, Name: t.Name})
	return nil
}

// Active returns the active trip, or false when no trip is active.
func (s *ServiceImpl) Active(ctx context.Context) (Trip, bool, error) {
	activeID, err := s.repo.ActiveID(ctx)
	if err != nil {
		return Trip{}, false, err
	}
	if activeID == "" {
		return Trip{}, false, nil
	}
	t, err := s.repo.Get(ctx, activeID)
	if err != nil {
		return Trip{}, false, err
	}
	return t, true, nil
}

func (s *ServiceImpl) List(ctx context.Context) ([]Trip, error) {
	return s.repo.List(ctx)
}
