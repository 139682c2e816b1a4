package stats

import (
	"context"

	"github.com/vacaytracker/vacaytracker/pkg/category"
	"github.com/vacaytracker/vacaytracker/pkg/trip"
)

type Service interface {
	Summary(ctx context.Context) (Summary, error)
	Daily(ctx context.Context) ([]DailyTotal, error)
	ByCategory(ctx context.Context) ([]CategoryTotal, error)
	MoneyTips(ctx context.Context) (Tips, error)
}

type ServiceImpl struct {
	trips    trip.Repo
	resolver *category.Resolver
}

func NewServiceImpl(trips trip.Repo, resolver *category.Resolver) *ServiceImpl {
	return &ServiceImpl{trips: trips, resolver: resolver}
}

func (s *ServiceImpl) Summary(ctx context.Context) (Summary, error) {
	active, err := s.activeTrip(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(active), nil
}

func (s *ServiceImpl) Daily(ctx context.Context) ([]DailyTotal, error) {
	active, err := s.activeTrip(ctx)
	if err != nil {
		return nil, err
	}
	return ExpensesByDay(active), nil
}

func (s *ServiceImpl) ByCategory(ctx context.Context) ([]CategoryTotal, error) {
	active, err := s.activeTrip(ctx)
	if err != nil {
		return nil, err
	}
	return ExpensesByCategory(active, s.resolver.Name), nil
}

// MoneyTips returns saving advice for the highest-spending category of
// the active trip, or general advice when there is no spending yet.
func (s *ServiceImpl) MoneyTips(ctx context.Context) (Tips, error) {
	active, err := s.activeTrip(ctx)
	if err != nil {
		return Tips{}, err
	}

	if active == nil || len(active.Expenses) == 0 {
		return Tips{Category: "general", Tips: category.GeneralTips()}, nil
	}

	highestID, ok := HighestSpendingCategory(active, s.resolver.Catalog())
	if !ok {
		return Tips{Category: "general", Tips: category.GeneralTips()}, nil
	}
	return Tips{Category: s.resolver.Name(highestID), Tips: category.TipsFor(highestID)}, nil
}

// activeTrip returns nil without error when no trip is active, keeping
// the aggregation zero-valued for display.
func (s *ServiceImpl) activeTrip(ctx context.Context) (*trip.Trip, error) {
	activeID, err := s.trips.ActiveID(ctx)
	if err != nil {
		return nil, err
	}
	if activeID == "" {
		return nil, nil
	}
	active, err := s.trips.Get(ctx, activeID)
	if err != nil {
		return nil, err
	}
	return &active, nil
}
