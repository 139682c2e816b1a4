package trip

import (
	"context"
)

// RepoStub is an in-memory Repo for tests.
type RepoStub struct {
	trips    []Trip
	activeID string
}

func NewStubTripRepo() *RepoStub {
	return &RepoStub{}
}

func (s *RepoStub) List(ctx context.Context) ([]Trip, error) {
	trips := make([]Trip, 0, len(s.trips))
	for _, t := range s.trips {
		trips = append(trips, t.Clone())
	}
	return trips, nil
}

func (s *RepoStub) Get(ctx context.Context, id string) (Trip, error) {
	for _, t := range s.trips {
		if t.ID == id {
			return t.Clone(), nil
		}
	}
	return Trip{}, ErrTripNotFound
}

func (s *RepoStub) Append(ctx context.Context, t Trip) error {
	s.trips = append(s.trips, t.Clone())
	return nil
}

func (s *RepoStub) Update(ctx context.Context, t Trip) error {
	for i := range s.trips {
		if s.trips[i].ID == t.ID {
			s.trips[i] = t.Clone()
			return nil
		}
	}
	return ErrTripNotFound
}

func (s *RepoStub) ActiveID(ctx context.Context) (string, error) {
	return s.activeID, nil
}

func (s *RepoStub) SetActiveID(ctx context.Context, id string) error {
	s.activeID = id
	return nil
}

func (s *RepoStub) Cleanup() {
	s.trips = nil
	s.activeID = ""
}
