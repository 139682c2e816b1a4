package trip

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/vacaytracker/vacaytracker/internal/storage"
)

// StorageKey is the local store key holding the trip collection as a
// JSON array. The layout has no version field; it is read as-is.
const StorageKey = "vacayTrackerTrips"

type Repo interface {
	List(ctx context.Context) ([]Trip, error)
	Get(ctx context.Context, id string) (Trip, error)
	Append(ctx context.Context, t Trip) error
	Update(ctx context.Context, t Trip) error
	ActiveID(ctx context.Context) (string, error)
	SetActiveID(ctx context.Context, id string) error
}

// StoreRepo keeps the trip collection in memory and writes the whole
// collection to the local store on every change. The active trip id is
// an in-memory selection only: on load, the first open trip becomes
// active.
type StoreRepo struct {
	store *storage.LocalStore

	mu       sync.RWMutex
	trips    []Trip
	activeID string
}

func NewStoreRepo(ctx context.Context, store *storage.LocalStore) (*StoreRepo, error) {
	repo := &StoreRepo{store: store}

	raw, found, err := store.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("load trips: %w", err)
	}
	if found {
		if err := json.Unmarshal([]byte(raw), &repo.trips); err != nil {
			return nil, fmt.Errorf("decode stored trips: %w", err)
		}
	}
	for _, t := range repo.trips {
		if t.Status == StatusOpen {
			repo.activeID = t.ID
			break
		}
	}

	return repo, nil
}

func (r *StoreRepo) List(ctx context.Context) ([]Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trips := make([]Trip, 0, len(r.trips))
	for _, t := range r.trips {
		trips = append(trips, t.Clone())
	}
	return trips, nil
}

func (r *StoreRepo) Get(ctx context.Context, id string) (Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.trips {
		if t.ID == id {
			return t.Clone(), nil
		}
	}
	return Trip{}, ErrTripNotFound
}

func (r *StoreRepo) Append(ctx context.Context, t Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.trips = append(r.trips, t.Clone())
	return r.persist(ctx)
}

func (r *StoreRepo) Update(ctx context.Context, t Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.trips {
		if r.trips[i].ID == t.ID {
			r.trips[i] = t.Clone()
			return r.persist(ctx)
		}
	}
	return ErrTripNotFound
}

func (r *StoreRepo) ActiveID(ctx context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.activeID, nil
}

func (r *StoreRepo) SetActiveID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activeID = id
	return nil
}

// persist writes the whole collection under StorageKey. Callers must
// hold the write lock.
func (r *StoreRepo) persist(ctx context.Context) error {
	encoded, err := json.Marshal(r.trips)
	if err != nil {
		return fmt.Errorf("encode trips: %w", err)
	}
	if err := r.store.Set(ctx, StorageKey, string(encoded)); err != nil {
		return fmt.Errorf("persist trips: %w", err)
	}
	return nil
}
