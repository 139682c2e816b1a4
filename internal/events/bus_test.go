package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus(t *testing.T) {
	t.Run("should deliver events to matching subscribers in order", func(t *testing.T) {
		// given
		bus := NewBus()
		var received []Event
		bus.Subscribe(TripCreated, func(e Event) { received = append(received, e) })
		bus.Subscribe(TripClosed, func(e Event) { t.Error("wrong subscriber invoked") })

		// when
		bus.Publish(TripCreated, TripEvent{TripID: "trip-1", Name: "Rome"})

		// then
		require.Len(t, received, 1)
		assert.Equal(t, TripCreated, received[0].Type)
		assert.Equal(t, TripEvent{TripID: "trip-1", Name: "Rome"}, received[0].Data)
	})

	t.Run("should deliver every event to catch-all subscribers", func(t *testing.T) {
		// given
		bus := NewBus()
		var seen []EventType
		bus.Subscribe("", func(e Event) { seen = append(seen, e.Type) })

		// when
		bus.Publish(TripCreated, TripEvent{TripID: "trip-1"})
		bus.Publish(ExpenseAdded, ExpenseEvent{TripID: "trip-1", ExpenseID: "e1"})

		// then
		assert.Equal(t, []EventType{TripCreated, ExpenseAdded}, seen)
	})

	t.Run("should survive a panicking handler", func(t *testing.T) {
		// given
		bus := NewBus()
		invoked := false
		bus.Subscribe(BudgetUpdated, func(Event) { panic("boom") })
		bus.Subscribe(BudgetUpdated, func(Event) { invoked = true })

		// when
		bus.Publish(BudgetUpdated, BudgetEvent{TripID: "trip-1", Total: 100})

		// then
		assert.True(t, invoked)
	})
}
