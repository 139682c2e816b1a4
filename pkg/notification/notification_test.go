package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vacaytracker/vacaytracker/internal/utils"
)

func TestCenter(t *testing.T) {
	ttl := 3 * time.Second

	t.Run("should expose a raised notification until its deadline", func(t *testing.T) {
		// given
		clock := &utils.FixedClock{Instant: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
		center := NewCenter(clock, ttl)

		// when
		center.Notify(KindSuccess, "Trip created successfully!")

		// then
		active := center.Active()
		require.Len(t, active, 1)
		assert.Equal(t, KindSuccess, active[0].Kind)
		assert.Equal(t, "Trip created successfully!", active[0].Message)

		clock.Advance(ttl - time.Millisecond)
		assert.Len(t, center.Active(), 1)
	})

	t.Run("should drop notifications past their deadline", func(t *testing.T) {
		// given
		clock := &utils.FixedClock{Instant: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
		center := NewCenter(clock, ttl)
		center.Notify(KindInfo, "Trip closed successfully")

		// when
		clock.Advance(ttl)

		// then
		assert.Empty(t, center.Active())
	})

	t.Run("should only expire the older of two notifications", func(t *testing.T) {
		// given
		clock := &utils.FixedClock{Instant: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
		center := NewCenter(clock, ttl)
		center.Notify(KindInfo, "first")
		clock.Advance(2 * time.Second)
		center.Notify(KindWarning, "second")

		// when
		clock.Advance(2 * time.Second)

		// then
		active := center.Active()
		require.Len(t, active, 1)
		assert.Equal(t, "second", active[0].Message)
	})

	t.Run("should keep the order notifications were raised in", func(t *testing.T) {
		// given
		clock := &utils.FixedClock{Instant: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
		center := NewCenter(clock, ttl)

		// when
		center.Notify(KindSuccess, "first")
		center.NotifySection(KindError, "second", "password")

		// then
		active := center.Active()
		require.Len(t, active, 2)
		assert.Equal(t, "first", active[0].Message)
		assert.Equal(t, "second", active[1].Message)
		assert.Equal(t, "password", active[1].Section)
		assert.Greater(t, active[1].ID, active[0].ID)
	})

	t.Run("should clear all pending notifications", func(t *testing.T) {
		// given
		clock := &utils.FixedClock{Instant: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
		center := NewCenter(clock, ttl)
		center.Notify(KindSuccess, "first")
		center.Notify(KindSuccess, "second")

		// when
		center.Clear()

		// then
		assert.Empty(t, center.Active())
	})
}
