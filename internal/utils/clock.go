package utils

import "time"

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (s SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock returns a preset instant, for tests.
type FixedClock struct {
	Instant time.Time
}

func (f *FixedClock) Now() time.Time {
	return f.Instant
}

func (f *FixedClock) Advance(d time.Duration) {
	f.Instant = f.Instant.Add(d)
}
