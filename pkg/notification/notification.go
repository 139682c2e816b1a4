package notification

import (
	"sync"
	"time"

	"github.com/vacaytracker/vacaytracker/internal/utils"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// Notification is a transient user-facing message. It carries its own
// expiry deadline instead of being removed by a timer, so readers
// decide visibility by comparing against the clock.
type Notification struct {
	ID        int       `json:"id"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	Section   string    `json:"section,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Notifier is the capability managers use to surface messages.
type Notifier interface {
	Notify(kind Kind, message string)
	NotifySection(kind Kind, message string, section string)
}

// Center stores notifications as expiring values. Expired entries are
// pruned lazily on read.
type Center struct {
	clock utils.Clock
	ttl   time.Duration

	mu      sync.Mutex
	nextID  int
	pending []Notification
}

func NewCenter(clock utils.Clock, ttl time.Duration) *Center {
	return &Center{clock: clock, ttl: ttl}
}

func (c *Center) Notify(kind Kind, message string) {
	c.NotifySection(kind, message, "")
}

func (c *Center) NotifySection(kind Kind, message string, section string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	c.pending = append(c.pending, Notification{
		ID:        c.nextID,
		Kind:      kind,
		Message:   message,
		Section:   section,
		ExpiresAt: c.clock.Now().Add(c.ttl),
	})
}

// Active returns all notifications that have not expired yet, in the
// order they were raised, and drops the expired ones.
func (c *Center) Active() []Notification {
	now := c.clock.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	active := make([]Notification, 0, len(c.pending))
	for _, n := range c.pending {
		if n.ExpiresAt.After(now) {
			active = append(active, n)
		}
	}
	c.pending = active
	return active
}

// Clear removes all pending notifications regardless of expiry.
func (c *Center) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = nil
}
