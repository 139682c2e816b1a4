package events

import (
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// EventType is an identifier for domain events.
type EventType string

// Event is the envelope published on the bus. Data holds one of the
// payload types declared in events.go.
type Event struct {
	Type      EventType
	Timestamp time.Time
	Data      any
}

type handler func(Event)

// Bus is a concurrency-safe synchronous event dispatcher. Handlers run
// sequentially during Publish, in registration order per event type.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[EventType][]handler
}

func NewBus() *Bus {
	return &Bus{subscribers: make(map[EventType][]handler)}
}

// Subscribe registers h for eventType. The empty event type subscribes
// to every published event.
func (b *Bus) Subscribe(eventType EventType, h func(Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[eventType] = append(b.subscribers[eventType], handler(h))
}

// Publish delivers the event to all matching subscribers. Panics in
// handlers are recovered and logged so a misbehaving subscriber cannot
// abort the mutation that triggered the event.
func (b *Bus) Publish(eventType EventType, data any) {
	e := Event{Type: eventType, Timestamp: time.Now(), Data: data}

	b.mu.RLock()
	handlers := make([]handler, 0, len(b.subscribers[eventType])+len(b.subscribers[""]))
	handlers = append(handlers, b.subscribers[eventType]...)
	handlers = append(handlers, b.subscribers[""]...)
	b.mu.RUnlock()

	for _, h := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Error(fmt.Errorf("event bus: handler panic for event %s: %v", eventType, r))
				}
			}()
			h(e)
		}()
	}
}
