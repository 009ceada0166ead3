// Package bus carries locale-change notifications between the part of
// the UI that switches the active locale and every live card. Cards
// register at bootstrap success and cancel at teardown, so there are no
// ambient global listeners.
package bus

import (
	"sort"
	"sync"
)

// LocaleChange is the single event type the bus carries.
type LocaleChange struct {
	Locale string
}

type Handler func(LocaleChange)

type Subscription struct {
	bus *Bus
	id  int
}

// Cancel removes the subscription. Safe to call more than once.
func (s *Subscription) Cancel() {
	if s == nil || s.bus == nil {
		return
	}
	s.bus.mu.Lock()
	delete(s.bus.handlers, s.id)
	s.bus.mu.Unlock()
	s.bus = nil
}

type Bus struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]Handler
}

func New() *Bus {
	return &Bus{handlers: map[int]Handler{}}
}

func (b *Bus) Subscribe(handler Handler) *Subscription {
	if handler == nil {
		return &Subscription{}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.handlers[id] = handler
	return &Subscription{bus: b, id: id}
}

// Publish delivers the change to every subscriber synchronously, in
// subscription order. Handlers run outside the bus lock so they may
// subscribe or cancel while handling an event.
func (b *Bus) Publish(change LocaleChange) {
	b.mu.Lock()
	ids := make([]int, 0, len(b.handlers))
	for id := range b.handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	handlers := make([]Handler, 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, b.handlers[id])
	}
	b.mu.Unlock()

	for _, handler := range handlers {
		handler(change)
	}
}

// Subscribers reports how many handlers are currently registered.
func (b *Bus) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers)
}
