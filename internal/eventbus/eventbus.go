// ABOUTME: Typed event bus delivering to subscribers in subscription order
// ABOUTME: Unsubscribe is safe from inside a handler; delivery uses a snapshot

package eventbus

import "sync"

// Handler is a callback function for events.
type Handler[T any] func(T)

type entry[T any] struct {
	id int
	fn Handler[T]
}

// Bus is a typed event bus that delivers events to registered handlers.
type Bus[T any] struct {
	mu       sync.RWMutex
	handlers []entry[T]
	nextID   int
}

// New creates a new event bus.
func New[T any]() *Bus[T] {
	return &Bus[T]{}
}

// Subscribe registers a handler and returns an unsubscribe function.
// Calling the returned function more than once is a no-op.
func (b *Bus[T]) Subscribe(handler Handler[T]) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers = append(b.handlers, entry[T]{id: id, fn: handler})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Bus[T]) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, e := range b.handlers {
		if e.id == id {
			b.handlers = append(b.handlers[:i:i], b.handlers[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all registered handlers in subscription order.
// A handler unsubscribed by an earlier handler during the same Publish is
// skipped.
func (b *Bus[T]) Publish(event T) {
	b.mu.RLock()
	snapshot := make([]entry[T], len(b.handlers))
	copy(snapshot, b.handlers)
	b.mu.RUnlock()

	for _, e := range snapshot {
		if !b.subscribed(e.id) {
			continue
		}
		e.fn(event)
	}
}

func (b *Bus[T]) subscribed(id int) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, e := range b.handlers {
		if e.id == id {
			return true
		}
	}
	return false
}

// Count returns the number of registered handlers.
func (b *Bus[T]) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers)
}
