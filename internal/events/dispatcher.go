package events

import (
	"context"
	"errors"
	"sync"
)

// EventHandler handles a published event.
type EventHandler func(context.Context, Event) error

// Dispatcher routes events to in-process listeners.
type Dispatcher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, handler EventHandler)
	SubscribeAll(handler EventHandler)
}

type syncDispatcher struct {
	mu       sync.RWMutex
	byType   map[EventType][]EventHandler
	wildcard []EventHandler
}

// NewInMemoryDispatcher returns a Dispatcher that runs listeners on the
// publishing goroutine, typed listeners first.
func NewInMemoryDispatcher() Dispatcher {
	return &syncDispatcher{byType: make(map[EventType][]EventHandler)}
}

// Publish delivers event to every matching listener. A failing listener does
// not stop the rest; all failures are joined into the returned error.
func (d *syncDispatcher) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, handle := range d.listenersFor(event.Type) {
		if err := handle(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (d *syncDispatcher) listenersFor(eventType EventType) []EventHandler {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]EventHandler, 0, len(d.byType[eventType])+len(d.wildcard))
	out = append(out, d.byType[eventType]...)
	return append(out, d.wildcard...)
}

// Subscribe registers a listener for one event type.
func (d *syncDispatcher) Subscribe(eventType EventType, handler EventHandler) {
	d.mu.Lock()
	d.byType[eventType] = append(d.byType[eventType], handler)
	d.mu.Unlock()
}

// SubscribeAll registers a listener for every event type.
func (d *syncDispatcher) SubscribeAll(handler EventHandler) {
	d.mu.Lock()
	d.wildcard = append(d.wildcard, handler)
	d.mu.Unlock()
}
