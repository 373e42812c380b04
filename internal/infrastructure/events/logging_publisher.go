// Package events provides the in-process event publisher used by the theme
// runtime and the registry commands.
package events

import (
	"context"
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/themekit/internal/ports"
)

// Event is a DomainEvent carrying a flat key/value payload.
type Event struct {
	Type string
	Data map[string]interface{}
}

// New builds an Event.
func New(eventType string, data map[string]interface{}) Event {
	return Event{Type: eventType, Data: data}
}

func (e Event) EventType() string { return e.Type }

func (e Event) Payload() interface{} { return e.Data }

// LoggingPublisher writes every event as a structured log entry, then
// delivers it to subscribers in registration order.
type LoggingPublisher struct {
	logger ports.Logger
	subs   map[string][]handlerEntry
	nextID int
	mu     sync.RWMutex
}

// NewLoggingPublisher creates a publisher logging through logger.
func NewLoggingPublisher(logger ports.Logger) *LoggingPublisher {
	return &LoggingPublisher{
		logger: logger,
		subs:   make(map[string][]handlerEntry),
	}
}

// Publish logs event and runs its handlers.
func (p *LoggingPublisher) Publish(ctx context.Context, event ports.DomainEvent) error {
	if p == nil || event == nil {
		return nil
	}

	p.mu.RLock()
	handlers := append([]handlerEntry(nil), p.subs[event.EventType()]...)
	p.mu.RUnlock()

	if p.logger != nil {
		p.logger.Info(ctx, "event", eventFields(event)...)
	}

	for _, entry := range handlers {
		if entry.handler == nil {
			continue
		}
		if err := entry.handler(ctx, event); err != nil && p.logger != nil {
			p.logger.Warn(ctx, "event handler failed", "event_type", event.EventType(), "error", err)
		}
	}

	return nil
}

// eventFields flattens a map payload into sorted log fields. Other payloads
// are logged whole under "payload".
func eventFields(event ports.DomainEvent) []interface{} {
	fields := []interface{}{"event_type", event.EventType()}
	payload := event.Payload()
	if payload == nil {
		return fields
	}
	data, isMap := payload.(map[string]interface{})
	if !isMap {
		return append(fields, "payload", payload)
	}

	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fields = append(fields, name, data[name])
	}
	return fields
}

// Subscribe registers handler for eventType. The returned subscription
// removes exactly this registration.
func (p *LoggingPublisher) Subscribe(eventType string, handler ports.EventHandler) (ports.Subscription, error) {
	if p == nil || handler == nil {
		return subscription{}, nil
	}

	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.subs[eventType] = append(p.subs[eventType], handlerEntry{id: id, handler: handler})
	p.mu.Unlock()

	return subscription{cancel: func() { p.unsubscribe(eventType, id) }}, nil
}

func (p *LoggingPublisher) unsubscribe(eventType string, id int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	handlers := p.subs[eventType]
	for i, entry := range handlers {
		if entry.id == id {
			p.subs[eventType] = append(handlers[:i:i], handlers[i+1:]...)
			return
		}
	}
}

type subscription struct {
	cancel func()
}

func (s subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

type handlerEntry struct {
	id      int
	handler ports.EventHandler
}
