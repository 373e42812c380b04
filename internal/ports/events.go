package ports

import "context"

const (
	// EventThemeSwapped is emitted when the active theme of a runtime changes.
	EventThemeSwapped = "theme.swapped"
	// EventColorModeChanged is emitted when the active color mode changes.
	EventColorModeChanged = "colormode.changed"
	// EventThemeChecked is emitted after a registered theme is fetched and validated.
	EventThemeChecked = "theme.checked"
)

// DomainEvent is a significant state change with a structured payload.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to subscribers. Publish blocks until all
// handlers have run. Implementations must be safe for concurrent use.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes one event. Errors are logged by the publisher and
// do not stop delivery to other handlers.
type EventHandler func(context.Context, DomainEvent) error

// Subscription is a registered handler. Unsubscribe stops delivery.
type Subscription interface {
	Unsubscribe()
}
