package ecs

// EventKind identifies gameplay events raised by systems.
type EventKind string

const (
	EventPlatformSpawned EventKind = "platform_spawned"
	EventFuelSpawned     EventKind = "fuel_spawned"
	EventFuelCollected   EventKind = "fuel_collected"
	EventAsteroidSpawned EventKind = "asteroid_spawned"
	EventPlayerDied      EventKind = "player_died"
	EventSessionStarted  EventKind = "session_started"
)

// Event is a gameplay notification. Data carries kind-specific key/value
// pairs suitable for structured logging.
type Event struct {
	Kind   EventKind
	Entity Entity
	Data   map[string]any
}

// EventQueue is a simple FIFO queue drained once per frame.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
