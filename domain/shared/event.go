package shared

import (
	"fmt"
	"time"
)

// DomainEvent is a fact recorded by an aggregate during a mutation.
// Mutations return the events they emit; the unit of work collects them
// and writes them to the log after a successful commit. Nothing in this
// service publishes or consumes them.
type DomainEvent interface {
	EventName() string
	OccurredOn() time.Time
	AggregateID() string
}

// ValidateEvent rejects structurally broken events before they reach the
// unit of work.
func ValidateEvent(event DomainEvent) error {
	if event == nil {
		return fmt.Errorf("event cannot be nil")
	}
	if event.EventName() == "" {
		return fmt.Errorf("event name cannot be empty")
	}
	if event.AggregateID() == "" {
		return fmt.Errorf("aggregate ID cannot be empty")
	}
	if event.OccurredOn().IsZero() {
		return fmt.Errorf("occurred on time cannot be zero")
	}
	return nil
}
