package mocks

import (
	"context"

	"videorental/domain/shared"
	"videorental/pkg/logger"

	"go.uber.org/zap"
)

// UnitOfWork is a mock implementation of shared.UnitOfWork for the mock
// database mode and for tests. There is no real transaction; the
// business function runs directly and collected events are logged.
type UnitOfWork struct {
	events []shared.DomainEvent
}

// NewUnitOfWork creates a new mock UnitOfWork instance
func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		events: make([]shared.DomainEvent, 0),
	}
}

// Execute runs the business logic without real transaction management.
// A failed function leaves already-applied repository writes in place;
// acceptable for the in-memory mode.
func (u *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	u.events = make([]shared.DomainEvent, 0)

	if err := fn(ctx); err != nil {
		return err
	}

	for _, event := range u.events {
		logger.Info("Domain event",
			zap.String("event", event.EventName()),
			zap.String("aggregate_id", event.AggregateID()),
			zap.Time("occurred_on", event.OccurredOn()),
		)
	}
	return nil
}

// Collect buffers events emitted by aggregate mutations
func (u *UnitOfWork) Collect(events ...shared.DomainEvent) {
	u.events = append(u.events, events...)
}

// Events returns the events collected by the last Execute. Test helper.
func (u *UnitOfWork) Events() []shared.DomainEvent {
	return u.events
}

var _ shared.UnitOfWork = (*UnitOfWork)(nil)

// UnitOfWorkFactory hands out mock units of work.
type UnitOfWorkFactory struct{}

func NewUnitOfWorkFactory() *UnitOfWorkFactory {
	return &UnitOfWorkFactory{}
}

func (f *UnitOfWorkFactory) New() shared.UnitOfWork {
	return NewUnitOfWork()
}

var _ shared.UnitOfWorkFactory = (*UnitOfWorkFactory)(nil)
