package shared

import "context"

// UnitOfWork is the atomic boundary of a command. Execute runs fn inside
// a storage transaction and rolls back on any error. Events returned by
// aggregate mutations are handed to Collect; after a successful commit
// the unit of work records them (log only, never published).
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
	Collect(events ...DomainEvent)
}

// UnitOfWorkFactory creates a fresh UnitOfWork per command so collected
// events never cross request boundaries.
type UnitOfWorkFactory interface {
	New() UnitOfWork
}
