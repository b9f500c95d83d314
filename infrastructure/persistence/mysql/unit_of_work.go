package mysql

import (
	"context"
	"fmt"

	"videorental/domain/shared"
	"videorental/infrastructure/persistence"
	"videorental/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UnitOfWork implements the Unit of Work pattern with GORM
// It manages database transactions and records the domain events the
// business function hands to Collect. Events are logged after a
// successful commit; they are never published anywhere.
type UnitOfWork struct {
	db     *gorm.DB
	events []shared.DomainEvent
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{
		db:     db,
		events: make([]shared.DomainEvent, 0),
	}
}

// Execute runs the business logic inside a database transaction
// It:
// 1. Begins a transaction
// 2. Injects the transaction into context for repositories to use
// 3. Executes the business function
// 4. Commits on success, rolls back on error
// 5. Logs the collected events after commit
func (u *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	// Reset events for this run
	u.events = make([]shared.DomainEvent, 0)

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	txCtx := persistence.ContextWithTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	for _, event := range u.events {
		logger.Info("Domain event",
			zap.String("event", event.EventName()),
			zap.String("aggregate_id", event.AggregateID()),
			zap.Time("occurred_on", event.OccurredOn()),
			zap.String("request_id", persistence.RequestIDFromContext(ctx)),
		)
	}
	return nil
}

// Collect buffers events emitted by aggregate mutations until commit
func (u *UnitOfWork) Collect(events ...shared.DomainEvent) {
	u.events = append(u.events, events...)
}

// Compile-time check that UnitOfWork implements shared.UnitOfWork
var _ shared.UnitOfWork = (*UnitOfWork)(nil)
