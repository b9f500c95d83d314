package rental

import (
	"context"

	"videorental/domain/customer"
	"videorental/domain/film"
	"videorental/domain/shared"
)

// Repository is the persistence contract for the Rental aggregate.
// Save is insert-or-replace by identifier.
type Repository interface {
	Save(ctx context.Context, r *Rental) error

	FindByID(ctx context.Context, id ID) (*Rental, error)

	FindAll(ctx context.Context) ([]*Rental, error)

	FindByCustomerID(ctx context.Context, customerID customer.ID) ([]*Rental, error)

	FindByFilmID(ctx context.Context, filmID film.ID) ([]*Rental, error)

	FindByStatus(ctx context.Context, status Status) ([]*Rental, error)

	FindByCustomerIDAndStatus(ctx context.Context, customerID customer.ID, status Status) ([]*Rental, error)

	// FindOverdue returns rentals still ACTIVE whose expected return
	// date is before the given day.
	FindOverdue(ctx context.Context, today shared.Date) ([]*Rental, error)

	ExistsByID(ctx context.Context, id ID) (bool, error)

	Remove(ctx context.Context, id ID) error
}
