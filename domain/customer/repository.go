package customer

import "context"

// Repository is the persistence contract for the Customer aggregate.
// Save is insert-or-replace by identifier: the last writer wins, there
// is no concurrency token. Find methods return a not-found domain error
// when the identifier does not resolve.
type Repository interface {
	Save(ctx context.Context, c *Customer) error

	FindByID(ctx context.Context, id ID) (*Customer, error)

	FindByEmail(ctx context.Context, email string) (*Customer, error)

	FindByNationalID(ctx context.Context, nationalID string) (*Customer, error)

	// FindByNameContaining matches case-insensitively on a name fragment.
	FindByNameContaining(ctx context.Context, name string) ([]*Customer, error)

	FindAll(ctx context.Context) ([]*Customer, error)

	ExistsByID(ctx context.Context, id ID) (bool, error)

	// ExistsByEmail backs the duplicate pre-check on creation. It is
	// check-then-act; the unique index is the real guard under races.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	ExistsByNationalID(ctx context.Context, nationalID string) (bool, error)

	// Remove hard-deletes the customer. Dependent rentals are not checked.
	Remove(ctx context.Context, id ID) error
}
