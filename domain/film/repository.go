package film

import "context"

// Repository is the persistence contract for the Film aggregate.
// Save is insert-or-replace by identifier. One finder per list-filter
// dimension; the query handler picks at most one of them per request.
type Repository interface {
	Save(ctx context.Context, f *Film) error

	FindByID(ctx context.Context, id ID) (*Film, error)

	FindAll(ctx context.Context) ([]*Film, error)

	// FindByNameContaining matches case-insensitively on a name fragment.
	FindByNameContaining(ctx context.Context, name string) ([]*Film, error)

	// FindByDirector matches the director exactly, case-insensitively.
	FindByDirector(ctx context.Context, director string) ([]*Film, error)

	FindByYear(ctx context.Context, year int) ([]*Film, error)

	// FindByGenre matches the genre stored inside the details blob.
	FindByGenre(ctx context.Context, genre string) ([]*Film, error)

	// FindByActor matches films whose actor list contains the given name.
	FindByActor(ctx context.Context, actor string) ([]*Film, error)

	ExistsByID(ctx context.Context, id ID) (bool, error)

	// Remove hard-deletes the film, unconditionally.
	Remove(ctx context.Context, id ID) error
}
