package mocks

import (
	"context"
	"sync"

	"videorental/domain/customer"
	"videorental/domain/film"
	"videorental/domain/rental"
	"videorental/domain/shared"
)

// RentalRepository is an in-memory rental.Repository.
type RentalRepository struct {
	mu      sync.RWMutex
	rentals map[string]*rental.Rental
}

func NewRentalRepository() *RentalRepository {
	return &RentalRepository{
		rentals: make(map[string]*rental.Rental),
	}
}

func (r *RentalRepository) Save(ctx context.Context, rr *rental.Rental) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rentals[rr.ID()] = rr
	return nil
}

func (r *RentalRepository) FindByID(ctx context.Context, id rental.ID) (*rental.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rr, ok := r.rentals[id.String()]
	if !ok {
		return nil, rental.NewRentalNotFoundError(id.String())
	}
	return rr, nil
}

func (r *RentalRepository) FindAll(ctx context.Context) ([]*rental.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*rental.Rental, 0, len(r.rentals))
	for _, rr := range r.rentals {
		result = append(result, rr)
	}
	return result, nil
}

func (r *RentalRepository) FindByCustomerID(ctx context.Context, customerID customer.ID) ([]*rental.Rental, error) {
	return r.filter(func(rr *rental.Rental) bool {
		return rr.CustomerID() == customerID
	}), nil
}

func (r *RentalRepository) FindByFilmID(ctx context.Context, filmID film.ID) ([]*rental.Rental, error) {
	return r.filter(func(rr *rental.Rental) bool {
		return rr.FilmID() == filmID
	}), nil
}

func (r *RentalRepository) FindByStatus(ctx context.Context, status rental.Status) ([]*rental.Rental, error) {
	return r.filter(func(rr *rental.Rental) bool {
		return rr.Status() == status
	}), nil
}

func (r *RentalRepository) FindByCustomerIDAndStatus(ctx context.Context, customerID customer.ID, status rental.Status) ([]*rental.Rental, error) {
	return r.filter(func(rr *rental.Rental) bool {
		return rr.CustomerID() == customerID && rr.Status() == status
	}), nil
}

func (r *RentalRepository) FindOverdue(ctx context.Context, today shared.Date) ([]*rental.Rental, error) {
	return r.filter(func(rr *rental.Rental) bool {
		return rr.Status() == rental.StatusActive && rr.ExpectedReturnDate().Before(today)
	}), nil
}

func (r *RentalRepository) filter(keep func(*rental.Rental) bool) []*rental.Rental {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*rental.Rental, 0)
	for _, rr := range r.rentals {
		if keep(rr) {
			result = append(result, rr)
		}
	}
	return result
}

func (r *RentalRepository) ExistsByID(ctx context.Context, id rental.ID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rentals[id.String()]
	return ok, nil
}

func (r *RentalRepository) Remove(ctx context.Context, id rental.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rentals[id.String()]; !ok {
		return rental.NewRentalNotFoundError(id.String())
	}
	delete(r.rentals, id.String())
	return nil
}

var _ rental.Repository = (*RentalRepository)(nil)
