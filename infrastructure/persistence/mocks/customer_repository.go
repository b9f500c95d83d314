/*
Package mocks provides in-memory repository implementations used by the
mock database mode and by application-layer tests.
*/
package mocks

import (
	"context"
	"strings"
	"sync"

	"videorental/domain/customer"
)

// CustomerRepository is an in-memory customer.Repository.
type CustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*customer.Customer
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		customers: make(map[string]*customer.Customer),
	}
}

func (r *CustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers[c.ID()] = c
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id customer.ID) (*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.customers[id.String()]
	if !ok {
		return nil, customer.NewCustomerNotFoundError(id.String())
	}
	return c, nil
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.customers {
		if c.Email() == email {
			return c, nil
		}
	}
	return nil, customer.NewCustomerNotFoundError(email)
}

func (r *CustomerRepository) FindByNationalID(ctx context.Context, nationalID string) (*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.customers {
		if c.NationalID() == nationalID {
			return c, nil
		}
	}
	return nil, customer.NewCustomerNotFoundError(nationalID)
}

func (r *CustomerRepository) FindByNameContaining(ctx context.Context, name string) ([]*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	needle := strings.ToLower(name)
	result := make([]*customer.Customer, 0)
	for _, c := range r.customers {
		if strings.Contains(strings.ToLower(c.Name()), needle) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*customer.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		result = append(result, c)
	}
	return result, nil
}

func (r *CustomerRepository) ExistsByID(ctx context.Context, id customer.ID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.customers[id.String()]
	return ok, nil
}

func (r *CustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.customers {
		if c.Email() == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *CustomerRepository) ExistsByNationalID(ctx context.Context, nationalID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.customers {
		if c.NationalID() == nationalID {
			return true, nil
		}
	}
	return false, nil
}

func (r *CustomerRepository) Remove(ctx context.Context, id customer.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[id.String()]; !ok {
		return customer.NewCustomerNotFoundError(id.String())
	}
	delete(r.customers, id.String())
	return nil
}

var _ customer.Repository = (*CustomerRepository)(nil)
