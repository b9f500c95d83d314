/*
Package customer orchestrates customer commands and queries.
*/
package customer

import (
	"context"
	"time"

	"videorental/domain/customer"
	"videorental/domain/shared"
)

// ApplicationService Customer application service - coordinates customer-related processes
type ApplicationService struct {
	customerRepo customer.Repository
	uowFactory   shared.UnitOfWorkFactory
}

// NewApplicationService Create customer application service
func NewApplicationService(customerRepo customer.Repository, uowFactory shared.UnitOfWorkFactory) *ApplicationService {
	return &ApplicationService{
		customerRepo: customerRepo,
		uowFactory:   uowFactory,
	}
}

// CreateCustomerRequest Create customer request DTO
type CreateCustomerRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Phone      string `json:"phone"`
	NationalID string `json:"national_id" binding:"required"`
}

// CustomerResponse Customer response DTO
type CustomerResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	NationalID string    `json:"national_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateCustomer registers a new customer. Email and national id are
// pre-checked for duplicates; the unique indexes remain the final guard.
func (s *ApplicationService) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	var c *customer.Customer

	uow := s.uowFactory.New()
	err := uow.Execute(ctx, func(ctx context.Context) error {
		exists, err := s.customerRepo.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return err
		}
		if exists {
			return customer.NewEmailAlreadyExistsError(req.Email)
		}

		c, err = customer.NewCustomer(req.Name, req.Email, req.Phone, req.NationalID)
		if err != nil {
			return err
		}

		exists, err = s.customerRepo.ExistsByNationalID(ctx, c.NationalID())
		if err != nil {
			return err
		}
		if exists {
			return customer.NewNationalIDAlreadyExistsError(c.NationalID())
		}

		return s.customerRepo.Save(ctx, c)
	})
	if err != nil {
		return nil, err
	}

	return s.convertToResponse(c), nil
}

// GetCustomer Get customer by id
func (s *ApplicationService) GetCustomer(ctx context.Context, id string) (*CustomerResponse, error) {
	customerID, err := customer.ParseID(id)
	if err != nil {
		return nil, err
	}
	c, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return s.convertToResponse(c), nil
}

// GetCustomerByEmail Get customer by exact email
func (s *ApplicationService) GetCustomerByEmail(ctx context.Context, email string) (*CustomerResponse, error) {
	c, err := s.customerRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.convertToResponse(c), nil
}

// GetCustomerByNationalID Get customer by national id
func (s *ApplicationService) GetCustomerByNationalID(ctx context.Context, nationalID string) (*CustomerResponse, error) {
	c, err := s.customerRepo.FindByNationalID(ctx, nationalID)
	if err != nil {
		return nil, err
	}
	return s.convertToResponse(c), nil
}

// ListCustomers lists all customers, optionally narrowed by a
// case-insensitive name fragment.
func (s *ApplicationService) ListCustomers(ctx context.Context, name string) ([]*CustomerResponse, error) {
	var (
		customers []*customer.Customer
		err       error
	)
	if name != "" {
		customers, err = s.customerRepo.FindByNameContaining(ctx, name)
	} else {
		customers, err = s.customerRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]*CustomerResponse, len(customers))
	for i, c := range customers {
		responses[i] = s.convertToResponse(c)
	}
	return responses, nil
}

// DeleteCustomer hard-deletes the customer. Rentals referencing it are
// left untouched.
func (s *ApplicationService) DeleteCustomer(ctx context.Context, id string) error {
	customerID, err := customer.ParseID(id)
	if err != nil {
		return err
	}

	uow := s.uowFactory.New()
	return uow.Execute(ctx, func(ctx context.Context) error {
		return s.customerRepo.Remove(ctx, customerID)
	})
}

// convertToResponse Convert customer entity to response DTO
func (s *ApplicationService) convertToResponse(c *customer.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:         c.ID(),
		Name:       c.Name(),
		Email:      c.Email(),
		Phone:      c.Phone(),
		NationalID: c.NationalID(),
		CreatedAt:  c.CreatedAt(),
		UpdatedAt:  c.UpdatedAt(),
	}
}
