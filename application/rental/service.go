/*
Package rental orchestrates the rental lifecycle: creation, listing,
return with late penalty, and deletion.
*/
package rental

import (
	"context"
	"time"

	"videorental/domain/customer"
	"videorental/domain/film"
	"videorental/domain/rental"
	"videorental/domain/shared"
)

// ApplicationService Rental application service - coordinates the rental lifecycle
type ApplicationService struct {
	rentalRepo   rental.Repository
	customerRepo customer.Repository
	filmRepo     film.Repository
	uowFactory   shared.UnitOfWorkFactory
}

// NewApplicationService Create rental application service
func NewApplicationService(
	rentalRepo rental.Repository,
	customerRepo customer.Repository,
	filmRepo film.Repository,
	uowFactory shared.UnitOfWorkFactory,
) *ApplicationService {
	return &ApplicationService{
		rentalRepo:   rentalRepo,
		customerRepo: customerRepo,
		filmRepo:     filmRepo,
		uowFactory:   uowFactory,
	}
}

// CreateRentalRequest Create rental request DTO
type CreateRentalRequest struct {
	CustomerID         string      `json:"customer_id" binding:"required"`
	FilmID             string      `json:"film_id" binding:"required"`
	RentalDate         shared.Date `json:"rental_date" binding:"required"`
	ExpectedReturnDate shared.Date `json:"expected_return_date" binding:"required"`
	Price              float64     `json:"price" binding:"required,gt=0"`
}

// ReturnRentalRequest Return rental request DTO. An omitted return date
// means today.
type ReturnRentalRequest struct {
	ReturnDate shared.Date `json:"return_date"`
}

// RentalResponse Rental response DTO
type RentalResponse struct {
	ID                 string       `json:"id"`
	CustomerID         string       `json:"customer_id"`
	FilmID             string       `json:"film_id"`
	RentalDate         shared.Date  `json:"rental_date"`
	ExpectedReturnDate shared.Date  `json:"expected_return_date"`
	ReturnDate         shared.Date  `json:"return_date"`
	Status             string       `json:"status"`
	Price              shared.Money `json:"price"`
	Penalty            shared.Money `json:"penalty"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// RentalQuery List filter. customerID and status together form a
// combined filter; otherwise the first non-empty dimension wins in the
// order customerID, filmID, status.
type RentalQuery struct {
	CustomerID string
	FilmID     string
	Status     string
}

// CreateRental opens a rental after checking both references exist.
// Missing customer or film is a validation failure, not a not-found.
// Nothing prevents renting an already-rented film.
func (s *ApplicationService) CreateRental(ctx context.Context, req CreateRentalRequest) (*RentalResponse, error) {
	customerID, err := customer.ParseID(req.CustomerID)
	if err != nil {
		return nil, err
	}
	filmID, err := film.ParseID(req.FilmID)
	if err != nil {
		return nil, err
	}

	var r *rental.Rental
	uow := s.uowFactory.New()
	err = uow.Execute(ctx, func(ctx context.Context) error {
		exists, err := s.customerRepo.ExistsByID(ctx, customerID)
		if err != nil {
			return err
		}
		if !exists {
			return shared.NewValidationError("rental", "customer_id", "customer does not exist")
		}

		exists, err = s.filmRepo.ExistsByID(ctx, filmID)
		if err != nil {
			return err
		}
		if !exists {
			return shared.NewValidationError("rental", "film_id", "film does not exist")
		}

		r, err = rental.NewRental(customerID, filmID, req.RentalDate, req.ExpectedReturnDate,
			shared.MoneyFromFloat(req.Price))
		if err != nil {
			return err
		}
		return s.rentalRepo.Save(ctx, r)
	})
	if err != nil {
		return nil, err
	}

	return s.convertToResponse(r), nil
}

// GetRental Get rental by id
func (s *ApplicationService) GetRental(ctx context.Context, id string) (*RentalResponse, error) {
	rentalID, err := rental.ParseID(id)
	if err != nil {
		return nil, err
	}
	r, err := s.rentalRepo.FindByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	return s.convertToResponse(r), nil
}

// ListRentals Filtered rental listing
func (s *ApplicationService) ListRentals(ctx context.Context, query RentalQuery) ([]*RentalResponse, error) {
	var (
		rentals []*rental.Rental
		err     error
	)
	switch {
	case query.CustomerID != "" && query.Status != "":
		customerID, status, perr := parseCustomerAndStatus(query.CustomerID, query.Status)
		if perr != nil {
			return nil, perr
		}
		rentals, err = s.rentalRepo.FindByCustomerIDAndStatus(ctx, customerID, status)
	case query.CustomerID != "":
		customerID, perr := customer.ParseID(query.CustomerID)
		if perr != nil {
			return nil, perr
		}
		rentals, err = s.rentalRepo.FindByCustomerID(ctx, customerID)
	case query.FilmID != "":
		filmID, perr := film.ParseID(query.FilmID)
		if perr != nil {
			return nil, perr
		}
		rentals, err = s.rentalRepo.FindByFilmID(ctx, filmID)
	case query.Status != "":
		status, perr := rental.ParseStatus(query.Status)
		if perr != nil {
			return nil, perr
		}
		rentals, err = s.rentalRepo.FindByStatus(ctx, status)
	default:
		rentals, err = s.rentalRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return s.convertToResponseList(rentals), nil
}

// ListOverdueRentals returns rentals still ACTIVE past their expected
// return date.
func (s *ApplicationService) ListOverdueRentals(ctx context.Context) ([]*RentalResponse, error) {
	rentals, err := s.rentalRepo.FindOverdue(ctx, shared.Today())
	if err != nil {
		return nil, err
	}
	return s.convertToResponseList(rentals), nil
}

// ReturnRental closes an ACTIVE rental and computes the late penalty.
func (s *ApplicationService) ReturnRental(ctx context.Context, id string, req ReturnRentalRequest) (*RentalResponse, error) {
	rentalID, err := rental.ParseID(id)
	if err != nil {
		return nil, err
	}

	returnDate := req.ReturnDate
	if returnDate.IsZero() {
		returnDate = shared.Today()
	}

	var r *rental.Rental
	uow := s.uowFactory.New()
	err = uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		r, err = s.rentalRepo.FindByID(ctx, rentalID)
		if err != nil {
			return err
		}

		events, err := r.Return(returnDate)
		if err != nil {
			return err
		}

		if err := s.rentalRepo.Save(ctx, r); err != nil {
			return err
		}
		uow.Collect(events...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.convertToResponse(r), nil
}

// DeleteRental hard-deletes the rental after an existence check.
func (s *ApplicationService) DeleteRental(ctx context.Context, id string) error {
	rentalID, err := rental.ParseID(id)
	if err != nil {
		return err
	}

	uow := s.uowFactory.New()
	return uow.Execute(ctx, func(ctx context.Context) error {
		exists, err := s.rentalRepo.ExistsByID(ctx, rentalID)
		if err != nil {
			return err
		}
		if !exists {
			return rental.NewRentalNotFoundError(id)
		}
		return s.rentalRepo.Remove(ctx, rentalID)
	})
}

func parseCustomerAndStatus(customerID, status string) (customer.ID, rental.Status, error) {
	id, err := customer.ParseID(customerID)
	if err != nil {
		return customer.ID{}, "", err
	}
	st, err := rental.ParseStatus(status)
	if err != nil {
		return customer.ID{}, "", err
	}
	return id, st, nil
}

func (s *ApplicationService) convertToResponseList(rentals []*rental.Rental) []*RentalResponse {
	responses := make([]*RentalResponse, len(rentals))
	for i, r := range rentals {
		responses[i] = s.convertToResponse(r)
	}
	return responses
}

// convertToResponse Convert rental entity to response DTO
func (s *ApplicationService) convertToResponse(r *rental.Rental) *RentalResponse {
	return &RentalResponse{
		ID:                 r.ID(),
		CustomerID:         r.CustomerID().String(),
		FilmID:             r.FilmID().String(),
		RentalDate:         r.RentalDate(),
		ExpectedReturnDate: r.ExpectedReturnDate(),
		ReturnDate:         r.ReturnDate(),
		Status:             string(r.Status()),
		Price:              r.Price(),
		Penalty:            r.Penalty(),
		CreatedAt:          r.CreatedAt(),
		UpdatedAt:          r.UpdatedAt(),
	}
}
