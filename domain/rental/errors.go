package rental

import "videorental/domain/shared"

func NewRentalNotFoundError(id string) error {
	return shared.NewDomainError(shared.ErrNotFound, "rental", "", "rental not found: "+id)
}

func NewInvalidDatesError() error {
	return shared.NewValidationError("rental", "expectedReturnDate",
		"expected return date cannot precede the rental date")
}

func NewInvalidPriceError() error {
	return shared.NewValidationError("rental", "price", "rental price must be positive")
}

func NewNotActiveError(operation string) error {
	return shared.NewIllegalStateError("rental", "only active rentals can be "+operation)
}

func NewInvalidStatusError(status string) error {
	return shared.NewValidationError("rental", "status", "invalid rental status: "+status)
}
