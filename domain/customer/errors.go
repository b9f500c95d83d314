package customer

import "videorental/domain/shared"

func NewCustomerNotFoundError(id string) error {
	return shared.NewDomainError(shared.ErrNotFound, "customer", "", "customer not found: "+id)
}

func NewInvalidNameError() error {
	return shared.NewValidationError("customer", "name", "name cannot be empty")
}

func NewInvalidEmailError(email string) error {
	return shared.NewValidationError("customer", "email", "email must be valid: "+email)
}

func NewInvalidNationalIDError() error {
	return shared.NewValidationError("customer", "nationalId", "national id must have 11 digits")
}

func NewEmailAlreadyExistsError(email string) error {
	return shared.NewDuplicateError("customer", "email", "a customer with this email already exists: "+email)
}

func NewNationalIDAlreadyExistsError(nationalID string) error {
	return shared.NewDuplicateError("customer", "nationalId", "a customer with this national id already exists: "+nationalID)
}
