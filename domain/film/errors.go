package film

import (
	"fmt"

	"videorental/domain/shared"
)

func NewFilmNotFoundError(id string) error {
	return shared.NewDomainError(shared.ErrNotFound, "film", "", "film not found: "+id)
}

func NewInvalidNameError(reason string) error {
	return shared.NewValidationError("film", "name", reason)
}

func NewInvalidYearError(year, max int) error {
	return shared.NewValidationError("film", "year",
		fmt.Sprintf("year must be between 1888 and %d, got: %d", max, year))
}
