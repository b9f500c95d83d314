/*
Package customer holds the Customer aggregate: identity, invariants,
domain errors and the persistence contract.
*/
package customer

import (
	"videorental/domain/shared"

	"github.com/google/uuid"
)

// ID is the Customer identifier. It wraps a random 128-bit value and is
// comparable; its canonical form is the standard uuid string.
type ID struct {
	value uuid.UUID
}

// NewID generates a fresh random identifier.
func NewID() ID {
	return ID{value: uuid.New()}
}

// ParseID parses the canonical string form.
func ParseID(s string) (ID, error) {
	value, err := uuid.Parse(s)
	if err != nil {
		return ID{}, shared.NewValidationError("customer", "id", "invalid customer id format: "+s)
	}
	return ID{value: value}, nil
}

// IDFrom wraps an existing uuid value.
func IDFrom(value uuid.UUID) ID {
	return ID{value: value}
}

// UUID returns the underlying value.
func (id ID) UUID() uuid.UUID { return id.value }

// IsZero reports whether the identifier is unset.
func (id ID) IsZero() bool { return id.value == uuid.Nil }

// String returns the canonical form.
func (id ID) String() string { return id.value.String() }
