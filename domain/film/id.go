/*
Package film holds the Film aggregate and its Details value object.
*/
package film

import (
	"videorental/domain/shared"

	"github.com/google/uuid"
)

// ID is the Film identifier: a wrapped random 128-bit value, comparable,
// rendered as the canonical uuid string.
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
		return ID{}, shared.NewValidationError("film", "id", "invalid film id format: "+s)
	}
	return ID{value: value}, nil
}

// IDFrom wraps an existing uuid value.
func IDFrom(value uuid.UUID) ID {
	return ID{value: value}
}

func (id ID) UUID() uuid.UUID { return id.value }

func (id ID) IsZero() bool { return id.value == uuid.Nil }

func (id ID) String() string { return id.value.String() }
