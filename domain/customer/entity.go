package customer

import (
	"strings"
	"time"

	"videorental/domain/shared"
)

// Customer is the customer aggregate root. All fields are private;
// state changes go through behavior methods that re-validate invariants.
// The national id and the identifier are fixed after construction.
type Customer struct {
	id         ID
	name       string
	email      string
	phone      string
	nationalID string
	createdAt  time.Time
	updatedAt  time.Time
}

// NewCustomer creates a customer, generating its identifier and setting
// both timestamps to now. Validation: name, email and national id must
// be non-empty, the email must contain "@" and the national id must
// normalize to exactly 11 digits. The national id is stored in its
// normalized bare-digit form, so "123.456.789-01" and "12345678901"
// are the same id for lookups and uniqueness.
func NewCustomer(name, email, phone, nationalID string) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewInvalidNameError()
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	normalized := normalizeNationalID(nationalID)
	if len(normalized) != 11 {
		return nil, NewInvalidNationalIDError()
	}

	now := time.Now()
	return &Customer{
		id:         NewID(),
		name:       name,
		email:      email,
		phone:      phone,
		nationalID: normalized,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// UpdateBasicInfo replaces name, email and phone. The email format check
// is re-applied; the national id is immutable and not re-checked.
func (c *Customer) UpdateBasicInfo(name, email, phone string) error {
	if strings.TrimSpace(name) == "" {
		return NewInvalidNameError()
	}
	if err := validateEmail(email); err != nil {
		return err
	}

	c.name = name
	c.email = email
	c.phone = phone
	c.updatedAt = time.Now()
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		return NewInvalidEmailError(email)
	}
	return nil
}

// normalizeNationalID strips separators such as the dots and dash in
// "123.456.789-01", keeping only digit characters.
func normalizeNationalID(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (c *Customer) ID() string            { return c.id.String() }
func (c *Customer) CustomerID() ID        { return c.id }
func (c *Customer) Name() string          { return c.name }
func (c *Customer) Email() string         { return c.email }
func (c *Customer) Phone() string         { return c.phone }
func (c *Customer) NationalID() string    { return c.nationalID }
func (c *Customer) CreatedAt() time.Time  { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time  { return c.updatedAt }

// ReconstructionDTO rebuilds a customer from persisted state. Repository
// implementations only; never used by the application layer.
type ReconstructionDTO struct {
	ID         ID
	Name       string
	Email      string
	Phone      string
	NationalID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RebuildFromDTO reconstructs the aggregate without re-validating; the
// persisted state is trusted.
func RebuildFromDTO(dto ReconstructionDTO) *Customer {
	return &Customer{
		id:         dto.ID,
		name:       dto.Name,
		email:      dto.Email,
		phone:      dto.Phone,
		nationalID: dto.NationalID,
		createdAt:  dto.CreatedAt,
		updatedAt:  dto.UpdatedAt,
	}
}

var _ shared.AggregateRoot = (*Customer)(nil)
