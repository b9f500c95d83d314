package customer

import (
	"testing"

	"videorental/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	c, err := NewCustomer("Ana", "ana@x.com", "", "11122233344")
	require.NoError(t, err)

	assert.False(t, c.CustomerID().IsZero())
	assert.Equal(t, "Ana", c.Name())
	assert.Equal(t, "ana@x.com", c.Email())
	assert.Equal(t, "11122233344", c.NationalID())
	assert.Equal(t, c.CreatedAt(), c.UpdatedAt())
}

func TestNewCustomerValidation(t *testing.T) {
	tests := []struct {
		name       string
		custName   string
		email      string
		nationalID string
	}{
		{"empty name", "", "ana@x.com", "11122233344"},
		{"blank name", "   ", "ana@x.com", "11122233344"},
		{"empty email", "Ana", "", "11122233344"},
		{"email without at sign", "Ana", "ana.x.com", "11122233344"},
		{"empty national id", "Ana", "ana@x.com", ""},
		{"short national id", "Ana", "ana@x.com", "123"},
		{"long national id", "Ana", "ana@x.com", "123456789012"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCustomer(tt.custName, tt.email, "", tt.nationalID)
			require.Error(t, err)
			assert.ErrorIs(t, err, shared.ErrInvalidInput)
		})
	}
}

func TestNewCustomerNormalizesNationalID(t *testing.T) {
	// Separators are stripped on construction; the aggregate holds the
	// bare 11-digit form so formatted and unformatted inputs collide.
	c, err := NewCustomer("Ana", "ana@x.com", "", "123.456.789-01")
	require.NoError(t, err)
	assert.Equal(t, "12345678901", c.NationalID())

	plain, err := NewCustomer("Bia", "bia@x.com", "", "12345678901")
	require.NoError(t, err)
	assert.Equal(t, c.NationalID(), plain.NationalID())
}

func TestUpdateBasicInfo(t *testing.T) {
	c, err := NewCustomer("Ana", "ana@x.com", "", "11122233344")
	require.NoError(t, err)
	created := c.UpdatedAt()

	require.NoError(t, c.UpdateBasicInfo("Ana Silva", "ana.silva@x.com", "555-0100"))

	assert.Equal(t, "Ana Silva", c.Name())
	assert.Equal(t, "ana.silva@x.com", c.Email())
	assert.Equal(t, "555-0100", c.Phone())
	assert.Equal(t, "11122233344", c.NationalID())
	assert.False(t, c.UpdatedAt().Before(created))
}

func TestUpdateBasicInfoRevalidates(t *testing.T) {
	c, err := NewCustomer("Ana", "ana@x.com", "", "11122233344")
	require.NoError(t, err)

	assert.Error(t, c.UpdateBasicInfo("", "ana@x.com", ""))
	assert.Error(t, c.UpdateBasicInfo("Ana", "not-an-email", ""))

	// Failed updates leave the aggregate untouched.
	assert.Equal(t, "Ana", c.Name())
	assert.Equal(t, "ana@x.com", c.Email())
}

func TestParseID(t *testing.T) {
	id := NewID()

	parsed, err := ParseID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseID("not-a-uuid")
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}
