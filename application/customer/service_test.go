package customer

import (
	"context"
	"errors"
	"testing"

	"videorental/domain/shared"
	"videorental/infrastructure/persistence/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *ApplicationService {
	return NewApplicationService(mocks.NewCustomerRepository(), mocks.NewUnitOfWorkFactory())
}

func TestCreateCustomer(t *testing.T) {
	svc := newService()

	resp, err := svc.CreateCustomer(context.Background(), CreateCustomerRequest{
		Name:       "Alice Johnson",
		Email:      "alice@example.com",
		Phone:      "555-0101",
		NationalID: "123.456.789-01",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Alice Johnson", resp.Name)
	assert.Equal(t, "12345678901", resp.NationalID, "national id should be stored as bare digits")

	got, err := svc.GetCustomer(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, got.ID)
}

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	svc := newService()

	_, err := svc.CreateCustomer(context.Background(), CreateCustomerRequest{
		Name: "Alice", Email: "alice@example.com", NationalID: "12345678901",
	})
	require.NoError(t, err)

	_, err = svc.CreateCustomer(context.Background(), CreateCustomerRequest{
		Name: "Other Alice", Email: "alice@example.com", NationalID: "10987654321",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrDuplicate))
}

func TestCreateCustomerDuplicateNationalID(t *testing.T) {
	svc := newService()

	_, err := svc.CreateCustomer(context.Background(), CreateCustomerRequest{
		Name: "Alice", Email: "alice@example.com", NationalID: "12345678901",
	})
	require.NoError(t, err)

	_, err = svc.CreateCustomer(context.Background(), CreateCustomerRequest{
		Name: "Bob", Email: "bob@example.com", NationalID: "123.456.789-01",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrDuplicate))
}

func TestCreateCustomerInvalidInput(t *testing.T) {
	svc := newService()

	_, err := svc.CreateCustomer(context.Background(), CreateCustomerRequest{
		Name: "Alice", Email: "not-an-email", NationalID: "12345678901",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))
}

func TestGetCustomerNotFound(t *testing.T) {
	svc := newService()

	_, err := svc.GetCustomer(context.Background(), "0b836807-8b4f-4bb1-b2fc-6d0a28f0b24b")
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestGetCustomerBadID(t *testing.T) {
	svc := newService()

	_, err := svc.GetCustomer(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))
}

func TestLookupByEmailAndNationalID(t *testing.T) {
	svc := newService()

	created, err := svc.CreateCustomer(context.Background(), CreateCustomerRequest{
		Name: "Alice", Email: "alice@example.com", NationalID: "12345678901",
	})
	require.NoError(t, err)

	byEmail, err := svc.GetCustomerByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byNID, err := svc.GetCustomerByNationalID(context.Background(), "12345678901")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byNID.ID)

	_, err = svc.GetCustomerByEmail(context.Background(), "nobody@example.com")
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestListCustomersNameFilter(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	for _, c := range []CreateCustomerRequest{
		{Name: "Alice Johnson", Email: "alice@example.com", NationalID: "12345678901"},
		{Name: "Bob Smith", Email: "bob@example.com", NationalID: "10987654321"},
	} {
		_, err := svc.CreateCustomer(ctx, c)
		require.NoError(t, err)
	}

	all, err := svc.ListCustomers(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svc.ListCustomers(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Alice Johnson", filtered[0].Name)
}

func TestDeleteCustomer(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created, err := svc.CreateCustomer(ctx, CreateCustomerRequest{
		Name: "Alice", Email: "alice@example.com", NationalID: "12345678901",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCustomer(ctx, created.ID))

	err = svc.DeleteCustomer(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}
