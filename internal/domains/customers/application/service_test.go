package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gostorefront/go-order-api/internal/domains/customers/adapters/memory"
	"github.com/gostorefront/go-order-api/internal/domains/customers/domain"
	"github.com/gostorefront/go-order-api/internal/domains/customers/ports"
)

func TestCreateCustomer_AssignsIdentifier(t *testing.T) {
	svc := NewService(memory.NewRepository())

	customer, err := domain.NewCustomer("", "Ada Lovelace", "ada@example.com")
	require.NoError(t, err)

	saved, err := svc.CreateCustomer(context.Background(), customer)
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	fetched, err := svc.GetByID(context.Background(), saved.ID)
	require.NoError(t, err)
	require.Equal(t, "Ada Lovelace", fetched.Name)
}

func TestCreateCustomer_RejectsInvalidInput(t *testing.T) {
	svc := NewService(memory.NewRepository())

	_, err := svc.CreateCustomer(context.Background(), &domain.Customer{Name: "  "})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateCustomer(context.Background(), &domain.Customer{Name: "Ada", Email: "not-an-email"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID_Unknown(t *testing.T) {
	svc := NewService(memory.NewRepository())

	_, err := svc.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc := NewService(memory.NewRepository())

	customer, err := domain.NewCustomer("c1", "Ada", "")
	require.NoError(t, err)
	_, err = svc.CreateCustomer(context.Background(), customer)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "c1"))
	require.ErrorIs(t, svc.Delete(context.Background(), "c1"), ports.ErrNotFound)
}
