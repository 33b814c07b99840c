package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/gostorefront/go-order-api/internal/domains/orders/domain"
	"github.com/gostorefront/go-order-api/internal/domains/orders/ports"
)

func sampleOrder(customerID string) *domain.Order {
	return &domain.Order{
		CustomerID: customerID,
		Lines: []domain.OrderLine{
			{ProductID: "p1", Quantity: 2, UnitPrice: decimal.NewFromFloat(9.99)},
		},
	}
}

func TestCreate_AssignsIdentifierAndTimestamp(t *testing.T) {
	repo := NewRepository()

	saved, err := repo.Create(context.Background(), sampleOrder("c1"))
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	require.False(t, saved.CreatedAt.IsZero())
	require.Len(t, saved.Lines, 1)
}

func TestCreate_RejectsEmptyOrder(t *testing.T) {
	repo := NewRepository()

	_, err := repo.Create(context.Background(), &domain.Order{CustomerID: "c1"})
	require.ErrorIs(t, err, domain.ErrEmptyOrder)
}

func TestGetByID(t *testing.T) {
	repo := NewRepository()
	saved, err := repo.Create(context.Background(), sampleOrder("c1"))
	require.NoError(t, err)

	fetched, err := repo.GetByID(context.Background(), saved.ID)
	require.NoError(t, err)
	require.Equal(t, saved.ID, fetched.ID)
	require.Equal(t, "c1", fetched.CustomerID)

	_, err = repo.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestList_SortedByCreation(t *testing.T) {
	repo := NewRepository()
	first, err := repo.Create(context.Background(), sampleOrder("c1"))
	require.NoError(t, err)
	second, err := repo.Create(context.Background(), sampleOrder("c2"))
	require.NoError(t, err)

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.Equal(t, []string{first.ID, second.ID}, []string{orders[0].ID, orders[1].ID})
}

func TestCreate_ReturnsDetachedClone(t *testing.T) {
	repo := NewRepository()
	saved, err := repo.Create(context.Background(), sampleOrder("c1"))
	require.NoError(t, err)

	saved.Lines[0].Quantity = 99
	fetched, err := repo.GetByID(context.Background(), saved.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, fetched.Lines[0].Quantity)
}
