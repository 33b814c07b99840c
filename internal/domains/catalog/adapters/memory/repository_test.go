package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/gostorefront/go-order-api/internal/domains/catalog/domain"
	"github.com/gostorefront/go-order-api/internal/domains/catalog/ports"
)

func seedProduct(t *testing.T, repo *Repository, id string, quantity int32) *domain.Product {
	t.Helper()
	product, err := domain.NewProduct(id, "product-"+id, decimal.NewFromInt(10), quantity, nil)
	require.NoError(t, err)
	saved, err := repo.Save(context.Background(), product)
	require.NoError(t, err)
	return saved
}

func TestSaveAndGetByID(t *testing.T) {
	repo := NewRepository()
	seedProduct(t, repo, "p1", 5)

	fetched, err := repo.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	require.Equal(t, "p1", fetched.ID)
	require.EqualValues(t, 5, fetched.Quantity)

	_, err = repo.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestFindAllByIDs_SkipsAbsentAndDuplicates(t *testing.T) {
	repo := NewRepository()
	seedProduct(t, repo, "p1", 5)
	seedProduct(t, repo, "p2", 3)

	found, err := repo.FindAllByIDs(context.Background(), []string{"p1", "missing", "p2", "p1"})
	require.NoError(t, err)
	require.Len(t, found, 2)
	require.Equal(t, "p1", found[0].ID)
	require.Equal(t, "p2", found[1].ID)
}

func TestUpdateQuantities_AppliesBatch(t *testing.T) {
	repo := NewRepository()
	seedProduct(t, repo, "p1", 5)
	seedProduct(t, repo, "p2", 3)

	err := repo.UpdateQuantities(context.Background(), []domain.QuantityUpdate{
		{ProductID: "p1", Observed: 5, Quantity: 2},
		{ProductID: "p2", Observed: 3, Quantity: 0},
	})
	require.NoError(t, err)

	p1, err := repo.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	require.EqualValues(t, 2, p1.Quantity)
	p2, err := repo.GetByID(context.Background(), "p2")
	require.NoError(t, err)
	require.EqualValues(t, 0, p2.Quantity)
}

func TestUpdateQuantities_StaleObservedFailsWholeBatch(t *testing.T) {
	repo := NewRepository()
	seedProduct(t, repo, "p1", 5)
	seedProduct(t, repo, "p2", 3)

	err := repo.UpdateQuantities(context.Background(), []domain.QuantityUpdate{
		{ProductID: "p1", Observed: 5, Quantity: 2},
		{ProductID: "p2", Observed: 99, Quantity: 0},
	})
	require.ErrorIs(t, err, ports.ErrStaleQuantity)

	// First update must not have been applied.
	p1, err := repo.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	require.EqualValues(t, 5, p1.Quantity)
}

func TestUpdateQuantities_UnknownProductFailsWholeBatch(t *testing.T) {
	repo := NewRepository()
	seedProduct(t, repo, "p1", 5)

	err := repo.UpdateQuantities(context.Background(), []domain.QuantityUpdate{
		{ProductID: "p1", Observed: 5, Quantity: 2},
		{ProductID: "missing", Observed: 0, Quantity: 1},
	})
	require.ErrorIs(t, err, ports.ErrNotFound)

	p1, err := repo.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	require.EqualValues(t, 5, p1.Quantity)
}

func TestSave_ReturnsDetachedClone(t *testing.T) {
	repo := NewRepository()
	saved := seedProduct(t, repo, "p1", 5)
	saved.Quantity = 99
	saved.Tags = append(saved.Tags, "mutated")

	fetched, err := repo.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	require.EqualValues(t, 5, fetched.Quantity)
	require.Empty(t, fetched.Tags)
}

func TestDelete(t *testing.T) {
	repo := NewRepository()
	seedProduct(t, repo, "p1", 5)

	require.NoError(t, repo.Delete(context.Background(), "p1"))
	require.ErrorIs(t, repo.Delete(context.Background(), "p1"), ports.ErrNotFound)
}
