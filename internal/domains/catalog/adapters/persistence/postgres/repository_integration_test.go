//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/gostorefront/go-order-api/internal/domains/catalog/domain"
	"github.com/gostorefront/go-order-api/internal/domains/catalog/ports"
	"github.com/gostorefront/go-order-api/internal/platform/migrations"
)

func setupCatalogPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("orderapi_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func TestRepository_SaveAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	product, err := domain.NewProduct("p1", "Widget", decimal.NewFromFloat(9.99), 5, []string{"hardware", "featured"})
	require.NoError(t, err)

	saved, err := repo.Save(ctx, product)
	require.NoError(t, err)
	assert.Equal(t, "p1", saved.ID)
	assert.True(t, saved.UnitPrice.Equal(decimal.NewFromFloat(9.99)))

	fetched, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Widget", fetched.Name)
	assert.EqualValues(t, 5, fetched.Quantity)
	assert.Equal(t, []string{"hardware", "featured"}, fetched.Tags)
}

func TestRepository_SaveUpserts(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	product, err := domain.NewProduct("p1", "Widget", decimal.NewFromInt(5), 5, nil)
	require.NoError(t, err)
	_, err = repo.Save(ctx, product)
	require.NoError(t, err)

	product.Name = "Widget v2"
	product.Quantity = 8
	updated, err := repo.Save(ctx, product)
	require.NoError(t, err)
	assert.Equal(t, "Widget v2", updated.Name)
	assert.EqualValues(t, 8, updated.Quantity)
}

func TestRepository_FindAllByIDs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	for _, id := range []string{"p1", "p2"} {
		product, err := domain.NewProduct(id, "product-"+id, decimal.NewFromInt(1), 3, nil)
		require.NoError(t, err)
		_, err = repo.Save(ctx, product)
		require.NoError(t, err)
	}

	found, err := repo.FindAllByIDs(ctx, []string{"p1", "missing", "p2"})
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestRepository_UpdateQuantities(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	for _, id := range []string{"p1", "p2"} {
		product, err := domain.NewProduct(id, "product-"+id, decimal.NewFromInt(1), 5, nil)
		require.NoError(t, err)
		_, err = repo.Save(ctx, product)
		require.NoError(t, err)
	}

	err := repo.UpdateQuantities(ctx, []domain.QuantityUpdate{
		{ProductID: "p1", Observed: 5, Quantity: 3},
		{ProductID: "p2", Observed: 5, Quantity: 0},
	})
	require.NoError(t, err)

	p1, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.EqualValues(t, 3, p1.Quantity)
}

func TestRepository_UpdateQuantities_StaleRollsBackBatch(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	for _, id := range []string{"p1", "p2"} {
		product, err := domain.NewProduct(id, "product-"+id, decimal.NewFromInt(1), 5, nil)
		require.NoError(t, err)
		_, err = repo.Save(ctx, product)
		require.NoError(t, err)
	}

	err := repo.UpdateQuantities(ctx, []domain.QuantityUpdate{
		{ProductID: "p1", Observed: 5, Quantity: 3},
		{ProductID: "p2", Observed: 4, Quantity: 0}, // stale: stored quantity is 5
	})
	require.ErrorIs(t, err, ports.ErrStaleQuantity)

	p1, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.EqualValues(t, 5, p1.Quantity, "first update must be rolled back with the batch")
}

func TestRepository_UpdateQuantities_UnknownProduct(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	err := repo.UpdateQuantities(ctx, []domain.QuantityUpdate{
		{ProductID: "missing", Observed: 0, Quantity: 1},
	})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	product, err := domain.NewProduct("p1", "Widget", decimal.NewFromInt(1), 1, nil)
	require.NoError(t, err)
	_, err = repo.Save(ctx, product)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "p1"))
	require.ErrorIs(t, repo.Delete(ctx, "p1"), ports.ErrNotFound)
}
