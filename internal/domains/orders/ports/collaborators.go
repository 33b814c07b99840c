package ports

import (
	"context"

	"github.com/gostorefront/go-order-api/internal/domains/orders/domain"
)

// CustomerDirectory resolves purchasers. Customers are owned by an external
// directory and read-only to this context.
type CustomerDirectory interface {
	// FindByID returns the customer or domain.ErrCustomerNotFound when absent.
	FindByID(ctx context.Context, id string) (*domain.CustomerRef, error)
}

// ProductCatalog is the stock and price authority. The read-then-update pair
// is a read-modify-write over shared state; the catalog alone decides whether
// the write succeeds.
type ProductCatalog interface {
	// FindAllByIDs resolves products in one batch call. Missing identifiers
	// are simply absent from the result.
	FindAllByIDs(ctx context.Context, ids []string) ([]domain.ProductSnapshot, error)
	// UpdateQuantities applies the batch atomically. It must fail when any
	// product's stock changed since the observed read.
	UpdateQuantities(ctx context.Context, updates []domain.QuantityUpdate) error
}
