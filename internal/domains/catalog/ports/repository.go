package ports

import (
	"context"
	"errors"

	"github.com/gostorefront/go-order-api/internal/domains/catalog/domain"
)

var (
	ErrNotFound = errors.New("product not found")
	// ErrStaleQuantity signals a quantity update lost the race against a
	// concurrent writer; the whole batch is rejected and nothing is written.
	ErrStaleQuantity = errors.New("product quantity changed since it was read")
)

// Repository persists catalog products.
type Repository interface {
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	// FindAllByIDs resolves products in one batch. Identifiers without a
	// matching product are simply absent from the result.
	FindAllByIDs(ctx context.Context, ids []string) ([]*domain.Product, error)
	// UpdateQuantities applies the batch atomically: either every update is
	// written or none is. A stale observed quantity fails the batch with
	// ErrStaleQuantity.
	UpdateQuantities(ctx context.Context, updates []domain.QuantityUpdate) error
	List(ctx context.Context) ([]*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
