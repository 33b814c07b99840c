package ports

import (
	"context"

	"github.com/gostorefront/go-order-api/internal/domains/catalog/domain"
)

// Service exposes catalog use cases to adapters.
type Service interface {
	AddProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	FindAllByIDs(ctx context.Context, ids []string) ([]*domain.Product, error)
	UpdateQuantities(ctx context.Context, updates []domain.QuantityUpdate) error
	List(ctx context.Context) ([]*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
