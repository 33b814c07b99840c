package ports

import (
	"context"

	"github.com/gostorefront/go-order-api/internal/domains/customers/domain"
)

// Service exposes customer directory use cases to adapters.
type Service interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Delete(ctx context.Context, id string) error
}
