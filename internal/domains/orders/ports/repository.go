package ports

import (
	"context"
	"errors"

	"github.com/gostorefront/go-order-api/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("order not found")

// Repository persists order aggregates.
type Repository interface {
	// Create persists the order with all its lines as one unit, assigns an
	// identifier, and returns the persisted aggregate. Lines must never be
	// partially persisted.
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
}
