package ports

import (
	"context"

	"github.com/gostorefront/go-order-api/internal/domains/orders/domain"
)

// Service exposes order use cases to adapters.
type Service interface {
	// CreateOrder runs the all-or-nothing creation pipeline: either the
	// stock is decremented and the order persisted, or nothing changes.
	CreateOrder(ctx context.Context, customerID string, lines []domain.LineRequest) (*domain.Order, error)
	GetOrderByID(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
}

// WorkflowOrchestrator routes order placement through a durable executor so
// the mutating steps run to completion even when the caller goes away.
type WorkflowOrchestrator interface {
	PlaceOrder(ctx context.Context, customerID string, lines []domain.LineRequest) (*domain.Order, error)
}
