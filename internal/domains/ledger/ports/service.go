package ports

import (
	"context"

	"github.com/gostorefront/go-order-api/internal/domains/ledger/domain"
)

// Service exposes bookkeeping use cases to adapters.
type Service interface {
	Record(ctx context.Context, entry *domain.Entry) (*domain.Entry, error)
	All(ctx context.Context) ([]*domain.Entry, error)
	Balance(ctx context.Context) (domain.Balance, error)
}
