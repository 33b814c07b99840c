package ports

import (
	"context"

	"github.com/gostorefront/go-order-api/internal/domains/ledger/domain"
)

// Repository stores ledger entries. Durability is explicitly not required;
// the reference deployment keeps the ledger in memory.
type Repository interface {
	Save(ctx context.Context, entry *domain.Entry) (*domain.Entry, error)
	List(ctx context.Context) ([]*domain.Entry, error)
}
