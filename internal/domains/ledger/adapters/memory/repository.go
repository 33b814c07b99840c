package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gostorefront/go-order-api/internal/domains/ledger/domain"
	"github.com/gostorefront/go-order-api/internal/domains/ledger/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is the in-memory ledger store. Entries are kept in insertion order.
type Repository struct {
	mu      sync.RWMutex
	entries []*domain.Entry
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) Save(_ context.Context, entry *domain.Entry) (*domain.Entry, error) {
	if entry == nil {
		return nil, errors.New("entry is nil")
	}
	clone := *entry
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	if clone.CreatedAt.IsZero() {
		clone.CreatedAt = time.Now().UTC()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, &clone)
	result := clone
	return &result, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Entry, 0, len(r.entries))
	for _, entry := range r.entries {
		clone := *entry
		list = append(list, &clone)
	}
	return list, nil
}
