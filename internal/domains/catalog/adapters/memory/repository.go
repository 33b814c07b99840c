package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/gostorefront/go-order-api/internal/domains/catalog/domain"
	"github.com/gostorefront/go-order-api/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory catalog adapter. The batch quantity update is
// atomic under the repository mutex: the whole batch is validated before the
// first write.
type Repository struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
}

func NewRepository() *Repository {
	return &Repository{products: map[string]*domain.Product{}}
}

func (r *Repository) Save(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	clone := cloneProduct(product)
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[clone.ID] = clone
	return cloneProduct(clone), nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneProduct(product), nil
}

func (r *Repository) FindAllByIDs(_ context.Context, ids []string) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	found := make([]*domain.Product, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if product, ok := r.products[id]; ok {
			found = append(found, cloneProduct(product))
		}
	}
	return found, nil
}

func (r *Repository) UpdateQuantities(_ context.Context, updates []domain.QuantityUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Validate the whole batch before touching anything.
	for _, update := range updates {
		if err := update.Validate(); err != nil {
			return err
		}
		product, ok := r.products[update.ProductID]
		if !ok {
			return ports.ErrNotFound
		}
		if product.Quantity != update.Observed {
			return ports.ErrStaleQuantity
		}
	}
	for _, update := range updates {
		r.products[update.ProductID].Quantity = update.Quantity
	}
	return nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Product, 0, len(r.products))
	for _, product := range r.products {
		list = append(list, cloneProduct(product))
	}
	return list, nil
}

func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func cloneProduct(product *domain.Product) *domain.Product {
	clone := *product
	if product.Tags != nil {
		clone.Tags = append([]string(nil), product.Tags...)
	}
	return &clone
}
