package collaborators

import (
	"context"

	catalogdomain "github.com/gostorefront/go-order-api/internal/domains/catalog/domain"
	catalogports "github.com/gostorefront/go-order-api/internal/domains/catalog/ports"
	"github.com/gostorefront/go-order-api/internal/domains/orders/domain"
	ordersports "github.com/gostorefront/go-order-api/internal/domains/orders/ports"
)

var _ ordersports.ProductCatalog = (*ProductCatalog)(nil)

// ProductCatalog adapts the catalog service to the order context.
type ProductCatalog struct {
	catalog catalogports.Service
}

func NewProductCatalog(catalog catalogports.Service) *ProductCatalog {
	return &ProductCatalog{catalog: catalog}
}

// FindAllByIDs resolves the batch and projects it into order-context snapshots.
func (c *ProductCatalog) FindAllByIDs(ctx context.Context, ids []string) ([]domain.ProductSnapshot, error) {
	products, err := c.catalog.FindAllByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	snapshots := make([]domain.ProductSnapshot, 0, len(products))
	for _, product := range products {
		snapshots = append(snapshots, domain.ProductSnapshot{
			ID:        product.ID,
			Name:      product.Name,
			UnitPrice: product.UnitPrice,
			Quantity:  product.Quantity,
		})
	}
	return snapshots, nil
}

// UpdateQuantities forwards the batch; the catalog decides whether the write
// wins (a stale observed quantity fails the whole batch there).
func (c *ProductCatalog) UpdateQuantities(ctx context.Context, updates []domain.QuantityUpdate) error {
	batch := make([]catalogdomain.QuantityUpdate, 0, len(updates))
	for _, update := range updates {
		batch = append(batch, catalogdomain.QuantityUpdate{
			ProductID: update.ProductID,
			Observed:  update.Observed,
			Quantity:  update.Quantity,
		})
	}
	return c.catalog.UpdateQuantities(ctx, batch)
}
