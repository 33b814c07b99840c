package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName        = errors.New("product name is required")
	ErrNegativePrice    = errors.New("unit price must not be negative")
	ErrNegativeQuantity = errors.New("quantity must not be negative")
)

// Product is a sellable catalog item. Quantity is the stock available for
// purchase; it is mutated only through the repository's batch update.
type Product struct {
	ID        string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int32
	Tags      []string
}

// NewProduct validates and constructs a product.
func NewProduct(id, name string, unitPrice decimal.Decimal, quantity int32, tags []string) (*Product, error) {
	product := &Product{
		ID:        strings.TrimSpace(id),
		Name:      strings.TrimSpace(name),
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Tags:      tags,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	return product, nil
}

// Validate enforces catalog invariants.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.UnitPrice.IsNegative() {
		return ErrNegativePrice
	}
	if p.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}

// QuantityUpdate carries the new stock level for one product together with
// the quantity the caller observed when it read the catalog. Repositories use
// the observed value as a compare-and-swap guard: when the stored quantity no
// longer matches, the whole batch fails and nothing is written.
type QuantityUpdate struct {
	ProductID string
	Observed  int32
	Quantity  int32
}

// Validate rejects updates that would drive stock negative.
func (u QuantityUpdate) Validate() error {
	if u.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}
