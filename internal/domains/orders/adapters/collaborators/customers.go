// Package collaborators bridges the order context's narrow collaborator
// contracts onto the customers and catalog bounded contexts. The bridges are
// the concrete adapters the composition root injects into the order service.
package collaborators

import (
	"context"
	"errors"
	"fmt"

	customersports "github.com/gostorefront/go-order-api/internal/domains/customers/ports"
	"github.com/gostorefront/go-order-api/internal/domains/orders/domain"
	ordersports "github.com/gostorefront/go-order-api/internal/domains/orders/ports"
)

var _ ordersports.CustomerDirectory = (*CustomerDirectory)(nil)

// CustomerDirectory adapts the customers service to the order context.
type CustomerDirectory struct {
	customers customersports.Service
}

func NewCustomerDirectory(customers customersports.Service) *CustomerDirectory {
	return &CustomerDirectory{customers: customers}
}

// FindByID translates the directory's absence into the order context's
// rejection vocabulary.
func (d *CustomerDirectory) FindByID(ctx context.Context, id string) (*domain.CustomerRef, error) {
	customer, err := d.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customersports.ErrNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("resolving customer %s: %w", id, err)
	}
	return &domain.CustomerRef{ID: customer.ID, Name: customer.Name}, nil
}
