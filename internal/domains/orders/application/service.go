package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gostorefront/go-order-api/internal/domains/orders/domain"
	"github.com/gostorefront/go-order-api/internal/domains/orders/ports"
)

// Service executes order creation as an all-or-nothing operation against the
// customer directory, the product catalog, and the order repository. It holds
// no state between calls.
type Service struct {
	customers ports.CustomerDirectory
	catalog   ports.ProductCatalog
	repo      ports.Repository
}

func NewService(customers ports.CustomerDirectory, catalog ports.ProductCatalog, repo ports.Repository) *Service {
	return &Service{customers: customers, catalog: catalog, repo: repo}
}

// CreateOrder validates the request, snapshots prices, decrements stock, and
// persists the aggregate. Everything before the stock update is pure
// validation over collaborator-returned snapshots; the first blocking
// condition aborts the whole call with no partial mutation.
func (s *Service) CreateOrder(ctx context.Context, customerID string, lines []domain.LineRequest) (*domain.Order, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, mapError(domain.ErrBlankCustomerID)
	}
	if len(lines) == 0 {
		return nil, mapError(domain.ErrEmptyOrder)
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, mapError(err)
		}
	}

	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	// Demand is aggregated per product before the availability check, so
	// two lines that each individually fit the stock cannot jointly
	// oversell it. IDs keep first-occurrence request order to make the
	// reported offender deterministic.
	ids := make([]string, 0, len(lines))
	demand := make(map[string]int32, len(lines))
	for _, line := range lines {
		if _, seen := demand[line.ProductID]; !seen {
			ids = append(ids, line.ProductID)
		}
		demand[line.ProductID] += line.Quantity
	}

	snapshots, err := s.catalog.FindAllByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, domain.ErrNoProductsFound
	}
	resolved := make(map[string]domain.ProductSnapshot, len(snapshots))
	for _, snapshot := range snapshots {
		resolved[snapshot.ID] = snapshot
	}
	for _, id := range ids {
		if _, ok := resolved[id]; !ok {
			return nil, &domain.ProductNotFoundError{ProductID: id}
		}
	}
	for _, id := range ids {
		if resolved[id].Quantity < demand[id] {
			return nil, &domain.InsufficientStockError{ProductID: id, Available: resolved[id].Quantity}
		}
	}

	// Lines keep the caller's shape; only the availability check works on
	// aggregated demand.
	orderLines := make([]domain.OrderLine, 0, len(lines))
	for _, line := range lines {
		orderLines = append(orderLines, domain.OrderLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: resolved[line.ProductID].UnitPrice,
		})
	}
	decrements := make([]domain.QuantityUpdate, 0, len(ids))
	restores := make([]domain.QuantityUpdate, 0, len(ids))
	for _, id := range ids {
		observed := resolved[id].Quantity
		remaining := observed - demand[id]
		decrements = append(decrements, domain.QuantityUpdate{ProductID: id, Observed: observed, Quantity: remaining})
		restores = append(restores, domain.QuantityUpdate{ProductID: id, Observed: remaining, Quantity: observed})
	}

	if err := s.catalog.UpdateQuantities(ctx, decrements); err != nil {
		return nil, fmt.Errorf("%w: updating stock: %w", domain.ErrPersistenceFailure, err)
	}

	order := &domain.Order{CustomerID: customer.ID, Lines: orderLines}
	saved, err := s.repo.Create(ctx, order)
	if err != nil {
		// Stock is already decremented; compensate before surfacing the
		// failure so a rejected order never consumes inventory.
		failure := fmt.Errorf("%w: creating order: %w", domain.ErrPersistenceFailure, err)
		if restoreErr := s.catalog.UpdateQuantities(ctx, restores); restoreErr != nil {
			failure = errors.Join(failure, fmt.Errorf("restoring stock after failed order persistence: %w", restoreErr))
		}
		return nil, failure
	}
	return saved, nil
}

// GetOrderByID loads a persisted order aggregate.
func (s *Service) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// ListOrders returns all persisted orders.
func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

var _ ports.Service = (*Service)(nil)
