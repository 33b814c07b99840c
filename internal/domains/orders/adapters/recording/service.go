// Package recording posts a ledger income entry for every order created.
// Bookkeeping is best-effort: a ledger failure never fails the order.
package recording

import (
	"context"
	"fmt"
	"log/slog"

	ledgerdomain "github.com/gostorefront/go-order-api/internal/domains/ledger/domain"
	ledgerports "github.com/gostorefront/go-order-api/internal/domains/ledger/ports"
	"github.com/gostorefront/go-order-api/internal/domains/orders/domain"
	ordersports "github.com/gostorefront/go-order-api/internal/domains/orders/ports"
)

var _ ordersports.Service = (*Service)(nil)

// Service decorates the order service with ledger bookkeeping.
type Service struct {
	inner  ordersports.Service
	ledger ledgerports.Service
	logger *slog.Logger
}

func New(inner ordersports.Service, ledger ledgerports.Service, logger *slog.Logger) *Service {
	return &Service{inner: inner, ledger: ledger, logger: logger}
}

func (s *Service) CreateOrder(ctx context.Context, customerID string, lines []domain.LineRequest) (*domain.Order, error) {
	order, err := s.inner.CreateOrder(ctx, customerID, lines)
	if err != nil {
		return nil, err
	}
	s.recordIncome(ctx, order)
	return order, nil
}

func (s *Service) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	return s.inner.GetOrderByID(ctx, id)
}

func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.inner.ListOrders(ctx)
}

func (s *Service) recordIncome(ctx context.Context, order *domain.Order) {
	if s.ledger == nil {
		return
	}
	entry, err := ledgerdomain.NewEntry(fmt.Sprintf("order %s", order.ID), order.Total(), ledgerdomain.TypeIncome)
	if err != nil {
		s.logWarn(ctx, "skipping ledger entry for order", order.ID, err)
		return
	}
	if _, err := s.ledger.Record(ctx, entry); err != nil {
		s.logWarn(ctx, "failed to record ledger entry for order", order.ID, err)
	}
}

func (s *Service) logWarn(ctx context.Context, msg, orderID string, err error) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelWarn, msg,
		slog.String("order.id", orderID),
		slog.String("error", err.Error()))
}
