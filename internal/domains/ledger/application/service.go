package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gostorefront/go-order-api/internal/domains/ledger/domain"
	"github.com/gostorefront/go-order-api/internal/domains/ledger/ports"
)

// ErrInvalidInput signals the entry violated a ledger invariant.
var ErrInvalidInput = errors.New("invalid ledger entry")

// Service exposes the bookkeeping use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// Record validates and stores a new entry.
func (s *Service) Record(ctx context.Context, entry *domain.Entry) (*domain.Entry, error) {
	if entry == nil {
		return nil, errors.New("entry is nil")
	}
	if err := entry.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	return s.repo.Save(ctx, entry)
}

// All returns every recorded entry.
func (s *Service) All(ctx context.Context) ([]*domain.Entry, error) {
	return s.repo.List(ctx)
}

// Balance rolls income and outcome up into a single view.
func (s *Service) Balance(ctx context.Context) (domain.Balance, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return domain.Balance{}, err
	}
	income := decimal.Zero
	outcome := decimal.Zero
	for _, entry := range entries {
		switch entry.Type {
		case domain.TypeIncome:
			income = income.Add(entry.Amount)
		case domain.TypeOutcome:
			outcome = outcome.Add(entry.Amount)
		}
	}
	return domain.Balance{Income: income, Outcome: outcome, Total: income.Sub(outcome)}, nil
}

var _ ports.Service = (*Service)(nil)
