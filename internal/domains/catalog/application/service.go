package application

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/gostorefront/go-order-api/internal/domains/catalog/domain"
	"github.com/gostorefront/go-order-api/internal/domains/catalog/ports"
)

// Service orchestrates catalog use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// AddProduct validates and persists a product, assigning an identifier when missing.
func (s *Service) AddProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	if err := product.Validate(); err != nil {
		return nil, mapError(err)
	}
	if strings.TrimSpace(product.ID) == "" {
		product.ID = uuid.NewString()
	}
	return s.repo.Save(ctx, product)
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) FindAllByIDs(ctx context.Context, ids []string) ([]*domain.Product, error) {
	return s.repo.FindAllByIDs(ctx, ids)
}

// UpdateQuantities forwards the batch after checking it cannot drive stock negative.
func (s *Service) UpdateQuantities(ctx context.Context, updates []domain.QuantityUpdate) error {
	for _, update := range updates {
		if err := update.Validate(); err != nil {
			return mapError(err)
		}
	}
	return s.repo.UpdateQuantities(ctx, updates)
}

func (s *Service) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

var _ ports.Service = (*Service)(nil)
