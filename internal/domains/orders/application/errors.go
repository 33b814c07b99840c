package application

import (
	"errors"
	"fmt"

	"github.com/gostorefront/go-order-api/internal/domains/orders/domain"
)

var (
	// ErrInvalidInput signals the request violated the caller contract.
	ErrInvalidInput = errors.New("invalid order request")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrBlankCustomerID) ||
		errors.Is(err, domain.ErrBlankProductID) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrEmptyOrder) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
