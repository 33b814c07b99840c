package domain

import (
	"errors"
	"fmt"
)

// Caller contract violations. These are rejected before the creation
// pipeline runs and never reach the collaborators.
var (
	ErrBlankCustomerID = errors.New("customer id is required")
	ErrBlankProductID  = errors.New("product id is required")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrEmptyOrder      = errors.New("order must contain at least one line")
)

// Domain rejections. Each is an expected business outcome carrying the
// context the caller needs to react without a second lookup.
var (
	ErrCustomerNotFound  = errors.New("customer does not exist")
	ErrNoProductsFound   = errors.New("none of the requested products exist")
	ErrProductNotFound   = errors.New("product does not exist")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ErrPersistenceFailure wraps collaborator failures during the mutating steps
// (stock update, order persistence). Infrastructure-level, not a domain
// rejection.
var ErrPersistenceFailure = errors.New("order persistence failed")

// ProductNotFoundError names the first requested product, in request order,
// that the catalog could not resolve.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s does not exist", e.ProductID)
}

func (e *ProductNotFoundError) Unwrap() error { return ErrProductNotFound }

// InsufficientStockError names the first line, in request order, whose
// aggregated demand exceeds the catalog's stock. Available is the catalog's
// remaining quantity, not the shortfall, so the caller can retry with a
// corrected amount.
type InsufficientStockError struct {
	ProductID string
	Available int32
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("only %d of product %s available", e.Available, e.ProductID)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
