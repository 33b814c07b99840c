package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LineRequest is one requested purchase line. It lives only for the duration
// of a single order-creation call.
type LineRequest struct {
	ProductID string
	Quantity  int32
}

// Validate enforces the caller contract: a known product identifier and a
// strictly positive quantity. Violations are the caller's bug, not a domain
// rejection.
func (l LineRequest) Validate() error {
	if strings.TrimSpace(l.ProductID) == "" {
		return ErrBlankProductID
	}
	if l.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// OrderLine is a priced, persisted purchase line. UnitPrice is the catalog
// price at the moment the order was created and never changes afterwards.
type OrderLine struct {
	ProductID string
	Quantity  int32
	UnitPrice decimal.Decimal
}

// Subtotal is quantity times the snapshotted unit price.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt32(l.Quantity))
}

// Order is the purchase aggregate: a customer reference plus an ordered
// sequence of lines, created atomically and immutable afterwards.
type Order struct {
	ID         string
	CustomerID string
	Lines      []OrderLine
	CreatedAt  time.Time
}

// Total sums the line subtotals.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// CustomerRef is the directory's view of a purchaser, as much of it as an
// order needs.
type CustomerRef struct {
	ID   string
	Name string
}

// ProductSnapshot is the catalog state observed for one product during
// validation: the price to snapshot and the quantity the availability check
// ran against.
type ProductSnapshot struct {
	ID        string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int32
}

// QuantityUpdate is one product's post-order stock level, paired with the
// quantity observed at validation time so the catalog can refuse the write
// when a concurrent order got there first.
type QuantityUpdate struct {
	ProductID string
	Observed  int32
	Quantity  int32
}
