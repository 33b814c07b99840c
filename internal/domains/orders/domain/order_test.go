package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestLineRequestValidate(t *testing.T) {
	cases := map[string]struct {
		line LineRequest
		want error
	}{
		"valid":          {LineRequest{ProductID: "p1", Quantity: 1}, nil},
		"blank product":  {LineRequest{ProductID: "  ", Quantity: 1}, ErrBlankProductID},
		"zero quantity":  {LineRequest{ProductID: "p1", Quantity: 0}, ErrInvalidQuantity},
		"negative count": {LineRequest{ProductID: "p1", Quantity: -2}, ErrInvalidQuantity},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.line.Validate()
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOrderTotal_SumsLineSubtotals(t *testing.T) {
	order := &Order{
		Lines: []OrderLine{
			{ProductID: "p1", Quantity: 2, UnitPrice: decimal.NewFromFloat(9.99)},
			{ProductID: "p2", Quantity: 1, UnitPrice: decimal.NewFromFloat(0.01)},
		},
	}
	require.True(t, order.Total().Equal(decimal.NewFromFloat(19.99)), "total was %s", order.Total())
}

func TestSubtotal_UsesSnapshottedPrice(t *testing.T) {
	line := OrderLine{ProductID: "p1", Quantity: 3, UnitPrice: decimal.NewFromFloat(2.50)}
	require.True(t, line.Subtotal().Equal(decimal.NewFromFloat(7.50)))
}

func TestRejectionErrorsUnwrapToSentinels(t *testing.T) {
	notFound := &ProductNotFoundError{ProductID: "p1"}
	require.ErrorIs(t, notFound, ErrProductNotFound)
	require.Contains(t, notFound.Error(), "p1")

	insufficient := &InsufficientStockError{ProductID: "p2", Available: 4}
	require.ErrorIs(t, insufficient, ErrInsufficientStock)
	require.Contains(t, insufficient.Error(), "4")
}
