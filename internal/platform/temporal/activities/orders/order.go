package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	ordersdomain "github.com/gostorefront/go-order-api/internal/domains/orders/domain"
	ordersports "github.com/gostorefront/go-order-api/internal/domains/orders/ports"
)

// PlaceOrderActivityName runs the full order-creation pipeline as one activity.
const PlaceOrderActivityName = "orders.activities.PlaceOrder"

// Activities groups activities that operate on the orders bounded context.
type Activities struct {
	service ordersports.Service
}

// NewActivities wires the order service into the Temporal activities bundle.
func NewActivities(service ordersports.Service) *Activities {
	return &Activities{service: service}
}

// PlaceOrderInput is the activity payload.
type PlaceOrderInput struct {
	CustomerID string
	Lines      []ordersdomain.LineRequest
}

// PlaceOrder executes the creation pipeline. The pipeline is not idempotent,
// so the surrounding workflow must not retry it.
func (a *Activities) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*ordersdomain.Order, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("place order activity not initialized", "customerId", input.CustomerID)
		return nil, errors.New("place order activity not initialized")
	}
	logger.Info("PlaceOrder activity started", "customerId", input.CustomerID, "lines", len(input.Lines))
	order, err := a.service.CreateOrder(ctx, input.CustomerID, input.Lines)
	if err != nil {
		logger.Error("PlaceOrder activity failed", "customerId", input.CustomerID, "error", err)
		return nil, err
	}
	logger.Info("PlaceOrder activity completed", "orderId", order.ID)
	return order, nil
}
