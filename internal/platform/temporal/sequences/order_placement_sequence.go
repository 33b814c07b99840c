package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	ordersdomain "github.com/gostorefront/go-order-api/internal/domains/orders/domain"
	orderactivities "github.com/gostorefront/go-order-api/internal/platform/temporal/activities/orders"
)

// RunOrderPlacementSequence executes the activity that places an order. The
// placement pipeline mutates stock and is not idempotent, so the activity is
// never retried; callers that want another attempt submit a new request.
func RunOrderPlacementSequence(ctx workflow.Context, customerID string, lines []ordersdomain.LineRequest) (*ordersdomain.Order, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("order placement sequence started", "customerId", customerID)
	placeOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}

	input := orderactivities.PlaceOrderInput{CustomerID: customerID, Lines: lines}
	var order ordersdomain.Order
	err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, placeOptions), orderactivities.PlaceOrderActivityName, input).Get(ctx, &order)
	if err != nil {
		logger.Error("order placement sequence failed", "customerId", customerID, "error", err)
		return nil, err
	}
	logger.Info("order placement sequence completed", "orderId", order.ID)
	return &order, nil
}
