// Package http exposes the order context over gin, translating pipeline
// rejections into RFC 7807 problem responses.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gostorefront/go-order-api/internal/domains/orders/application"
	"github.com/gostorefront/go-order-api/internal/domains/orders/domain"
	"github.com/gostorefront/go-order-api/internal/domains/orders/ports"
	"github.com/gostorefront/go-order-api/internal/shared/problem"
)

// Handler serves the order endpoints. Reads go straight to the service;
// creation goes through the workflow orchestrator.
type Handler struct {
	service   ports.Service
	workflows ports.WorkflowOrchestrator
	responder *problem.Responder
}

func NewHandler(service ports.Service, workflows ports.WorkflowOrchestrator, responder *problem.Responder) *Handler {
	return &Handler{service: service, workflows: workflows, responder: responder}
}

// Register mounts the order routes on the given group.
func (h *Handler) Register(group *gin.RouterGroup) {
	group.POST("/orders", h.createOrder)
	group.GET("/orders", h.listOrders)
	group.GET("/orders/:id", h.getOrder)
}

type createOrderRequest struct {
	CustomerID string             `json:"customer_id" binding:"required"`
	Products   []orderLineRequest `json:"products" binding:"required"`
}

type orderLineRequest struct {
	ID       string `json:"id"`
	Quantity int32  `json:"quantity"`
}

type orderResponse struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customer_id"`
	Products   []orderLineResponse `json:"products"`
	Total      string              `json:"total"`
	CreatedAt  time.Time           `json:"created_at"`
}

type orderLineResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

func (h *Handler) createOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responder.BadRequest(c, err.Error())
		return
	}
	lines := make([]domain.LineRequest, 0, len(req.Products))
	for _, product := range req.Products {
		lines = append(lines, domain.LineRequest{ProductID: product.ID, Quantity: product.Quantity})
	}
	order, err := h.workflows.PlaceOrder(c.Request.Context(), req.CustomerID, lines)
	if err != nil {
		h.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toResponse(order))
}

func (h *Handler) getOrder(c *gin.Context) {
	order, err := h.service.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			h.responder.NotFound(c, "order", c.Param("id"))
			return
		}
		h.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(order))
}

func (h *Handler) listOrders(c *gin.Context) {
	orders, err := h.service.ListOrders(c.Request.Context())
	if err != nil {
		h.responder.RespondError(c, err)
		return
	}
	responses := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, toResponse(order))
	}
	c.JSON(http.StatusOK, responses)
}

func toResponse(order *domain.Order) orderResponse {
	lines := make([]orderLineResponse, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, orderLineResponse{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.StringFixed(2),
			Subtotal:  line.Subtotal().StringFixed(2),
		})
	}
	return orderResponse{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		Products:   lines,
		Total:      order.Total().StringFixed(2),
		CreatedAt:  order.CreatedAt,
	}
}

// ErrorMapper translates order pipeline errors into problem responses.
func ErrorMapper() problem.Mapper {
	return func(err error) (problem.Problem, bool) {
		var notFound *domain.ProductNotFoundError
		if errors.As(err, &notFound) {
			return problem.NewNotFound("product", notFound.ProductID), true
		}
		var insufficient *domain.InsufficientStockError
		if errors.As(err, &insufficient) {
			return problem.Conflict.
				WithDetail(insufficient.Error()).
				WithExtension("productId", insufficient.ProductID).
				WithExtension("availableQuantity", insufficient.Available), true
		}
		switch {
		case errors.Is(err, domain.ErrCustomerNotFound):
			return problem.NotFound.WithDetail(err.Error()).WithExtension("resourceType", "customer"), true
		case errors.Is(err, domain.ErrNoProductsFound):
			return problem.NotFound.WithDetail(err.Error()).WithExtension("resourceType", "product"), true
		case errors.Is(err, domain.ErrProductNotFound):
			return problem.NotFound.WithDetail(err.Error()).WithExtension("resourceType", "product"), true
		case errors.Is(err, domain.ErrInsufficientStock):
			return problem.Conflict.WithDetail(err.Error()), true
		case errors.Is(err, application.ErrInvalidInput):
			return problem.Validation.WithDetail(err.Error()), true
		case errors.Is(err, domain.ErrPersistenceFailure):
			return problem.Upstream.WithDetail(err.Error()), true
		}
		return problem.Problem{}, false
	}
}
