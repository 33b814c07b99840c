// Package http exposes the catalog over gin.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/gostorefront/go-order-api/internal/domains/catalog/application"
	"github.com/gostorefront/go-order-api/internal/domains/catalog/domain"
	"github.com/gostorefront/go-order-api/internal/domains/catalog/ports"
	"github.com/gostorefront/go-order-api/internal/shared/problem"
)

// Handler serves the product endpoints.
type Handler struct {
	service   ports.Service
	responder *problem.Responder
}

func NewHandler(service ports.Service, responder *problem.Responder) *Handler {
	return &Handler{service: service, responder: responder}
}

// Register mounts the product routes on the given group.
func (h *Handler) Register(group *gin.RouterGroup) {
	group.POST("/products", h.addProduct)
	group.GET("/products", h.listProducts)
	group.GET("/products/:id", h.getProduct)
	group.DELETE("/products/:id", h.deleteProduct)
}

type productRequest struct {
	ID       string   `json:"id"`
	Name     string   `json:"name" binding:"required"`
	Price    string   `json:"price" binding:"required"`
	Quantity int32    `json:"quantity"`
	Tags     []string `json:"tags"`
}

type productResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Quantity int32    `json:"quantity"`
	Tags     []string `json:"tags,omitempty"`
}

func (h *Handler) addProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responder.BadRequest(c, err.Error())
		return
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		h.responder.Respond(c, problem.NewValidation(map[string]string{"price": "must be a decimal number"}))
		return
	}
	product, err := domain.NewProduct(req.ID, req.Name, price, req.Quantity, req.Tags)
	if err != nil {
		h.responder.Respond(c, problem.Validation.WithDetail(err.Error()))
		return
	}
	created, err := h.service.AddProduct(c.Request.Context(), product)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toResponse(created))
}

func (h *Handler) getProduct(c *gin.Context) {
	product, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			h.responder.NotFound(c, "product", c.Param("id"))
			return
		}
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(product))
}

func (h *Handler) listProducts(c *gin.Context) {
	products, err := h.service.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	responses := make([]productResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, toResponse(product))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *Handler) deleteProduct(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			h.responder.NotFound(c, "product", c.Param("id"))
			return
		}
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	if errors.Is(err, application.ErrInvalidInput) {
		h.responder.Respond(c, problem.Validation.WithDetail(err.Error()))
		return
	}
	h.responder.RespondError(c, err)
}

func toResponse(product *domain.Product) productResponse {
	return productResponse{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.UnitPrice.StringFixed(2),
		Quantity: product.Quantity,
		Tags:     product.Tags,
	}
}
