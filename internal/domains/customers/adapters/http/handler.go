// Package http exposes the customer directory over gin.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gostorefront/go-order-api/internal/domains/customers/application"
	"github.com/gostorefront/go-order-api/internal/domains/customers/domain"
	"github.com/gostorefront/go-order-api/internal/domains/customers/ports"
	"github.com/gostorefront/go-order-api/internal/shared/problem"
)

// Handler serves the customer endpoints.
type Handler struct {
	service   ports.Service
	responder *problem.Responder
}

func NewHandler(service ports.Service, responder *problem.Responder) *Handler {
	return &Handler{service: service, responder: responder}
}

// Register mounts the customer routes on the given group.
func (h *Handler) Register(group *gin.RouterGroup) {
	group.POST("/customers", h.createCustomer)
	group.GET("/customers", h.listCustomers)
	group.GET("/customers/:id", h.getCustomer)
	group.DELETE("/customers/:id", h.deleteCustomer)
}

type customerRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
}

type customerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

func (h *Handler) createCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responder.BadRequest(c, err.Error())
		return
	}
	customer, err := domain.NewCustomer(req.ID, req.Name, req.Email)
	if err != nil {
		h.responder.Respond(c, problem.Validation.WithDetail(err.Error()))
		return
	}
	created, err := h.service.CreateCustomer(c.Request.Context(), customer)
	if err != nil {
		if errors.Is(err, application.ErrInvalidInput) {
			h.responder.Respond(c, problem.Validation.WithDetail(err.Error()))
			return
		}
		h.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toResponse(created))
}

func (h *Handler) getCustomer(c *gin.Context) {
	customer, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			h.responder.NotFound(c, "customer", c.Param("id"))
			return
		}
		h.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(customer))
}

func (h *Handler) listCustomers(c *gin.Context) {
	customers, err := h.service.List(c.Request.Context())
	if err != nil {
		h.responder.RespondError(c, err)
		return
	}
	responses := make([]customerResponse, 0, len(customers))
	for _, customer := range customers {
		responses = append(responses, toResponse(customer))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *Handler) deleteCustomer(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			h.responder.NotFound(c, "customer", c.Param("id"))
			return
		}
		h.responder.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toResponse(customer *domain.Customer) customerResponse {
	return customerResponse{ID: customer.ID, Name: customer.Name, Email: customer.Email}
}
