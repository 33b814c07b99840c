// Package http exposes the bookkeeping ledger over gin.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/gostorefront/go-order-api/internal/domains/ledger/application"
	"github.com/gostorefront/go-order-api/internal/domains/ledger/domain"
	"github.com/gostorefront/go-order-api/internal/domains/ledger/ports"
	"github.com/gostorefront/go-order-api/internal/shared/problem"
)

// Handler serves the ledger endpoints.
type Handler struct {
	service   ports.Service
	responder *problem.Responder
}

func NewHandler(service ports.Service, responder *problem.Responder) *Handler {
	return &Handler{service: service, responder: responder}
}

// Register mounts the ledger routes on the given group.
func (h *Handler) Register(group *gin.RouterGroup) {
	group.POST("/ledger/entries", h.recordEntry)
	group.GET("/ledger/entries", h.listEntries)
	group.GET("/ledger/balance", h.balance)
}

type entryRequest struct {
	Title  string `json:"title" binding:"required"`
	Amount string `json:"amount" binding:"required"`
	Type   string `json:"type" binding:"required"`
}

type entryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Amount    string    `json:"amount"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

type balanceResponse struct {
	Income  string `json:"income"`
	Outcome string `json:"outcome"`
	Total   string `json:"total"`
}

func (h *Handler) recordEntry(c *gin.Context) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responder.BadRequest(c, err.Error())
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		h.responder.Respond(c, problem.NewValidation(map[string]string{"amount": "must be a decimal number"}))
		return
	}
	entry, err := domain.NewEntry(req.Title, amount, domain.EntryType(req.Type))
	if err != nil {
		h.responder.Respond(c, problem.Validation.WithDetail(err.Error()))
		return
	}
	recorded, err := h.service.Record(c.Request.Context(), entry)
	if err != nil {
		if errors.Is(err, application.ErrInvalidInput) {
			h.responder.Respond(c, problem.Validation.WithDetail(err.Error()))
			return
		}
		h.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toResponse(recorded))
}

func (h *Handler) listEntries(c *gin.Context) {
	entries, err := h.service.All(c.Request.Context())
	if err != nil {
		h.responder.RespondError(c, err)
		return
	}
	responses := make([]entryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toResponse(entry))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *Handler) balance(c *gin.Context) {
	balance, err := h.service.Balance(c.Request.Context())
	if err != nil {
		h.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, balanceResponse{
		Income:  balance.Income.StringFixed(2),
		Outcome: balance.Outcome.StringFixed(2),
		Total:   balance.Total.StringFixed(2),
	})
}

func toResponse(entry *domain.Entry) entryResponse {
	return entryResponse{
		ID:        entry.ID,
		Title:     entry.Title,
		Amount:    entry.Amount.StringFixed(2),
		Type:      string(entry.Type),
		CreatedAt: entry.CreatedAt,
	}
}
