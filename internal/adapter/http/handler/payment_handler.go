package handler

import (
	"fincore/internal/adapter/http/dto"
	"fincore/internal/core/domain"
	"fincore/internal/core/ports"
	"fincore/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler starts provider collections.
type PaymentHandler struct {
	orchestrator ports.PaymentOrchestrator
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(orchestrator ports.PaymentOrchestrator) *PaymentHandler {
	return &PaymentHandler{orchestrator: orchestrator}
}

// Initiate handles POST /api/v1/payments/:provider/initiate.
func (h *PaymentHandler) Initiate(c *gin.Context) {
	org, ok := organization(c)
	if !ok {
		return
	}

	var req dto.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.orchestrator.InitiatePayment(c.Request.Context(), c.Param("provider"), domain.InitiateRequest{
		OrganizationID: org,
		Amount:         req.Amount,
		Currency:       req.Currency,
		InvoiceID:      req.InvoiceID,
		PhoneNumber:    req.PhoneNumber,
		Description:    req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}
