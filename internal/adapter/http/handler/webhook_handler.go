package handler

import (
	"errors"
	"net/http"

	"fincore/internal/adapter/http/dto"
	"fincore/internal/core/ports"
	"fincore/pkg/apperror"
	"fincore/pkg/response"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives provider callbacks.
type WebhookHandler struct {
	orchestrator ports.PaymentOrchestrator
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(orchestrator ports.PaymentOrchestrator) *WebhookHandler {
	return &WebhookHandler{orchestrator: orchestrator}
}

// Receive handles POST /webhooks/:provider. The body is passed through
// unparsed so the signature can be checked over the exact bytes sent.
func (h *WebhookHandler) Receive(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, apperror.ErrPayloadTooLarge(tooLarge.Limit))
			return
		}
		response.Error(c, apperror.ErrMalformedPayload(err))
		return
	}

	outcome, err := h.orchestrator.HandleWebhook(c.Request.Context(), c.Param("provider"), body, c.Request.Header)
	if err != nil {
		response.Error(c, err)
		return
	}

	if outcome.Ignored {
		response.OK(c, dto.WebhookResponse{Ignored: true})
		return
	}
	response.OK(c, dto.WebhookResponse{
		PaymentIntentID: outcome.PaymentIntentID.String(),
		PaymentID:       outcome.PaymentID,
		InvoiceID:       outcome.InvoiceID,
		Idempotent:      outcome.Idempotent,
	})
}
