package handler

import (
	"strings"

	"fincore/internal/adapter/http/dto"
	"fincore/internal/core/domain"
	"fincore/internal/core/ports"
	"fincore/pkg/response"

	"github.com/gin-gonic/gin"
)

// FraudHandler exposes risk scores.
type FraudHandler struct {
	fraud ports.FraudService
}

// NewFraudHandler creates a new FraudHandler.
func NewFraudHandler(fraud ports.FraudService) *FraudHandler {
	return &FraudHandler{fraud: fraud}
}

// GetSignal handles GET /api/v1/fraud/signals/:entityType/:entityId.
func (h *FraudHandler) GetSignal(c *gin.Context) {
	org, ok := organization(c)
	if !ok {
		return
	}

	entityType := domain.FraudEntityType(strings.ToUpper(c.Param("entityType")))
	signal, err := h.fraud.GetRiskScore(c.Request.Context(), org, entityType, c.Param("entityId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, signal)
}

// ListFlagged handles GET /api/v1/fraud/flagged.
func (h *FraudHandler) ListFlagged(c *gin.Context) {
	org, ok := organization(c)
	if !ok {
		return
	}

	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, bindError(err))
		return
	}

	signals, total, err := h.fraud.ListFlagged(c.Request.Context(), org, q.Page, q.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	if signals == nil {
		signals = []domain.FraudSignal{}
	}

	page, pageSize := domain.NormalizePage(q.Page, q.PageSize)
	response.Paginated(c, signals, page, pageSize, total)
}

// OrganizationBlock handles GET /api/v1/fraud/organization/block.
func (h *FraudHandler) OrganizationBlock(c *gin.Context) {
	org, ok := organization(c)
	if !ok {
		return
	}

	blocked, err := h.fraud.ShouldBlockOrganization(c.Request.Context(), org)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.OrganizationBlockResponse{OrganizationID: org, Blocked: blocked})
}
