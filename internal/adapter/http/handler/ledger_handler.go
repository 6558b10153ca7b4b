package handler

import (
	"strings"

	"fincore/internal/adapter/http/dto"
	"fincore/internal/core/domain"
	"fincore/internal/core/ports"
	"fincore/pkg/apperror"
	"fincore/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LedgerHandler exposes the double-entry ledger.
type LedgerHandler struct {
	ledger ports.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledger ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledger: ledger}
}

// CreateAccount handles POST /api/v1/ledger/accounts.
func (h *LedgerHandler) CreateAccount(c *gin.Context) {
	org, ok := organization(c)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	dto.SanitizeStruct(&req)

	account, err := h.ledger.CreateAccount(c.Request.Context(), ports.CreateAccountRequest{
		OrganizationID: org,
		Name:           req.Name,
		Type:           domain.AccountType(strings.ToUpper(req.Type)),
		Currency:       req.Currency,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, account)
}

// ListAccounts handles GET /api/v1/ledger/accounts.
func (h *LedgerHandler) ListAccounts(c *gin.Context) {
	org, ok := organization(c)
	if !ok {
		return
	}

	accounts, err := h.ledger.GetAccounts(c.Request.Context(), org)
	if err != nil {
		response.Error(c, err)
		return
	}
	if accounts == nil {
		accounts = []domain.LedgerAccount{}
	}
	response.OK(c, accounts)
}

// BootstrapAccounts handles POST /api/v1/ledger/accounts/bootstrap.
func (h *LedgerHandler) BootstrapAccounts(c *gin.Context) {
	org, ok := organization(c)
	if !ok {
		return
	}

	var req dto.BootstrapAccountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	accounts, err := h.ledger.BootstrapAccounts(c.Request.Context(), org, req.Currency)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, accounts)
}

// PostTransaction handles POST /api/v1/ledger/transactions.
func (h *LedgerHandler) PostTransaction(c *gin.Context) {
	org, ok := organization(c)
	if !ok {
		return
	}

	var req dto.PostTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	entries := make([]ports.EntryInput, 0, len(req.Entries))
	for _, e := range req.Entries {
		accountID, err := uuid.Parse(e.AccountID)
		if err != nil {
			response.Error(c, apperror.Validation("accountId must be a UUID"))
			return
		}
		entries = append(entries, ports.EntryInput{
			AccountID: accountID,
			Direction: domain.Direction(strings.ToUpper(e.Direction)),
			Amount:    *e.Amount,
		})
	}

	posted, err := h.ledger.PostTransaction(c.Request.Context(), ports.PostTransactionRequest{
		OrganizationID: org,
		ReferenceType:  req.ReferenceType,
		ReferenceID:    req.ReferenceID,
		Entries:        entries,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, posted)
}

// ListTransactions handles GET /api/v1/ledger/transactions.
func (h *LedgerHandler) ListTransactions(c *gin.Context) {
	org, ok := organization(c)
	if !ok {
		return
	}

	var q dto.ListTransactionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, bindError(err))
		return
	}

	params := ports.LedgerListParams{
		OrganizationID: org,
		ReferenceType:  q.ReferenceType,
		Page:           q.Page,
		PageSize:       q.PageSize,
	}
	txns, total, err := h.ledger.GetTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	if txns == nil {
		txns = []domain.TransactionDetail{}
	}

	page, pageSize := domain.NormalizePage(q.Page, q.PageSize)
	response.Paginated(c, txns, page, pageSize, total)
}

// GetTransaction handles GET /api/v1/ledger/transactions/:id.
func (h *LedgerHandler) GetTransaction(c *gin.Context) {
	org, ok := organization(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	txn, err := h.ledger.GetTransactionByID(c.Request.Context(), org, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, txn)
}

// GetBalances handles GET /api/v1/ledger/balances. The optional accountId
// query parameter may repeat or hold a comma-separated list.
func (h *LedgerHandler) GetBalances(c *gin.Context) {
	org, ok := organization(c)
	if !ok {
		return
	}

	var accountIDs []uuid.UUID
	for _, raw := range c.QueryArray("accountId") {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := uuid.Parse(part)
			if err != nil {
				response.Error(c, apperror.Validation("accountId must be a UUID"))
				return
			}
			accountIDs = append(accountIDs, id)
		}
	}

	balances, err := h.ledger.GetBalances(c.Request.Context(), org, accountIDs)
	if err != nil {
		response.Error(c, err)
		return
	}
	if balances == nil {
		balances = []domain.AccountBalance{}
	}
	response.OK(c, balances)
}

// VerifyChain handles GET /api/v1/ledger/verify.
func (h *LedgerHandler) VerifyChain(c *gin.Context) {
	org, ok := organization(c)
	if !ok {
		return
	}

	report, err := h.ledger.VerifyChain(c.Request.Context(), org)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, report)
}
