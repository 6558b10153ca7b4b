package dto

import (
	"github.com/shopspring/decimal"
)

// CreateAccountRequest is the request body for POST /ledger/accounts.
type CreateAccountRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Type     string `json:"type" binding:"required"`
	Currency string `json:"currency" binding:"required,currency"`
}

// BootstrapAccountsRequest is the request body for POST /ledger/accounts/bootstrap.
type BootstrapAccountsRequest struct {
	Currency string `json:"currency" binding:"required,currency"`
}

// EntryRequest is one side of a posting. Amount is in minor units; a
// fractional JSON number fails to decode.
type EntryRequest struct {
	AccountID string `json:"accountId" binding:"required,uuid"`
	Direction string `json:"direction" binding:"required"`
	Amount    *int64 `json:"amount" binding:"required"`
}

// PostTransactionRequest is the request body for POST /ledger/transactions.
// Entry count and balance are checked by the ledger, not here.
type PostTransactionRequest struct {
	ReferenceType string         `json:"referenceType" binding:"required,max=64,safe_id"`
	ReferenceID   string         `json:"referenceId" binding:"required,max=128,safe_id"`
	Entries       []EntryRequest `json:"entries" binding:"dive"`
}

// ListTransactionsQuery holds the query string of GET /ledger/transactions.
type ListTransactionsQuery struct {
	ReferenceType string `form:"referenceType" binding:"omitempty,max=64,safe_id"`
	Page          int    `form:"page" binding:"omitempty,min=1"`
	PageSize      int    `form:"pageSize" binding:"omitempty,min=1,max=100"`
}

// PageQuery holds page and pageSize query parameters.
type PageQuery struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"pageSize" binding:"omitempty,min=1,max=100"`
}

// InitiatePaymentRequest is the request body for POST /payments/:provider/initiate.
// Amount accepts a JSON number or string in major units.
type InitiatePaymentRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency" binding:"required,currency"`
	InvoiceID   *string         `json:"invoiceId,omitempty" binding:"omitempty,max=128,safe_id"`
	PhoneNumber string          `json:"phoneNumber,omitempty" binding:"omitempty,max=20"`
	Description string          `json:"description,omitempty" binding:"max=255"`
}

// WebhookResponse is the body returned to providers.
type WebhookResponse struct {
	PaymentIntentID string  `json:"paymentIntentId,omitempty"`
	PaymentID       string  `json:"paymentId,omitempty"`
	InvoiceID       *string `json:"invoiceId"`
	Idempotent      bool    `json:"idempotent"`
	Ignored         bool    `json:"ignored,omitempty"`
}

// OrganizationBlockResponse reports whether new payments should be refused.
type OrganizationBlockResponse struct {
	OrganizationID string `json:"organizationId"`
	Blocked        bool   `json:"blocked"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]DependencyStatus `json:"dependencies"`
}

// DependencyStatus is the health of one dependency.
type DependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
