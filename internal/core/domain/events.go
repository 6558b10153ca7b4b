package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Domain event names.
const (
	EventPaymentCompleted        = "domain.payment.completed"
	EventLedgerTransactionPosted = "domain.ledger.transaction.posted"
)

// PaymentCompletedEvent is published once a webhook payment is recorded.
type PaymentCompletedEvent struct {
	OrganizationID  string          `json:"organization_id"`
	PaymentID       string          `json:"payment_id"`
	PaymentIntentID uuid.UUID       `json:"payment_intent_id"`
	Provider        string          `json:"provider"`
	ProviderRef     string          `json:"provider_ref"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	InvoiceID       *string         `json:"invoice_id,omitempty"`
	OccurredAt      time.Time       `json:"occurred_at"`
}

// LedgerTransactionPostedEvent is published after a ledger posting commits.
type LedgerTransactionPostedEvent struct {
	OrganizationID      string    `json:"organization_id"`
	LedgerTransactionID uuid.UUID `json:"ledger_transaction_id"`
	ReferenceType       string    `json:"reference_type"`
	ReferenceID         string    `json:"reference_id"`
	OccurredAt          time.Time `json:"occurred_at"`
}
