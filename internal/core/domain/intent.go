package domain

import (
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Supported payment providers.
const (
	ProviderStripe = "stripe"
	ProviderMpesa  = "mpesa"
)

// IntentStatus is the lifecycle state of a payment intent.
type IntentStatus string

const (
	IntentStatusPending   IntentStatus = "PENDING"
	IntentStatusCompleted IntentStatus = "COMPLETED"
	IntentStatusFailed    IntentStatus = "FAILED"
)

// PaymentIntent is the durable idempotency record for one provider payment.
// (OrganizationID, Provider, ProviderRef) is unique.
type PaymentIntent struct {
	ID             uuid.UUID       `json:"id"`
	OrganizationID string          `json:"organization_id"`
	Provider       string          `json:"provider"`
	ProviderRef    string          `json:"provider_ref"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Status         IntentStatus    `json:"status"`
	InvoiceID      *string         `json:"invoice_id,omitempty"`
	PaymentID      *string         `json:"payment_id,omitempty"`
	FailureReason  *string         `json:"failure_reason,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// IsTerminal returns true once the intent can no longer change.
func (i *PaymentIntent) IsTerminal() bool {
	return i.Status == IntentStatusCompleted || i.Status == IntentStatusFailed
}

// IntentKey identifies an intent across caches. Each part is query-escaped so
// a ':' inside an organization id or reference cannot shift the boundaries.
func IntentKey(org, provider, providerRef string) string {
	return url.QueryEscape(org) + ":" + url.QueryEscape(provider) + ":" + url.QueryEscape(providerRef)
}

// NormalizedPayment is a verified provider payload in provider-neutral form.
type NormalizedPayment struct {
	Provider       string
	OrganizationID string
	ProviderRef    string
	Amount         decimal.Decimal
	Currency       string
	InvoiceID      *string
	Method         string
	Timestamp      *time.Time
	Metadata       map[string]string
}

// WebhookOutcome is returned to the provider after processing a webhook.
type WebhookOutcome struct {
	PaymentIntentID uuid.UUID `json:"paymentIntentId"`
	PaymentID       string    `json:"paymentId"`
	InvoiceID       *string   `json:"invoiceId"`
	Idempotent      bool      `json:"idempotent"`
	// Ignored marks an authentic event that records nothing; ids are empty.
	Ignored bool `json:"ignored,omitempty"`
}

// PaymentInput is handed to the payment collaborator.
type PaymentInput struct {
	Amount        decimal.Decimal
	Currency      string
	Method        string
	Status        string
	TransactionID string
	InvoiceID     *string
}

// Payment is the record created by the payment collaborator.
type Payment struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organization_id"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Method         string          `json:"method"`
	Status         string          `json:"status"`
	TransactionID  string          `json:"transaction_id"`
	InvoiceID      *string         `json:"invoice_id,omitempty"`
	CreatedBy      string          `json:"created_by"`
	CreatedAt      time.Time       `json:"created_at"`
}

// PaymentStatusCompleted is the status of webhook-confirmed payments.
const PaymentStatusCompleted = "COMPLETED"

// InitiateRequest starts a collection with a provider.
type InitiateRequest struct {
	OrganizationID string
	Amount         decimal.Decimal
	Currency       string
	InvoiceID      *string
	PhoneNumber    string
	Description    string
}

// InitiateResult describes the provider-side collection that was started.
type InitiateResult struct {
	Provider     string `json:"provider"`
	ProviderRef  string `json:"provider_ref"`
	Status       string `json:"status"`
	ClientSecret string `json:"client_secret,omitempty"`
	Message      string `json:"message,omitempty"`
}
