package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionPaymentCompleted AuditAction = "PAYMENT_COMPLETED"
	AuditActionLedgerPosted     AuditAction = "LEDGER_TRANSACTION_POSTED"
)

// AuditLog records a single audited domain event.
type AuditLog struct {
	ID             uuid.UUID   `json:"id"`
	OrganizationID string      `json:"organization_id"`
	Action         AuditAction `json:"action"`
	ResourceType   string      `json:"resource_type"`
	ResourceID     string      `json:"resource_id"`
	Details        string      `json:"details,omitempty"` // JSON string
	CreatedAt      time.Time   `json:"created_at"`
}
