package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fincore/internal/core/domain"
	"fincore/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AuditService turns domain events into audit log rows.
type AuditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
	now  func() time.Time
}

// NewAuditService creates a new audit service.
// If repo is nil, audit entries are only written to the logger.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) *AuditService {
	return &AuditService{
		repo: repo,
		log:  log,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Subscribe registers the audit consumers on the event bus.
func (s *AuditService) Subscribe(bus ports.EventSubscriber) {
	bus.Subscribe(domain.EventPaymentCompleted, "audit.payment", s.OnPaymentCompleted)
	bus.Subscribe(domain.EventLedgerTransactionPosted, "audit.ledger", s.OnLedgerTransactionPosted)
}

func (s *AuditService) OnPaymentCompleted(ctx context.Context, payload any) error {
	evt, ok := payload.(domain.PaymentCompletedEvent)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", payload, domain.EventPaymentCompleted)
	}
	return s.record(ctx, evt.OrganizationID, domain.AuditActionPaymentCompleted, "payment", evt.PaymentID, evt)
}

func (s *AuditService) OnLedgerTransactionPosted(ctx context.Context, payload any) error {
	evt, ok := payload.(domain.LedgerTransactionPostedEvent)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", payload, domain.EventLedgerTransactionPosted)
	}
	return s.record(ctx, evt.OrganizationID, domain.AuditActionLedgerPosted,
		"ledger_transaction", evt.LedgerTransactionID.String(), evt)
}

func (s *AuditService) record(ctx context.Context, org string, action domain.AuditAction, resourceType, resourceID string, details any) error {
	raw, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("marshal audit details: %w", err)
	}

	entry := &domain.AuditLog{
		ID:             uuid.New(),
		OrganizationID: org,
		Action:         action,
		ResourceType:   resourceType,
		ResourceID:     resourceID,
		Details:        string(raw),
		CreatedAt:      s.now(),
	}

	s.log.Info().
		Str("org_id", org).
		Str("action", string(action)).
		Str("resource_type", resourceType).
		Str("resource_id", resourceID).
		Msg("audit")

	if s.repo == nil {
		return nil
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		s.log.Warn().Err(err).Str("action", string(action)).Msg("failed to persist audit log")
		return err
	}
	return nil
}
