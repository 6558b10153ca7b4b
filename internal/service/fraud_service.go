package service

import (
	"context"
	"fmt"
	"time"

	"fincore/internal/core/domain"
	"fincore/internal/core/ports"
	"fincore/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// FraudPolicy holds the scoring thresholds.
type FraudPolicy struct {
	FlagThreshold  int
	BlockThreshold int
	OrgFlagWindow  time.Duration
	OrgMaxFlagged  int64
}

// DefaultFraudPolicy flags at 60, blocks payments at 80 and blocks an
// organization after 5 flagged signals in 24h.
func DefaultFraudPolicy() FraudPolicy {
	return FraudPolicy{FlagThreshold: 60, BlockThreshold: 80, OrgFlagWindow: 24 * time.Hour, OrgMaxFlagged: 5}
}

// FraudServiceImpl implements ports.FraudService.
type FraudServiceImpl struct {
	signals ports.FraudSignalRepository
	stats   ports.FraudStatsRepository
	counter ports.FraudEventCounter
	policy  FraudPolicy
	log     zerolog.Logger
	now     func() time.Time
}

// NewFraudService creates a new FraudServiceImpl.
func NewFraudService(
	signals ports.FraudSignalRepository,
	stats ports.FraudStatsRepository,
	counter ports.FraudEventCounter,
	policy FraudPolicy,
	log zerolog.Logger,
) *FraudServiceImpl {
	return &FraudServiceImpl{
		signals: signals,
		stats:   stats,
		counter: counter,
		policy:  policy,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// ComputePaymentRisk scores a completed payment and stores the signal.
func (s *FraudServiceImpl) ComputePaymentRisk(ctx context.Context, org, paymentID string, amount decimal.Decimal) (*domain.RiskResult, error) {
	now := s.now()

	history, err := s.stats.RecentCompletedAmounts(ctx, org, now.Add(-domain.AmountHistoryWindow), domain.AmountHistoryLimit, paymentID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load amount history: %w", err))
	}

	factors, err := s.activityFactors(ctx, org, string(domain.FraudEntityPayment)+":"+paymentID, now)
	if err != nil {
		return nil, err
	}
	factors.AmountAnomalyScore = domain.AmountAnomalyScore(amount, domain.Mean(history))

	return s.store(ctx, org, domain.FraudEntityPayment, paymentID, factors, now)
}

// ComputeLedgerRisk scores a ledger posting from frequency and failed attempts only.
func (s *FraudServiceImpl) ComputeLedgerRisk(ctx context.Context, org string, ledgerTxID uuid.UUID) (*domain.RiskResult, error) {
	now := s.now()
	entityID := ledgerTxID.String()

	factors, err := s.activityFactors(ctx, org, string(domain.FraudEntityLedgerTransaction)+":"+entityID, now)
	if err != nil {
		return nil, err
	}

	return s.store(ctx, org, domain.FraudEntityLedgerTransaction, entityID, factors, now)
}

// activityFactors counts prior detection events before recording this one.
func (s *FraudServiceImpl) activityFactors(ctx context.Context, org, eventID string, now time.Time) (domain.RiskFactors, error) {
	events, err := s.counter.CountSince(ctx, org, now.Add(-domain.FrequencyWindow))
	if err != nil {
		return domain.RiskFactors{}, apperror.InternalError(fmt.Errorf("count fraud events: %w", err))
	}
	if err := s.counter.Record(ctx, org, eventID, now); err != nil {
		s.log.Warn().Err(err).Str("org_id", org).Msg("failed to record fraud detection event")
	}

	failures, err := s.stats.CountFailedIntents(ctx, org, now.Add(-domain.FailedAttemptsWindow))
	if err != nil {
		return domain.RiskFactors{}, apperror.InternalError(fmt.Errorf("count failed intents: %w", err))
	}

	return domain.RiskFactors{
		FrequencyScore:      domain.FrequencyScore(events),
		FailedAttemptsScore: domain.FailedAttemptsScore(failures),
	}, nil
}

func (s *FraudServiceImpl) store(ctx context.Context, org string, entityType domain.FraudEntityType, entityID string, factors domain.RiskFactors, now time.Time) (*domain.RiskResult, error) {
	result := domain.NewRiskResult(factors, s.policy.FlagThreshold)

	signal := &domain.FraudSignal{
		ID:             uuid.New(),
		OrganizationID: org,
		EntityType:     entityType,
		EntityID:       entityID,
		RiskScore:      result.RiskScore,
		Factors:        result.Factors,
		IsFlagged:      result.IsFlagged,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.signals.Upsert(ctx, signal); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("upsert fraud signal: %w", err))
	}

	event := s.log.Debug()
	if result.IsFlagged {
		event = s.log.Warn()
	}
	event.Str("org_id", org).
		Str("entity_type", string(entityType)).
		Str("entity_id", entityID).
		Int("risk_score", result.RiskScore).
		Bool("flagged", result.IsFlagged).
		Msg("risk scored")

	return &result, nil
}

// GetRiskScore returns the stored signal for an entity.
func (s *FraudServiceImpl) GetRiskScore(ctx context.Context, org string, entityType domain.FraudEntityType, entityID string) (*domain.FraudSignal, error) {
	if !entityType.Valid() {
		return nil, apperror.Validation(fmt.Sprintf("invalid entity type %q", entityType))
	}
	signal, err := s.signals.Get(ctx, org, entityType, entityID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get fraud signal: %w", err))
	}
	if signal == nil {
		return nil, apperror.ErrRiskScoreNotFound()
	}
	return signal, nil
}

// ListFlagged returns a page of flagged signals, newest first.
func (s *FraudServiceImpl) ListFlagged(ctx context.Context, org string, page, pageSize int) ([]domain.FraudSignal, int64, error) {
	page, pageSize = domain.NormalizePage(page, pageSize)
	signals, total, err := s.signals.ListFlagged(ctx, org, page, pageSize)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list flagged signals: %w", err))
	}
	return signals, total, nil
}

// ShouldBlockPayment reports whether a score reaches the block threshold.
func (s *FraudServiceImpl) ShouldBlockPayment(riskScore int) bool {
	return riskScore >= s.policy.BlockThreshold
}

// ShouldBlockOrganization reports whether the organization accumulated too
// many flagged signals inside the trailing window.
func (s *FraudServiceImpl) ShouldBlockOrganization(ctx context.Context, org string) (bool, error) {
	flagged, err := s.signals.CountFlaggedSince(ctx, org, s.now().Add(-s.policy.OrgFlagWindow))
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("count flagged signals: %w", err))
	}
	return flagged >= s.policy.OrgMaxFlagged, nil
}

// Subscribe registers the fraud consumers on the event bus.
func (s *FraudServiceImpl) Subscribe(bus ports.EventSubscriber) {
	bus.Subscribe(domain.EventPaymentCompleted, "fraud.payment", s.OnPaymentCompleted)
	bus.Subscribe(domain.EventLedgerTransactionPosted, "fraud.ledger", s.OnLedgerTransactionPosted)
}

// OnPaymentCompleted scores a payment from its completion event.
func (s *FraudServiceImpl) OnPaymentCompleted(ctx context.Context, payload any) error {
	evt, ok := payload.(domain.PaymentCompletedEvent)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", payload, domain.EventPaymentCompleted)
	}
	_, err := s.ComputePaymentRisk(ctx, evt.OrganizationID, evt.PaymentID, evt.Amount)
	return err
}

// OnLedgerTransactionPosted scores a ledger posting from its event.
func (s *FraudServiceImpl) OnLedgerTransactionPosted(ctx context.Context, payload any) error {
	evt, ok := payload.(domain.LedgerTransactionPostedEvent)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", payload, domain.EventLedgerTransactionPosted)
	}
	_, err := s.ComputeLedgerRisk(ctx, evt.OrganizationID, evt.LedgerTransactionID)
	return err
}
