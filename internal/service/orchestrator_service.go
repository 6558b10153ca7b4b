package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fincore/internal/core/domain"
	"fincore/internal/core/ports"
	"fincore/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OrchestratorServiceImpl implements ports.PaymentOrchestrator.
type OrchestratorServiceImpl struct {
	adapters      map[string]ports.WebhookAdapter
	providers     map[string]ports.PaymentProvider
	intentRepo    ports.PaymentIntentRepository
	cache         ports.WebhookResultCache
	payments      ports.PaymentCreator
	accounts      ports.AccountDirectory
	ledger        ports.LedgerPoster
	events        ports.EventPublisher
	systemActorID string
	log           zerolog.Logger
	now           func() time.Time
}

// OrchestratorDeps groups the collaborators of the orchestrator.
type OrchestratorDeps struct {
	Adapters      []ports.WebhookAdapter
	Providers     []ports.PaymentProvider
	IntentRepo    ports.PaymentIntentRepository
	Cache         ports.WebhookResultCache // nil disables the fast path
	Payments      ports.PaymentCreator
	Accounts      ports.AccountDirectory
	Ledger        ports.LedgerPoster
	Events        ports.EventPublisher
	SystemActorID string
}

// NewOrchestratorService creates a new OrchestratorServiceImpl.
func NewOrchestratorService(deps OrchestratorDeps, log zerolog.Logger) *OrchestratorServiceImpl {
	s := &OrchestratorServiceImpl{
		adapters:      make(map[string]ports.WebhookAdapter, len(deps.Adapters)),
		providers:     make(map[string]ports.PaymentProvider, len(deps.Providers)),
		intentRepo:    deps.IntentRepo,
		cache:         deps.Cache,
		payments:      deps.Payments,
		accounts:      deps.Accounts,
		ledger:        deps.Ledger,
		events:        deps.Events,
		systemActorID: deps.SystemActorID,
		log:           log,
		now:           func() time.Time { return time.Now().UTC() },
	}
	for _, a := range deps.Adapters {
		s.adapters[a.Provider()] = a
	}
	for _, p := range deps.Providers {
		s.providers[p.Provider()] = p
	}
	return s
}

// HandleWebhook verifies, normalizes and records a provider payment exactly
// once per (organization, provider, provider reference).
func (s *OrchestratorServiceImpl) HandleWebhook(ctx context.Context, provider string, rawBody []byte, headers http.Header) (*domain.WebhookOutcome, error) {
	provider = strings.ToLower(provider)
	adapter, ok := s.adapters[provider]
	if !ok {
		return nil, apperror.ErrUnsupportedProvider(provider)
	}

	if err := adapter.Verify(rawBody, headers); err != nil {
		s.log.Warn().Err(err).Str("provider", provider).Msg("webhook signature rejected")
		if errors.Is(err, ports.ErrSignatureMissing) {
			return nil, apperror.ErrMissingSignature()
		}
		if errors.Is(err, ports.ErrSignatureExpired) {
			return nil, apperror.ErrStaleWebhook()
		}
		return nil, apperror.ErrInvalidSignature(err)
	}

	payment, err := adapter.Parse(rawBody)
	if errors.Is(err, ports.ErrEventIgnored) {
		s.log.Info().Err(err).Str("provider", provider).Msg("webhook event acknowledged and ignored")
		return &domain.WebhookOutcome{Ignored: true}, nil
	}
	if err != nil {
		s.log.Warn().Err(err).Str("provider", provider).Msg("webhook payload rejected")
		return nil, apperror.ErrMalformedPayload(err)
	}

	if tol := adapter.Tolerance(); tol > 0 && payment.Timestamp != nil {
		if skew := s.now().Sub(*payment.Timestamp); skew > tol || skew < -tol {
			s.log.Warn().
				Str("provider", provider).
				Str("provider_ref", payment.ProviderRef).
				Dur("skew", skew).
				Msg("stale webhook rejected")
			return nil, apperror.ErrStaleWebhook()
		}
	}

	log := s.log.With().
		Str("org_id", payment.OrganizationID).
		Str("provider", provider).
		Str("provider_ref", payment.ProviderRef).
		Logger()

	cacheKey := domain.IntentKey(payment.OrganizationID, provider, payment.ProviderRef)
	if outcome := s.cachedOutcome(ctx, cacheKey, log); outcome != nil {
		return outcome, nil
	}

	intent, err := s.intentRepo.GetByProviderRef(ctx, payment.OrganizationID, provider, payment.ProviderRef)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find intent: %w", err))
	}
	if intent != nil {
		return s.replay(ctx, intent, cacheKey, log)
	}

	now := s.now()
	intent = &domain.PaymentIntent{
		ID:             uuid.New(),
		OrganizationID: payment.OrganizationID,
		Provider:       provider,
		ProviderRef:    payment.ProviderRef,
		Amount:         payment.Amount,
		Currency:       payment.Currency,
		Status:         domain.IntentStatusPending,
		InvoiceID:      payment.InvoiceID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := s.intentRepo.CreateIfAbsent(ctx, intent)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create intent: %w", err))
	}
	if !created {
		existing, err := s.intentRepo.GetByProviderRef(ctx, payment.OrganizationID, provider, payment.ProviderRef)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("re-read intent: %w", err))
		}
		if existing == nil {
			return nil, apperror.InternalError(fmt.Errorf("intent %s vanished after conflict", cacheKey))
		}
		return s.replay(ctx, existing, cacheKey, log)
	}

	pay, err := s.payments.Create(ctx, payment.OrganizationID, s.systemActorID, domain.PaymentInput{
		Amount:        payment.Amount,
		Currency:      payment.Currency,
		Method:        payment.Method,
		Status:        domain.PaymentStatusCompleted,
		TransactionID: payment.ProviderRef,
		InvoiceID:     payment.InvoiceID,
	})
	if err != nil {
		if markErr := s.intentRepo.MarkFailed(ctx, intent.ID, err.Error()); markErr != nil {
			log.Error().Err(markErr).Str("intent_id", intent.ID.String()).Msg("failed to mark intent failed")
		}
		log.Error().Err(err).Str("intent_id", intent.ID.String()).Msg("payment creation failed")
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperror.InternalError(fmt.Errorf("create payment: %w", err))
	}

	if err := s.completeIntent(ctx, intent.ID, pay.ID, log); err != nil {
		log.Error().Err(err).
			Str("intent_id", intent.ID.String()).
			Str("payment_id", pay.ID).
			Msg("payment created but intent not completed; manual reconciliation required")
		return nil, apperror.InternalError(fmt.Errorf("complete intent: %w", err))
	}

	outcome := &domain.WebhookOutcome{
		PaymentIntentID: intent.ID,
		PaymentID:       pay.ID,
		InvoiceID:       payment.InvoiceID,
	}
	log.Info().
		Str("intent_id", intent.ID.String()).
		Str("payment_id", pay.ID).
		Str("amount", payment.Amount.String()).
		Str("currency", payment.Currency).
		Msg("webhook payment recorded")

	s.remember(ctx, cacheKey, outcome, log)

	s.events.Publish(domain.EventPaymentCompleted, domain.PaymentCompletedEvent{
		OrganizationID:  payment.OrganizationID,
		PaymentID:       pay.ID,
		PaymentIntentID: intent.ID,
		Provider:        provider,
		ProviderRef:     payment.ProviderRef,
		Amount:          payment.Amount,
		Currency:        payment.Currency,
		InvoiceID:       payment.InvoiceID,
		OccurredAt:      s.now(),
	})

	s.postToLedger(ctx, payment, pay.ID, log)

	return outcome, nil
}

// completeIntent retries the update once; a payment without a completed
// intent turns every redelivery into CONF_002.
func (s *OrchestratorServiceImpl) completeIntent(ctx context.Context, intentID uuid.UUID, paymentID string, log zerolog.Logger) error {
	err := s.intentRepo.MarkCompleted(ctx, intentID, paymentID)
	if err == nil {
		return nil
	}
	log.Warn().Err(err).Str("intent_id", intentID.String()).Str("payment_id", paymentID).Msg("completing intent failed, retrying once")
	return s.intentRepo.MarkCompleted(ctx, intentID, paymentID)
}

// replay resolves a webhook whose intent already exists.
func (s *OrchestratorServiceImpl) replay(ctx context.Context, intent *domain.PaymentIntent, cacheKey string, log zerolog.Logger) (*domain.WebhookOutcome, error) {
	switch intent.Status {
	case domain.IntentStatusCompleted:
		if intent.PaymentID == nil {
			return nil, apperror.ErrIntentInProgress()
		}
		outcome := domain.WebhookOutcome{
			PaymentIntentID: intent.ID,
			PaymentID:       *intent.PaymentID,
			InvoiceID:       intent.InvoiceID,
		}
		s.remember(ctx, cacheKey, &outcome, log)
		log.Info().Str("intent_id", intent.ID.String()).Msg("webhook replay served from intent")
		replayed := outcome
		replayed.Idempotent = true
		return &replayed, nil
	case domain.IntentStatusFailed:
		return nil, apperror.ErrIntentPreviouslyFailed()
	default:
		return nil, apperror.ErrIntentInProgress()
	}
}

func (s *OrchestratorServiceImpl) cachedOutcome(ctx context.Context, key string, log zerolog.Logger) *domain.WebhookOutcome {
	if s.cache == nil {
		return nil
	}
	outcome, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Msg("webhook cache lookup failed, falling through to intent store")
		return nil
	}
	if outcome == nil {
		return nil
	}
	outcome.Idempotent = true
	return outcome
}

func (s *OrchestratorServiceImpl) remember(ctx context.Context, key string, outcome *domain.WebhookOutcome, log zerolog.Logger) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, outcome); err != nil {
		log.Warn().Err(err).Msg("failed to cache webhook outcome")
	}
}

// postToLedger books the payment as DEBIT cash / CREDIT revenue. Every
// failure here is logged and never surfaces to the webhook caller.
func (s *OrchestratorServiceImpl) postToLedger(ctx context.Context, payment *domain.NormalizedPayment, paymentID string, log zerolog.Logger) {
	accounts, err := s.accounts.GetAccounts(ctx, payment.OrganizationID)
	if err != nil {
		log.Error().Err(err).Str("payment_id", paymentID).Msg("ledger auto-post skipped: account lookup failed")
		return
	}

	asset := pickAccount(accounts, domain.AccountTypeAsset, domain.DefaultCashAccountName)
	revenue := pickAccount(accounts, domain.AccountTypeRevenue, domain.DefaultRevenueAccountName)
	if asset == nil || revenue == nil {
		log.Warn().Str("payment_id", paymentID).Msg("ledger auto-post skipped: no ASSET or REVENUE account")
		return
	}

	minor, err := domain.ToMinorUnits(payment.Amount, payment.Currency)
	if err != nil {
		log.Error().Err(err).Str("payment_id", paymentID).Msg("ledger auto-post skipped: amount conversion failed")
		return
	}

	posted, err := s.ledger.PostTransaction(ctx, ports.PostTransactionRequest{
		OrganizationID: payment.OrganizationID,
		ReferenceType:  domain.ReferenceTypePayment,
		ReferenceID:    paymentID,
		Entries: []ports.EntryInput{
			{AccountID: asset.ID, Direction: domain.DirectionDebit, Amount: minor},
			{AccountID: revenue.ID, Direction: domain.DirectionCredit, Amount: minor},
		},
	})
	switch {
	case apperror.IsConflict(err):
		log.Debug().Str("payment_id", paymentID).Msg("ledger posting already exists")
	case err != nil:
		log.Error().Err(err).Str("payment_id", paymentID).Msg("ledger auto-post failed; manual reconciliation required")
	default:
		log.Info().Str("payment_id", paymentID).Str("ledger_tx_id", posted.ID.String()).Msg("payment posted to ledger")
	}
}

// pickAccount prefers the bootstrap default name, else the first account of
// the type in creation order.
func pickAccount(accounts []domain.LedgerAccount, typ domain.AccountType, preferred string) *domain.LedgerAccount {
	var first *domain.LedgerAccount
	for i := range accounts {
		a := &accounts[i]
		if a.Type != typ {
			continue
		}
		if a.Name == preferred {
			return a
		}
		if first == nil {
			first = a
		}
	}
	return first
}

// InitiatePayment starts a collection with the named provider.
func (s *OrchestratorServiceImpl) InitiatePayment(ctx context.Context, provider string, req domain.InitiateRequest) (*domain.InitiateResult, error) {
	provider = strings.ToLower(provider)
	p, ok := s.providers[provider]
	if !ok {
		return nil, apperror.ErrUnsupportedProvider(provider)
	}
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount("amount must be positive")
	}

	result, err := p.Initiate(ctx, req)
	if err != nil {
		s.log.Warn().Err(err).
			Str("org_id", req.OrganizationID).
			Str("provider", provider).
			Msg("payment initiation failed")
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperror.ErrProviderFailure(provider, err)
	}

	s.log.Info().
		Str("org_id", req.OrganizationID).
		Str("provider", provider).
		Str("provider_ref", result.ProviderRef).
		Msg("payment initiated")
	return result, nil
}
