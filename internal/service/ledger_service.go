package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"fincore/internal/core/domain"
	"fincore/internal/core/ports"
	"fincore/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// LedgerServiceImpl implements ports.LedgerService.
type LedgerServiceImpl struct {
	ledgerRepo  ports.LedgerRepository
	accountRepo ports.LedgerAccountRepository
	transactor  ports.DBTransactor
	events      ports.EventPublisher
	log         zerolog.Logger
	now         func() time.Time
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	ledgerRepo ports.LedgerRepository,
	accountRepo ports.LedgerAccountRepository,
	transactor ports.DBTransactor,
	events ports.EventPublisher,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		ledgerRepo:  ledgerRepo,
		accountRepo: accountRepo,
		transactor:  transactor,
		events:      events,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// PostTransaction validates and atomically records a balanced transaction
// together with its hash-chain link.
func (s *LedgerServiceImpl) PostTransaction(ctx context.Context, req ports.PostTransactionRequest) (*domain.PostedTransaction, error) {
	if err := validateEntries(req); err != nil {
		return nil, err
	}
	if err := s.checkAccounts(ctx, req); err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.ledgerRepo.LockOrganization(ctx, dbTx, req.OrganizationID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock organization chain: %w", err))
	}

	exists, err := s.ledgerRepo.ReferenceExists(ctx, dbTx, req.OrganizationID, req.ReferenceType, req.ReferenceID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check reference: %w", err))
	}
	if exists {
		return nil, apperror.ErrDuplicateLedgerReference(req.ReferenceType, req.ReferenceID)
	}

	prev, err := s.ledgerRepo.LastHash(ctx, dbTx, req.OrganizationID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("read last hash: %w", err))
	}

	now := s.now()
	txn := domain.LedgerTransaction{
		ID:             uuid.New(),
		OrganizationID: req.OrganizationID,
		ReferenceType:  req.ReferenceType,
		ReferenceID:    req.ReferenceID,
		CreatedAt:      now,
	}
	entries := make([]domain.LedgerEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, domain.LedgerEntry{
			ID:                  uuid.New(),
			LedgerTransactionID: txn.ID,
			AccountID:           e.AccountID,
			Direction:           e.Direction,
			Amount:              e.Amount,
			CreatedAt:           now,
		})
	}
	link := domain.NextLink(prev, txn, entries)

	if err := s.ledgerRepo.CreateTransaction(ctx, dbTx, &txn); err != nil {
		if errors.Is(err, domain.ErrDuplicateReference) {
			return nil, apperror.ErrDuplicateLedgerReference(req.ReferenceType, req.ReferenceID)
		}
		return nil, apperror.InternalError(fmt.Errorf("create ledger transaction: %w", err))
	}
	if err := s.ledgerRepo.CreateEntries(ctx, dbTx, entries); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create ledger entries: %w", err))
	}
	if err := s.ledgerRepo.CreateHash(ctx, dbTx, &link); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create ledger hash: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("org_id", req.OrganizationID).
		Str("ledger_tx_id", txn.ID.String()).
		Str("reference_type", req.ReferenceType).
		Str("reference_id", req.ReferenceID).
		Int64("chain_index", link.ChainIndex).
		Msg("ledger transaction posted")

	s.events.Publish(domain.EventLedgerTransactionPosted, domain.LedgerTransactionPostedEvent{
		OrganizationID:      txn.OrganizationID,
		LedgerTransactionID: txn.ID,
		ReferenceType:       txn.ReferenceType,
		ReferenceID:         txn.ReferenceID,
		OccurredAt:          txn.CreatedAt,
	})

	return &domain.PostedTransaction{ID: txn.ID, CreatedAt: txn.CreatedAt}, nil
}

func validateEntries(req ports.PostTransactionRequest) error {
	if strings.TrimSpace(req.OrganizationID) == "" {
		return apperror.Validation("organization id is required")
	}
	if strings.TrimSpace(req.ReferenceType) == "" || strings.TrimSpace(req.ReferenceID) == "" {
		return apperror.Validation("reference type and reference id are required")
	}
	if len(req.Entries) < 2 {
		return apperror.ErrTooFewEntries()
	}

	debits, credits := new(big.Int), new(big.Int)
	for i, e := range req.Entries {
		if e.Amount < 0 {
			return apperror.ErrInvalidAmount(fmt.Sprintf("entry %d has a negative amount", i))
		}
		if e.AccountID == uuid.Nil {
			return apperror.Validation(fmt.Sprintf("entry %d has no account", i))
		}
		switch e.Direction {
		case domain.DirectionDebit:
			debits.Add(debits, big.NewInt(e.Amount))
		case domain.DirectionCredit:
			credits.Add(credits, big.NewInt(e.Amount))
		default:
			return apperror.Validation(fmt.Sprintf("entry %d has invalid direction %q", i, e.Direction))
		}
	}
	if debits.Cmp(credits) != 0 {
		return apperror.ErrUnbalancedEntries(debits.String(), credits.String())
	}
	return nil
}

func (s *LedgerServiceImpl) checkAccounts(ctx context.Context, req ports.PostTransactionRequest) error {
	wanted := make([]uuid.UUID, 0, len(req.Entries))
	seen := make(map[uuid.UUID]bool, len(req.Entries))
	for _, e := range req.Entries {
		if !seen[e.AccountID] {
			seen[e.AccountID] = true
			wanted = append(wanted, e.AccountID)
		}
	}

	found, err := s.accountRepo.ExistingIDs(ctx, req.OrganizationID, wanted)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("check accounts: %w", err))
	}
	existing := make(map[uuid.UUID]bool, len(found))
	for _, id := range found {
		existing[id] = true
	}

	var missing []string
	for _, id := range wanted {
		if !existing[id] {
			missing = append(missing, id.String())
		}
	}
	if len(missing) > 0 {
		return apperror.ErrUnknownAccounts(missing)
	}
	return nil
}

// GetBalances returns Σdebit − Σcredit per account. An empty accountIDs
// selects every account of the organization.
func (s *LedgerServiceImpl) GetBalances(ctx context.Context, org string, accountIDs []uuid.UUID) ([]domain.AccountBalance, error) {
	balances, err := s.ledgerRepo.GetBalances(ctx, org, accountIDs)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get balances: %w", err))
	}
	return balances, nil
}

// GetTransactions returns a page of transactions, newest first.
func (s *LedgerServiceImpl) GetTransactions(ctx context.Context, params ports.LedgerListParams) ([]domain.TransactionDetail, int64, error) {
	params.Page, params.PageSize = domain.NormalizePage(params.Page, params.PageSize)

	txns, total, err := s.ledgerRepo.ListTransactions(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list ledger transactions: %w", err))
	}
	return txns, total, nil
}

// GetTransactionByID returns one transaction of the organization.
func (s *LedgerServiceImpl) GetTransactionByID(ctx context.Context, org string, id uuid.UUID) (*domain.TransactionDetail, error) {
	txn, err := s.ledgerRepo.GetTransaction(ctx, org, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get ledger transaction: %w", err))
	}
	if txn == nil {
		return nil, apperror.ErrNotFound("Ledger transaction")
	}
	return txn, nil
}

// CreateAccount creates a ledger account.
func (s *LedgerServiceImpl) CreateAccount(ctx context.Context, req ports.CreateAccountRequest) (*domain.LedgerAccount, error) {
	account, err := newAccount(req.OrganizationID, req.Name, req.Type, req.Currency, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrDuplicateAccountName) {
			return nil, apperror.ErrDuplicateAccount(account.Name)
		}
		return nil, apperror.InternalError(fmt.Errorf("create account: %w", err))
	}

	s.log.Info().
		Str("org_id", account.OrganizationID).
		Str("account_id", account.ID.String()).
		Str("type", string(account.Type)).
		Msg("ledger account created")
	return account, nil
}

// GetAccounts lists the organization's accounts in creation order.
func (s *LedgerServiceImpl) GetAccounts(ctx context.Context, org string) ([]domain.LedgerAccount, error) {
	accounts, err := s.accountRepo.ListByOrganization(ctx, org)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list accounts: %w", err))
	}
	return accounts, nil
}

// BootstrapAccounts idempotently creates the default Cash and Revenue accounts.
func (s *LedgerServiceImpl) BootstrapAccounts(ctx context.Context, org, currency string) ([]domain.LedgerAccount, error) {
	defaults := []struct {
		name string
		typ  domain.AccountType
	}{
		{domain.DefaultCashAccountName, domain.AccountTypeAsset},
		{domain.DefaultRevenueAccountName, domain.AccountTypeRevenue},
	}

	out := make([]domain.LedgerAccount, 0, len(defaults))
	for _, d := range defaults {
		account, err := newAccount(org, d.name, d.typ, currency, s.now())
		if err != nil {
			return nil, err
		}
		stored, err := s.accountRepo.CreateIfMissing(ctx, account)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("bootstrap account %s: %w", d.name, err))
		}
		out = append(out, *stored)
	}

	s.log.Info().Str("org_id", org).Msg("ledger accounts bootstrapped")
	return out, nil
}

// VerifyChain recomputes the organization's hash chain.
func (s *LedgerServiceImpl) VerifyChain(ctx context.Context, org string) (*domain.ChainReport, error) {
	chain, err := s.ledgerRepo.ListChain(ctx, org)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load hash chain: %w", err))
	}

	report := domain.VerifyChain(org, chain)
	if !report.Valid {
		s.log.Error().
			Str("org_id", org).
			Str("ledger_tx_id", report.BrokenAt.String()).
			Str("reason", report.Reason).
			Msg("ledger hash chain broken")
	}
	return &report, nil
}

func newAccount(org, name string, typ domain.AccountType, currency string, now time.Time) (*domain.LedgerAccount, error) {
	name = strings.TrimSpace(name)
	currency = strings.ToUpper(strings.TrimSpace(currency))
	switch {
	case strings.TrimSpace(org) == "":
		return nil, apperror.Validation("organization id is required")
	case name == "":
		return nil, apperror.Validation("account name is required")
	case !typ.Valid():
		return nil, apperror.Validation(fmt.Sprintf("invalid account type %q", typ))
	case !currencyPattern.MatchString(currency):
		return nil, apperror.Validation(fmt.Sprintf("invalid currency %q", currency))
	}
	return &domain.LedgerAccount{
		ID:             uuid.New(),
		OrganizationID: org,
		Name:           name,
		Type:           typ,
		Currency:       currency,
		CreatedAt:      now,
	}, nil
}
