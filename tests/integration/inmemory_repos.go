package integration

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"sync"
	"time"

	"fincore/internal/core/domain"
	"fincore/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// memStore is the shared state behind the in-memory repositories. Ledger
// writes are buffered on a memTx and applied on Commit, and LockOrganization
// holds a per-organization mutex until the transaction ends, which mirrors the
// advisory lock the postgres repository takes.
type memStore struct {
	mu sync.Mutex

	accounts []domain.LedgerAccount
	txns     []domain.LedgerTransaction
	entries  map[uuid.UUID][]domain.LedgerEntry
	hashes   map[uuid.UUID]domain.LedgerHash

	intents  map[string]*domain.PaymentIntent
	payments []domain.Payment
	signals  map[string]domain.FraudSignal
	audits   []domain.AuditLog

	orgLocks sync.Map // org -> *sync.Mutex
}

func newMemStore() *memStore {
	return &memStore{
		entries: make(map[uuid.UUID][]domain.LedgerEntry),
		hashes:  make(map[uuid.UUID]domain.LedgerHash),
		intents: make(map[string]*domain.PaymentIntent),
		signals: make(map[string]domain.FraudSignal),
	}
}

func (s *memStore) orgLock(org string) *sync.Mutex {
	m, _ := s.orgLocks.LoadOrStore(org, &sync.Mutex{})
	return m.(*sync.Mutex)
}

// --- Transactor ---

type memTransactor struct{ store *memStore }

func (t *memTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &memTx{store: t.store}, nil
}

// memTx implements the parts of pgx.Tx the ledger service uses. The embedded
// interface is nil; any other method panics.
type memTx struct {
	pgx.Tx

	store   *memStore
	locked  []*sync.Mutex
	txns    []domain.LedgerTransaction
	entries []domain.LedgerEntry
	hashes  []domain.LedgerHash
	done    bool
}

func (tx *memTx) Commit(ctx context.Context) error {
	if tx.done {
		return pgx.ErrTxClosed
	}
	s := tx.store
	s.mu.Lock()
	for _, t := range tx.txns {
		if s.referenceExistsLocked(t.OrganizationID, t.ReferenceType, t.ReferenceID) {
			s.mu.Unlock()
			tx.release()
			return domain.ErrDuplicateReference
		}
	}
	s.txns = append(s.txns, tx.txns...)
	for _, e := range tx.entries {
		s.entries[e.LedgerTransactionID] = append(s.entries[e.LedgerTransactionID], e)
	}
	for _, h := range tx.hashes {
		s.hashes[h.LedgerTransactionID] = h
	}
	s.mu.Unlock()
	tx.release()
	return nil
}

func (tx *memTx) Rollback(ctx context.Context) error {
	if tx.done {
		return pgx.ErrTxClosed
	}
	tx.release()
	return nil
}

func (tx *memTx) release() {
	tx.done = true
	for i := len(tx.locked) - 1; i >= 0; i-- {
		tx.locked[i].Unlock()
	}
	tx.locked = nil
}

func asMemTx(tx pgx.Tx) (*memTx, error) {
	m, ok := tx.(*memTx)
	if !ok || m.done {
		return nil, errors.New("not an open in-memory transaction")
	}
	return m, nil
}

// --- Ledger accounts ---

type memAccountRepo struct{ store *memStore }

func (r *memAccountRepo) Create(ctx context.Context, account *domain.LedgerAccount) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.OrganizationID == account.OrganizationID && a.Name == account.Name {
			return domain.ErrDuplicateAccountName
		}
	}
	s.accounts = append(s.accounts, *account)
	return nil
}

func (r *memAccountRepo) CreateIfMissing(ctx context.Context, account *domain.LedgerAccount) (*domain.LedgerAccount, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.OrganizationID == account.OrganizationID && a.Name == account.Name {
			stored := a
			return &stored, nil
		}
	}
	s.accounts = append(s.accounts, *account)
	stored := *account
	return &stored, nil
}

func (r *memAccountRepo) ListByOrganization(ctx context.Context, org string) ([]domain.LedgerAccount, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.LedgerAccount
	for _, a := range s.accounts {
		if a.OrganizationID == org {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memAccountRepo) ExistingIDs(ctx context.Context, org string, ids []uuid.UUID) ([]uuid.UUID, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []uuid.UUID
	for _, id := range ids {
		for _, a := range s.accounts {
			if a.ID == id && a.OrganizationID == org {
				out = append(out, id)
				break
			}
		}
	}
	return out, nil
}

// --- Ledger ---

type memLedgerRepo struct{ store *memStore }

func (r *memLedgerRepo) LockOrganization(ctx context.Context, tx pgx.Tx, org string) error {
	m, err := asMemTx(tx)
	if err != nil {
		return err
	}
	l := r.store.orgLock(org)
	l.Lock()
	m.locked = append(m.locked, l)
	return nil
}

func (s *memStore) referenceExistsLocked(org, refType, refID string) bool {
	for _, t := range s.txns {
		if t.OrganizationID == org && t.ReferenceType == refType && t.ReferenceID == refID {
			return true
		}
	}
	return false
}

func (r *memLedgerRepo) ReferenceExists(ctx context.Context, tx pgx.Tx, org, refType, refID string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.referenceExistsLocked(org, refType, refID), nil
}

func (r *memLedgerRepo) LastHash(ctx context.Context, tx pgx.Tx, org string) (*domain.LedgerHash, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var last *domain.LedgerHash
	for _, h := range s.hashes {
		if h.OrganizationID != org {
			continue
		}
		if last == nil || h.ChainIndex > last.ChainIndex {
			h := h
			last = &h
		}
	}
	return last, nil
}

func (r *memLedgerRepo) CreateTransaction(ctx context.Context, tx pgx.Tx, t *domain.LedgerTransaction) error {
	m, err := asMemTx(tx)
	if err != nil {
		return err
	}
	r.store.mu.Lock()
	dup := r.store.referenceExistsLocked(t.OrganizationID, t.ReferenceType, t.ReferenceID)
	r.store.mu.Unlock()
	if dup {
		return domain.ErrDuplicateReference
	}
	m.txns = append(m.txns, *t)
	return nil
}

func (r *memLedgerRepo) CreateEntries(ctx context.Context, tx pgx.Tx, entries []domain.LedgerEntry) error {
	m, err := asMemTx(tx)
	if err != nil {
		return err
	}
	m.entries = append(m.entries, entries...)
	return nil
}

func (r *memLedgerRepo) CreateHash(ctx context.Context, tx pgx.Tx, h *domain.LedgerHash) error {
	m, err := asMemTx(tx)
	if err != nil {
		return err
	}
	m.hashes = append(m.hashes, *h)
	return nil
}

func (r *memLedgerRepo) GetBalances(ctx context.Context, org string, accountIDs []uuid.UUID) ([]domain.AccountBalance, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[uuid.UUID]bool, len(accountIDs))
	for _, id := range accountIDs {
		wanted[id] = true
	}
	sums := make(map[uuid.UUID]*big.Int)
	for _, entries := range s.entries {
		for _, e := range entries {
			sum, ok := sums[e.AccountID]
			if !ok {
				sum = new(big.Int)
				sums[e.AccountID] = sum
			}
			if e.Direction == domain.DirectionDebit {
				sum.Add(sum, big.NewInt(e.Amount))
			} else {
				sum.Sub(sum, big.NewInt(e.Amount))
			}
		}
	}

	var out []domain.AccountBalance
	for _, a := range s.accounts {
		if a.OrganizationID != org || (len(wanted) > 0 && !wanted[a.ID]) {
			continue
		}
		balance := "0"
		if sum, ok := sums[a.ID]; ok {
			balance = sum.String()
		}
		out = append(out, domain.AccountBalance{
			AccountID: a.ID, Name: a.Name, Type: a.Type, Currency: a.Currency, Balance: balance,
		})
	}
	return out, nil
}

func (s *memStore) detailLocked(t domain.LedgerTransaction) domain.TransactionDetail {
	d := domain.TransactionDetail{LedgerTransaction: t}
	d.Entries = append(d.Entries, s.entries[t.ID]...)
	if h, ok := s.hashes[t.ID]; ok {
		d.Hash = &h
	}
	return d
}

func (r *memLedgerRepo) GetTransaction(ctx context.Context, org string, id uuid.UUID) (*domain.TransactionDetail, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.txns {
		if t.ID == id && t.OrganizationID == org {
			d := s.detailLocked(t)
			return &d, nil
		}
	}
	return nil, nil
}

func (r *memLedgerRepo) ListTransactions(ctx context.Context, params ports.LedgerListParams) ([]domain.TransactionDetail, int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []domain.TransactionDetail
	for i := len(s.txns) - 1; i >= 0; i-- {
		t := s.txns[i]
		if t.OrganizationID != params.OrganizationID {
			continue
		}
		if params.ReferenceType != "" && t.ReferenceType != params.ReferenceType {
			continue
		}
		matched = append(matched, s.detailLocked(t))
	}
	total := int64(len(matched))
	start := (params.Page - 1) * params.PageSize
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + params.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *memLedgerRepo) ListChain(ctx context.Context, org string) ([]domain.TransactionDetail, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.TransactionDetail
	for _, t := range s.txns {
		if t.OrganizationID == org {
			out = append(out, s.detailLocked(t))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Hash == nil || out[j].Hash == nil {
			return out[j].Hash == nil && out[i].Hash != nil
		}
		return out[i].Hash.ChainIndex < out[j].Hash.ChainIndex
	})
	return out, nil
}

// tamperEntry rewrites the amount of the first stored entry of a transaction.
func (s *memStore) tamperEntry(txID uuid.UUID, amount int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[txID][0].Amount = amount
}

// --- Payment intents and fraud statistics ---

type memIntentRepo struct{ store *memStore }

func (r *memIntentRepo) GetByProviderRef(ctx context.Context, org, provider, providerRef string) (*domain.PaymentIntent, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.intents[domain.IntentKey(org, provider, providerRef)]; ok {
		cp := *i
		return &cp, nil
	}
	return nil, nil
}

func (r *memIntentRepo) CreateIfAbsent(ctx context.Context, intent *domain.PaymentIntent) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	key := domain.IntentKey(intent.OrganizationID, intent.Provider, intent.ProviderRef)
	if _, ok := s.intents[key]; ok {
		return false, nil
	}
	cp := *intent
	s.intents[key] = &cp
	return true, nil
}

func (r *memIntentRepo) byID(id uuid.UUID) *domain.PaymentIntent {
	for _, i := range r.store.intents {
		if i.ID == id {
			return i
		}
	}
	return nil
}

func (r *memIntentRepo) MarkCompleted(ctx context.Context, id uuid.UUID, paymentID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	i := r.byID(id)
	if i == nil || i.Status != domain.IntentStatusPending {
		return fmt.Errorf("intent %s is not pending", id)
	}
	i.Status = domain.IntentStatusCompleted
	i.PaymentID = &paymentID
	i.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memIntentRepo) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	i := r.byID(id)
	if i == nil || i.Status != domain.IntentStatusPending {
		return fmt.Errorf("intent %s is not pending", id)
	}
	i.Status = domain.IntentStatusFailed
	i.FailureReason = &reason
	i.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memIntentRepo) RecentCompletedAmounts(ctx context.Context, org string, since time.Time, limit int, excludePaymentID string) ([]decimal.Decimal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []decimal.Decimal
	for _, i := range r.store.intents {
		if i.OrganizationID != org || i.Status != domain.IntentStatusCompleted || i.UpdatedAt.Before(since) {
			continue
		}
		if i.PaymentID != nil && *i.PaymentID == excludePaymentID {
			continue
		}
		out = append(out, i.Amount)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *memIntentRepo) CountFailedIntents(ctx context.Context, org string, since time.Time) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var n int64
	for _, i := range r.store.intents {
		if i.OrganizationID == org && i.Status == domain.IntentStatusFailed && !i.UpdatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

// --- Payments ---

type memPaymentRepo struct{ store *memStore }

func (r *memPaymentRepo) Create(ctx context.Context, org, actorID string, in domain.PaymentInput) (*domain.Payment, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	p := domain.Payment{
		ID:             fmt.Sprintf("pay_%d", len(s.payments)+1),
		OrganizationID: org,
		Amount:         in.Amount,
		Currency:       in.Currency,
		Method:         in.Method,
		Status:         in.Status,
		TransactionID:  in.TransactionID,
		InvoiceID:      in.InvoiceID,
		CreatedBy:      actorID,
		CreatedAt:      time.Now().UTC(),
	}
	s.payments = append(s.payments, p)
	return &p, nil
}

// --- Fraud signals ---

type memFraudRepo struct{ store *memStore }

func signalKey(org string, t domain.FraudEntityType, id string) string {
	return org + "|" + string(t) + "|" + id
}

func (r *memFraudRepo) Upsert(ctx context.Context, signal *domain.FraudSignal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.signals[signalKey(signal.OrganizationID, signal.EntityType, signal.EntityID)] = *signal
	return nil
}

func (r *memFraudRepo) Get(ctx context.Context, org string, entityType domain.FraudEntityType, entityID string) (*domain.FraudSignal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if sig, ok := r.store.signals[signalKey(org, entityType, entityID)]; ok {
		return &sig, nil
	}
	return nil, nil
}

func (r *memFraudRepo) ListFlagged(ctx context.Context, org string, page, pageSize int) ([]domain.FraudSignal, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []domain.FraudSignal
	for _, sig := range r.store.signals {
		if sig.OrganizationID == org && sig.IsFlagged {
			out = append(out, sig)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memFraudRepo) CountFlaggedSince(ctx context.Context, org string, since time.Time) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var n int64
	for _, sig := range r.store.signals {
		if sig.OrganizationID == org && sig.IsFlagged && !sig.UpdatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

// --- Audit ---

type memAuditRepo struct{ store *memStore }

func (r *memAuditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.audits = append(r.store.audits, *log)
	return nil
}

func (s *memStore) counts() (payments, intents, audits int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payments), len(s.intents), len(s.audits)
}
