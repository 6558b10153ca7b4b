package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// AccountType classifies a ledger account.
type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeRevenue   AccountType = "REVENUE"
	AccountTypeExpense   AccountType = "EXPENSE"
	AccountTypeEquity    AccountType = "EQUITY"
)

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeRevenue, AccountTypeExpense, AccountTypeEquity:
		return true
	}
	return false
}

// Direction is the side of a ledger entry.
type Direction string

const (
	DirectionDebit  Direction = "DEBIT"
	DirectionCredit Direction = "CREDIT"
)

// Valid reports whether d is DEBIT or CREDIT.
func (d Direction) Valid() bool {
	return d == DirectionDebit || d == DirectionCredit
}

// Names of the accounts created by ledger bootstrap.
const (
	DefaultCashAccountName    = "Cash"
	DefaultRevenueAccountName = "Revenue"
)

// ReferenceTypePayment marks ledger transactions that book a provider payment.
const ReferenceTypePayment = "PAYMENT"

// ErrDuplicateReference is returned by storage when a ledger transaction with
// the same (organization, reference type, reference id) already exists.
var ErrDuplicateReference = errors.New("duplicate ledger reference")

// ErrDuplicateAccountName is returned by storage when an account name is
// already taken within an organization.
var ErrDuplicateAccountName = errors.New("duplicate account name")

// LedgerAccount is a named bucket of value in one currency.
type LedgerAccount struct {
	ID             uuid.UUID   `json:"id"`
	OrganizationID string      `json:"organization_id"`
	Name           string      `json:"name"`
	Type           AccountType `json:"type"`
	Currency       string      `json:"currency"`
	CreatedAt      time.Time   `json:"created_at"`
}

// LedgerTransaction groups balanced entries under a unique business reference.
type LedgerTransaction struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID string    `json:"organization_id"`
	ReferenceType  string    `json:"reference_type"`
	ReferenceID    string    `json:"reference_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// LedgerEntry is one side of a transaction. Amount is in minor units and never negative.
type LedgerEntry struct {
	ID                  uuid.UUID `json:"id"`
	LedgerTransactionID uuid.UUID `json:"ledger_transaction_id"`
	AccountID           uuid.UUID `json:"account_id"`
	Direction           Direction `json:"direction"`
	Amount              int64     `json:"amount"`
	CreatedAt           time.Time `json:"created_at"`
}

// LedgerHash links a transaction into its organization's hash chain.
type LedgerHash struct {
	LedgerTransactionID uuid.UUID `json:"ledger_transaction_id"`
	OrganizationID      string    `json:"organization_id"`
	ChainIndex          int64     `json:"chain_index"`
	PreviousHash        *string   `json:"previous_hash"`
	CurrentHash         string    `json:"current_hash"`
	CreatedAt           time.Time `json:"created_at"`
}

// TransactionDetail is a transaction with its entries and chain link.
type TransactionDetail struct {
	LedgerTransaction
	Entries []LedgerEntry `json:"entries"`
	Hash    *LedgerHash   `json:"hash,omitempty"`
}

// AccountBalance is Σdebit − Σcredit for an account, as a decimal string.
type AccountBalance struct {
	AccountID uuid.UUID   `json:"account_id"`
	Name      string      `json:"name"`
	Type      AccountType `json:"type"`
	Currency  string      `json:"currency"`
	Balance   string      `json:"balance"`
}

// PostedTransaction is returned after a successful posting.
type PostedTransaction struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// ChainReport is the outcome of walking an organization's hash chain.
type ChainReport struct {
	OrganizationID string     `json:"organization_id"`
	Checked        int        `json:"checked"`
	Valid          bool       `json:"valid"`
	BrokenAt       *uuid.UUID `json:"broken_at,omitempty"`
	Reason         string     `json:"reason,omitempty"`
}
