package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// ComputeLedgerHash returns hex(SHA-256(previousHash ∥ txID ∥ entries)), where
// entries is the sorted list of "accountId:direction:amount" joined by "|".
// previousHash is "" for the first transaction of an organization.
func ComputeLedgerHash(previousHash string, txID uuid.UUID, entries []LedgerEntry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s:%s:%d", e.AccountID, e.Direction, e.Amount))
	}
	sort.Strings(parts)

	h := sha256.New()
	h.Write([]byte(previousHash))
	h.Write([]byte(txID.String()))
	h.Write([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(h.Sum(nil))
}

// NextLink builds the chain link for txID following prev (nil for the first link).
func NextLink(prev *LedgerHash, tx LedgerTransaction, entries []LedgerEntry) LedgerHash {
	link := LedgerHash{
		LedgerTransactionID: tx.ID,
		OrganizationID:      tx.OrganizationID,
		ChainIndex:          1,
		CreatedAt:           tx.CreatedAt,
	}
	previous := ""
	if prev != nil {
		previous = prev.CurrentHash
		p := prev.CurrentHash
		link.PreviousHash = &p
		link.ChainIndex = prev.ChainIndex + 1
	}
	link.CurrentHash = ComputeLedgerHash(previous, tx.ID, entries)
	return link
}

// VerifyChain walks details in chain order and reports the first broken link.
func VerifyChain(org string, details []TransactionDetail) ChainReport {
	report := ChainReport{OrganizationID: org, Valid: true}
	expectedPrev := ""
	for i := range details {
		d := details[i]
		report.Checked++
		if d.Hash == nil {
			return report.broken(d.ID, "missing hash row")
		}
		stored := ""
		if d.Hash.PreviousHash != nil {
			stored = *d.Hash.PreviousHash
		}
		if stored != expectedPrev {
			return report.broken(d.ID, "previous hash does not match preceding transaction")
		}
		if ComputeLedgerHash(stored, d.ID, d.Entries) != d.Hash.CurrentHash {
			return report.broken(d.ID, "current hash does not match entries")
		}
		expectedPrev = d.Hash.CurrentHash
	}
	return report
}

func (r ChainReport) broken(id uuid.UUID, reason string) ChainReport {
	r.Valid = false
	r.BrokenAt = &id
	r.Reason = reason
	return r
}
