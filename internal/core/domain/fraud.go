package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FraudEntityType is the kind of entity a risk score is attached to.
type FraudEntityType string

const (
	FraudEntityPayment           FraudEntityType = "PAYMENT"
	FraudEntityLedgerTransaction FraudEntityType = "LEDGER_TRANSACTION"
)

// Valid reports whether t is a known entity type.
func (t FraudEntityType) Valid() bool {
	return t == FraudEntityPayment || t == FraudEntityLedgerTransaction
}

// Scoring windows and caps.
const (
	AmountHistoryWindow  = 30 * 24 * time.Hour
	AmountHistoryLimit   = 100
	FrequencyWindow      = time.Hour
	FailedAttemptsWindow = 24 * time.Hour

	maxAmountScore    = 40
	maxFrequencyScore = 30
	maxFailedScore    = 30
)

// RiskFactors are the per-factor contributions to a risk score.
type RiskFactors struct {
	AmountAnomalyScore  int `json:"amountAnomalyScore"`
	FrequencyScore      int `json:"frequencyScore"`
	FailedAttemptsScore int `json:"failedAttemptsScore"`
}

// RiskResult is the outcome of one scoring.
type RiskResult struct {
	RiskScore int         `json:"riskScore"`
	Factors   RiskFactors `json:"factors"`
	IsFlagged bool        `json:"isFlagged"`
}

// FraudSignal is the stored risk score of one entity; upserted on rescoring.
type FraudSignal struct {
	ID             uuid.UUID       `json:"id"`
	OrganizationID string          `json:"organization_id"`
	EntityType     FraudEntityType `json:"entity_type"`
	EntityID       string          `json:"entity_id"`
	RiskScore      int             `json:"risk_score"`
	Factors        RiskFactors     `json:"factors"`
	IsFlagged      bool            `json:"is_flagged"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// AmountAnomalyScore is 0 at or below the average, rising linearly to 40 at
// three times the average. A zero average (no history) scores 0.
func AmountAnomalyScore(amount, average decimal.Decimal) int {
	if !average.IsPositive() {
		return 0
	}
	ratio, _ := amount.Div(average).Float64()
	if ratio <= 1 {
		return 0
	}
	if ratio >= 3 || math.IsNaN(ratio) {
		return maxAmountScore
	}
	return roundCapped((ratio-1)/2*maxAmountScore, maxAmountScore)
}

// FrequencyScore is 0 up to 5 events, rising linearly to 30 at 20 events.
func FrequencyScore(events int64) int {
	if events <= 5 {
		return 0
	}
	return roundCapped(float64(events-5)/15*maxFrequencyScore, maxFrequencyScore)
}

// FailedAttemptsScore rises linearly from 0 to 30 at 5 failures.
func FailedAttemptsScore(failures int64) int {
	if failures <= 0 {
		return 0
	}
	return roundCapped(float64(failures)/5*maxFailedScore, maxFailedScore)
}

// NewRiskResult sums the factors, each clamped to its range, and applies the flag threshold.
func NewRiskResult(f RiskFactors, flagThreshold int) RiskResult {
	score := clamp(f.AmountAnomalyScore, maxAmountScore) +
		clamp(f.FrequencyScore, maxFrequencyScore) +
		clamp(f.FailedAttemptsScore, maxFailedScore)
	return RiskResult{RiskScore: score, Factors: f, IsFlagged: score >= flagThreshold}
}

// Mean returns the arithmetic mean of amounts, or zero for an empty slice.
func Mean(amounts []decimal.Decimal) decimal.Decimal {
	if len(amounts) == 0 {
		return decimal.Zero
	}
	return decimal.Sum(amounts[0], amounts[1:]...).Div(decimal.NewFromInt(int64(len(amounts))))
}

// roundCapped rounds v into [0, limit]; the bounds are checked on the float
// so out-of-range values never reach the int conversion.
func roundCapped(v float64, limit int) int {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= float64(limit):
		return limit
	}
	return int(math.Round(v))
}

func clamp(v, limit int) int {
	return max(0, min(v, limit))
}
