package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// zeroDecimalCurrencies have no minor unit.
var zeroDecimalCurrencies = map[string]bool{
	"BIF": true, "CLP": true, "DJF": true, "GNF": true, "JPY": true, "KMF": true,
	"KRW": true, "MGA": true, "PYG": true, "RWF": true, "UGX": true, "VND": true,
	"VUV": true, "XAF": true, "XOF": true, "XPF": true,
}

// MinorUnitExponent returns the number of decimal places of the currency's minor unit.
func MinorUnitExponent(currency string) int32 {
	if zeroDecimalCurrencies[strings.ToUpper(currency)] {
		return 0
	}
	return 2
}

// ToMinorUnits converts a major-unit amount to integer minor units, rounding
// half away from zero (half-up for the non-negative amounts accepted here).
func ToMinorUnits(amount decimal.Decimal, currency string) (int64, error) {
	if amount.IsNegative() {
		return 0, fmt.Errorf("amount %s is negative", amount)
	}
	minor := amount.Shift(MinorUnitExponent(currency)).Round(0)
	if minor.GreaterThan(maxMinorUnits) {
		return 0, fmt.Errorf("amount %s overflows minor units", amount)
	}
	return minor.IntPart(), nil
}

// FromMinorUnits converts integer minor units to a major-unit decimal.
func FromMinorUnits(amount int64, currency string) decimal.Decimal {
	return decimal.New(amount, -MinorUnitExponent(currency))
}
