package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("VAL_003", "Too few", http.StatusBadRequest),
			expected: "[VAL_003] Too few",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
	assert.Nil(t, New("VAL_000", "x", http.StatusBadRequest).Unwrap())
}

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidAmount", ErrInvalidAmount("negative"), "VAL_001", 400},
		{"Unbalanced", ErrUnbalancedEntries("10", "9"), "VAL_002", 400},
		{"TooFew", ErrTooFewEntries(), "VAL_003", 400},
		{"UnknownAccounts", ErrUnknownAccounts([]string{"a"}), "VAL_004", 400},
		{"Stale", ErrStaleWebhook(), "VAL_006", 400},
		{"TooLarge", ErrPayloadTooLarge(1024), "VAL_008", 413},
		{"DuplicateRef", ErrDuplicateLedgerReference("PAYMENT", "p1"), "CONF_001", 409},
		{"InProgress", ErrIntentInProgress(), "CONF_002", 409},
		{"PreviouslyFailed", ErrIntentPreviouslyFailed(), "CONF_003", 409},
		{"MissingSignature", ErrMissingSignature(), "SEC_001", 401},
		{"InvalidSignature", ErrInvalidSignature(nil), "SEC_002", 401},
		{"NotFound", ErrNotFound("Ledger transaction"), "NF_001", 404},
		{"ProviderUnavailable", ErrProviderUnavailable("stripe"), "PROV_001", 503},
		{"RateLimit", ErrRateLimitExceeded(), "RATE_001", 429},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestUnknownAccounts_ListsIDs(t *testing.T) {
	err := ErrUnknownAccounts([]string{"acc-1", "acc-2"})
	assert.Contains(t, err.Message, "acc-1")
	assert.Contains(t, err.Message, "acc-2")
}

func TestFamilyHelpers(t *testing.T) {
	wrapped := fmt.Errorf("post: %w", ErrDuplicateLedgerReference("PAYMENT", "p1"))

	assert.True(t, IsConflict(wrapped))
	assert.False(t, IsValidation(wrapped))
	assert.True(t, IsValidation(ErrTooFewEntries()))
	assert.True(t, IsNotFound(ErrRiskScoreNotFound()))
	assert.True(t, IsProviderUnavailable(fmt.Errorf("x: %w", ErrProviderUnavailable("mpesa"))))
	assert.False(t, IsProviderUnavailable(ErrProviderFailure("mpesa", errors.New("boom"))))
	assert.False(t, IsConflict(errors.New("plain")))
}
