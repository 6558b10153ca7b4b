package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Code family prefixes.
const (
	FamilyValidation = "VAL"
	FamilyConflict   = "CONF"
	FamilySecurity   = "SEC"
	FamilyNotFound   = "NF"
	FamilyProvider   = "PROV"
	FamilyRate       = "RATE"
	FamilySystem     = "SYS"
)

// ---- Validation (VAL) ----

func ErrInvalidAmount(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrUnbalancedEntries(debits, credits string) *AppError {
	return New("VAL_002", fmt.Sprintf("Debits (%s) must equal credits (%s)", debits, credits), http.StatusBadRequest)
}

func ErrTooFewEntries() *AppError {
	return New("VAL_003", "A transaction requires at least two entries", http.StatusBadRequest)
}

func ErrUnknownAccounts(ids []string) *AppError {
	return New("VAL_004", "Unknown accounts: "+strings.Join(ids, ", "), http.StatusBadRequest)
}

func ErrMalformedPayload(err error) *AppError {
	return Wrap("VAL_005", "Malformed webhook payload", http.StatusBadRequest, err)
}

func ErrStaleWebhook() *AppError {
	return New("VAL_006", "Webhook timestamp outside tolerance", http.StatusBadRequest)
}

func ErrUnsupportedProvider(provider string) *AppError {
	return New("VAL_007", fmt.Sprintf("Unsupported provider %q", provider), http.StatusBadRequest)
}

func ErrPayloadTooLarge(limit int64) *AppError {
	return New("VAL_008", fmt.Sprintf("Request body exceeds %d bytes", limit), http.StatusRequestEntityTooLarge)
}

// Validation returns a generic VAL_000 validation error.
func Validation(message string) *AppError {
	return New("VAL_000", message, http.StatusBadRequest)
}

// ---- Conflict (CONF) ----

func ErrDuplicateLedgerReference(refType, refID string) *AppError {
	return New("CONF_001", fmt.Sprintf("Ledger transaction already exists for %s/%s", refType, refID), http.StatusConflict)
}

func ErrIntentInProgress() *AppError {
	return New("CONF_002", "Payment intent is already being processed", http.StatusConflict)
}

func ErrIntentPreviouslyFailed() *AppError {
	return New("CONF_003", "Payment intent previously failed", http.StatusConflict)
}

func ErrDuplicateAccount(name string) *AppError {
	return New("CONF_004", fmt.Sprintf("Account %q already exists", name), http.StatusConflict)
}

// ---- Security (SEC) ----

func ErrMissingSignature() *AppError {
	return New("SEC_001", "Missing webhook signature", http.StatusUnauthorized)
}

func ErrInvalidSignature(err error) *AppError {
	return Wrap("SEC_002", "Invalid webhook signature", http.StatusUnauthorized, err)
}

func ErrInvalidToken() *AppError {
	return New("SEC_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Not found (NF) ----

func ErrNotFound(entity string) *AppError {
	return New("NF_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrRiskScoreNotFound() *AppError {
	return New("NF_002", "No risk score for entity", http.StatusNotFound)
}

// ---- Provider (PROV) ----

func ErrProviderUnavailable(key string) *AppError {
	return New("PROV_001", fmt.Sprintf("Provider %s temporarily unavailable", key), http.StatusServiceUnavailable)
}

func ErrProviderFailure(provider string, err error) *AppError {
	return Wrap("PROV_002", fmt.Sprintf("Provider %s request failed", provider), http.StatusBadGateway, err)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// InFamily reports whether err carries an AppError whose code starts with family.
func InFamily(err error, family string) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return strings.HasPrefix(appErr.Code, family+"_")
}

func IsValidation(err error) bool { return InFamily(err, FamilyValidation) }

func IsConflict(err error) bool { return InFamily(err, FamilyConflict) }

func IsNotFound(err error) bool { return InFamily(err, FamilyNotFound) }

func IsProviderUnavailable(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == "PROV_001"
}
