package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, RegisterValidations(v))
	return v
}

func int64Ptr(v int64) *int64 { return &v }

func TestSanitizeStruct_TrimsAndEscapes(t *testing.T) {
	req := CreateAccountRequest{
		Name:     "  Petty <b>Cash</b> ",
		Type:     " ASSET ",
		Currency: " usd ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "Petty &lt;b&gt;Cash&lt;/b&gt;", req.Name)
	assert.Equal(t, "ASSET", req.Type)
	assert.Equal(t, "usd", req.Currency)
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	invoice := "  inv_001  "
	req := InitiatePaymentRequest{Currency: "USD", InvoiceID: &invoice}
	SanitizeStruct(&req)

	assert.Equal(t, "inv_001", *req.InvoiceID)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	SanitizeStruct("hello")
}

func TestSafeID(t *testing.T) {
	valid := []string{"PAYMENT", "pi_3Nabc", "ref-001", "a.b.c", "org:42"}
	for _, tc := range valid {
		assert.True(t, safeStringRe.MatchString(tc), "expected valid: %s", tc)
	}

	invalid := []string{"ref 001", "ref<001>", "ref;DROP", "", "ref\n001"}
	for _, tc := range invalid {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %q", tc)
	}
}

func TestPostTransactionRequest_Validation(t *testing.T) {
	v := newValidator(t)

	valid := PostTransactionRequest{
		ReferenceType: "PAYMENT",
		ReferenceID:   "pay_1",
		Entries: []EntryRequest{
			{AccountID: "5f0c9a0e-8d2b-4a43-9a57-6f4f0c6a1b11", Direction: "DEBIT", Amount: int64Ptr(0)},
		},
	}
	assert.NoError(t, v.Struct(valid))

	badRef := valid
	badRef.ReferenceID = "pay 1"
	assert.Error(t, v.Struct(badRef))

	badAccount := valid
	badAccount.Entries = []EntryRequest{{AccountID: "not-a-uuid", Direction: "DEBIT", Amount: int64Ptr(1)}}
	assert.Error(t, v.Struct(badAccount))

	missingAmount := valid
	missingAmount.Entries = []EntryRequest{{AccountID: "5f0c9a0e-8d2b-4a43-9a57-6f4f0c6a1b11", Direction: "DEBIT"}}
	assert.Error(t, v.Struct(missingAmount))
}

func TestInitiatePaymentRequest_Validation(t *testing.T) {
	v := newValidator(t)

	req := InitiatePaymentRequest{Amount: decimal.RequireFromString("10.50"), Currency: "usd"}
	assert.NoError(t, v.Struct(req))

	req.Currency = "US"
	assert.Error(t, v.Struct(req))

	req.Currency = "KES"
	bad := "inv 1"
	req.InvoiceID = &bad
	assert.Error(t, v.Struct(req))
}
