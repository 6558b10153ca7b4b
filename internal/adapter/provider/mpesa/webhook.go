// Package mpesa adapts Safaricom Daraja STK push and its callbacks.
package mpesa

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fincore/internal/core/domain"
	"fincore/internal/core/ports"

	"github.com/shopspring/decimal"
)

const (
	SignatureHeader  = "X-Mpesa-Signature"
	DefaultTolerance = 5 * time.Minute
	Currency         = "KES"
	paymentMethod    = "MPESA"
	transactionDate  = "20060102150405"
)

// Daraja reports TransactionDate in East Africa Time.
var eat = time.FixedZone("EAT", 3*60*60)

// STKCallback is the Daraja STK push result envelope. OrganizationID and
// InvoiceID are added by the callback relay.
type STKCallback struct {
	OrganizationID string `json:"organizationId"`
	InvoiceID      string `json:"invoiceId"`
	Body           struct {
		StkCallback struct {
			MerchantRequestID string `json:"MerchantRequestID"`
			CheckoutRequestID string `json:"CheckoutRequestID"`
			ResultCode        int    `json:"ResultCode"`
			ResultDesc        string `json:"ResultDesc"`
			CallbackMetadata  struct {
				Item []CallbackItem `json:"Item"`
			} `json:"CallbackMetadata"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

type CallbackItem struct {
	Name  string `json:"Name"`
	Value any    `json:"Value"`
}

// WebhookAdapter implements ports.WebhookAdapter for M-Pesa callbacks.
type WebhookAdapter struct {
	secret    []byte
	tolerance time.Duration
}

func NewWebhookAdapter(secret string, tolerance time.Duration) *WebhookAdapter {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &WebhookAdapter{secret: []byte(secret), tolerance: tolerance}
}

func (a *WebhookAdapter) Provider() string { return domain.ProviderMpesa }

func (a *WebhookAdapter) Tolerance() time.Duration { return a.tolerance }

// Sign returns the lowercase hex HMAC-SHA256 of body.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks X-Mpesa-Signature, either raw hex or "sha256=<hex>".
func (a *WebhookAdapter) Verify(raw []byte, headers http.Header) error {
	sig := strings.TrimSpace(headers.Get(SignatureHeader))
	if sig == "" {
		return ports.ErrSignatureMissing
	}
	sig = strings.TrimPrefix(sig, "sha256=")

	got, err := hex.DecodeString(sig)
	if err != nil {
		return fmt.Errorf("mpesa signature is not hex: %w", err)
	}
	mac := hmac.New(sha256.New, a.secret)
	mac.Write(raw)
	if !hmac.Equal(got, mac.Sum(nil)) {
		return errors.New("mpesa signature mismatch")
	}
	return nil
}

// Parse normalizes a successful STK callback. A non-zero ResultCode is a
// failed collection and is rejected.
func (a *WebhookAdapter) Parse(raw []byte) (*domain.NormalizedPayment, error) {
	var cb STKCallback
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&cb); err != nil {
		return nil, fmt.Errorf("decode stk callback: %w", err)
	}

	stk := cb.Body.StkCallback
	if stk.CheckoutRequestID == "" {
		return nil, errors.New("stk callback missing CheckoutRequestID")
	}
	if stk.ResultCode != 0 {
		return nil, fmt.Errorf("stk push %s not successful: %d %s", stk.CheckoutRequestID, stk.ResultCode, stk.ResultDesc)
	}

	items := make(map[string]string, len(stk.CallbackMetadata.Item))
	for _, item := range stk.CallbackMetadata.Item {
		items[item.Name] = itemString(item.Value)
	}

	amount, err := decimal.NewFromString(items["Amount"])
	if err != nil {
		return nil, fmt.Errorf("stk callback amount %q: %w", items["Amount"], err)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("stk callback amount %s is not positive", amount)
	}

	org := strings.TrimSpace(cb.OrganizationID)
	if org == "" {
		org = strings.TrimSpace(items["AccountReference"])
	}
	if org == "" {
		return nil, errors.New("stk callback has no organization")
	}

	ref := items["MpesaReceiptNumber"]
	if ref == "" {
		ref = stk.CheckoutRequestID
	}

	p := &domain.NormalizedPayment{
		Provider:       domain.ProviderMpesa,
		OrganizationID: org,
		ProviderRef:    ref,
		Amount:         amount,
		Currency:       Currency,
		Method:         paymentMethod,
		Metadata: map[string]string{
			"checkoutRequestId": stk.CheckoutRequestID,
			"merchantRequestId": stk.MerchantRequestID,
		},
	}
	if phone := items["PhoneNumber"]; phone != "" {
		p.Metadata["phoneNumber"] = phone
	}
	if cb.InvoiceID != "" {
		inv := cb.InvoiceID
		p.InvoiceID = &inv
	}
	if d := items["TransactionDate"]; d != "" {
		ts, err := time.ParseInLocation(transactionDate, d, eat)
		if err != nil {
			return nil, fmt.Errorf("stk callback TransactionDate %q: %w", d, err)
		}
		ts = ts.UTC()
		p.Timestamp = &ts
	}
	return p, nil
}

func itemString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
