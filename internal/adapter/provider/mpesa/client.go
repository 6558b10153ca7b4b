package mpesa

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"fincore/internal/core/domain"
	"fincore/internal/core/ports"
	"fincore/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	BreakerKey     = domain.ProviderMpesa
	DefaultTimeout = 15 * time.Second
	// tokens are refreshed this long before Daraja expires them
	tokenSkew = time.Minute
)

type Config struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	Passkey        string
	Shortcode      string
	CallbackURL    string
	Timeout        time.Duration
	Breaker        ports.BreakerOptions
	HTTPClient     *http.Client
}

// STKPushRequest is a Lipa Na M-Pesa Online request.
type STKPushRequest struct {
	PhoneNumber      string
	Amount           decimal.Decimal
	AccountReference string
	Description      string
}

type stkPushBody struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int64  `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

// STKPushResponse is Daraja's synchronous acknowledgement of an STK push.
type STKPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

// Client calls the Daraja API through the circuit breaker keyed "mpesa".
type Client struct {
	cfg     Config
	http    *http.Client
	breaker ports.CircuitBreaker
	log     zerolog.Logger
	now     func() time.Time

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewClient(cfg Config, breaker ports.CircuitBreaker, log zerolog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	return &Client{
		cfg:     cfg,
		http:    hc,
		breaker: breaker,
		log:     log,
		now:     time.Now,
	}
}

func (c *Client) Provider() string { return domain.ProviderMpesa }

func (c *Client) execute(ctx context.Context, fn func(ctx context.Context) error) error {
	return c.breaker.Execute(ctx, BreakerKey, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
		return fn(ctx)
	}, c.cfg.Breaker)
}

// AccessToken returns a cached OAuth token, fetching a new one when the
// cached token is close to expiry.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	var tok string
	err := c.execute(ctx, func(ctx context.Context) error {
		var err error
		tok, err = c.accessToken(ctx)
		return err
	})
	return tok, err
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.BaseURL+"/oauth/v1/generate?grant_type=client_credentials", nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.cfg.ConsumerKey, c.cfg.ConsumerSecret)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("mpesa oauth: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", fmt.Errorf("mpesa oauth: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   string `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("mpesa oauth: decode: %w", err)
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("mpesa oauth: empty access token")
	}

	ttl := time.Hour
	if secs, err := strconv.Atoi(out.ExpiresIn); err == nil && secs > 0 {
		ttl = time.Duration(secs) * time.Second
	}
	c.token = out.AccessToken
	c.tokenExpiry = c.now().Add(ttl - tokenSkew)
	return c.token, nil
}

// STKPush starts a customer-approved collection on the payer's phone.
func (c *Client) STKPush(ctx context.Context, in STKPushRequest) (*STKPushResponse, error) {
	if !in.Amount.IsPositive() || !in.Amount.Equal(in.Amount.Truncate(0)) {
		return nil, apperror.ErrInvalidAmount("M-Pesa amounts must be positive whole shillings")
	}
	if in.PhoneNumber == "" {
		return nil, apperror.Validation("phone number is required for M-Pesa")
	}

	var out STKPushResponse
	err := c.execute(ctx, func(ctx context.Context) error {
		tok, err := c.accessToken(ctx)
		if err != nil {
			return err
		}

		ts := c.now().In(eat).Format(transactionDate)
		body := stkPushBody{
			BusinessShortCode: c.cfg.Shortcode,
			Password:          base64.StdEncoding.EncodeToString([]byte(c.cfg.Shortcode + c.cfg.Passkey + ts)),
			Timestamp:         ts,
			TransactionType:   "CustomerPayBillOnline",
			Amount:            in.Amount.IntPart(),
			PartyA:            in.PhoneNumber,
			PartyB:            c.cfg.Shortcode,
			PhoneNumber:       in.PhoneNumber,
			CallBackURL:       c.cfg.CallbackURL,
			AccountReference:  in.AccountReference,
			TransactionDesc:   in.Description,
		}
		if body.TransactionDesc == "" {
			body.TransactionDesc = "Payment for " + in.AccountReference
		}

		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			c.cfg.BaseURL+"/mpesa/stkpush/v1/processrequest", bytes.NewReader(raw))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+tok)

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("mpesa stk push: %w", err)
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		if err != nil {
			return fmt.Errorf("mpesa stk push: read: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("mpesa stk push: status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
		}
		if err := json.Unmarshal(respBody, &out); err != nil {
			return fmt.Errorf("mpesa stk push: decode: %w", err)
		}
		if out.ResponseCode != "0" {
			return fmt.Errorf("mpesa stk push rejected: %s %s", out.ResponseCode, out.ResponseDescription)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Initiate implements ports.PaymentProvider with an STK push whose account
// reference is the organization id.
func (c *Client) Initiate(ctx context.Context, req domain.InitiateRequest) (*domain.InitiateResult, error) {
	if req.Currency != "" && !strings.EqualFold(req.Currency, Currency) {
		return nil, apperror.Validation("M-Pesa only collects " + Currency)
	}
	resp, err := c.STKPush(ctx, STKPushRequest{
		PhoneNumber:      req.PhoneNumber,
		Amount:           req.Amount,
		AccountReference: req.OrganizationID,
		Description:      req.Description,
	})
	if err != nil {
		return nil, err
	}
	c.log.Info().
		Str("org_id", req.OrganizationID).
		Str("checkout_request_id", resp.CheckoutRequestID).
		Msg("mpesa stk push sent")
	return &domain.InitiateResult{
		Provider:    domain.ProviderMpesa,
		ProviderRef: resp.CheckoutRequestID,
		Status:      "PENDING",
		Message:     resp.CustomerMessage,
	}, nil
}
