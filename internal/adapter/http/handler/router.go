package handler

import (
	"time"

	"fincore/internal/adapter/http/middleware"
	"fincore/internal/adapter/metrics"
	"fincore/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Orchestrator   ports.PaymentOrchestrator
	LedgerSvc      ports.LedgerService
	FraudSvc       ports.FraudService
	Breaker        ports.CircuitBreaker
	TokenSvc       ports.TokenService
	RateLimitStore middleware.RateLimitStore // nil = rate limiting disabled
	RateLimits     RateLimits
	Metrics        *metrics.Collector // nil = no /metrics endpoint
	HealthCheckers []ports.HealthChecker
	OpenAPI        []byte
	MaxBodyBytes   int64
	Logger         zerolog.Logger
}

// RateLimits holds per-minute request allowances. Zero disables a group.
type RateLimits struct {
	WebhookPerMinute int64
	APIPerMinute     int64
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
	}
	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 1 << 20
	}
	r.Use(middleware.MaxBodySize(maxBody))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.Metrics != nil {
		r.GET("/metrics", deps.Metrics.Handler())
	}

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec(deps.OpenAPI))
	}

	rl := func(perMinute int64, key middleware.KeyFunc) gin.HandlerFunc {
		if deps.RateLimitStore == nil || perMinute <= 0 {
			return func(c *gin.Context) { c.Next() }
		}
		rule := middleware.RateLimitRule{Limit: perMinute, Window: time.Minute}
		return middleware.RateLimiter(deps.RateLimitStore, rule, key, deps.Logger)
	}

	// --- Provider callbacks (signature-verified, no bearer auth) ---
	webhookHandler := NewWebhookHandler(deps.Orchestrator)
	r.POST("/webhooks/:provider", rl(deps.RateLimits.WebhookPerMinute, middleware.ByProviderAndIP), webhookHandler.Receive)

	// --- Bearer-authenticated API ---
	v1 := r.Group("/api/v1",
		middleware.BearerAuth(deps.TokenSvc, deps.Logger),
		rl(deps.RateLimits.APIPerMinute, middleware.ByOrganization),
	)

	ledgerHandler := NewLedgerHandler(deps.LedgerSvc)
	ledger := v1.Group("/ledger")
	{
		ledger.POST("/accounts", ledgerHandler.CreateAccount)
		ledger.GET("/accounts", ledgerHandler.ListAccounts)
		ledger.POST("/accounts/bootstrap", ledgerHandler.BootstrapAccounts)
		ledger.POST("/transactions", ledgerHandler.PostTransaction)
		ledger.GET("/transactions", ledgerHandler.ListTransactions)
		ledger.GET("/transactions/:id", ledgerHandler.GetTransaction)
		ledger.GET("/balances", ledgerHandler.GetBalances)
		ledger.GET("/verify", ledgerHandler.VerifyChain)
	}

	fraudHandler := NewFraudHandler(deps.FraudSvc)
	fraud := v1.Group("/fraud")
	{
		fraud.GET("/signals/:entityType/:entityId", fraudHandler.GetSignal)
		fraud.GET("/flagged", fraudHandler.ListFlagged)
		fraud.GET("/organization/block", fraudHandler.OrganizationBlock)
	}

	paymentHandler := NewPaymentHandler(deps.Orchestrator)
	v1.POST("/payments/:provider/initiate", paymentHandler.Initiate)

	v1.GET("/breakers", ListBreakers(deps.Breaker))

	return r
}
