package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fincore/config"
	"fincore/docs"
	"fincore/internal/adapter/eventbus"
	httpHandler "fincore/internal/adapter/http/handler"
	"fincore/internal/adapter/metrics"
	"fincore/internal/adapter/provider/mpesa"
	"fincore/internal/adapter/provider/stripe"
	pgStorage "fincore/internal/adapter/storage/postgres"
	redisStorage "fincore/internal/adapter/storage/redis"
	"fincore/internal/core/ports"
	"fincore/internal/service"
	"fincore/migrations"
	"fincore/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting fincore")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// PostgreSQL
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := pgStorage.Migrate(ctx, pool, migrations.Files, log); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

	// Redis
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// Repositories
	accountRepo := pgStorage.NewAccountRepo(pool)
	ledgerRepo := pgStorage.NewLedgerRepo(pool)
	intentRepo := pgStorage.NewIntentRepo(pool)
	fraudRepo := pgStorage.NewFraudSignalRepo(pool)
	paymentRepo := pgStorage.NewPaymentRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Redis stores
	webhookCache := redisStorage.NewWebhookCache(rdb, cfg.Redis.WebhookCacheTTL)
	fraudCounter := redisStorage.NewFraudCounter(rdb, 0)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Metrics and circuit breaker
	collector := metrics.NewCollector()
	breaker := service.NewCircuitBreakerService(collector, logger.Component(log, "breaker"))
	breakerOpts := ports.BreakerOptions{
		FailureThreshold: cfg.Breaker.FailureThreshold,
		ResetAfter:       cfg.Breaker.ResetAfter,
	}

	// Event bus
	bus := eventbus.New(cfg.EventBus.Buffer, cfg.EventBus.Workers, logger.Component(log, "eventbus"))
	collector.RegisterEventBus(bus.Dropped)

	// Core services
	ledgerSvc := service.NewLedgerService(ledgerRepo, accountRepo, transactor, bus, logger.Component(log, "ledger"))
	fraudSvc := service.NewFraudService(fraudRepo, intentRepo, fraudCounter, service.FraudPolicy{
		FlagThreshold:  cfg.Fraud.FlagThreshold,
		BlockThreshold: cfg.Fraud.BlockThreshold,
		OrgFlagWindow:  cfg.Fraud.OrgFlagWindow,
		OrgMaxFlagged:  cfg.Fraud.OrgMaxFlagged,
	}, logger.Component(log, "fraud"))
	auditSvc := service.NewAuditService(auditRepo, logger.Component(log, "audit"))

	fraudSvc.Subscribe(bus)
	auditSvc.Subscribe(bus)
	bus.Start(ctx)

	// Payment providers
	stripeClient := stripe.NewClient(stripe.Config{
		SecretKey: cfg.Stripe.SecretKey,
		Timeout:   cfg.Stripe.Timeout,
		Breaker:   breakerOpts,
	}, breaker, logger.Component(log, "stripe"))
	mpesaClient := mpesa.NewClient(mpesa.Config{
		BaseURL:        cfg.Mpesa.BaseURL,
		ConsumerKey:    cfg.Mpesa.ConsumerKey,
		ConsumerSecret: cfg.Mpesa.ConsumerSecret,
		Passkey:        cfg.Mpesa.Passkey,
		Shortcode:      cfg.Mpesa.Shortcode,
		CallbackURL:    cfg.Mpesa.CallbackURL,
		Timeout:        cfg.Mpesa.Timeout,
		Breaker:        breakerOpts,
	}, breaker, logger.Component(log, "mpesa"))

	orchestrator := service.NewOrchestratorService(service.OrchestratorDeps{
		Adapters: []ports.WebhookAdapter{
			stripe.NewWebhookAdapter(cfg.Stripe.WebhookSecret, cfg.Stripe.Tolerance),
			mpesa.NewWebhookAdapter(cfg.Mpesa.WebhookSecret, cfg.Mpesa.Tolerance),
		},
		Providers:     []ports.PaymentProvider{stripeClient, mpesaClient},
		IntentRepo:    intentRepo,
		Cache:         webhookCache,
		Payments:      paymentRepo,
		Accounts:      ledgerSvc,
		Ledger:        ledgerSvc,
		Events:        bus,
		SystemActorID: cfg.Ledger.SystemActorID,
	}, logger.Component(log, "orchestrator"))

	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Orchestrator:   orchestrator,
		LedgerSvc:      ledgerSvc,
		FraudSvc:       fraudSvc,
		Breaker:        breaker,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		RateLimits: httpHandler.RateLimits{
			WebhookPerMinute: cfg.RateLimit.WebhookPerMinute,
			APIPerMinute:     cfg.RateLimit.APIPerMinute,
		},
		Metrics:        collector,
		HealthCheckers: []ports.HealthChecker{pgStorage.NewHealthCheck(pool), redisStorage.NewHealthCheck(rdb)},
		OpenAPI:        docs.OpenAPI,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		Logger:         log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	// In-flight handlers have returned; drain queued events before closing stores.
	bus.Close()

	log.Info().Msg("Server exited")
}
