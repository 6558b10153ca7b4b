package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Log       LogConfig       `mapstructure:"log"`
	Stripe    StripeConfig    `mapstructure:"stripe"`
	Mpesa     MpesaConfig     `mapstructure:"mpesa"`
	Breaker   BreakerConfig   `mapstructure:"breaker"`
	Fraud     FraudConfig     `mapstructure:"fraud"`
	EventBus  EventBusConfig  `mapstructure:"eventbus"`
	Ledger    LedgerConfig    `mapstructure:"ledger"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // debug, release, test
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"` // apply embedded schema on startup
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
	// Timeout bounds dial, read and write; a slow Redis degrades to the database path.
	Timeout time.Duration `mapstructure:"timeout"`
	// WebhookCacheTTL bounds how long completed webhook outcomes are replayed from Redis.
	WebhookCacheTTL time.Duration `mapstructure:"webhook_cache_ttl"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// JWTConfig only covers validation; tokens are issued elsewhere.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

type StripeConfig struct {
	SecretKey     string        `mapstructure:"secret_key"`
	WebhookSecret string        `mapstructure:"webhook_secret"`
	Timeout       time.Duration `mapstructure:"timeout"`
	Tolerance     time.Duration `mapstructure:"tolerance"`
}

type MpesaConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	ConsumerKey    string        `mapstructure:"consumer_key"`
	ConsumerSecret string        `mapstructure:"consumer_secret"`
	Passkey        string        `mapstructure:"passkey"`
	Shortcode      string        `mapstructure:"shortcode"`
	CallbackURL    string        `mapstructure:"callback_url"`
	WebhookSecret  string        `mapstructure:"webhook_secret"`
	Timeout        time.Duration `mapstructure:"timeout"`
	Tolerance      time.Duration `mapstructure:"tolerance"`
}

type BreakerConfig struct {
	FailureThreshold int           `mapstructure:"failure_threshold"`
	ResetAfter       time.Duration `mapstructure:"reset_after"`
}

type FraudConfig struct {
	FlagThreshold  int           `mapstructure:"flag_threshold"`
	BlockThreshold int           `mapstructure:"block_threshold"`
	OrgFlagWindow  time.Duration `mapstructure:"org_flag_window"`
	OrgMaxFlagged  int64         `mapstructure:"org_max_flagged"`
}

type EventBusConfig struct {
	Buffer  int `mapstructure:"buffer"`
	Workers int `mapstructure:"workers"`
}

type LedgerConfig struct {
	// SystemActorID is recorded as the creator of webhook-driven payments.
	SystemActorID string `mapstructure:"system_actor_id"`
}

// RateLimitConfig holds fixed-window request limits.
type RateLimitConfig struct {
	WebhookPerMinute int64 `mapstructure:"webhook_per_minute"` // per provider and client IP
	APIPerMinute     int64 `mapstructure:"api_per_minute"`     // per organization
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: FINCORE_.
// Nested keys use underscore: FINCORE_DATABASE_HOST, FINCORE_STRIPE_WEBHOOK_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("FINCORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.shutdown_timeout", "15s")
	v.SetDefault("server.max_body_bytes", 1<<20)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "fincore")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 20)
	v.SetDefault("redis.timeout", "500ms")
	v.SetDefault("redis.webhook_cache_ttl", "24h")

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "fincore")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	v.SetDefault("stripe.secret_key", "")
	v.SetDefault("stripe.webhook_secret", "")
	v.SetDefault("stripe.timeout", "15s")
	v.SetDefault("stripe.tolerance", "5m")

	v.SetDefault("mpesa.base_url", "https://sandbox.safaricom.co.ke")
	v.SetDefault("mpesa.consumer_key", "")
	v.SetDefault("mpesa.consumer_secret", "")
	v.SetDefault("mpesa.passkey", "")
	v.SetDefault("mpesa.shortcode", "")
	v.SetDefault("mpesa.callback_url", "")
	v.SetDefault("mpesa.webhook_secret", "")
	v.SetDefault("mpesa.timeout", "15s")
	v.SetDefault("mpesa.tolerance", "5m")

	v.SetDefault("breaker.failure_threshold", 5)
	v.SetDefault("breaker.reset_after", "30s")

	v.SetDefault("fraud.flag_threshold", 60)
	v.SetDefault("fraud.block_threshold", 80)
	v.SetDefault("fraud.org_flag_window", "24h")
	v.SetDefault("fraud.org_max_flagged", 5)

	v.SetDefault("eventbus.buffer", 256)
	v.SetDefault("eventbus.workers", 4)

	v.SetDefault("ledger.system_actor_id", "system")

	v.SetDefault("ratelimit.webhook_per_minute", 600)
	v.SetDefault("ratelimit.api_per_minute", 300)
}
