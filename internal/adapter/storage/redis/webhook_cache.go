package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fincore/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// DefaultWebhookCacheTTL is used when NewWebhookCache is given no TTL.
const DefaultWebhookCacheTTL = 24 * time.Hour

// WebhookCache implements ports.WebhookResultCache. Keys are
// domain.IntentKey values; entries only hold completed outcomes.
type WebhookCache struct {
	client goredis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewWebhookCache creates a Redis-backed webhook outcome cache.
func NewWebhookCache(client goredis.UniversalClient, ttl time.Duration) *WebhookCache {
	if ttl <= 0 {
		ttl = DefaultWebhookCacheTTL
	}
	return &WebhookCache{
		client: client,
		prefix: keyPrefix + "webhook:",
		ttl:    ttl,
	}
}

// Get returns nil, nil on a miss.
func (c *WebhookCache) Get(ctx context.Context, key string) (*domain.WebhookOutcome, error) {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis webhook cache get: %w", err)
	}

	var outcome domain.WebhookOutcome
	if err := json.Unmarshal(raw, &outcome); err != nil {
		return nil, fmt.Errorf("decode cached webhook outcome: %w", err)
	}
	return &outcome, nil
}

func (c *WebhookCache) Set(ctx context.Context, key string, outcome *domain.WebhookOutcome) error {
	raw, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("encode webhook outcome: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis webhook cache set: %w", err)
	}
	return nil
}
