package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"fincore/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// FraudCounter implements ports.FraudEventCounter with one sorted set per
// organization. Members are event IDs scored by their Unix millisecond
// timestamp, so recording the same event twice counts it once.
type FraudCounter struct {
	client goredis.UniversalClient
	prefix string
	window time.Duration
}

// NewFraudCounter creates a counter that retains events for window.
func NewFraudCounter(client goredis.UniversalClient, window time.Duration) *FraudCounter {
	if window <= 0 {
		window = domain.FrequencyWindow
	}
	return &FraudCounter{
		client: client,
		prefix: keyPrefix + "fraud:events:",
		window: window,
	}
}

// Record adds the event and prunes entries older than the window.
func (c *FraudCounter) Record(ctx context.Context, org, eventID string, at time.Time) error {
	key := c.prefix + org
	cutoff := at.Add(-c.window).UnixMilli()

	_, err := c.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.ZAdd(ctx, key, goredis.Z{Score: float64(at.UnixMilli()), Member: eventID})
		pipe.ZRemRangeByScore(ctx, key, "-inf", "("+strconv.FormatInt(cutoff, 10))
		pipe.Expire(ctx, key, c.window)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis record fraud event: %w", err)
	}
	return nil
}

// CountSince counts events recorded at or after since.
func (c *FraudCounter) CountSince(ctx context.Context, org string, since time.Time) (int64, error) {
	n, err := c.client.ZCount(ctx, c.prefix+org, strconv.FormatInt(since.UnixMilli(), 10), "+inf").Result()
	if err != nil {
		return 0, fmt.Errorf("redis count fraud events: %w", err)
	}
	return n, nil
}
