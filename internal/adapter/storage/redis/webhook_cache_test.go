package redis

import (
	"context"
	"testing"
	"time"

	"fincore/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestWebhookCache_SetAndGet(t *testing.T) {
	mr, client := newTestClient(t)
	cache := NewWebhookCache(client, time.Hour)
	ctx := context.Background()
	key := domain.IntentKey("org1", "stripe", "pi_1")

	miss, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, miss)

	invoice := "inv_1"
	outcome := &domain.WebhookOutcome{PaymentIntentID: uuid.New(), PaymentID: "pay_1", InvoiceID: &invoice}
	require.NoError(t, cache.Set(ctx, key, outcome))

	got, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, outcome, got)
	assert.True(t, mr.Exists("fincore:webhook:org1:stripe:pi_1"))
	assert.Equal(t, time.Hour, mr.TTL("fincore:webhook:org1:stripe:pi_1"))
}

func TestWebhookCache_Expires(t *testing.T) {
	mr, client := newTestClient(t)
	cache := NewWebhookCache(client, 0)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", &domain.WebhookOutcome{PaymentID: "pay_1"}))
	assert.Equal(t, DefaultWebhookCacheTTL, mr.TTL("fincore:webhook:k"))

	mr.FastForward(DefaultWebhookCacheTTL + time.Second)

	got, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWebhookCache_CorruptEntry(t *testing.T) {
	mr, client := newTestClient(t)
	cache := NewWebhookCache(client, time.Hour)
	require.NoError(t, mr.Set("fincore:webhook:k", "not json"))

	_, err := cache.Get(context.Background(), "k")
	assert.Error(t, err)
}

func TestWebhookCache_ServerDown(t *testing.T) {
	mr, client := newTestClient(t)
	cache := NewWebhookCache(client, time.Hour)
	mr.Close()

	_, err := cache.Get(context.Background(), "k")
	assert.Error(t, err)
}
