package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFraudCounter_CountsWithinWindow(t *testing.T) {
	_, client := newTestClient(t)
	counter := NewFraudCounter(client, time.Hour)
	ctx := context.Background()
	now := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

	require.NoError(t, counter.Record(ctx, "org1", "pay_1", now.Add(-50*time.Minute)))
	require.NoError(t, counter.Record(ctx, "org1", "pay_2", now.Add(-10*time.Minute)))
	require.NoError(t, counter.Record(ctx, "org2", "pay_3", now.Add(-5*time.Minute)))

	n, err := counter.CountSince(ctx, "org1", now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = counter.CountSince(ctx, "org1", now.Add(-30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestFraudCounter_SameEventCountedOnce(t *testing.T) {
	_, client := newTestClient(t)
	counter := NewFraudCounter(client, time.Hour)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, counter.Record(ctx, "org1", "pay_1", now))
	require.NoError(t, counter.Record(ctx, "org1", "pay_1", now))

	n, err := counter.CountSince(ctx, "org1", now.Add(-time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestFraudCounter_PrunesOldEvents(t *testing.T) {
	mr, client := newTestClient(t)
	counter := NewFraudCounter(client, time.Hour)
	ctx := context.Background()
	now := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

	require.NoError(t, counter.Record(ctx, "org1", "old", now.Add(-2*time.Hour)))
	require.NoError(t, counter.Record(ctx, "org1", "new", now))

	members, err := mr.ZMembers("fincore:fraud:events:org1")
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, members)
	assert.Equal(t, time.Hour, mr.TTL("fincore:fraud:events:org1"))
}

func TestFraudCounter_EmptyOrganization(t *testing.T) {
	_, client := newTestClient(t)
	counter := NewFraudCounter(client, 0)

	n, err := counter.CountSince(context.Background(), "nobody", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n)
}
