package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	redisStore "fincore/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitRouter(store RateLimitStore, limit int64) *gin.Engine {
	r := gin.New()
	rule := RateLimitRule{Limit: limit, Window: time.Minute}
	r.POST("/webhooks/:provider", RateLimiter(store, rule, ByProviderAndIP, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func newRedisStore(t *testing.T) *redisStore.RateLimitStore {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisStore.NewRateLimitStore(client)
}

func post(router *gin.Engine, path, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.RemoteAddr = ip + ":40000"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	router := setupRateLimitRouter(newRedisStore(t), 3)

	for i := 0; i < 3; i++ {
		w := post(router, "/webhooks/stripe", "10.0.0.1")
		assert.Equal(t, http.StatusOK, w.Code, "request %d should succeed", i+1)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	router := setupRateLimitRouter(newRedisStore(t), 1)

	assert.Equal(t, http.StatusOK, post(router, "/webhooks/stripe", "10.0.0.1").Code)

	w := post(router, "/webhooks/stripe", "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, "RATE_001", decodeError(t, w).ErrorCode)
}

func TestRateLimiter_KeysByProviderAndIP(t *testing.T) {
	router := setupRateLimitRouter(newRedisStore(t), 1)

	assert.Equal(t, http.StatusOK, post(router, "/webhooks/stripe", "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, post(router, "/webhooks/mpesa", "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, post(router, "/webhooks/stripe", "10.0.0.2").Code)
}

type failingStore struct{}

func (failingStore) Allow(context.Context, string, int64, time.Duration) (*redisStore.RateLimitResult, error) {
	return nil, errors.New("redis down")
}

func TestRateLimiter_StoreErrorAllows(t *testing.T) {
	router := setupRateLimitRouter(failingStore{}, 1)

	w := post(router, "/webhooks/stripe", "10.0.0.1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestByOrganization(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "10.0.0.9:1234"

	assert.Equal(t, "api:ip:10.0.0.9", ByOrganization(c))

	c.Set(CtxOrganizationID, "org1")
	assert.Equal(t, "api:org1", ByOrganization(c))
}
