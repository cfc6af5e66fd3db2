package ratelimit

import (
	"context"
	"testing"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/smallbiznis/staffhub/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap/zaptest"
)

func TestIdleTTL(t *testing.T) {
	assert.Equal(t, time.Second, (&TokenBucket{Rate: 0, Burst: 10}).idleTTL())
	assert.Equal(t, 4*time.Second, (&TokenBucket{Rate: 10, Burst: 20}).idleTTL())
	assert.Equal(t, time.Second, (&TokenBucket{Rate: 1000, Burst: 1}).idleTTL())
}

func TestBucketResult(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)

	allowed := (&TokenBucket{Rate: 10, Burst: 5}).result(true, 4.5, now)
	assert.True(t, allowed.Allowed)
	assert.Equal(t, 4, allowed.Remaining)
	assert.Equal(t, 5, allowed.Limit)
	assert.Zero(t, allowed.RetryAfter)
	assert.Equal(t, now, allowed.ResetTime)

	denied := (&TokenBucket{Rate: 2, Burst: 5}).result(false, 0.5, now)
	assert.False(t, denied.Allowed)
	assert.Equal(t, 250*time.Millisecond, denied.RetryAfter)
	assert.Equal(t, now.Add(250*time.Millisecond), denied.ResetTime)
}

func TestTakeRejectsBadInput(t *testing.T) {
	var nilBucket *TokenBucket
	_, err := nilBucket.Take(context.Background(), "k")
	assert.ErrorIs(t, err, errNotConfigured)

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() { _ = client.Close() })
	_, err = NewTokenBucket(client, 1, 1).Take(context.Background(), "")
	assert.Error(t, err)
	_, err = NewTokenBucket(client, 0, 1).Take(context.Background(), "k")
	assert.Error(t, err)
}

func TestDisabledLimiterAllowsEverything(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	limiter, err := NewRequestLimiter(lc, config.Config{}, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Nil(t, limiter)

	res, err := limiter.Allow(context.Background(), "user:1")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.NoError(t, limiter.CheckLogin(context.Background(), "a@example.com"))
	assert.NoError(t, limiter.ResetLogin(context.Background(), "a@example.com"))
}

func TestLimiterRejectsInvalidConfig(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	_, err := NewRequestLimiter(lc, config.Config{RateLimit: config.RateLimitConfig{Enabled: true, RedisAddr: "localhost:6379"}}, zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestUnreachableRedisSurfacesError(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 200 * time.Millisecond})
	t.Cleanup(func() { _ = client.Close() })

	_, err := newRequestLimiter(client, 1, 1).Allow(context.Background(), "user:1")
	assert.Error(t, err)
}
