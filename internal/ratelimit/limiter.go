package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/smallbiznis/staffhub/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	keyRequest       = "staffhub:ratelimit:request:%s"
	keyLoginAttempts = "staffhub:ratelimit:login:%s"

	maxLoginAttempts = 5
	loginAttemptsTTL = 15 * time.Minute
)

var ErrTooManyAttempts = errors.New("too_many_attempts")

// RequestLimiter throttles API requests per subject and token requests per
// email. A nil *RequestLimiter allows everything.
type RequestLimiter struct {
	client *redis.Client
	bucket *TokenBucket
}

func NewRequestLimiter(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (*RequestLimiter, error) {
	limitCfg := cfg.RateLimit
	if !limitCfg.Enabled {
		return nil, nil
	}

	addr := strings.TrimSpace(limitCfg.RedisAddr)
	if addr == "" {
		return nil, errors.New("rate limit redis addr is required")
	}
	if limitCfg.Rate <= 0 || limitCfg.Burst <= 0 {
		return nil, errors.New("rate limit rate and burst must be positive")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: strings.TrimSpace(limitCfg.RedisPassword),
		DB:       limitCfg.RedisDB,
	})
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	log.Info("rate limiting enabled",
		zap.String("redis_addr", addr),
		zap.Float64("rate", limitCfg.Rate),
		zap.Int("burst", limitCfg.Burst),
	)
	return newRequestLimiter(client, limitCfg.Rate, limitCfg.Burst), nil
}

func newRequestLimiter(client *redis.Client, rate float64, burst int) *RequestLimiter {
	return &RequestLimiter{
		client: client,
		bucket: NewTokenBucket(client, rate, burst),
	}
}

// Allow takes one token from the subject's bucket.
func (l *RequestLimiter) Allow(ctx context.Context, subject string) (*RateLimitResult, error) {
	if l == nil {
		return &RateLimitResult{Allowed: true}, nil
	}
	return l.bucket.Take(ctx, fmt.Sprintf(keyRequest, subject))
}

// CheckLogin counts a token request for email and fails once the window
// holds too many.
func (l *RequestLimiter) CheckLogin(ctx context.Context, email string) error {
	if l == nil {
		return nil
	}
	key := fmt.Sprintf(keyLoginAttempts, email)

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, loginAttemptsTTL)
		return nil
	})
	if err != nil {
		return err
	}
	if incr.Val() > maxLoginAttempts {
		return ErrTooManyAttempts
	}
	return nil
}

// ResetLogin clears the counter after a successful token request.
func (l *RequestLimiter) ResetLogin(ctx context.Context, email string) error {
	if l == nil {
		return nil
	}
	return l.client.Del(ctx, fmt.Sprintf(keyLoginAttempts, email)).Err()
}
