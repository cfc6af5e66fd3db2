package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// Refill and spend run atomically in redis so concurrent API instances share
// one bucket per key. Tokens travel as a string since redis truncates floats.
var takeToken = redis.NewScript(`
local rate = tonumber(ARGV[1])
local burst = tonumber(ARGV[2])
local ttl_ms = tonumber(ARGV[3])

local clock = redis.call("TIME")
local now = clock[1] * 1000 + math.floor(clock[2] / 1000)

local state = redis.call("HMGET", KEYS[1], "tokens", "ts")
local tokens = tonumber(state[1]) or burst
local last = tonumber(state[2]) or now

tokens = math.min(burst, tokens + math.max(0, now - last) / 1000 * rate)

local granted = 0
if tokens >= 1 then
  granted = 1
  tokens = tokens - 1
end

redis.call("HSET", KEYS[1], "tokens", tostring(tokens), "ts", now)
redis.call("PEXPIRE", KEYS[1], ttl_ms)
return {granted, tostring(tokens), now}
`)

var errNotConfigured = errors.New("rate limiter not configured")

// TokenBucket refills Rate tokens per second up to Burst.
type TokenBucket struct {
	client redis.Scripter
	Rate   float64
	Burst  int
}

type RateLimitResult struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

func NewTokenBucket(client redis.Scripter, rate float64, burst int) *TokenBucket {
	if client == nil {
		return nil
	}
	return &TokenBucket{client: client, Rate: rate, Burst: burst}
}

func (b *TokenBucket) Take(ctx context.Context, key string) (*RateLimitResult, error) {
	switch {
	case b == nil || b.client == nil:
		return nil, errNotConfigured
	case key == "":
		return nil, errors.New("rate limit key is empty")
	case b.Rate <= 0 || b.Burst <= 0:
		return nil, fmt.Errorf("invalid bucket: rate=%v burst=%d", b.Rate, b.Burst)
	}

	ttl := b.idleTTL()
	reply, err := takeToken.Run(ctx, b.client, []string{key}, b.Rate, b.Burst, ttl.Milliseconds()).Slice()
	if err != nil {
		return nil, fmt.Errorf("token bucket script: %w", err)
	}
	if len(reply) != 3 {
		return nil, fmt.Errorf("token bucket script: unexpected reply of length %d", len(reply))
	}

	granted, _ := reply[0].(int64)
	tokens, err := strconv.ParseFloat(fmt.Sprint(reply[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("token bucket script: tokens: %w", err)
	}
	nowMs, _ := reply[2].(int64)
	return b.result(granted == 1, tokens, time.UnixMilli(nowMs)), nil
}

func (b *TokenBucket) result(granted bool, tokens float64, now time.Time) *RateLimitResult {
	res := &RateLimitResult{
		Allowed:   granted,
		Limit:     b.Burst,
		Remaining: int(math.Floor(tokens)),
		ResetTime: now,
	}
	if !granted && tokens < 1 {
		res.RetryAfter = time.Duration((1 - tokens) / b.Rate * float64(time.Second))
		res.ResetTime = now.Add(res.RetryAfter)
	}
	return res
}

// idleTTL keeps a bucket around for twice the time it takes to refill.
func (b *TokenBucket) idleTTL() time.Duration {
	if b.Rate <= 0 || b.Burst <= 0 {
		return time.Second
	}
	seconds := math.Max(1, math.Ceil(float64(b.Burst)/b.Rate*2))
	return time.Duration(seconds) * time.Second
}
