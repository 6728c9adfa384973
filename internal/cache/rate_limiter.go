package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// token bucket refilled continuously; returns {allowed, tokens_left, retry_after_ms}
var tokenBucketScript = redis.NewScript(`
	local key = KEYS[1]
	local now_ms = tonumber(ARGV[1])
	local capacity = tonumber(ARGV[2])
	local refill_per_ms = tonumber(ARGV[3])
	local ttl_seconds = tonumber(ARGV[4])

	local state = redis.call('HMGET', key, 'tokens', 'ts')
	local tokens = tonumber(state[1])
	local ts = tonumber(state[2])
	if tokens == nil or ts == nil then
		tokens = capacity
		ts = now_ms
	end

	local elapsed = math.max(0, now_ms - ts)
	tokens = math.min(capacity, tokens + elapsed * refill_per_ms)

	local allowed = 0
	local retry_after = 0
	if tokens >= 1 then
		allowed = 1
		tokens = tokens - 1
	else
		retry_after = math.ceil((1 - tokens) / refill_per_ms)
	end

	redis.call('HSET', key, 'tokens', tokens, 'ts', now_ms)
	redis.call('EXPIRE', key, ttl_seconds)

	return {allowed, math.floor(tokens), retry_after}
`)

type RateLimitResult struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

type RateLimiter interface {
	Allow(ctx context.Context, key string) (RateLimitResult, error)
	Limit() int
}

type RedisRateLimiter struct {
	client   *redis.Client
	capacity int
	window   time.Duration
}

// NewRateLimiter allows `perWindow` requests per key within `window`, with bursts up to the same amount.
func NewRateLimiter(client *redis.Client, perWindow int, window time.Duration) RateLimiter {
	if perWindow <= 0 {
		perWindow = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RedisRateLimiter{
		client:   client,
		capacity: perWindow,
		window:   window,
	}
}

func (l *RedisRateLimiter) Limit() int {
	return l.capacity
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (RateLimitResult, error) {
	refillPerMs := float64(l.capacity) / float64(l.window.Milliseconds())
	ttl := int64(l.window/time.Second) * 2
	if ttl < 1 {
		ttl = 1
	}

	res, err := tokenBucketScript.Run(ctx, l.client, []string{"ratelimit:" + key},
		time.Now().UnixMilli(), l.capacity, refillPerMs, ttl,
	).Int64Slice()
	if err != nil {
		return RateLimitResult{}, err
	}
	if len(res) != 3 {
		return RateLimitResult{}, fmt.Errorf("unexpected rate limit result: %v", res)
	}

	return RateLimitResult{
		Allowed:    res[0] == 1,
		Remaining:  int(res[1]),
		RetryAfter: time.Duration(res[2]) * time.Millisecond,
	}, nil
}
