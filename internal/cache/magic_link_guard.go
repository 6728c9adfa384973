package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// MagicLinkGuard makes a magic link usable once.
type MagicLinkGuard interface {
	// Consume returns false if the token id was already used.
	Consume(ctx context.Context, tokenID string, ttl time.Duration) (bool, error)
}

type RedisMagicLinkGuard struct {
	client *redis.Client
}

func NewMagicLinkGuard(client *redis.Client) MagicLinkGuard {
	return &RedisMagicLinkGuard{client: client}
}

func (g *RedisMagicLinkGuard) Consume(ctx context.Context, tokenID string, ttl time.Duration) (bool, error) {
	// keep the marker at least as long as the link itself is valid
	if ttl < time.Second {
		ttl = time.Second
	}
	return g.client.SetNX(ctx, fmt.Sprintf("magic_link:%s:used", tokenID), 1, ttl).Result()
}
