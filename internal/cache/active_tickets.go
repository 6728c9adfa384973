package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"theatre-booking/internal/model"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// versionTTL outlives any listing so a fill started before an invalidation still sees the bump.
const versionTTL = 24 * time.Hour

// stores the listing only if no invalidation bumped the version since it was read
var setIfVersionScript = redis.NewScript(`
	local current = tonumber(redis.call('GET', KEYS[2]) or '0')
	if current ~= tonumber(ARGV[1]) then
		return 0
	end
	redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
	return 1
`)

// ActiveTicketCache holds the public ticket list of a schedule.
type ActiveTicketCache interface {
	// Get returns ok=false on a miss, with the version to hand back to Set.
	Get(ctx context.Context, scheduleID uuid.UUID) ([]model.PublicTicket, int64, bool, error)
	// Set is a no-op when Invalidate ran after the Get that returned version.
	Set(ctx context.Context, scheduleID uuid.UUID, version int64, tickets []model.PublicTicket) error
	Invalidate(ctx context.Context, scheduleID uuid.UUID) error
}

type RedisActiveTicketCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewActiveTicketCache(client *redis.Client, ttl time.Duration) ActiveTicketCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisActiveTicketCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisActiveTicketCache) key(scheduleID uuid.UUID) string {
	return fmt.Sprintf("schedule:%s:active_tickets", scheduleID)
}

func (c *RedisActiveTicketCache) versionKey(scheduleID uuid.UUID) string {
	return fmt.Sprintf("schedule:%s:active_tickets:version", scheduleID)
}

func (c *RedisActiveTicketCache) Get(ctx context.Context, scheduleID uuid.UUID) ([]model.PublicTicket, int64, bool, error) {
	values, err := c.client.MGet(ctx, c.key(scheduleID), c.versionKey(scheduleID)).Result()
	if err != nil {
		return nil, 0, false, err
	}

	var version int64
	if s, ok := values[1].(string); ok {
		if version, err = strconv.ParseInt(s, 10, 64); err != nil {
			return nil, 0, false, fmt.Errorf("decode active tickets version: %w", err)
		}
	}

	raw, ok := values[0].(string)
	if !ok {
		return nil, version, false, nil
	}

	var tickets []model.PublicTicket
	if err := json.Unmarshal([]byte(raw), &tickets); err != nil {
		return nil, version, false, fmt.Errorf("decode active tickets: %w", err)
	}

	return tickets, version, true, nil
}

func (c *RedisActiveTicketCache) Set(ctx context.Context, scheduleID uuid.UUID, version int64, tickets []model.PublicTicket) error {
	raw, err := json.Marshal(tickets)
	if err != nil {
		return err
	}
	return setIfVersionScript.Run(ctx, c.client,
		[]string{c.key(scheduleID), c.versionKey(scheduleID)},
		version, string(raw), c.ttl.Milliseconds(),
	).Err()
}

// Invalidate drops the listing and bumps the version so in-flight fills are discarded.
func (c *RedisActiveTicketCache) Invalidate(ctx context.Context, scheduleID uuid.UUID) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, c.versionKey(scheduleID))
		pipe.Expire(ctx, c.versionKey(scheduleID), versionTTL)
		pipe.Del(ctx, c.key(scheduleID))
		return nil
	})
	return err
}
