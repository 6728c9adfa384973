package cache_test

import (
	"context"
	"testing"
	"time"

	"theatre-booking/internal/cache"
	"theatre-booking/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveTicketCache(t *testing.T) {
	ctx := context.Background()
	c := cache.NewActiveTicketCache(getTestRdb(t), time.Minute)
	scheduleID := uuid.New()

	_, version, ok, err := c.Get(ctx, scheduleID)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, version)

	listing := []model.PublicTicket{{ID: uuid.New(), Name: "Standard", Description: "Stalls", Price: 12.5}}
	require.NoError(t, c.Set(ctx, scheduleID, version, listing))

	got, _, ok, err := c.Get(ctx, scheduleID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, listing, got)

	require.NoError(t, c.Invalidate(ctx, scheduleID))

	_, version, ok, err = c.Get(ctx, scheduleID)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int64(1), version)
}

func TestActiveTicketCache_EmptyListingIsAHit(t *testing.T) {
	ctx := context.Background()
	c := cache.NewActiveTicketCache(getTestRdb(t), time.Minute)
	scheduleID := uuid.New()

	require.NoError(t, c.Set(ctx, scheduleID, 0, []model.PublicTicket{}))

	got, _, ok, err := c.Get(ctx, scheduleID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestActiveTicketCache_FillAfterInvalidateIsDropped(t *testing.T) {
	ctx := context.Background()
	c := cache.NewActiveTicketCache(getTestRdb(t), time.Minute)
	scheduleID := uuid.New()
	stale := []model.PublicTicket{{ID: uuid.New(), Name: "Now inactive"}}

	// reader misses and loads the listing from the database
	_, version, ok, err := c.Get(ctx, scheduleID)
	require.NoError(t, err)
	require.False(t, ok)

	// a status change commits and invalidates before the reader writes back
	require.NoError(t, c.Invalidate(ctx, scheduleID))
	require.NoError(t, c.Set(ctx, scheduleID, version, stale))

	_, current, ok, err := c.Get(ctx, scheduleID)
	require.NoError(t, err)
	assert.False(t, ok)

	fresh := []model.PublicTicket{}
	require.NoError(t, c.Set(ctx, scheduleID, current, fresh))

	got, _, ok, err := c.Get(ctx, scheduleID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestMagicLinkGuard_Consume(t *testing.T) {
	ctx := context.Background()
	guard := cache.NewMagicLinkGuard(getTestRdb(t))
	tokenID := uuid.NewString()

	first, err := guard.Consume(ctx, tokenID, time.Minute)
	require.NoError(t, err)
	assert.True(t, first)

	second, err := guard.Consume(ctx, tokenID, time.Minute)
	require.NoError(t, err)
	assert.False(t, second)
}

func TestRateLimiter_Allow(t *testing.T) {
	ctx := context.Background()
	limiter := cache.NewRateLimiter(getTestRdb(t), 3, time.Minute)

	for i := 0; i < 3; i++ {
		res, err := limiter.Allow(ctx, "test:1.2.3.4")
		require.NoError(t, err)
		assert.True(t, res.Allowed, "request %d", i+1)
	}

	res, err := limiter.Allow(ctx, "test:1.2.3.4")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Positive(t, res.RetryAfter)

	other, err := limiter.Allow(ctx, "test:5.6.7.8")
	require.NoError(t, err)
	assert.True(t, other.Allowed)
	assert.Equal(t, 3, limiter.Limit())
}
