package testutil

import (
	"context"
	"fmt"
	"log"

	"theatre-booking/config"
	"theatre-booking/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// SetupDB connects to the test Postgres from LoadTestConfig and applies migrations.
func SetupDB() (*pgxpool.Pool, func(), error) {
	cfg := config.LoadTestConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	if err := database.Migrate(context.Background(), pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to migrate test database: %w", err)
	}

	log.Println("Test database connected successfully")

	cleanup := func() {
		pool.Close()
		log.Println("Test database closed")
	}
	return pool, cleanup, nil
}

// SetupRedisOnly is for tests that only need Redis (cache, queue).
func SetupRedisOnly() (*redis.Client, func(), error) {
	return SetupRedisDB(config.LoadTestConfig().Redis.DB)
}

// SetupRedisDB selects a logical database so packages running in parallel
// don't flush each other's keys.
func SetupRedisDB(db int) (*redis.Client, func(), error) {
	cfg := config.LoadTestConfig()
	cfg.Redis.DB = db
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize redis: %w", err)
	}
	cleanup := func() { rdb.Close() }
	return rdb, cleanup, nil
}

// Truncate empties every domain table; users cascade to the rest.
func Truncate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, "TRUNCATE users, refresh_tokens, theatres, auditoriums, shows, schedules, tickets CASCADE")
	return err
}
