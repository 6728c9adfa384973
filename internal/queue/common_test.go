package queue_test

import (
	"log"
	"os"
	"testing"

	"theatre-booking/internal/testutil"

	"github.com/redis/go-redis/v9"
)

// the cache package flushes its own database
const queueTestRedisDB = 2

var testRdb *redis.Client

func TestMain(m *testing.M) {
	rdb, cleanup, err := testutil.SetupRedisDB(queueTestRedisDB)
	if err != nil {
		log.Printf("Skipping redis stream tests, test redis unavailable: %v", err)
		os.Exit(m.Run())
	}
	testRdb = rdb

	code := m.Run()
	cleanup()
	os.Exit(code)
}

func getTestRdb(t *testing.T) *redis.Client {
	t.Helper()
	if testRdb == nil {
		t.Skip("test redis not available")
	}
	return testRdb
}
