package db

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

// SnapshotKey holds the entire current article set as one JSON blob. The
// set is always replaced wholesale, never diffed.
const SnapshotKey = "newsdash:snapshot:articles"

func ConnectRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		fmt.Println("REDIS_URL environment variable is not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(Ctx).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

func SetSnapshot(data string, ttl time.Duration) error {
	return Redis.Set(Ctx, SnapshotKey, data, ttl).Err()
}

// GetSnapshot returns redis.Nil when the cache is cold or expired.
func GetSnapshot() (string, error) {
	return Redis.Get(Ctx, SnapshotKey).Result()
}
