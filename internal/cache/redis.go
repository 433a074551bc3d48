package cache

import (
	"log"

	"github.com/go-redis/redis/v8"

	"github.com/studioflow/studio-scheduler/internal/config"
)

func NewRedisClient(cfg *config.Config) *redis.Client {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}

	return redis.NewClient(opts)
}
