package cache

import (
	"time"

	"github.com/redis/go-redis/v9"

	"smart-task-dashboard/internal/task/repository"
)

const (
	keyList    = "tasks:list"
	defaultTTL = 5 * time.Minute
)

type implCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New returns a Redis-backed list cache. A non-positive ttl falls back to five minutes.
func New(rdb *redis.Client, ttl time.Duration) repository.Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &implCache{rdb: rdb, ttl: ttl}
}
