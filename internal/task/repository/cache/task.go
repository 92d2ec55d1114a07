package cache

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"smart-task-dashboard/internal/model"
)

// GetTasks returns the cached list. A miss reports ok=false with no error.
func (c *implCache) GetTasks(ctx context.Context) ([]model.Task, bool, error) {
	b, err := c.rdb.Get(ctx, keyList).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	tasks, err := decodeTasks(b)
	if err != nil {
		return nil, false, err
	}
	return tasks, true, nil
}

// SetTasks stores the full list with the configured TTL.
func (c *implCache) SetTasks(ctx context.Context, tasks []model.Task) error {
	b, err := encodeTasks(tasks)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyList, b, c.ttl).Err()
}

// Invalidate drops the cached list.
func (c *implCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, keyList).Err()
}

func encodeTasks(tasks []model.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []model.Task{}
	}
	return json.Marshal(tasks)
}

func decodeTasks(b []byte) ([]model.Task, error) {
	tasks := make([]model.Task, 0)
	if err := json.Unmarshal(b, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
