package cache

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"smart-task-dashboard/internal/model"
	"smart-task-dashboard/pkg/datemath"
)

func TestEncodeDecodeTasks(t *testing.T) {
	due := datemath.Date{Year: 2024, Month: time.May, Day: 4}
	tasks := []model.Task{
		{
			ID:               "a",
			Text:             "Clean house this weekend",
			Category:         model.CategoryHome,
			Priority:         model.PriorityMedium,
			SuggestedDueDate: &due,
			Keywords:         []string{"clean", "house", "this"},
			CreatedAt:        time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:        "b",
			Text:      "Go to bed",
			Completed: true,
			Category:  model.CategoryGeneral,
			Priority:  model.PriorityMedium,
			Keywords:  []string{},
			CreatedAt: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
		},
	}

	b, err := encodeTasks(tasks)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := decodeTasks(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got, tasks) {
		t.Errorf("decoded = %+v, want %+v", got, tasks)
	}

	empty, _ := encodeTasks(nil)
	if string(empty) != "[]" {
		t.Errorf("nil list should encode as [], got %s", empty)
	}

	if _, err := decodeTasks([]byte("{not json")); err == nil {
		t.Errorf("expected decode error")
	}
}

func TestCacheUnreachable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	c := New(rdb, 0)
	ctx := context.Background()

	if _, ok, err := c.GetTasks(ctx); err == nil || ok {
		t.Errorf("expected error on unreachable redis, got ok=%v err=%v", ok, err)
	}
	if err := c.SetTasks(ctx, nil); err == nil {
		t.Errorf("expected error on unreachable redis")
	}
	if err := c.Invalidate(ctx); err == nil {
		t.Errorf("expected error on unreachable redis")
	}
	if c.(*implCache).ttl != defaultTTL {
		t.Errorf("expected default ttl")
	}
}
