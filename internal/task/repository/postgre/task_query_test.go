package postgre

import (
	"reflect"
	"testing"
	"time"

	"smart-task-dashboard/internal/model"
	repo "smart-task-dashboard/internal/task/repository"
	"smart-task-dashboard/pkg/datemath"
)

func TestBuildListQuery(t *testing.T) {
	r := &implRepository{}
	done := false

	tests := []struct {
		name     string
		opt      repo.ListTasksOptions
		wantMods string
		wantArgs []any
	}{
		{
			name:     "no filters",
			opt:      repo.ListTasksOptions{},
			wantMods: "ORDER BY created_at DESC, id DESC",
		},
		{
			name:     "completed only",
			opt:      repo.ListTasksOptions{Completed: &done},
			wantMods: "WHERE completed = $1 ORDER BY created_at DESC, id DESC",
			wantArgs: []any{false},
		},
		{
			name:     "all filters",
			opt:      repo.ListTasksOptions{Completed: &done, Category: model.CategoryWork, Priority: model.PriorityHigh},
			wantMods: "WHERE completed = $1 AND category = $2 AND priority = $3 ORDER BY created_at DESC, id DESC",
			wantArgs: []any{false, "work", "high"},
		},
		{
			name:     "priority without completed",
			opt:      repo.ListTasksOptions{Priority: model.PriorityLow},
			wantMods: "WHERE priority = $1 ORDER BY created_at DESC, id DESC",
			wantArgs: []any{"low"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mods, args := r.buildListQuery(tt.opt)
			if mods != tt.wantMods {
				t.Errorf("mods = %q, want %q", mods, tt.wantMods)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

type fakeRow struct {
	values []any
}

func (f fakeRow) Scan(dest ...any) error {
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = f.values[i].(string)
		case *bool:
			*p = f.values[i].(bool)
		case *time.Time:
			*p = f.values[i].(time.Time)
		default:
			if s, ok := d.(interface{ Scan(any) error }); ok {
				if err := s.Scan(f.values[i]); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func TestScanTask(t *testing.T) {
	created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	t.Run("with due date and keywords", func(t *testing.T) {
		row := fakeRow{values: []any{
			"id-1", "Buy milk today", false, "shopping", "medium",
			time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), []byte(`{milk,today}`), created,
		}}
		task, err := scanTask(row)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.Category != model.CategoryShopping || task.Priority != model.PriorityMedium {
			t.Errorf("unexpected classification: %+v", task)
		}
		want := datemath.Date{Year: 2024, Month: time.May, Day: 1}
		if task.SuggestedDueDate == nil || *task.SuggestedDueDate != want {
			t.Errorf("due = %v, want %v", task.SuggestedDueDate, want)
		}
		if !reflect.DeepEqual(task.Keywords, []string{"milk", "today"}) {
			t.Errorf("keywords = %v", task.Keywords)
		}
	})

	t.Run("null due date", func(t *testing.T) {
		row := fakeRow{values: []any{"id-2", "Go to bed", true, "general", "low", nil, []byte(`{}`), created}}
		task, err := scanTask(row)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.SuggestedDueDate != nil {
			t.Errorf("expected nil due date, got %v", task.SuggestedDueDate)
		}
		if task.Keywords == nil || len(task.Keywords) != 0 {
			t.Errorf("expected empty keywords, got %#v", task.Keywords)
		}
	})
}

func TestDueDateArg(t *testing.T) {
	if got := dueDateArg(nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
	d := datemath.Date{Year: 2024, Month: time.May, Day: 4}
	if got := dueDateArg(&d); got != "2024-05-04" {
		t.Errorf("expected 2024-05-04, got %v", got)
	}
}
