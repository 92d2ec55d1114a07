package memos_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"smart-task-dashboard/internal/model"
	"smart-task-dashboard/internal/task/repository"
	"smart-task-dashboard/internal/task/repository/memos"
	"smart-task-dashboard/pkg/datemath"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// fakeMemos is an in-memory stand-in for the Memos API.
type fakeMemos struct {
	mu    sync.Mutex
	memos map[string]memos.Memo
	seq   int
}

func newFakeMemos() *fakeMemos {
	return &fakeMemos{memos: map[string]memos.Memo{
		"note": {Name: "memos/note", Content: "Just a note without a checkbox"},
	}}
}

func (f *fakeMemos) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := strings.TrimPrefix(r.URL.Path, "/api/v1/memos")
	id = strings.TrimPrefix(id, "/")

	switch {
	case id == "" && r.Method == http.MethodPost:
		var req memos.CreateMemoRequest
		json.NewDecoder(r.Body).Decode(&req)
		if strings.Contains(req.Content, "fail") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		f.seq++
		uid := fmt.Sprintf("uid-%d", f.seq)
		m := memos.Memo{Name: "memos/" + uid, Content: req.Content, CreateTime: time.Now().Format(time.RFC3339)}
		f.memos[uid] = m
		json.NewEncoder(w).Encode(m)
	case id == "" && r.Method == http.MethodGet:
		list := make([]memos.Memo, 0, len(f.memos))
		for _, m := range f.memos {
			list = append(list, m)
		}
		json.NewEncoder(w).Encode(map[string]any{"memos": list})
	default:
		m, ok := f.memos[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(m)
		case http.MethodPatch:
			var req memos.UpdateMemoRequest
			json.NewDecoder(r.Body).Decode(&req)
			m.Content = req.Content
			f.memos[id] = m
			json.NewEncoder(w).Encode(m)
		case http.MethodDelete:
			delete(f.memos, id)
			w.Write([]byte(`{}`))
		}
	}
}

func TestMemosRepository(t *testing.T) {
	ts := httptest.NewServer(newFakeMemos())
	defer ts.Close()

	repo := memos.New(memos.NewClient(ts.URL, "test-token"), "http://memos.local", &mockLogger{})
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	due := datemath.Date{Year: 2024, Month: time.May, Day: 2}

	var first, second model.Task

	t.Run("CreateTask", func(t *testing.T) {
		var err error
		first, err = repo.CreateTask(ctx, repository.CreateTaskOptions{Task: model.Task{
			ID:               "ignored",
			Text:             "Finish project report tomorrow",
			Category:         model.CategoryWork,
			Priority:         model.PriorityMedium,
			SuggestedDueDate: &due,
			Keywords:         []string{"finish", "project", "report"},
			CreatedAt:        base,
		}})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if first.ID != "uid-1" {
			t.Errorf("expected memo uid as task id, got %s", first.ID)
		}
		if first.SuggestedDueDate == nil || *first.SuggestedDueDate != due {
			t.Errorf("due date lost: %v", first.SuggestedDueDate)
		}
		if !first.CreatedAt.Equal(base) {
			t.Errorf("created_at = %v, want %v", first.CreatedAt, base)
		}

		second, err = repo.CreateTask(ctx, repository.CreateTaskOptions{Task: model.Task{
			Text:      "Buy milk",
			Category:  model.CategoryShopping,
			Priority:  model.PriorityMedium,
			Keywords:  []string{"milk"},
			CreatedAt: base.Add(time.Hour),
		}})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}

		_, err = repo.CreateTask(ctx, repository.CreateTaskOptions{Task: model.Task{Text: "fail", CreatedAt: base}})
		if err != repository.ErrFailedToInsert {
			t.Errorf("expected ErrFailedToInsert, got %v", err)
		}
	})

	t.Run("GetTask", func(t *testing.T) {
		got, err := repo.GetTask(ctx, first.ID)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Text != "Finish project report tomorrow" || got.Category != model.CategoryWork {
			t.Errorf("unexpected task: %+v", got)
		}

		missing, err := repo.GetTask(ctx, "missing")
		if err != nil || missing.ID != "" {
			t.Errorf("expected zero task, got %+v, %v", missing, err)
		}

		note, err := repo.GetTask(ctx, "note")
		if err != nil || note.ID != "" {
			t.Errorf("non-task memo should read as missing, got %+v, %v", note, err)
		}
	})

	t.Run("ListTasks newest first and skips notes", func(t *testing.T) {
		tasks, err := repo.ListTasks(ctx, repository.ListTasksOptions{})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(tasks) != 2 || tasks[0].ID != second.ID || tasks[1].ID != first.ID {
			t.Errorf("unexpected tasks: %+v", tasks)
		}

		work, _ := repo.ListTasks(ctx, repository.ListTasksOptions{Category: model.CategoryWork})
		if len(work) != 1 || work[0].ID != first.ID {
			t.Errorf("unexpected filtered tasks: %+v", work)
		}
	})

	t.Run("UpdateCompletion", func(t *testing.T) {
		updated, err := repo.UpdateCompletion(ctx, repository.UpdateCompletionOptions{ID: first.ID, Completed: true})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !updated.Completed || updated.Text != first.Text || updated.Priority != first.Priority {
			t.Errorf("unexpected task: %+v", updated)
		}

		missing, err := repo.UpdateCompletion(ctx, repository.UpdateCompletionOptions{ID: "missing", Completed: true})
		if err != nil || missing.ID != "" {
			t.Errorf("expected zero task, got %+v, %v", missing, err)
		}
	})

	t.Run("DeleteTask", func(t *testing.T) {
		if err := repo.DeleteTask(ctx, second.ID); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if err := repo.DeleteTask(ctx, second.ID); err != nil {
			t.Errorf("deleting twice should not fail, got %v", err)
		}
		tasks, _ := repo.ListTasks(ctx, repository.ListTasksOptions{})
		if len(tasks) != 1 {
			t.Errorf("expected 1 task left, got %d", len(tasks))
		}
	})

	t.Run("Server Down", func(t *testing.T) {
		down := memos.New(memos.NewClient("http://localhost:59999", "token"), "", &mockLogger{})
		if _, err := down.ListTasks(ctx, repository.ListTasksOptions{}); err != repository.ErrFailedToList {
			t.Errorf("expected ErrFailedToList, got %v", err)
		}
	})
}

func TestMemoURL(t *testing.T) {
	if got := memos.MemoURL("http://memos.local", "abc"); got != "http://memos.local/m/abc" {
		t.Errorf("unexpected url %s", got)
	}
	if got := memos.MemoURL("", "abc"); got != "" {
		t.Errorf("expected empty url, got %s", got)
	}
}
