package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"smart-task-dashboard/internal/analyzer"
	"smart-task-dashboard/internal/model"
	repo "smart-task-dashboard/internal/task/repository"
	"smart-task-dashboard/internal/task/repository/memory"
	"smart-task-dashboard/pkg/datemath"
	"smart-task-dashboard/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var errBoom = errors.New("boom")

// Wednesday, 1 May 2024, 10:00 UTC.
var testNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

// steppingClock advances by one second on every call so creation times are distinct.
type steppingClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.t
	c.t = c.t.Add(time.Second)
	return now
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("task-%d", n)
	}
}

func newTestUseCase(opts ...Option) *implUseCase {
	opts = append([]Option{WithIDGenerator(sequentialIDs())}, opts...)
	return New(&mockLogger{}, memory.New(), analyzer.New(), datemath.FixedClock{T: testNow}, opts...)
}

// countingRepo wraps a repository and counts list calls.
type countingRepo struct {
	repo.Repository
	mu    sync.Mutex
	lists int
}

func (r *countingRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	r.mu.Lock()
	r.lists++
	r.mu.Unlock()
	return r.Repository.ListTasks(ctx, opt)
}

// failingRepo fails every call.
type failingRepo struct{}

func (failingRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	return model.Task{}, errBoom
}
func (failingRepo) GetTask(ctx context.Context, id string) (model.Task, error) {
	return model.Task{}, errBoom
}
func (failingRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	return nil, errBoom
}
func (failingRepo) UpdateCompletion(ctx context.Context, opt repo.UpdateCompletionOptions) (model.Task, error) {
	return model.Task{}, errBoom
}
func (failingRepo) DeleteTask(ctx context.Context, id string) error { return errBoom }

// mockCache is an in-memory repo.Cache.
type mockCache struct {
	mu          sync.Mutex
	tasks       []model.Task
	ok          bool
	getErr      error
	sets        int
	invalidates int
}

func (c *mockCache) GetTasks(ctx context.Context) ([]model.Task, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.tasks, c.ok, nil
}

func (c *mockCache) SetTasks(ctx context.Context, tasks []model.Task) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasks, c.ok = tasks, true
	c.sets++
	return nil
}

func (c *mockCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasks, c.ok = nil, false
	c.invalidates++
	return nil
}

type mockCalendar struct {
	reqs []gcalendar.CreateEventRequest
	err  error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.reqs = append(m.reqs, req)
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.Event{ID: "ev-1", HtmlLink: "https://calendar.test/ev-1", AllDay: req.AllDay}, nil
}

type mockNotifier struct {
	messages []string
	err      error
}

func (m *mockNotifier) Notify(ctx context.Context, message string) error {
	m.messages = append(m.messages, message)
	return m.err
}

// gatedRepo holds the first ListTasks call until release is closed.
type gatedRepo struct {
	repo.Repository
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func newGatedRepo(r repo.Repository) *gatedRepo {
	return &gatedRepo{Repository: r, entered: make(chan struct{}), release: make(chan struct{})}
}

func (r *gatedRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	tasks, err := r.Repository.ListTasks(ctx, opt)
	first := false
	r.once.Do(func() { first = true })
	if first {
		close(r.entered)
		<-r.release
	}
	return tasks, err
}

// ctxRepo fails list calls once the context is done.
type ctxRepo struct {
	repo.Repository
}

func (r ctxRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.Repository.ListTasks(ctx, opt)
}
