package repository

import (
	"context"

	"smart-task-dashboard/internal/model"
)

// Repository is the task data store. A missing task is returned as a zero-value Task (ID == "")
// with no error.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	// ListTasks returns matching tasks newest first.
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateCompletion(ctx context.Context, opt UpdateCompletionOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// Cache holds a snapshot of the full task list.
type Cache interface {
	// GetTasks reports ok=false on a miss.
	GetTasks(ctx context.Context) (tasks []model.Task, ok bool, err error)
	SetTasks(ctx context.Context, tasks []model.Task) error
	Invalidate(ctx context.Context) error
}
