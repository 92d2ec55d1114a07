package repository

import "smart-task-dashboard/internal/model"

// CreateTaskOptions holds the task to persist. Stores that assign their own IDs may replace Task.ID.
type CreateTaskOptions struct {
	Task model.Task
}

// ListTasksOptions holds filter parameters for listing tasks.
// All non-empty fields are applied as AND conditions.
type ListTasksOptions struct {
	Completed *bool
	Category  model.Category
	Priority  model.Priority
}

// Matches reports whether t passes every filter in o.
func (o ListTasksOptions) Matches(t model.Task) bool {
	if o.Completed != nil && t.Completed != *o.Completed {
		return false
	}
	if o.Category != "" && t.Category != o.Category {
		return false
	}
	if o.Priority != "" && t.Priority != o.Priority {
		return false
	}
	return true
}

// UpdateCompletionOptions holds parameters for setting a task's completion flag.
type UpdateCompletionOptions struct {
	ID        string
	Completed bool
}
