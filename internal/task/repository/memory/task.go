package memory

import (
	"context"
	"fmt"
	"slices"

	"smart-task-dashboard/internal/model"
	"smart-task-dashboard/internal/task/repository"
)

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	t := opt.Task.Clone()
	if t.ID == "" {
		return model.Task{}, fmt.Errorf("%w: id is required", repository.ErrFailedToInsert)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[t.ID]; ok {
		return model.Task{}, fmt.Errorf("%w: duplicate id %s", repository.ErrFailedToInsert, t.ID)
	}
	r.tasks[t.ID] = t
	r.order = append(r.order, t.ID)
	return t.Clone(), nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return model.Task{}, nil
	}
	return t.Clone(), nil
}

// ListTasks orders by CreatedAt descending. Ties keep the most recently inserted first.
func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]model.Task, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		t := r.tasks[r.order[i]]
		if opt.Matches(t) {
			tasks = append(tasks, t.Clone())
		}
	}
	slices.SortStableFunc(tasks, func(a, b model.Task) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return tasks, nil
}

func (r *implRepository) UpdateCompletion(ctx context.Context, opt repository.UpdateCompletionOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[opt.ID]
	if !ok {
		return model.Task{}, nil
	}
	t.Completed = opt.Completed
	r.tasks[opt.ID] = t
	return t.Clone(), nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return nil
	}
	delete(r.tasks, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	return nil
}
