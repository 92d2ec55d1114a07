package memos

import (
	"context"
	"errors"
	"slices"
	"time"

	"smart-task-dashboard/internal/model"
	"smart-task-dashboard/internal/task/repository"
)

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	memo, err := r.client.CreateMemo(ctx, CreateMemoRequest{
		Content:    formatContent(opt.Task),
		Visibility: defaultVisibility,
	})
	if err != nil {
		r.l.Errorf(ctx, "memos repository: failed to create memo: %v", err)
		return model.Task{}, repository.ErrFailedToInsert
	}

	t, ok := r.memoToTask(memo)
	if !ok {
		r.l.Errorf(ctx, "memos repository: created memo %s is not a task", memo.Name)
		return model.Task{}, repository.ErrFailedToInsert
	}
	r.l.Debugf(ctx, "memos repository: created %s", MemoURL(r.memoBaseURL, t.ID))
	return t, nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	memo, err := r.client.GetMemo(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "memos repository: failed to get memo %s: %v", id, err)
		return model.Task{}, repository.ErrFailedToGet
	}

	t, ok := r.memoToTask(memo)
	if !ok {
		return model.Task{}, nil
	}
	return t, nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	tasks := make([]model.Task, 0)
	pageToken := ""
	for {
		memos, next, err := r.client.ListMemos(ctx, TaskTag, defaultPageSize, pageToken)
		if err != nil {
			r.l.Errorf(ctx, "memos repository: failed to list memos: %v", err)
			return nil, repository.ErrFailedToList
		}
		for i := range memos {
			t, ok := r.memoToTask(&memos[i])
			if ok && opt.Matches(t) {
				tasks = append(tasks, t)
			}
		}
		if next == "" {
			break
		}
		pageToken = next
	}

	slices.SortStableFunc(tasks, func(a, b model.Task) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return tasks, nil
}

func (r *implRepository) UpdateCompletion(ctx context.Context, opt repository.UpdateCompletionOptions) (model.Task, error) {
	current, err := r.GetTask(ctx, opt.ID)
	if err != nil || current.ID == "" {
		return current, err
	}

	current.Completed = opt.Completed
	memo, err := r.client.UpdateMemo(ctx, opt.ID, UpdateMemoRequest{
		Content:    formatContent(current),
		UpdateMask: "content",
	})
	if err != nil {
		r.l.Errorf(ctx, "memos repository: failed to update memo %s: %v", opt.ID, err)
		return model.Task{}, repository.ErrFailedToUpdate
	}

	t, ok := r.memoToTask(memo)
	if !ok {
		return current, nil
	}
	return t, nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	err := r.client.DeleteMemo(ctx, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		r.l.Errorf(ctx, "memos repository: failed to delete memo %s: %v", id, err)
		return repository.ErrFailedToDelete
	}
	return nil
}

// memoToTask converts a Memos API Memo object to the internal model.Task.
func (r *implRepository) memoToTask(m *Memo) (model.Task, bool) {
	t, ok := parseContent(m.Content)
	if !ok {
		return model.Task{}, false
	}
	t.ID = m.ID()
	if t.CreatedAt.IsZero() {
		if ts, err := time.Parse(time.RFC3339, m.CreateTime); err == nil {
			t.CreatedAt = ts
		}
	}
	return t, true
}
