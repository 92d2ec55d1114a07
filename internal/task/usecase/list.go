package usecase

import (
	"context"

	"smart-task-dashboard/internal/model"
	"smart-task-dashboard/internal/task"
	repo "smart-task-dashboard/internal/task/repository"
)

const listFlightKey = "tasks:list"

// List returns tasks newest first, narrowed by status, category and priority.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	if !input.Filter.IsValid() {
		return task.ListOutput{}, task.ErrInvalidFilter
	}
	if input.Priority != "" && !input.Priority.IsValid() {
		return task.ListOutput{}, task.ErrInvalidPriority
	}

	opt := toListOptions(input)

	var (
		tasks []model.Task
		err   error
	)
	if uc.cache == nil {
		tasks, err = uc.repo.ListTasks(ctx, opt)
	} else {
		tasks, err = uc.allTasks(ctx)
		tasks = filterTasks(tasks, opt)
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{Tasks: tasks, Total: len(tasks)}, nil
}

// allTasks returns the full list, through the cache when one is configured.
// Concurrent misses share one repository read.
func (uc *implUseCase) allTasks(ctx context.Context) ([]model.Task, error) {
	if uc.cache == nil {
		return uc.repo.ListTasks(ctx, repo.ListTasksOptions{})
	}

	v, err, _ := uc.sf.Do(listFlightKey, func() (any, error) {
		// The fill is shared, so one caller going away must not fail the others.
		ctx := context.WithoutCancel(ctx)

		cached, ok, err := uc.cache.GetTasks(ctx)
		if err != nil {
			uc.l.Warnf(ctx, "uc.allTasks cache.GetTasks: %v", err)
		}
		if ok {
			return cached, nil
		}

		gen := uc.cacheGeneration()
		tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{})
		if err != nil {
			return nil, err
		}
		uc.storeTasks(ctx, gen, tasks)
		return tasks, nil
	})
	if err != nil {
		return nil, err
	}
	return cloneTasks(v.([]model.Task)), nil
}

func (uc *implUseCase) cacheGeneration() uint64 {
	uc.cacheMu.Lock()
	defer uc.cacheMu.Unlock()
	return uc.cacheGen
}

// storeTasks fills the cache unless a write invalidated it after gen was read.
func (uc *implUseCase) storeTasks(ctx context.Context, gen uint64, tasks []model.Task) {
	uc.cacheMu.Lock()
	defer uc.cacheMu.Unlock()
	if uc.cacheGen != gen {
		return
	}
	if err := uc.cache.SetTasks(ctx, tasks); err != nil {
		uc.l.Warnf(ctx, "uc.allTasks cache.SetTasks: %v", err)
	}
}
