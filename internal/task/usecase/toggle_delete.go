package usecase

import (
	"context"
	"fmt"

	"smart-task-dashboard/internal/task"
	repo "smart-task-dashboard/internal/task/repository"
)

// ToggleComplete flips the completion flag. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) ToggleComplete(ctx context.Context, id string) (task.ToggleOutput, error) {
	existing, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleComplete GetTask: %v", err)
		return task.ToggleOutput{}, err
	}
	if existing.ID == "" {
		return task.ToggleOutput{}, task.ErrTaskNotFound
	}

	updated, err := uc.repo.UpdateCompletion(ctx, repo.UpdateCompletionOptions{
		ID:        id,
		Completed: !existing.Completed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleComplete UpdateCompletion: %v", err)
		return task.ToggleOutput{}, err
	}
	if updated.ID == "" {
		return task.ToggleOutput{}, task.ErrTaskNotFound
	}
	uc.invalidate(ctx)

	if updated.Completed {
		uc.notify(ctx, fmt.Sprintf("Task completed: %s", updated.Text))
	}
	return task.ToggleOutput{Task: updated}, nil
}

// Delete removes a task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	uc.invalidate(ctx)
	return nil
}
