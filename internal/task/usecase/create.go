package usecase

import (
	"context"
	"fmt"
	"strings"

	"smart-task-dashboard/internal/model"
	"smart-task-dashboard/internal/task"
	repo "smart-task-dashboard/internal/task/repository"
)

// Create stores a task built from the text and its analysis.
// Calendar sync and notification are best effort.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return task.CreateOutput{}, task.ErrEmptyInput
	}

	var analysis model.Analysis
	if input.Analysis != nil {
		if err := validateAnalysis(*input.Analysis); err != nil {
			return task.CreateOutput{}, err
		}
		analysis = cloneAnalysis(*input.Analysis)
	} else {
		analysis = uc.analyze(text)
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Task: model.NewTask(uc.newID(), text, analysis, uc.clock.Now()),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}
	uc.invalidate(ctx)

	out := task.CreateOutput{Task: created}
	out.CalendarLink = uc.syncCalendar(ctx, created)
	uc.notify(ctx, fmt.Sprintf("Task added: %s (%s, %s priority)", created.Text, created.Category, created.Priority))
	return out, nil
}

func validateAnalysis(a model.Analysis) error {
	if !a.Priority.IsValid() {
		return task.ErrInvalidPriority
	}
	if strings.TrimSpace(string(a.Category)) == "" {
		return task.ErrInvalidAnalysis
	}
	return nil
}
