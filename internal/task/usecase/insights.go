package usecase

import (
	"context"

	"smart-task-dashboard/internal/insight"
	"smart-task-dashboard/internal/model"
	"smart-task-dashboard/internal/task"
	"smart-task-dashboard/pkg/datemath"
)

// Insights aggregates the full task list as of now.
func (uc *implUseCase) Insights(ctx context.Context) (task.InsightsOutput, error) {
	tasks, err := uc.allTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Insights allTasks: %v", err)
		return task.InsightsOutput{}, err
	}
	return task.InsightsOutput{Report: insight.Aggregate(tasks, uc.clock.Now())}, nil
}

// Today returns tasks due on the current date and pending tasks overdue from earlier days.
// A task due today is listed once, under DueToday.
func (uc *implUseCase) Today(ctx context.Context) (task.TodayOutput, error) {
	tasks, err := uc.allTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Today allTasks: %v", err)
		return task.TodayOutput{}, err
	}

	now := uc.clock.Now()
	today := datemath.DateOf(now)
	out := task.TodayOutput{
		Date:     today,
		DueToday: make([]model.Task, 0),
		Overdue:  make([]model.Task, 0),
	}
	for _, t := range tasks {
		switch {
		case t.IsDueOn(today):
			out.DueToday = append(out.DueToday, t)
		case t.IsOverdue(now):
			out.Overdue = append(out.Overdue, t)
		}
	}
	return out, nil
}
