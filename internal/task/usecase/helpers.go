package usecase

import (
	"context"

	"smart-task-dashboard/internal/model"
	"smart-task-dashboard/internal/task"
	repo "smart-task-dashboard/internal/task/repository"
	"smart-task-dashboard/pkg/gcalendar"
)

func toListOptions(input task.ListInput) repo.ListTasksOptions {
	opt := repo.ListTasksOptions{
		Category: input.Category,
		Priority: input.Priority,
	}
	switch input.Filter {
	case task.FilterActive:
		done := false
		opt.Completed = &done
	case task.FilterCompleted:
		done := true
		opt.Completed = &done
	}
	return opt
}

func filterTasks(tasks []model.Task, opt repo.ListTasksOptions) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if opt.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

func cloneTasks(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

func cloneAnalysis(a model.Analysis) model.Analysis {
	c := a
	c.ExtractedKeywords = make([]string, len(a.ExtractedKeywords))
	copy(c.ExtractedKeywords, a.ExtractedKeywords)
	if a.SuggestedDueDate != nil {
		d := *a.SuggestedDueDate
		c.SuggestedDueDate = &d
	}
	return c
}

func (uc *implUseCase) invalidate(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	uc.cacheMu.Lock()
	uc.cacheGen++
	uc.cacheMu.Unlock()
	uc.sf.Forget(listFlightKey)

	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.l.Warnf(ctx, "uc.invalidate cache.Invalidate: %v", err)
	}
}

// syncCalendar books an all-day event on the due date and returns its link.
func (uc *implUseCase) syncCalendar(ctx context.Context, t model.Task) string {
	if uc.calendar == nil || t.SuggestedDueDate == nil {
		return ""
	}

	start := t.SuggestedDueDate.In(uc.clock.Now().Location())
	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Text,
		Description: "Category: " + string(t.Category) + "\nPriority: " + string(t.Priority),
		StartTime:   start,
		EndTime:     start.AddDate(0, 0, 1),
		AllDay:      true,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.syncCalendar CreateEvent: %v", err)
		return ""
	}
	return event.HtmlLink
}

func (uc *implUseCase) notify(ctx context.Context, message string) {
	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.Notify(ctx, message); err != nil {
		uc.l.Warnf(ctx, "uc.notify: %v", err)
	}
}
