package task

import (
	"context"

	"smart-task-dashboard/pkg/gcalendar"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Analyze classifies free text without persisting anything.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)
	// Create analyses the text (or reuses a shown analysis) and stores a new task.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	ToggleComplete(ctx context.Context, id string) (ToggleOutput, error)
	Delete(ctx context.Context, id string) error
	// Insights aggregates the whole list into a dashboard report.
	Insights(ctx context.Context) (InsightsOutput, error)
	// Today returns tasks due on the current date plus overdue ones.
	Today(ctx context.Context) (TodayOutput, error)
}

// Notifier delivers short user-facing messages about task events.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// Calendar schedules due dates on an external calendar.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}
