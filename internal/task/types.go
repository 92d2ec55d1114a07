package task

import (
	"smart-task-dashboard/internal/insight"
	"smart-task-dashboard/internal/model"
	"smart-task-dashboard/pkg/datemath"
)

// Filter narrows a list by completion status.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// IsValid reports whether f is a known filter. The empty filter means all.
func (f Filter) IsValid() bool {
	switch f {
	case "", FilterAll, FilterActive, FilterCompleted:
		return true
	}
	return false
}

// --- UseCase Inputs ---

type AnalyzeInput struct {
	Text string
}

type CreateInput struct {
	Text string
	// Analysis is the result previously shown to the user. When nil the text is analysed again.
	Analysis *model.Analysis
}

type ListInput struct {
	Filter   Filter
	Category model.Category
	Priority model.Priority
}

// --- UseCase Outputs ---

type AnalyzeOutput struct {
	Analysis model.Analysis
}

type CreateOutput struct {
	Task model.Task
	// CalendarLink is set when the due date was synced to the calendar.
	CalendarLink string
}

type ListOutput struct {
	Tasks []model.Task
	Total int
}

type ToggleOutput struct {
	Task model.Task
}

type InsightsOutput struct {
	Report insight.Report
}

type TodayOutput struct {
	Date     datemath.Date
	DueToday []model.Task
	Overdue  []model.Task
}
