package insight

import (
	"time"

	"smart-task-dashboard/internal/model"
)

// Report summarises a task list.
type Report struct {
	TotalTasks        int             `json:"total_tasks"`
	CompletedTasks    int             `json:"completed_tasks"`
	PendingTasks      int             `json:"pending_tasks"`
	CompletionRate    float64         `json:"completion_rate"`
	CategoryCounts    CategoryCounts  `json:"category_counts"`
	PendingByPriority PriorityCounts  `json:"pending_by_priority"`
	OverdueTasks      int             `json:"overdue_tasks"`
	TopCategory       *CategoryStat   `json:"top_category,omitempty"`
	Productivity      *Tier           `json:"productivity,omitempty"`
	Recommendation    *Recommendation `json:"recommendation,omitempty"`

	// Empty is set when there are no tasks; only Placeholder is meaningful then.
	Empty       bool   `json:"empty"`
	Placeholder string `json:"placeholder,omitempty"`
}

// Aggregate computes the report for tasks as of now. Task order does not affect the result
// except for the top-category tie-break, which favours the category seen first.
func Aggregate(tasks []model.Task, now time.Time) Report {
	if len(tasks) == 0 {
		return Report{Empty: true, Placeholder: EmptyPlaceholder}
	}

	r := Report{TotalTasks: len(tasks)}
	for _, t := range tasks {
		r.CategoryCounts.Add(t.Category)
		if t.Completed {
			r.CompletedTasks++
			continue
		}
		r.PendingByPriority.add(t.Priority)
		if t.IsOverdue(now) {
			r.OverdueTasks++
		}
	}

	r.PendingTasks = r.TotalTasks - r.CompletedTasks
	r.CompletionRate = float64(r.CompletedTasks) * 100 / float64(r.TotalTasks)

	if top, ok := r.CategoryCounts.Top(); ok {
		r.TopCategory = &top
	}

	tier := selectTier(r.CompletionRate)
	r.Productivity = &tier

	rec := recommend(r)
	r.Recommendation = &rec

	return r
}
