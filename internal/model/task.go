package model

import (
	"time"

	"smart-task-dashboard/pkg/datemath"
)

// Priority is the urgency tier of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every priority from most to least urgent.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Category is a coarse classification bucket. The vocabulary is open-ended.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryShopping Category = "shopping"
	CategoryHealth   Category = "health"
	CategoryHome     Category = "home"
	CategoryGeneral  Category = "general"
)

// Analysis is the classification derived from free-text task input. It is not persisted on its own.
type Analysis struct {
	Category          Category       `json:"category"`
	Priority          Priority       `json:"priority"`
	SuggestedDueDate  *datemath.Date `json:"suggested_due_date,omitempty"`
	ExtractedKeywords []string       `json:"extracted_keywords"`
}

// Task is a unit of work on the personal to-do list.
// Category, Priority, SuggestedDueDate and Keywords are fixed at creation.
type Task struct {
	ID               string         `json:"id"`
	Text             string         `json:"text"`
	Completed        bool           `json:"completed"`
	Category         Category       `json:"category"`
	Priority         Priority       `json:"priority"`
	SuggestedDueDate *datemath.Date `json:"suggested_due_date,omitempty"`
	Keywords         []string       `json:"keywords"`
	CreatedAt        time.Time      `json:"created_at"`
}

// NewTask merges an analysis with the raw input text. The task starts not completed.
func NewTask(id, text string, a Analysis, createdAt time.Time) Task {
	keywords := make([]string, len(a.ExtractedKeywords))
	copy(keywords, a.ExtractedKeywords)

	var due *datemath.Date
	if a.SuggestedDueDate != nil {
		d := *a.SuggestedDueDate
		due = &d
	}

	return Task{
		ID:               id,
		Text:             text,
		Completed:        false,
		Category:         a.Category,
		Priority:         a.Priority,
		SuggestedDueDate: due,
		Keywords:         keywords,
		CreatedAt:        createdAt,
	}
}

// IsOverdue reports whether the task is not completed and its due date started before now.
// The due date is taken at midnight in now's location.
func (t Task) IsOverdue(now time.Time) bool {
	if t.Completed || t.SuggestedDueDate == nil {
		return false
	}
	return t.SuggestedDueDate.In(now.Location()).Before(now)
}

// IsDueOn reports whether the task's due date is d.
func (t Task) IsDueOn(d datemath.Date) bool {
	return t.SuggestedDueDate != nil && t.SuggestedDueDate.Equal(d)
}

// Clone returns a deep copy of t.
func (t Task) Clone() Task {
	c := t
	if t.Keywords != nil {
		c.Keywords = make([]string, len(t.Keywords))
		copy(c.Keywords, t.Keywords)
	}
	if t.SuggestedDueDate != nil {
		d := *t.SuggestedDueDate
		c.SuggestedDueDate = &d
	}
	return c
}
