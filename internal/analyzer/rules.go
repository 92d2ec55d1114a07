package analyzer

import (
	"strings"

	"smart-task-dashboard/internal/model"
)

// Rule maps any of its keywords to a result. Keywords are matched as
// case-insensitive substrings of the whole input.
type Rule[T any] struct {
	Keywords []string `json:"keywords"`
	Result   T        `json:"result"`
}

// Matches reports whether lower (already lower-cased input) contains any keyword.
func (r Rule[T]) Matches(lower string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// Table is an ordered rule list. The first matching rule wins.
type Table[T any] []Rule[T]

// First returns the result of the first rule matching lower.
func (t Table[T]) First(lower string) (T, bool) {
	for _, r := range t {
		if r.Matches(lower) {
			return r.Result, true
		}
	}
	var zero T
	return zero, false
}

// DefaultCategoryRules is checked top to bottom. Unmatched input is CategoryGeneral.
var DefaultCategoryRules = Table[model.Category]{
	{Keywords: []string{"work", "meeting", "project"}, Result: model.CategoryWork},
	{Keywords: []string{"buy", "shop", "grocery"}, Result: model.CategoryShopping},
	{Keywords: []string{"doctor", "health", "exercise"}, Result: model.CategoryHealth},
	{Keywords: []string{"clean", "home", "house"}, Result: model.CategoryHome},
}

// DefaultPriorityRules has no medium rule; medium is the fallback.
var DefaultPriorityRules = Table[model.Priority]{
	{Keywords: []string{"urgent", "asap", "important"}, Result: model.PriorityHigh},
	{Keywords: []string{"sometime", "when free", "eventually"}, Result: model.PriorityLow},
}

// DefaultDueDateRules map trigger words to relative dates understood by datemath.Parser.
var DefaultDueDateRules = Table[string]{
	{Keywords: []string{"today"}, Result: "today"},
	{Keywords: []string{"tomorrow"}, Result: "tomorrow"},
	{Keywords: []string{"weekend"}, Result: "this saturday"},
}

// RuleSet is a snapshot of the tables an Analyzer uses.
type RuleSet struct {
	Categories      Table[model.Category] `json:"categories"`
	DefaultCategory model.Category        `json:"default_category"`
	Priorities      Table[model.Priority] `json:"priorities"`
	DefaultPriority model.Priority        `json:"default_priority"`
	DueDates        Table[string]         `json:"due_dates"`
}
