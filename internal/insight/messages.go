package insight

import "fmt"

// Tier is a productivity band selected by completion rate.
type Tier struct {
	Name    string  `json:"name"`
	MinRate float64 `json:"min_rate"`
	Message string  `json:"message"`
}

const (
	TierExcellent      = "excellent"
	TierGoodProgress   = "good_progress"
	TierSteadyProgress = "steady_progress"
	TierGetStarted     = "get_started"
	TierTakeAction     = "take_action"
)

// ProductivityTiers is ordered from the highest threshold down; the first tier whose
// MinRate the completion rate reaches is selected.
var ProductivityTiers = []Tier{
	{Name: TierExcellent, MinRate: 80, Message: "Excellent productivity! You're crushing your goals! 🚀"},
	{Name: TierGoodProgress, MinRate: 60, Message: "Good progress! Keep up the momentum! 💪"},
	{Name: TierSteadyProgress, MinRate: 40, Message: "Steady progress. Consider focusing on high-priority tasks! 🎯"},
	{Name: TierGetStarted, MinRate: 20, Message: "Let's get started! Break down larger tasks for easier completion! 📝"},
	{Name: TierTakeAction, MinRate: 0, Message: "Time to take action! Start with one small task to build momentum! ⚡"},
}

func selectTier(rate float64) Tier {
	for _, t := range ProductivityTiers {
		if rate >= t.MinRate {
			return t
		}
	}
	return ProductivityTiers[len(ProductivityTiers)-1]
}

// Recommendation is the single piece of advice attached to a report.
type Recommendation struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

const (
	RecommendFocusHighPriority = "focus_high_priority"
	RecommendAddressOverdue    = "address_overdue"
	RecommendTimeBlock         = "time_block"
	RecommendBalanced          = "balanced"
)

// HighPriorityThreshold is the pending high-priority count above which focusing is advised.
const HighPriorityThreshold = 3

type recommendationRule struct {
	kind    string
	applies func(r Report) bool
	message func(r Report) string
}

// recommendationRules are checked in order; the last one always applies.
var recommendationRules = []recommendationRule{
	{
		kind:    RecommendFocusHighPriority,
		applies: func(r Report) bool { return r.PendingByPriority.High > HighPriorityThreshold },
		message: func(Report) string { return "Focus on high-priority tasks first to maximize impact." },
	},
	{
		kind:    RecommendAddressOverdue,
		applies: func(r Report) bool { return r.OverdueTasks > 0 },
		message: func(r Report) string {
			return fmt.Sprintf("You have %d overdue %s. Consider addressing them today.", r.OverdueTasks, plural(r.OverdueTasks, "task", "tasks"))
		},
	},
	{
		kind: RecommendTimeBlock,
		applies: func(r Report) bool {
			return r.TopCategory != nil && r.TopCategory.Count*2 > r.TotalTasks
		},
		message: func(r Report) string {
			return fmt.Sprintf("Most of your tasks are %s-related. Consider time-blocking for better focus.", r.TopCategory.Category)
		},
	},
	{
		kind:    RecommendBalanced,
		applies: func(Report) bool { return true },
		message: func(Report) string { return "Great job maintaining a balanced task list! Keep up the good work." },
	},
}

func recommend(r Report) Recommendation {
	for _, rule := range recommendationRules {
		if rule.applies(r) {
			return Recommendation{Kind: rule.kind, Message: rule.message(r)}
		}
	}
	return Recommendation{}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// EmptyPlaceholder is shown instead of statistics when there are no tasks.
const EmptyPlaceholder = "Add some tasks to see intelligent insights about your productivity!"
