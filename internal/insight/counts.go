package insight

import (
	"encoding/json"

	"smart-task-dashboard/internal/model"
)

// CategoryStat is one category and its task count.
type CategoryStat struct {
	Category model.Category `json:"category"`
	Count    int            `json:"count"`
}

// CategoryCounts is a category → count map that remembers first-insertion order.
type CategoryCounts struct {
	order  []model.Category
	counts map[model.Category]int
}

// Add increments the count of c.
func (cc *CategoryCounts) Add(c model.Category) {
	if cc.counts == nil {
		cc.counts = make(map[model.Category]int)
	}
	if _, ok := cc.counts[c]; !ok {
		cc.order = append(cc.order, c)
	}
	cc.counts[c]++
}

// Get returns the count of c, zero when unseen.
func (cc CategoryCounts) Get(c model.Category) int {
	return cc.counts[c]
}

// Len returns the number of distinct categories.
func (cc CategoryCounts) Len() int {
	return len(cc.order)
}

// Stats returns the counts in first-insertion order.
func (cc CategoryCounts) Stats() []CategoryStat {
	stats := make([]CategoryStat, 0, len(cc.order))
	for _, c := range cc.order {
		stats = append(stats, CategoryStat{Category: c, Count: cc.counts[c]})
	}
	return stats
}

// Top returns the category with the highest count. Ties go to the category seen first.
func (cc CategoryCounts) Top() (CategoryStat, bool) {
	var top CategoryStat
	found := false
	for _, c := range cc.order {
		if n := cc.counts[c]; !found || n > top.Count {
			top = CategoryStat{Category: c, Count: n}
			found = true
		}
	}
	return top, found
}

// MarshalJSON encodes the counts as an ordered list.
func (cc CategoryCounts) MarshalJSON() ([]byte, error) {
	return json.Marshal(cc.Stats())
}

// PriorityCounts counts pending tasks per priority.
type PriorityCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

func (pc *PriorityCounts) add(p model.Priority) {
	switch p {
	case model.PriorityHigh:
		pc.High++
	case model.PriorityMedium:
		pc.Medium++
	case model.PriorityLow:
		pc.Low++
	}
}

// Get returns the count for p.
func (pc PriorityCounts) Get(p model.Priority) int {
	switch p {
	case model.PriorityHigh:
		return pc.High
	case model.PriorityMedium:
		return pc.Medium
	case model.PriorityLow:
		return pc.Low
	}
	return 0
}
