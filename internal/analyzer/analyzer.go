package analyzer

import (
	"strings"
	"time"

	"smart-task-dashboard/internal/model"
	"smart-task-dashboard/pkg/datemath"
)

const (
	DefaultMaxKeywords   = 3
	DefaultMinKeywordLen = 3
)

// Analyzer classifies free-text task input with ordered keyword rule tables.
// It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	categories      Table[model.Category]
	defaultCategory model.Category
	priorities      Table[model.Priority]
	defaultPriority model.Priority
	dueDates        Table[string]
	dates           *datemath.Parser
	maxKeywords     int
	minKeywordLen   int
}

// Option customises an Analyzer.
type Option func(*Analyzer)

// WithCategoryRules replaces the category table.
func WithCategoryRules(rules Table[model.Category]) Option {
	return func(a *Analyzer) { a.categories = rules }
}

// WithPriorityRules replaces the priority table.
func WithPriorityRules(rules Table[model.Priority]) Option {
	return func(a *Analyzer) { a.priorities = rules }
}

// WithDueDateRules replaces the due-date table. Results must be relative
// expressions datemath.Parser understands.
func WithDueDateRules(rules Table[string]) Option {
	return func(a *Analyzer) { a.dueDates = rules }
}

// WithParser pins date resolution to the parser's timezone. Without it dates
// are resolved in the location of the time passed to Analyze.
func WithParser(p *datemath.Parser) Option {
	return func(a *Analyzer) { a.dates = p }
}

// WithKeywordLimits overrides how many keywords are kept and the length cutoff.
func WithKeywordLimits(limit, minLen int) Option {
	return func(a *Analyzer) {
		a.maxKeywords = limit
		a.minKeywordLen = minLen
	}
}

// New builds an Analyzer with the default rule tables unless overridden.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		categories:      DefaultCategoryRules,
		defaultCategory: model.CategoryGeneral,
		priorities:      DefaultPriorityRules,
		defaultPriority: model.PriorityMedium,
		dueDates:        DefaultDueDateRules,
		maxKeywords:     DefaultMaxKeywords,
		minKeywordLen:   DefaultMinKeywordLen,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var defaultAnalyzer = New()

// Analyze classifies text with the default rules.
func Analyze(text string, now time.Time) model.Analysis {
	return defaultAnalyzer.Analyze(text, now)
}

// Analyze classifies text. It never fails: each axis falls back to its default.
// Callers must not pass blank text.
func (a *Analyzer) Analyze(text string, now time.Time) model.Analysis {
	lower := strings.ToLower(text)

	category, ok := a.categories.First(lower)
	if !ok {
		category = a.defaultCategory
	}

	priority, ok := a.priorities.First(lower)
	if !ok {
		priority = a.defaultPriority
	}

	return model.Analysis{
		Category:          category,
		Priority:          priority,
		SuggestedDueDate:  a.suggestDueDate(lower, now),
		ExtractedKeywords: ExtractKeywords(text, a.maxKeywords, a.minKeywordLen),
	}
}

func (a *Analyzer) suggestDueDate(lower string, now time.Time) *datemath.Date {
	relative, ok := a.dueDates.First(lower)
	if !ok {
		return nil
	}

	parser := a.dates
	if parser == nil {
		parser = datemath.NewParserIn(now.Location())
	}

	// A custom rule may carry an expression the parser rejects; treat it as no date.
	d, err := parser.ParseDate(relative, now)
	if err != nil {
		return nil
	}
	return &d
}

// Rules returns the tables in use.
func (a *Analyzer) Rules() RuleSet {
	return RuleSet{
		Categories:      a.categories,
		DefaultCategory: a.defaultCategory,
		Priorities:      a.priorities,
		DefaultPriority: a.defaultPriority,
		DueDates:        a.dueDates,
	}
}
