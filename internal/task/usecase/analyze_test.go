package usecase

import (
	"context"
	"reflect"
	"testing"
	"time"

	"smart-task-dashboard/internal/analyzer"
	"smart-task-dashboard/internal/model"
	"smart-task-dashboard/internal/task"
	"smart-task-dashboard/pkg/datemath"
)

func TestAnalyze(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	tests := []struct {
		name     string
		text     string
		category model.Category
		priority model.Priority
		due      *datemath.Date
		keywords []string
	}{
		{
			name:     "shopping today",
			text:     "Buy groceries today",
			category: model.CategoryShopping,
			priority: model.PriorityMedium,
			due:      &datemath.Date{Year: 2024, Month: time.May, Day: 1},
			keywords: []string{"groceries", "today"},
		},
		{
			name:     "urgent work tomorrow",
			text:     "  Urgent: finish project report tomorrow  ",
			category: model.CategoryWork,
			priority: model.PriorityHigh,
			due:      &datemath.Date{Year: 2024, Month: time.May, Day: 2},
			keywords: []string{"urgent:", "finish", "project"},
		},
		{
			name:     "weekend from a Wednesday",
			text:     "Clean the house this weekend",
			category: model.CategoryHome,
			priority: model.PriorityMedium,
			due:      &datemath.Date{Year: 2024, Month: time.May, Day: 4},
			keywords: []string{"clean", "house", "this"},
		},
		{
			name:     "no signals",
			text:     "Go to bed",
			category: model.CategoryGeneral,
			priority: model.PriorityMedium,
			keywords: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Analyze(ctx, task.AnalyzeInput{Text: tt.text})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			a := out.Analysis
			if a.Category != tt.category || a.Priority != tt.priority {
				t.Errorf("got %s/%s, want %s/%s", a.Category, a.Priority, tt.category, tt.priority)
			}
			if !reflect.DeepEqual(a.SuggestedDueDate, tt.due) {
				t.Errorf("due = %v, want %v", a.SuggestedDueDate, tt.due)
			}
			if !reflect.DeepEqual(a.ExtractedKeywords, tt.keywords) {
				t.Errorf("keywords = %#v, want %#v", a.ExtractedKeywords, tt.keywords)
			}
		})
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	uc := newTestUseCase()
	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := uc.Analyze(context.Background(), task.AnalyzeInput{Text: text}); err != task.ErrEmptyInput {
			t.Errorf("Analyze(%q) err = %v, want ErrEmptyInput", text, err)
		}
	}
}

func TestAnalyzeMemoised(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	first, _ := uc.Analyze(ctx, task.AnalyzeInput{Text: "Schedule doctor appointment"})
	first.Analysis.ExtractedKeywords[0] = "mutated"

	second, _ := uc.Analyze(ctx, task.AnalyzeInput{Text: "Schedule doctor appointment"})
	if second.Analysis.ExtractedKeywords[0] != "schedule" {
		t.Errorf("memoised analysis was mutated through a returned value: %v", second.Analysis.ExtractedKeywords)
	}
	if uc.analyses.Len() != 1 {
		t.Errorf("expected one memoised entry, got %d", uc.analyses.Len())
	}
}

func TestAnalyzeMemoKeyedByDay(t *testing.T) {
	clock := &steppingClock{t: time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)}
	uc := New(&mockLogger{}, nil, analyzer.New(), clock)
	ctx := context.Background()

	first, _ := uc.Analyze(ctx, task.AnalyzeInput{Text: "Buy milk today"})
	second, _ := uc.Analyze(ctx, task.AnalyzeInput{Text: "Buy milk today"})

	if first.Analysis.SuggestedDueDate.Day != 1 || second.Analysis.SuggestedDueDate.Day != 2 {
		t.Errorf("expected due dates 1 and 2 May, got %v and %v", first.Analysis.SuggestedDueDate, second.Analysis.SuggestedDueDate)
	}
}
