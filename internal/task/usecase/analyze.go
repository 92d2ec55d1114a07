package usecase

import (
	"context"
	"strings"

	"smart-task-dashboard/internal/model"
	"smart-task-dashboard/internal/task"
	"smart-task-dashboard/pkg/datemath"
)

// Analyze classifies text as of the current date. Results are memoised per (text, day).
func (uc *implUseCase) Analyze(ctx context.Context, input task.AnalyzeInput) (task.AnalyzeOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return task.AnalyzeOutput{}, task.ErrEmptyInput
	}
	return task.AnalyzeOutput{Analysis: uc.analyze(text)}, nil
}

func (uc *implUseCase) analyze(text string) model.Analysis {
	now := uc.clock.Now()
	key := analysisKey{text: text, day: datemath.DateOf(now)}
	if a, ok := uc.analyses.Get(key); ok {
		return cloneAnalysis(a)
	}

	a := uc.analyzer.Analyze(text, now)
	uc.analyses.Add(key, a)
	return cloneAnalysis(a)
}
