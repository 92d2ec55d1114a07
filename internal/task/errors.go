package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput      = errors.New("input text is empty")
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidFilter   = errors.New("invalid status filter")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidAnalysis = errors.New("invalid analysis")
)
