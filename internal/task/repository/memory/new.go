package memory

import (
	"sync"

	"smart-task-dashboard/internal/model"
	"smart-task-dashboard/internal/task/repository"
)

type implRepository struct {
	mu    sync.RWMutex
	tasks map[string]model.Task
	order []string
}

// New creates an in-process Repository. Tasks live only as long as the process.
func New() repository.Repository {
	return &implRepository{
		tasks: make(map[string]model.Task),
	}
}
