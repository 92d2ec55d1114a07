package memos

import (
	"fmt"

	"smart-task-dashboard/internal/task/repository"
	pkgLog "smart-task-dashboard/pkg/log"
)

const (
	defaultPageSize   = 100
	defaultVisibility = "PRIVATE"
)

type implRepository struct {
	client      *Client
	memoBaseURL string // e.g. "http://localhost:5230" for deep link generation
	l           pkgLog.Logger
}

// New creates a Repository that stores each task as a checklist memo.
func New(client *Client, memoBaseURL string, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client:      client,
		memoBaseURL: memoBaseURL,
		l:           l,
	}
}

// MemoURL returns the web link of a task memo, or "" when no external URL is configured.
func MemoURL(baseURL, id string) string {
	if baseURL == "" || id == "" {
		return ""
	}
	return fmt.Sprintf("%s/m/%s", baseURL, id)
}
