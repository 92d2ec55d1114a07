package postgre

import (
	"fmt"
	"strings"

	repo "smart-task-dashboard/internal/task/repository"
)

// buildListQuery builds the WHERE + ORDER clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.Completed != nil {
		conditions = append(conditions, fmt.Sprintf("completed = $%d", idx))
		args = append(args, *opt.Completed)
		idx++
	}
	if opt.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", idx))
		args = append(args, string(opt.Category))
		idx++
	}
	if opt.Priority != "" {
		conditions = append(conditions, fmt.Sprintf("priority = $%d", idx))
		args = append(args, string(opt.Priority))
	}

	var parts []string
	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}
	parts = append(parts, "ORDER BY created_at DESC, id DESC")
	return strings.Join(parts, " "), args
}
