package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"smart-task-dashboard/internal/model"
	repo "smart-task-dashboard/internal/task/repository"
	"smart-task-dashboard/pkg/datemath"
)

const taskColumns = `id, text, completed, category, priority, suggested_due_date, keywords, created_at`

// CreateTask inserts a new task row and returns the stored entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + taskColumns

	t := opt.Task
	keywords := t.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	row := r.db.QueryRowContext(ctx, query,
		t.ID, t.Text, t.Completed, string(t.Category), string(t.Priority),
		dueDateArg(t.SuggestedDueDate), pq.Array(keywords), t.CreatedAt,
	)
	task, err := scanTask(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return task, nil
}

// GetTask returns a zero-value Task when the id does not exist.
func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return task, nil
}

// ListTasks returns filtered tasks ordered by created_at descending.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks %s`, taskColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateCompletion sets the completed flag. A missing task yields a zero-value Task.
func (r *implRepository) UpdateCompletion(ctx context.Context, opt repo.UpdateCompletionOptions) (model.Task, error) {
	query := `UPDATE tasks SET completed = $1 WHERE id = $2 RETURNING ` + taskColumns

	task, err := scanTask(r.db.QueryRowContext(ctx, query, opt.Completed, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateCompletion"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return task, nil
}

// DeleteTask removes a task by ID.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	const query = `DELETE FROM tasks WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(s rowScanner) (model.Task, error) {
	var (
		t        model.Task
		category string
		priority string
		due      sql.NullTime
		keywords []string
	)
	if err := s.Scan(&t.ID, &t.Text, &t.Completed, &category, &priority, &due, pq.Array(&keywords), &t.CreatedAt); err != nil {
		return model.Task{}, err
	}

	t.Category = model.Category(category)
	t.Priority = model.Priority(priority)
	t.Keywords = keywords
	if t.Keywords == nil {
		t.Keywords = []string{}
	}
	if due.Valid {
		d := datemath.DateOf(due.Time)
		t.SuggestedDueDate = &d
	}
	return t, nil
}

// dueDateArg renders an optional date for a DATE column.
func dueDateArg(d *datemath.Date) any {
	if d == nil {
		return nil
	}
	return d.String()
}
