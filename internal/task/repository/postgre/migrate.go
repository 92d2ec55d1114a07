package postgre

import "context"

const createTasksTable = `
	CREATE TABLE IF NOT EXISTS tasks (
		id                 TEXT PRIMARY KEY,
		text               TEXT NOT NULL,
		completed          BOOLEAN NOT NULL DEFAULT FALSE,
		category           TEXT NOT NULL,
		priority           TEXT NOT NULL,
		suggested_due_date DATE,
		keywords           TEXT[] NOT NULL DEFAULT '{}',
		created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS tasks_created_at_idx ON tasks (created_at DESC);`

// Migrate creates the tasks table when it does not exist yet.
func (r *implRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTasksTable); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Migrate"), err)
		return err
	}
	return nil
}
