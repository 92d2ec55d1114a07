package postgre

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"smart-task-dashboard/internal/task/repository"
	"smart-task-dashboard/pkg/log"
)

const driverName = "postgres"

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// Open connects to PostgreSQL with lib/pq and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// New creates a new PostgreSQL-backed Repository for tasks.
func New(db *sql.DB, l log.Logger) *implRepository {
	if db == nil {
		panic("task/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

var _ repository.Repository = (*implRepository)(nil)

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/postgre.%s", method)
}
