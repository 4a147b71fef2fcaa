package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"task-filter/internal/errors"
	"task-filter/internal/logging"
	"task-filter/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

const (
	defaultQueryTimeout = 10 * time.Second
	defaultWriteTimeout = 5 * time.Second
)

// Repository defines the storage operations for task filters
type Repository interface {
	CreateTaskFilter(ctx context.Context, filter *TaskFilter) error
	GetTaskFilter(ctx context.Context, id int64) (*TaskFilter, error)
	ListTaskFilters(ctx context.Context) ([]*TaskFilter, error)
	UpdateTaskFilter(ctx context.Context, filter *TaskFilter) error
	DeleteTaskFilter(ctx context.Context, id int64) error

	Close() error
}

// Options bounds how long individual statements may run
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

// SQLiteRepository implements Repository on top of modernc.org/sqlite
type SQLiteRepository struct {
	db   *sql.DB
	opts Options
}

// New opens (or creates) the database at dbPath with default timeouts
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, Options{})
}

// NewWithOptions opens the database at dbPath and runs pending migrations
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = defaultQueryTimeout
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = defaultWriteTimeout
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	// A single connection keeps ":memory:" databases alive across calls
	// and serializes writers.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), opts.WriteTimeout)
	defer cancel()
	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	logging.Named("sqlite").Debug().Str("path", dbPath).Msg("database opened")
	return &SQLiteRepository{db: db, opts: opts}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.opts.QueryTimeout)
}

func (r *SQLiteRepository) writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.opts.WriteTimeout)
}

// CreateTaskFilter inserts a task filter and sets its ID
func (r *SQLiteRepository) CreateTaskFilter(ctx context.Context, filter *TaskFilter) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `
	INSERT INTO task_filters (name, tag_ids, task_status_ids, due_date)
	VALUES (?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, filter.Name, filter.TagIDs, filter.TaskStatusIDs, filter.DueDate)
	if err != nil {
		return err
	}

	filter.ID = id
	return nil
}

// GetTaskFilter retrieves a task filter by ID
func (r *SQLiteRepository) GetTaskFilter(ctx context.Context, id int64) (*TaskFilter, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := `
	SELECT id, name, tag_ids, task_status_ids, due_date
	FROM task_filters
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanTaskFilter, "task filter", fmt.Sprintf("%d", id), id)
}

// ListTaskFilters retrieves all task filters ordered by name
func (r *SQLiteRepository) ListTaskFilters(ctx context.Context) ([]*TaskFilter, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := `
	SELECT id, name, tag_ids, task_status_ids, due_date
	FROM task_filters
	ORDER BY name COLLATE NOCASE ASC, id ASC`

	return QueryMultiple(ctx, r.db, query, ScanTaskFilters, "task filters")
}

// UpdateTaskFilter replaces the name and every criterion of a task filter
func (r *SQLiteRepository) UpdateTaskFilter(ctx context.Context, filter *TaskFilter) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `
	UPDATE task_filters
	SET name = ?, tag_ids = ?, task_status_ids = ?, due_date = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "task filter", fmt.Sprintf("%d", filter.ID),
		filter.Name, filter.TagIDs, filter.TaskStatusIDs, filter.DueDate, filter.ID)
}

// DeleteTaskFilter deletes a task filter by ID
func (r *SQLiteRepository) DeleteTaskFilter(ctx context.Context, id int64) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `DELETE FROM task_filters WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task filter", fmt.Sprintf("%d", id), id)
}
