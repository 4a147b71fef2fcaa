package api

import (
	"context"
	"time"

	"task-filter/internal/daterange"
	"task-filter/internal/domain"
	"task-filter/internal/errors"
	"task-filter/internal/logging"
	"task-filter/internal/repository/sqlite"
	"task-filter/internal/validation"
)

// API defines the task filter operations used by the CLI.
type API interface {
	// Filter operations
	CreateFilter(ctx context.Context, filter domain.TaskFilter) (*domain.TaskFilter, error)
	GetFilter(ctx context.Context, id int64) (*domain.TaskFilter, error)
	ListFilters(ctx context.Context) ([]*domain.TaskFilter, error)
	UpdateFilter(ctx context.Context, filter domain.TaskFilter) (*domain.TaskFilter, error)
	DeleteFilter(ctx context.Context, id int64) error

	// Date range resolution
	ResolveExpression(expression string, today time.Time) (daterange.Range, error)
	ResolveFilterDueDate(ctx context.Context, id int64, today time.Time) (*FilterDueDate, error)

	// SeedSampleFilter stores the sample filter unless one with its name exists.
	SeedSampleFilter(ctx context.Context) (*domain.TaskFilter, error)
}

// FilterDueDate is a filter together with its resolved due-date range.
type FilterDueDate struct {
	Filter   *domain.TaskFilter
	Operator domain.FilterOperator
	Range    daterange.Range
}

type apiImpl struct {
	repo      sqlite.Repository
	mapper    *domain.TaskFilterMapper
	validator *validation.FilterValidator
	now       func() time.Time
}

// New creates a new API instance with default validation limits.
func New(repo sqlite.Repository) API {
	return NewWithValidator(repo, validation.NewFilterValidator())
}

// NewWithValidator creates a new API instance using the given validator.
func NewWithValidator(repo sqlite.Repository, validator *validation.FilterValidator) API {
	return &apiImpl{
		repo:      repo,
		mapper:    domain.NewTaskFilterMapper(),
		validator: validator,
		now:       time.Now,
	}
}

func (a *apiImpl) CreateFilter(ctx context.Context, filter domain.TaskFilter) (*domain.TaskFilter, error) {
	if err := a.validator.ValidateFilter(filter); err != nil {
		return nil, validationError(err)
	}
	if err := a.checkDueDate(filter); err != nil {
		return nil, err
	}

	filter.ID = 0
	filter.Name = a.validator.GetValidFilterName(filter.Name)

	row, err := a.mapper.ToDatabase(filter)
	if err != nil {
		return nil, err
	}
	if err := a.repo.CreateTaskFilter(ctx, &row); err != nil {
		return nil, err
	}

	filter.ID = row.ID
	logging.Named("api").Debug().Int64("id", filter.ID).Str("name", filter.Name).Msg("task filter created")
	return &filter, nil
}

func (a *apiImpl) GetFilter(ctx context.Context, id int64) (*domain.TaskFilter, error) {
	if err := a.validator.ValidateFilterID(id); err != nil {
		return nil, validationError(err)
	}

	row, err := a.repo.GetTaskFilter(ctx, id)
	if err != nil {
		return nil, err
	}
	filter, err := a.mapper.FromDatabase(*row)
	if err != nil {
		return nil, err
	}
	return &filter, nil
}

func (a *apiImpl) ListFilters(ctx context.Context) ([]*domain.TaskFilter, error) {
	rows, err := a.repo.ListTaskFilters(ctx)
	if err != nil {
		return nil, err
	}
	filters, err := a.mapper.FromDatabaseSlice(rows)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.TaskFilter, len(filters))
	for i := range filters {
		result[i] = &filters[i]
	}
	return result, nil
}

func (a *apiImpl) UpdateFilter(ctx context.Context, filter domain.TaskFilter) (*domain.TaskFilter, error) {
	if err := a.validator.ValidateFilterForUpdate(filter); err != nil {
		return nil, validationError(err)
	}
	if err := a.checkDueDate(filter); err != nil {
		return nil, err
	}

	filter.Name = a.validator.GetValidFilterName(filter.Name)

	row, err := a.mapper.ToDatabase(filter)
	if err != nil {
		return nil, err
	}
	if err := a.repo.UpdateTaskFilter(ctx, &row); err != nil {
		return nil, err
	}
	return &filter, nil
}

func (a *apiImpl) DeleteFilter(ctx context.Context, id int64) error {
	if err := a.validator.ValidateFilterID(id); err != nil {
		return validationError(err)
	}
	return a.repo.DeleteTaskFilter(ctx, id)
}

// checkDueDate rejects a due-date expression that cannot be resolved.
// Resolvability does not depend on the reference day.
func (a *apiImpl) checkDueDate(filter domain.TaskFilter) error {
	if !filter.DueDate.HasValue() {
		return nil
	}
	expr := filter.DueDate.Value.Expression()
	if _, ok := daterange.Resolve(expr, a.now()); !ok {
		return errors.NewUnresolvableExpressionError("DueDate", expr)
	}
	return nil
}

// validationError wraps a validation.ValidationError so its message is
// what users see.
func validationError(err error) error {
	if verr, ok := err.(*validation.ValidationError); ok {
		return errors.NewValidationError(verr.GetUserFriendlyMessage(), verr)
	}
	return errors.NewValidationError(err.Error(), err)
}
