package domain

import (
	"encoding/json"
	"fmt"

	"task-filter/internal/daterange"
	"task-filter/internal/errors"
	"task-filter/internal/repository/sqlite"
)

// TaskFilterMapper handles conversion between domain and database task
// filters. Each criterion is stored as its JSON document.
type TaskFilterMapper struct{}

// NewTaskFilterMapper creates a new TaskFilterMapper instance.
func NewTaskFilterMapper() *TaskFilterMapper {
	return &TaskFilterMapper{}
}

// ToDatabase converts a domain TaskFilter to a database row.
func (m *TaskFilterMapper) ToDatabase(filter TaskFilter) (sqlite.TaskFilter, error) {
	row := sqlite.TaskFilter{ID: filter.ID, Name: filter.Name}

	var err error
	if row.TagIDs, err = encodeCriterion(filter.TagIDs); err != nil {
		return sqlite.TaskFilter{}, errors.NewDatabaseError("encode tag_ids", err)
	}
	if row.TaskStatusIDs, err = encodeCriterion(filter.TaskStatusIDs); err != nil {
		return sqlite.TaskFilter{}, errors.NewDatabaseError("encode task_status_ids", err)
	}
	if row.DueDate, err = encodeCriterion(filter.DueDate); err != nil {
		return sqlite.TaskFilter{}, errors.NewDatabaseError("encode due_date", err)
	}
	return row, nil
}

// FromDatabase converts a database row to a domain TaskFilter.
func (m *TaskFilterMapper) FromDatabase(row sqlite.TaskFilter) (TaskFilter, error) {
	filter := TaskFilter{ID: row.ID, Name: row.Name}

	var err error
	if filter.TagIDs, err = decodeCriterion[[]int](row.TagIDs); err != nil {
		return TaskFilter{}, decodeError(row.ID, "tag_ids", err)
	}
	if filter.TaskStatusIDs, err = decodeCriterion[[]int](row.TaskStatusIDs); err != nil {
		return TaskFilter{}, decodeError(row.ID, "task_status_ids", err)
	}
	if filter.DueDate, err = decodeCriterion[daterange.RelativeDateRange](row.DueDate); err != nil {
		return TaskFilter{}, decodeError(row.ID, "due_date", err)
	}
	return filter, nil
}

// FromDatabaseSlice converts database rows to domain TaskFilters. The
// first row that fails to decode aborts the conversion.
func (m *TaskFilterMapper) FromDatabaseSlice(rows []*sqlite.TaskFilter) ([]TaskFilter, error) {
	filters := make([]TaskFilter, 0, len(rows))
	for _, row := range rows {
		filter, err := m.FromDatabase(*row)
		if err != nil {
			return nil, err
		}
		filters = append(filters, filter)
	}
	return filters, nil
}

func encodeCriterion[T any](c *FilterCriterion[T]) (*string, error) {
	if c == nil {
		return nil, nil
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	s := string(data)
	return &s, nil
}

// decodeCriterion treats SQL NULL and a JSON null document as absent.
func decodeCriterion[T any](s *string) (*FilterCriterion[T], error) {
	if s == nil {
		return nil, nil
	}
	var c *FilterCriterion[T]
	if err := json.Unmarshal([]byte(*s), &c); err != nil {
		return nil, err
	}
	return c, nil
}

func decodeError(id int64, column string, err error) *errors.AppError {
	return errors.NewDatabaseError(fmt.Sprintf("decode %s", column), err).
		WithContext("task_filter_id", id)
}
