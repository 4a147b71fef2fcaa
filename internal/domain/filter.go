package domain

import (
	"time"

	"task-filter/internal/daterange"
)

// FilterCriterion pairs an operator with an optional value.
// Value and Operator are independent: a criterion may carry an operator
// without a value, and nothing checks that the operator suits the value.
type FilterCriterion[T any] struct {
	Value    *T             `json:"Value"`
	Operator FilterOperator `json:"Operator"`
}

// NewFilterCriterion creates a criterion holding value.
func NewFilterCriterion[T any](op FilterOperator, value T) *FilterCriterion[T] {
	return &FilterCriterion[T]{Value: &value, Operator: op}
}

// HasValue reports whether the criterion carries a value.
func (c *FilterCriterion[T]) HasValue() bool {
	return c != nil && c.Value != nil
}

// IDSetCriterion filters on membership in a set of ids (tags, statuses).
type IDSetCriterion = FilterCriterion[[]int]

// DateRangeCriterion filters on a relative date range.
type DateRangeCriterion = FilterCriterion[daterange.RelativeDateRange]

// TaskFilter is a named, stored set of optional task criteria.
// A nil criterion means no constraint on that dimension.
type TaskFilter struct {
	ID            int64               `json:"Id"`
	Name          string              `json:"Name"`
	TagIDs        *IDSetCriterion     `json:"TagIds,omitempty"`
	TaskStatusIDs *IDSetCriterion     `json:"TaskStatusIds,omitempty"`
	DueDate       *DateRangeCriterion `json:"DueDate,omitempty"`
}

// NewTaskFilter creates a TaskFilter with no criteria.
func NewTaskFilter(name string) TaskFilter {
	return TaskFilter{Name: name}
}

// HasCriteria reports whether any criterion is set.
func (f TaskFilter) HasCriteria() bool {
	return f.TagIDs != nil || f.TaskStatusIDs != nil || f.DueDate != nil
}

// DueDateRange resolves the due-date criterion against today. It reports
// false when there is no due-date value or it cannot be resolved.
func (f TaskFilter) DueDateRange(today time.Time) (daterange.Range, bool) {
	if !f.DueDate.HasValue() {
		return daterange.Range{}, false
	}
	return f.DueDate.Value.DateRange(today)
}

// String returns the filter name for display purposes.
func (f TaskFilter) String() string {
	return f.Name
}
