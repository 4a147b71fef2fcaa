package validation

import (
	"fmt"
	"strings"

	"task-filter/internal/config"
	"task-filter/internal/domain"
)

type criterionInput struct {
	Operator domain.FilterOperator `json:"Operator" validate:"filter_op"`
	IDs      []int                 `json:"Value" validate:"omitempty,dive,gt=0"`
}

type filterInput struct {
	Name          string          `json:"Name" validate:"required,filter_name"`
	TagIDs        *criterionInput `json:"TagIds"`
	TaskStatusIDs *criterionInput `json:"TaskStatusIds"`
	DueDate       *criterionInput `json:"DueDate"`
}

// FilterValidator validates task filters before they are stored.
// Whether a due-date expression resolves is left to the caller.
type FilterValidator struct {
	validator *Validator
}

// NewFilterValidator creates a filter validator with default limits
func NewFilterValidator() *FilterValidator {
	return &FilterValidator{validator: NewValidator()}
}

// NewFilterValidatorWithConfig creates a filter validator using cfg's limits
func NewFilterValidatorWithConfig(cfg *config.Config) *FilterValidator {
	return &FilterValidator{validator: NewValidatorWithConfig(cfg)}
}

// ValidateFilter checks the name (after trimming), every operator, and that
// tag and status ids are positive.
func (fv *FilterValidator) ValidateFilter(filter domain.TaskFilter) error {
	input := filterInput{
		Name:          strings.TrimSpace(filter.Name),
		TagIDs:        idCriterionInput(filter.TagIDs),
		TaskStatusIDs: idCriterionInput(filter.TaskStatusIDs),
	}
	if filter.DueDate != nil {
		input.DueDate = &criterionInput{Operator: filter.DueDate.Operator}
	}
	return fv.validator.Struct(input)
}

// ValidateFilterForUpdate validates both the id and the filter contents
func (fv *FilterValidator) ValidateFilterForUpdate(filter domain.TaskFilter) error {
	result := NewValidationError()
	if err := fv.ValidateFilterID(filter.ID); err != nil {
		result.Errors = append(result.Errors, err.(*ValidationError).Errors...)
	}
	if err := fv.ValidateFilter(filter); err != nil {
		verr, ok := err.(*ValidationError)
		if !ok {
			return err
		}
		result.Errors = append(result.Errors, verr.Errors...)
	}
	if result.HasErrors() {
		return result
	}
	return nil
}

// ValidateFilterID checks that id is positive
func (fv *FilterValidator) ValidateFilterID(id int64) error {
	if id > 0 {
		return nil
	}
	result := NewValidationError()
	result.AddError("Id", ErrorTypeInvalidValue, fmt.Sprintf("Id must be a positive integer, got %d", id), id)
	return result
}

// GetValidFilterName returns the trimmed name
func (fv *FilterValidator) GetValidFilterName(name string) string {
	return strings.TrimSpace(name)
}

func idCriterionInput(c *domain.IDSetCriterion) *criterionInput {
	if c == nil {
		return nil
	}
	input := &criterionInput{Operator: c.Operator}
	if c.Value != nil {
		input.IDs = *c.Value
	}
	return input
}
