package cli

import (
	"context"

	"task-filter/internal/api"
	"task-filter/internal/daterange"
	"task-filter/internal/domain"
)

// CreateOptions carries the flags of the filter create command. A *Set
// field reports whether the matching flag was given, so an operator alone
// yields a criterion without a value.
type CreateOptions struct {
	Name string

	Due      string
	DueSet   bool
	DueOp    string
	DueOpSet bool

	Tags      string
	TagsSet   bool
	TagsOp    string
	TagsOpSet bool

	Statuses      string
	StatusesSet   bool
	StatusesOp    string
	StatusesOpSet bool
}

// CreateCommand handles the filter create command
type CreateCommand struct {
	app  *App
	api  api.API
	opts CreateOptions
}

// NewCreateCommand creates a new filter create command handler
func NewCreateCommand(app *App, opts CreateOptions) *CreateCommand {
	return &CreateCommand{app: app, api: app.api, opts: opts}
}

// Execute builds the filter from the flags and stores it
func (c *CreateCommand) Execute(ctx context.Context, args []string) error {
	filter, err := c.buildFilter()
	if err != nil {
		return err
	}

	created, err := c.api.CreateFilter(ctx, filter)
	if err != nil {
		return err
	}

	c.app.printf("Created task filter %d: %s\n", created.ID, created.Name)
	return nil
}

func (c *CreateCommand) buildFilter() (domain.TaskFilter, error) {
	o := c.opts
	filter := domain.NewTaskFilter(o.Name)

	var err error
	if filter.TagIDs, err = idCriterion("tags", o.Tags, o.TagsSet, o.TagsOp, o.TagsOpSet); err != nil {
		return filter, err
	}
	if filter.TaskStatusIDs, err = idCriterion("statuses", o.Statuses, o.StatusesSet, o.StatusesOp, o.StatusesOpSet); err != nil {
		return filter, err
	}

	if o.DueSet || o.DueOpSet {
		op, err := operatorOrDefault("due-op", o.DueOp, o.DueOpSet)
		if err != nil {
			return filter, err
		}
		filter.DueDate = &domain.DateRangeCriterion{Operator: op}
		if o.DueSet {
			value := daterange.NewRelativeDateRange(o.Due)
			filter.DueDate.Value = &value
		}
	}
	return filter, nil
}

func idCriterion(field, value string, valueSet bool, opValue string, opSet bool) (*domain.IDSetCriterion, error) {
	if !valueSet && !opSet {
		return nil, nil
	}

	op, err := operatorOrDefault(field+"-op", opValue, opSet)
	if err != nil {
		return nil, err
	}
	c := &domain.IDSetCriterion{Operator: op}
	if valueSet {
		ids, err := parseIDList(field, value)
		if err != nil {
			return nil, err
		}
		c.Value = &ids
	}
	return c, nil
}

// operatorOrDefault parses value when the flag was given, and otherwise
// falls back to In.
func operatorOrDefault(field, value string, set bool) (domain.FilterOperator, error) {
	if !set {
		return domain.OperatorIn, nil
	}
	return parseOperator(field, value)
}
