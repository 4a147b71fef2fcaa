package cli

import (
	"context"
	"strconv"
	"strings"

	"task-filter/internal/api"
	"task-filter/internal/domain"
	"task-filter/internal/errors"
)

// ListCommand handles the filter list command
type ListCommand struct {
	app *App
	api api.API
}

// NewListCommand creates a new filter list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app, api: app.api}
}

// Execute prints every stored filter as a table
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.NewInvalidInputError("command", "list", "usage: tf filter list")
	}

	filters, err := c.api.ListFilters(ctx)
	if err != nil {
		return err
	}
	return c.printFilters(filters)
}

// printFilters prints one row per filter. Absent criteria are left blank;
// a criterion without a value shows its operator followed by "-".
func (c *ListCommand) printFilters(filters []*domain.TaskFilter) error {
	if len(filters) == 0 {
		c.app.printf("No task filters found\n")
		return nil
	}

	table := newTableWriter(c.app.out)
	table.row("ID", "NAME", "TAGS", "STATUSES", "DUE")
	for _, f := range filters {
		table.row(
			strconv.FormatInt(f.ID, 10),
			f.Name,
			formatIDCriterion(f.TagIDs),
			formatIDCriterion(f.TaskStatusIDs),
			formatDueCriterion(f.DueDate),
		)
	}
	return table.flush()
}

func formatIDCriterion(c *domain.IDSetCriterion) string {
	if c == nil {
		return ""
	}
	if !c.HasValue() {
		return c.Operator.String() + " -"
	}
	ids := make([]string, len(*c.Value))
	for i, id := range *c.Value {
		ids[i] = strconv.Itoa(id)
	}
	return c.Operator.String() + " [" + strings.Join(ids, ",") + "]"
}

func formatDueCriterion(c *domain.DateRangeCriterion) string {
	if c == nil {
		return ""
	}
	if !c.HasValue() {
		return c.Operator.String() + " -"
	}
	return c.Operator.String() + " " + c.Value.String()
}
