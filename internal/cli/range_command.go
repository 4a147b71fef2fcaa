package cli

import (
	"context"

	"task-filter/internal/api"
	"task-filter/internal/errors"
)

// RangeCommand handles the filter range command
type RangeCommand struct {
	app   *App
	api   api.API
	today string
}

// NewRangeCommand creates a new filter range command handler
func NewRangeCommand(app *App, today string) *RangeCommand {
	return &RangeCommand{app: app, api: app.api, today: today}
}

// Execute resolves the filter's due-date criterion and prints
// "name: operator start  end"
func (c *RangeCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "range", "usage: tf filter range ID [--today YYYY-MM-DD]")
	}
	id, err := parseFilterID(args[0])
	if err != nil {
		return err
	}
	today, err := parseToday(c.today)
	if err != nil {
		return err
	}

	due, err := c.api.ResolveFilterDueDate(ctx, id, today)
	if err != nil {
		return err
	}

	c.app.printf("%s: %s %s  %s\n", due.Filter.Name, due.Operator,
		c.app.formatDate(due.Range.Start), c.app.formatDate(due.Range.End))
	return nil
}
