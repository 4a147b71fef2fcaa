package cli

import (
	"context"

	"task-filter/internal/api"
	"task-filter/internal/errors"
)

// DeleteCommand handles the filter delete command
type DeleteCommand struct {
	app *App
	api api.API
}

// NewDeleteCommand creates a new filter delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app, api: app.api}
}

// Execute deletes the filter with the given id. This cannot be undone.
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "delete", "usage: tf filter delete ID")
	}
	id, err := parseFilterID(args[0])
	if err != nil {
		return err
	}

	filter, err := c.api.GetFilter(ctx, id)
	if err != nil {
		return err
	}
	if err := c.api.DeleteFilter(ctx, id); err != nil {
		return err
	}

	c.app.printf("Deleted task filter %d: %s\n", filter.ID, filter.Name)
	return nil
}
