package cli

import (
	"context"
	"encoding/json"

	"task-filter/internal/api"
	"task-filter/internal/errors"
)

// ShowCommand handles the filter show command
type ShowCommand struct {
	app *App
	api api.API
}

// NewShowCommand creates a new filter show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{app: app, api: app.api}
}

// Execute prints the filter's JSON document
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "show", "usage: tf filter show ID")
	}
	id, err := parseFilterID(args[0])
	if err != nil {
		return err
	}

	filter, err := c.api.GetFilter(ctx, id)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(filter, "", "  ")
	if err != nil {
		return errors.WrapError(err, errors.ErrorTypeInvalidInput, "failed to encode task filter")
	}
	c.app.printf("%s\n", data)
	return nil
}
