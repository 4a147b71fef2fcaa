package cli

import (
	"context"
	"strings"

	"task-filter/internal/api"
	"task-filter/internal/errors"
)

// ResolveCommand handles the resolve command
type ResolveCommand struct {
	app   *App
	api   api.API
	today string
}

// NewResolveCommand creates a new resolve command handler. today is the
// raw --today value; empty means the current day.
func NewResolveCommand(app *App, today string) *ResolveCommand {
	return &ResolveCommand{app: app, api: app.api, today: today}
}

// Execute resolves the expression formed by joining args and prints the
// range as "start  end".
func (c *ResolveCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("expression", "", "usage: tf resolve EXPRESSION [--today YYYY-MM-DD]")
	}

	today, err := parseToday(c.today)
	if err != nil {
		return err
	}

	r, err := c.api.ResolveExpression(strings.Join(args, " "), today)
	if err != nil {
		return err
	}

	c.app.printf("%s  %s\n", c.app.formatDate(r.Start), c.app.formatDate(r.End))
	return nil
}
