package cli

import (
	"context"

	"task-filter/internal/api"
	"task-filter/internal/errors"
)

// SeedCommand handles the filter seed command
type SeedCommand struct {
	app *App
	api api.API
}

// NewSeedCommand creates a new filter seed command handler
func NewSeedCommand(app *App) *SeedCommand {
	return &SeedCommand{app: app, api: app.api}
}

// Execute stores the sample filter if it is not present yet
func (c *SeedCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.NewInvalidInputError("command", "seed", "usage: tf filter seed")
	}

	filter, err := c.api.SeedSampleFilter(ctx)
	if err != nil {
		return err
	}

	c.app.printf("Sample task filter %d: %s\n", filter.ID, filter.Name)
	return nil
}
