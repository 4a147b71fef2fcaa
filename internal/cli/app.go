package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"task-filter/internal/api"
	"task-filter/internal/config"
	"task-filter/internal/domain"
	"task-filter/internal/errors"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// todayLayout is the accepted format of --today
const todayLayout = "2006-01-02"

// App bundles what command handlers need
type App struct {
	api    api.API
	config *config.Config
	out    io.Writer
}

// NewApp creates an App with default configuration writing to stdout
func NewApp(apiInstance api.API) *App {
	return NewAppWithConfig(apiInstance, config.NewConfig())
}

// NewAppWithConfig creates an App using cfg
func NewAppWithConfig(apiInstance api.API, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &App{api: apiInstance, config: cfg, out: os.Stdout}
}

// WithOutput returns a copy of the App writing to w
func (a *App) WithOutput(w io.Writer) *App {
	clone := *a
	clone.out = w
	return &clone
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) formatDate(t time.Time) string {
	return t.Format(a.config.Time.DisplayFormat)
}

// parseToday returns the reference day: today by the local clock, or the
// --today value when given.
func parseToday(value string) (time.Time, error) {
	if value == "" {
		return timeNow(), nil
	}
	t, err := time.ParseInLocation(todayLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, errors.NewInvalidInputError("today", value, "expected a date like 2024-05-15")
	}
	return t, nil
}

// parseFilterID parses a positive task filter id argument
func parseFilterID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewInvalidInputError("id", arg, "task filter id must be a positive integer")
	}
	return id, nil
}

// parseIDList parses a comma-separated id list such as "1,2,3". An empty
// string yields an empty, non-nil list.
func parseIDList(field, value string) ([]int, error) {
	ids := []int{}
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.NewInvalidInputError(field, value, fmt.Sprintf("%q is not an integer", part))
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseOperator parses an operator flag value
func parseOperator(field, value string) (domain.FilterOperator, error) {
	op, err := domain.ParseFilterOperator(value)
	if err != nil {
		return 0, errors.NewInvalidInputError(field, value, err.Error())
	}
	return op, nil
}
