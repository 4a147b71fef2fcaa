package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"task-filter/internal/api"
	"task-filter/internal/config"
	"task-filter/internal/logging"
	"task-filter/internal/repository/sqlite"
	"task-filter/internal/validation"
)

// Command is implemented by every command handler
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config
	api    api.API
	repo   sqlite.Repository
	flags  rootFlags
}

type rootFlags struct {
	dbDir          string
	dbFilename     string
	dbQueryTimeout time.Duration
	dbWriteTimeout time.Duration
	timeFormat     string
	nameMaxLength  int
	logLevel       string
	logFormat      string
	appTimeout     time.Duration
	verbose        bool
}

// NewRootCommand creates the root cobra command. When apiInstance is nil
// the database is opened on first use, after flags have been applied.
func NewRootCommand(apiInstance api.API, cfg *config.Config) *RootCommand {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	root := &RootCommand{
		api:    apiInstance,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "tf",
		Short: "Store task filters and resolve relative date expressions",
		Long: `Task Filter (tf) stores named task filters and resolves the relative date
expressions they use into concrete date ranges.

EXPRESSIONS:
  T, T+n, T-n        today, or today through n days ahead/behind
  WB, WE             first/last day of the current week (weeks start Sunday)
  W, W+n, W-n        the current week, or the week n weeks away
  MB, ME             first/last day of the current month
  M, M+n, M-n        the current month, or the month n months away
  YB, YE             first/last day of the current year
  Y, Y+n, Y-n        the current year, stretched n years forward or back
  2024-03-15         any absolute date

EXAMPLES:
  tf resolve T+10                                    # today through ten days ahead
  tf resolve M-1 --today 2024-05-15                  # all of April 2024
  tf filter create --name "Due soon" --due T+7       # store a filter
  tf filter create --name "Open" --statuses 1,2 --statuses-op NotIn
  tf filter list                                     # list stored filters
  tf filter range 1                                  # resolve a filter's due date

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

    TF_DB_DIR                              Database directory (default: ~/.tf)
    TF_DB_FILENAME                         Database filename (default: tf.db)
    TF_DB_QUERY_TIMEOUT                    Query timeout (default: 10s)
    TF_DB_WRITE_TIMEOUT                    Write timeout (default: 5s)
    TF_DB_DIR_PERMISSIONS                  Database directory permissions (default: 0755)
    TF_TIME_DISPLAY_FORMAT                 Date format for output (default: 2006-01-02)
    TF_VALIDATION_FILTER_NAME_MAX          Max filter name length (default: 255)
    TF_LOG_LEVEL                           Log level (default: warn)
    TF_LOG_FORMAT                          Log format, console or json (default: console)
    TF_APP_TIMEOUT                         Application timeout (default: 30s)
    TF_APP_VERBOSE                         Enable verbose output (default: false)
    TF_DEBUG                               Force debug logging when set`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.applyFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the root command and closes the database if one was opened
func (r *RootCommand) Execute() error {
	defer r.close()
	return r.cmd.Execute()
}

func (r *RootCommand) close() {
	if r.repo == nil {
		return
	}
	if err := r.repo.Close(); err != nil {
		logging.Named("cli").Warn().Err(err).Msg("failed to close database")
	}
	r.repo = nil
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.StringVar(&r.flags.dbDir, "db-dir", "", "Database directory (overrides TF_DB_DIR)")
	flags.StringVar(&r.flags.dbFilename, "db-filename", "", "Database filename (overrides TF_DB_FILENAME)")
	flags.DurationVar(&r.flags.dbQueryTimeout, "db-query-timeout", 0, "Database query timeout (overrides TF_DB_QUERY_TIMEOUT)")
	flags.DurationVar(&r.flags.dbWriteTimeout, "db-write-timeout", 0, "Database write timeout (overrides TF_DB_WRITE_TIMEOUT)")
	flags.StringVar(&r.flags.timeFormat, "time-format", "", "Date display format (overrides TF_TIME_DISPLAY_FORMAT)")
	flags.IntVar(&r.flags.nameMaxLength, "name-max-length", 0, "Maximum filter name length (overrides TF_VALIDATION_FILTER_NAME_MAX)")
	flags.StringVar(&r.flags.logLevel, "log-level", "", "Log level (overrides TF_LOG_LEVEL)")
	flags.StringVar(&r.flags.logFormat, "log-format", "", "Log format, console or json (overrides TF_LOG_FORMAT)")
	flags.DurationVar(&r.flags.appTimeout, "app-timeout", 0, "Application timeout (overrides TF_APP_TIMEOUT)")
	flags.BoolVar(&r.flags.verbose, "verbose", false, "Enable verbose output (overrides TF_APP_VERBOSE)")
}

// overrides collects the flags that were set on the command line
func (r *RootCommand) overrides() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	o := &config.ConfigOverrides{}

	if flags.Changed("db-dir") {
		o.DBDir = &r.flags.dbDir
	}
	if flags.Changed("db-filename") {
		o.DBFilename = &r.flags.dbFilename
	}
	if flags.Changed("db-query-timeout") {
		o.DBQueryTimeout = &r.flags.dbQueryTimeout
	}
	if flags.Changed("db-write-timeout") {
		o.DBWriteTimeout = &r.flags.dbWriteTimeout
	}
	if flags.Changed("time-format") {
		o.TimeFormat = &r.flags.timeFormat
	}
	if flags.Changed("name-max-length") {
		o.FilterNameMaxLength = &r.flags.nameMaxLength
	}
	if flags.Changed("log-level") {
		o.LogLevel = &r.flags.logLevel
	}
	if flags.Changed("log-format") {
		o.LogFormat = &r.flags.logFormat
	}
	if flags.Changed("app-timeout") {
		o.Timeout = &r.flags.appTimeout
	}
	if flags.Changed("verbose") {
		o.Verbose = &r.flags.verbose
	}
	return o
}

// applyFlags applies flag overrides, re-validates and re-initializes logging
func (r *RootCommand) applyFlags() error {
	config.ApplyOverrides(r.config, r.overrides())
	if err := r.config.Validate(); err != nil {
		return err
	}
	logging.Init(r.config.LoggingOptions())
	logging.Named("cli").Debug().Str("db", r.config.GetDatabasePath()).Msg("configuration loaded")
	return nil
}

// getAPI returns the injected API or opens the configured database
func (r *RootCommand) getAPI() (api.API, error) {
	if r.api != nil {
		return r.api, nil
	}
	repo, err := config.CreateRepository(r.config)
	if err != nil {
		return nil, err
	}
	r.repo = repo
	r.api = api.NewWithValidator(repo, validation.NewFilterValidatorWithConfig(r.config))
	return r.api, nil
}

// run executes handler with the configured timeout. Handler errors are
// turned into user messages for operation.
func (r *RootCommand) run(cmd *cobra.Command, args []string, operation string, needsDB bool, newHandler func(*App) Command) error {
	apiInstance := r.api
	if needsDB {
		var err error
		if apiInstance, err = r.getAPI(); err != nil {
			return NewErrorHandler().Handle(operation, err)
		}
	} else if apiInstance == nil {
		// Resolution touches no storage.
		apiInstance = api.New(nil)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), r.config.Application.Timeout)
	defer cancel()

	app := NewAppWithConfig(apiInstance, r.config).WithOutput(cmd.OutOrStdout())
	if err := newHandler(app).Execute(ctx, args); err != nil {
		return NewErrorHandler().Handle(operation, err)
	}
	return nil
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	var resolveToday string
	resolveCmd := &cobra.Command{
		Use:   "resolve EXPRESSION",
		Short: "Resolve a relative date expression",
		Long: `Resolve a relative date expression into a date range and print its first
and last day.

Examples:
  tf resolve T+10
  tf resolve WE --today 2024-05-15
  tf resolve 2024-03-15`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, "resolve expression", false, func(app *App) Command {
				return NewResolveCommand(app, resolveToday)
			})
		},
	}
	resolveCmd.Flags().StringVar(&resolveToday, "today", "", "Reference day as YYYY-MM-DD (default: the current day)")

	filterCmd := &cobra.Command{
		Use:   "filter",
		Short: "Manage stored task filters",
	}

	var createOpts CreateOptions
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task filter",
		Long: `Create a named task filter. Every criterion is optional. Giving only an
operator flag stores the criterion without a value. Operators default to In.

Operators: Equal, NotEqual, GreaterThan, LessThan, GreaterThanOrEqual,
LessThanOrEqual, In, NotIn (or =, !=, >, <, >=, <=, in, not_in)

Examples:
  tf filter create --name "Due soon" --due T+10
  tf filter create --name "Not urgent" --tags 1,2 --tags-op NotEqual`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			createOpts.DueSet = flags.Changed("due")
			createOpts.DueOpSet = flags.Changed("due-op")
			createOpts.TagsSet = flags.Changed("tags")
			createOpts.TagsOpSet = flags.Changed("tags-op")
			createOpts.StatusesSet = flags.Changed("statuses")
			createOpts.StatusesOpSet = flags.Changed("statuses-op")
			return r.run(cmd, args, "create task filter", true, func(app *App) Command {
				return NewCreateCommand(app, createOpts)
			})
		},
	}
	cf := createCmd.Flags()
	cf.StringVar(&createOpts.Name, "name", "", "Filter name")
	cf.StringVar(&createOpts.Due, "due", "", "Due date expression, e.g. T+10 or ME")
	cf.StringVar(&createOpts.DueOp, "due-op", "In", "Due date operator")
	cf.StringVar(&createOpts.Tags, "tags", "", "Comma-separated tag ids")
	cf.StringVar(&createOpts.TagsOp, "tags-op", "In", "Tag operator")
	cf.StringVar(&createOpts.Statuses, "statuses", "", "Comma-separated task status ids")
	cf.StringVar(&createOpts.StatusesOp, "statuses-op", "In", "Task status operator")
	_ = createCmd.MarkFlagRequired("name")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List task filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, "list task filters", true, func(app *App) Command {
				return NewListCommand(app)
			})
		},
	}

	showCmd := &cobra.Command{
		Use:   "show ID",
		Short: "Print a task filter as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, "show task filter", true, func(app *App) Command {
				return NewShowCommand(app)
			})
		},
	}

	var rangeToday string
	rangeCmd := &cobra.Command{
		Use:   "range ID",
		Short: "Resolve a task filter's due date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, "resolve task filter due date", true, func(app *App) Command {
				return NewRangeCommand(app, rangeToday)
			})
		},
	}
	rangeCmd.Flags().StringVar(&rangeToday, "today", "", "Reference day as YYYY-MM-DD (default: the current day)")

	deleteCmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a task filter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, "delete task filter", true, func(app *App) Command {
				return NewDeleteCommand(app)
			})
		},
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Store the sample task filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, "seed task filters", true, func(app *App) Command {
				return NewSeedCommand(app)
			})
		},
	}

	filterCmd.AddCommand(createCmd, listCmd, showCmd, rangeCmd, deleteCmd, seedCmd)
	r.cmd.AddCommand(resolveCmd, filterCmd)
}
