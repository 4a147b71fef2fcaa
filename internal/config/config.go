package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"task-filter/internal/logging"
)

// Config holds all configuration options for tf
type Config struct {
	Database    DatabaseConfig
	Time        TimeConfig
	Validation  ValidationConfig
	Logging     LoggingConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"TF_DB_DIR"`
	Filename       string        `env:"TF_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"TF_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"TF_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"TF_DB_DIR_PERMISSIONS"`
}

// TimeConfig holds date formatting configuration
type TimeConfig struct {
	DisplayFormat string `env:"TF_TIME_DISPLAY_FORMAT"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	FilterNameMaxLength int `env:"TF_VALIDATION_FILTER_NAME_MAX"`
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level  string `env:"TF_LOG_LEVEL"`
	Format string `env:"TF_LOG_FORMAT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TF_APP_TIMEOUT"`
	Verbose bool          `env:"TF_APP_VERBOSE"`
}

// NewConfig creates a new configuration with defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Database: DatabaseConfig{
			Dir:            filepath.Join(homeDir, ".tf"),
			Filename:       "tf.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Time: TimeConfig{
			DisplayFormat: "2006-01-02",
		},
		Validation: ValidationConfig{
			FilterNameMaxLength: 255,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoggingOptions converts the logging section for logging.Init. Verbose
// raises the level to debug.
func (c *Config) LoggingOptions() logging.Options {
	level := c.Logging.Level
	if c.Application.Verbose {
		level = "debug"
	}
	return logging.Options{Level: level, Format: c.Logging.Format}
}

// LoadFromEnvironment loads configuration from environment variables.
// Unparseable values are ignored and the current value kept.
func (c *Config) LoadFromEnvironment() error {
	if dir := os.Getenv("TF_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TF_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TF_DB_QUERY_TIMEOUT"); timeout != "" {
		c.Database.QueryTimeout = ParseDurationWithFallback(timeout, c.Database.QueryTimeout)
	}
	if timeout := os.Getenv("TF_DB_WRITE_TIMEOUT"); timeout != "" {
		c.Database.WriteTimeout = ParseDurationWithFallback(timeout, c.Database.WriteTimeout)
	}
	if perms := os.Getenv("TF_DB_DIR_PERMISSIONS"); perms != "" {
		c.Database.DirPermissions = ParseUint32WithFallback(perms, 8, c.Database.DirPermissions)
	}

	if format := os.Getenv("TF_TIME_DISPLAY_FORMAT"); format != "" {
		c.Time.DisplayFormat = format
	}

	if maxLen := os.Getenv("TF_VALIDATION_FILTER_NAME_MAX"); maxLen != "" {
		c.Validation.FilterNameMaxLength = ParseIntWithFallback(maxLen, c.Validation.FilterNameMaxLength)
	}

	if level := os.Getenv("TF_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
	if format := os.Getenv("TF_LOG_FORMAT"); format != "" {
		c.Logging.Format = strings.ToLower(format)
	}

	if timeout := os.Getenv("TF_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("TF_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	return nil
}

// Validate validates the configuration and returns the first problem found
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Time.DisplayFormat == "" {
		return &ConfigError{Field: "time.display_format", Message: "display format cannot be empty"}
	}

	if c.Validation.FilterNameMaxLength < 1 {
		return &ConfigError{Field: "validation.filter_name_max_length", Message: "filter name maximum length must be at least 1"}
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return &ConfigError{Field: "logging.format", Message: "log format must be console or json"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
