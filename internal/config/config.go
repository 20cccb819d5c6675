package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for the shift CLI.
type Config struct {
	DatabasePath string       `yaml:"database_path"`
	WeekStart    string       `yaml:"week_start"`
	Report       ReportConfig `yaml:"report"`
	Log          LogConfig    `yaml:"log"`
}

// ReportConfig holds weekly report defaults.
type ReportConfig struct {
	Window string `yaml:"window"`
}

// LogConfig controls use-case logging.
type LogConfig struct {
	UseCases bool   `yaml:"use_cases"`
	Level    string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults. home may be empty,
// in which case paths are relative to the working directory.
func DefaultConfig(home string) *Config {
	return &Config{
		DatabasePath: filepath.Join(home, ".shift", "shift.db"),
		WeekStart:    "monday",
		Report:       ReportConfig{Window: string(domain.WindowWeek)},
		Log:          LogConfig{UseCases: false, Level: "info"},
	}
}

// DefaultPath returns the config file location: $SHIFT_CONFIG, or
// ~/.shift/config.yaml.
func DefaultPath(home string) string {
	if v := os.Getenv("SHIFT_CONFIG"); v != "" {
		return v
	}
	return filepath.Join(home, ".shift", "config.yaml")
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides and validates the result. A missing file is not an
// error.
func Load(path, home string) (*Config, error) {
	cfg := DefaultConfig(home)

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SHIFT_DB"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("SHIFT_LOG_USE_CASES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Log.UseCases = b
		}
	}
	if v := os.Getenv("SHIFT_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("SHIFT_WEEK_START"); v != "" {
		c.WeekStart = v
	}
}

// Validate rejects values the rest of the program cannot interpret.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.DatabasePath) == "" {
		errs = append(errs, fmt.Errorf("database_path is required"))
	}
	if _, err := c.WeekStartDay(); err != nil {
		errs = append(errs, err)
	}
	switch domain.ReportWindow(c.Report.Window) {
	case domain.WindowWeek, domain.WindowSprint:
	default:
		errs = append(errs, fmt.Errorf("report.window must be %q or %q, got %q", domain.WindowWeek, domain.WindowSprint, c.Report.Window))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// WeekStartDay resolves week_start to a weekday.
func (c *Config) WeekStartDay() (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(c.WeekStart)) {
	case "monday":
		return time.Monday, nil
	case "sunday":
		return time.Sunday, nil
	}
	return 0, fmt.Errorf("week_start must be monday or sunday, got %q", c.WeekStart)
}

// LogLevel resolves log.level to a slog level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
