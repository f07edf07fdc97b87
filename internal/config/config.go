package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/hive/internal/planner"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration loaded from the environment.
type Config struct {
	Environment string `envconfig:"HIVE_ENV" default:"development"`
	LogLevel    string `envconfig:"HIVE_LOG_LEVEL" default:"info"`

	// Storage. Empty means ~/.hive/hive.db.
	DBPath       string `envconfig:"HIVE_DB"`
	CalendarFile string `envconfig:"HIVE_CALENDAR_FILE"`

	// HTTP
	ListenAddr     string        `envconfig:"HIVE_LISTEN_ADDR" default:":8080"`
	SessionSecret  string        `envconfig:"HIVE_SESSION_SECRET"`
	SessionTTL     time.Duration `envconfig:"HIVE_SESSION_TTL" default:"720h"`
	CORSOrigins    string        `envconfig:"HIVE_CORS_ORIGINS"`
	RateLimitRPS   int           `envconfig:"HIVE_RATE_LIMIT_RPS" default:"20"`
	RateLimitBurst int           `envconfig:"HIVE_RATE_LIMIT_BURST" default:"40"`

	// Planner defaults, overridden per user by their settings.
	WorkStart    string `envconfig:"HIVE_WORK_START" default:"09:00"`
	WorkEnd      string `envconfig:"HIVE_WORK_END" default:"17:00"`
	FocusMinutes int    `envconfig:"HIVE_FOCUS_MINUTES" default:"25"`
	BreakMinutes int    `envconfig:"HIVE_BREAK_MINUTES" default:"5"`

	// CLI account, by e-mail.
	User string `envconfig:"HIVE_USER"`
}

// Load reads HIVE_* variables and validates them. Names are spelled out in
// full so no unprefixed variable such as USER is ever consulted.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	start, err := planner.ParseClock(c.WorkStart)
	if err != nil {
		return fmt.Errorf("HIVE_WORK_START: %w", err)
	}
	end, err := planner.ParseClock(c.WorkEnd)
	if err != nil {
		return fmt.Errorf("HIVE_WORK_END: %w", err)
	}
	if start >= end {
		return fmt.Errorf("work window %s-%s is empty", c.WorkStart, c.WorkEnd)
	}
	if c.FocusMinutes <= 0 {
		return fmt.Errorf("HIVE_FOCUS_MINUTES must be positive")
	}
	if c.BreakMinutes < 0 {
		return fmt.Errorf("HIVE_BREAK_MINUTES cannot be negative")
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("rate limits cannot be negative")
	}
	return nil
}

// IsDevelopment enables console logging.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}

// PlannerOptions returns the configured default planning window and slot.
// Validate must have succeeded.
func (c *Config) PlannerOptions() planner.Options {
	return planner.Options{
		WindowStart: planner.MustClock(c.WorkStart),
		WindowEnd:   planner.MustClock(c.WorkEnd),
		Focus:       time.Duration(c.FocusMinutes) * time.Minute,
		Break:       time.Duration(c.BreakMinutes) * time.Minute,
	}
}

// ResolveDBPath returns DBPath, defaulting to ~/.hive/hive.db.
func (c *Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, ".hive", "hive.db"), nil
}

// CORSOriginList splits CORSOrigins on commas, dropping blanks.
func (c *Config) CORSOriginList() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// RequireSessionSecret is checked by commands that issue tokens.
func (c *Config) RequireSessionSecret() error {
	if len(c.SessionSecret) < 16 {
		return fmt.Errorf("HIVE_SESSION_SECRET must be set to at least 16 characters")
	}
	return nil
}
