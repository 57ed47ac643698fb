package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:wikibot.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule struct {
		CheckInterval        int `yaml:"check_interval" json:"check_interval" jsonschema:"default=60,description=Scheduler tick interval in seconds"`
		MaxConcurrentChecks  int `yaml:"max_concurrent_checks" json:"max_concurrent_checks" jsonschema:"default=5,description=Maximum feed checks in flight"`
		DefaultCheckInterval int `yaml:"default_check_interval" json:"default_check_interval" jsonschema:"default=15,description=Per-feed check interval in minutes when a subscription has none"`
		MaxEntriesPerCheck   int `yaml:"max_entries_per_check" json:"max_entries_per_check" jsonschema:"default=5,description=Maximum new entries posted per feed check"`
		PostDelay            int `yaml:"post_delay" json:"post_delay" jsonschema:"default=500,description=Delay between consecutive posts of one feed in milliseconds"`
		StaleAfter           int `yaml:"stale_after" json:"stale_after" jsonschema:"default=14,description=Age in days after which pending submissions are expired"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Feed scheduler configuration"`

	Feeds struct {
		HTTPTimeout          int    `yaml:"http_timeout" json:"http_timeout" jsonschema:"default=30,description=HTTP timeout for feed fetches in seconds"`
		UserAgent            string `yaml:"user_agent" json:"user_agent" jsonschema:"default=Wikibot/1.0,description=User agent for feed fetches"`
		DebugForcePost       bool   `yaml:"debug_force_post" json:"debug_force_post" jsonschema:"default=false,description=Debug only: bypass dedup and repost recent entries"`
		MaxDescriptionLength int    `yaml:"max_description_length" json:"max_description_length" jsonschema:"default=400,description=Truncate entry descriptions to this length"`
	} `yaml:"feeds" json:"feeds" jsonschema:"description=Feed fetching configuration"`

	Wiki struct {
		Endpoint        string   `yaml:"endpoint" json:"endpoint" jsonschema:"required,description=URL of the published single-page wiki document"`
		ExcludedDomains []string `yaml:"excluded_domains" json:"excluded_domains" jsonschema:"description=Host suffixes never treated as trackable URLs"`
	} `yaml:"wiki" json:"wiki" jsonschema:"description=Wiki snapshot configuration"`

	Channels ChannelsConfig `yaml:"channels" json:"channels" jsonschema:"description=Channel to status mapping"`
}

// ChannelsConfig maps channel identifiers to the status their messages assert.
// Loaded at startup instead of compiled in, so deployments can re-map channels
// without a rebuild.
type ChannelsConfig struct {
	Pending           []int64 `yaml:"pending" json:"pending" jsonschema:"description=Submission channels: URLs seen here become pending"`
	Added             []int64 `yaml:"added" json:"added" jsonschema:"description=Confirmed-live channels: URLs seen here become added"`
	Removed           []int64 `yaml:"removed" json:"removed" jsonschema:"description=Removal channels: URLs seen here become removed"`
	SubmissionParents []int64 `yaml:"submission_parents" json:"submission_parents" jsonschema:"description=Forum channels whose threads count as submission contexts"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:wikibot.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for schedule
	if cfg.Schedule.CheckInterval == 0 {
		cfg.Schedule.CheckInterval = 60
	}
	if cfg.Schedule.MaxConcurrentChecks == 0 {
		cfg.Schedule.MaxConcurrentChecks = 5
	}
	if cfg.Schedule.DefaultCheckInterval == 0 {
		cfg.Schedule.DefaultCheckInterval = 15
	}
	if cfg.Schedule.MaxEntriesPerCheck == 0 {
		cfg.Schedule.MaxEntriesPerCheck = 5
	}
	if cfg.Schedule.PostDelay == 0 {
		cfg.Schedule.PostDelay = 500
	}
	if cfg.Schedule.StaleAfter == 0 {
		cfg.Schedule.StaleAfter = 14
	}

	// set defaults for feeds
	if cfg.Feeds.HTTPTimeout == 0 {
		cfg.Feeds.HTTPTimeout = 30
	}
	if cfg.Feeds.UserAgent == "" {
		cfg.Feeds.UserAgent = "Wikibot/1.0"
	}
	if cfg.Feeds.MaxDescriptionLength == 0 {
		cfg.Feeds.MaxDescriptionLength = 400
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Wiki.Endpoint == "" {
		return fmt.Errorf("wiki.endpoint is required")
	}

	if cfg.Schedule.CheckInterval < 1 {
		return fmt.Errorf("schedule.check_interval must be at least 1 second")
	}
	if cfg.Schedule.MaxConcurrentChecks < 1 {
		return fmt.Errorf("schedule.max_concurrent_checks must be at least 1")
	}
	if cfg.Schedule.MaxEntriesPerCheck < 1 {
		return fmt.Errorf("schedule.max_entries_per_check must be at least 1")
	}
	if cfg.Schedule.PostDelay < 0 {
		return fmt.Errorf("schedule.post_delay must be non-negative")
	}

	if cfg.Feeds.HTTPTimeout < 1 {
		return fmt.Errorf("feeds.http_timeout must be at least 1 second")
	}
	if cfg.Feeds.MaxDescriptionLength < 0 {
		return fmt.Errorf("feeds.max_description_length must be non-negative")
	}

	// a channel may assert only one status
	seen := map[int64]string{}
	for _, set := range []struct {
		name string
		ids  []int64
	}{
		{"pending", cfg.Channels.Pending},
		{"added", cfg.Channels.Added},
		{"removed", cfg.Channels.Removed},
	} {
		for _, id := range set.ids {
			if prev, ok := seen[id]; ok {
				return fmt.Errorf("channel %d mapped to both %s and %s", id, prev, set.name)
			}
			seen[id] = set.name
		}
	}

	return nil
}

// TickInterval returns the scheduler tick interval
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Schedule.CheckInterval) * time.Second
}

// FeedCheckInterval returns the default per-feed check interval
func (c *Config) FeedCheckInterval() time.Duration {
	return time.Duration(c.Schedule.DefaultCheckInterval) * time.Minute
}

// PostDelay returns the delay between consecutive posts of one feed
func (c *Config) PostDelay() time.Duration {
	return time.Duration(c.Schedule.PostDelay) * time.Millisecond
}

// StaleCutoff returns the age after which pending submissions expire
func (c *Config) StaleCutoff() time.Duration {
	return time.Duration(c.Schedule.StaleAfter) * 24 * time.Hour
}

// HTTPTimeout returns the timeout for feed fetches
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.Feeds.HTTPTimeout) * time.Second
}

// ConnMaxLifetime returns the maximum lifetime of a database connection
func (c *Config) ConnMaxLifetime() time.Duration {
	return time.Duration(c.Database.ConnMaxLifetime) * time.Second
}
