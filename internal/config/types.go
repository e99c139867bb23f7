package config

import "time"

// Config represents the main application configuration structure.
// It contains all configuration settings for the incident dashboard:
// server settings, the dataset source, and the optional GitHub lookup.
type Config struct {
	// HTTP server port (e.g., "3000")
	Port string

	// Application environment (e.g., "development", "production")
	Environment string

	// Logging level (e.g., "info", "debug", "warn", "error")
	LogLevel string

	// Incident dataset configuration
	Dataset DatasetConfig

	// GitHub commit lookup configuration
	GitHub GitHubConfig
}

// DatasetConfig describes where incidents are read from and how often they
// are re-read.
type DatasetConfig struct {
	// Source kind: "file" or "redis"
	Source string

	// Path to the incident CSV for file sources
	CSVPath string

	// ReloadInterval re-reads the source periodically; zero loads once
	ReloadInterval time.Duration

	// Redis connection for redis sources
	Redis RedisConfig
}

// RedisConfig holds the connection to the Redis instance the incident
// producer publishes the CSV to.
type RedisConfig struct {
	// Redis server address (e.g., "localhost:6379")
	Address string

	// Redis password for authentication
	Password string

	// Redis database number (0-15)
	Database int

	// Key prefix for all Redis keys (e.g., "incident-dashboard")
	KeyPrefix string
}

// GitHubConfig holds configuration for looking up commits on GitHub.
type GitHubConfig struct {
	// Whether the GitHub endpoints are enabled (true/false)
	Enabled bool

	// Personal access token; unauthenticated requests are rate limited
	Token string

	// API base URL for GitHub Enterprise (empty for github.com)
	BaseURL string

	// Timeout for a single GitHub API call
	Timeout time.Duration
}

// ServerYAMLConfig represents server-related configuration settings.
// It contains HTTP server configuration including port, environment,
// and logging settings that can be overridden by command-line flags.
type ServerYAMLConfig struct {
	// HTTP server port (e.g., "3000")
	Port string `yaml:"port"`

	// Application environment (e.g., "development", "production")
	Environment string `yaml:"environment"`

	// Logging level (e.g., "info", "debug", "warn", "error")
	LogLevel string `yaml:"log_level"`
}

// DatasetYAMLConfig represents dataset configuration from YAML files.
type DatasetYAMLConfig struct {
	// Source kind: "file" or "redis"
	Source string `yaml:"source"`

	// Path to the incident CSV
	CSVPath string `yaml:"csv_path"`

	// Reload interval as string (e.g., "30s", "5m"); empty disables reloading
	ReloadInterval string `yaml:"reload_interval"`

	// Redis connection settings
	Redis RedisYAMLConfig `yaml:"redis"`
}

// RedisYAMLConfig represents Redis configuration from YAML files.
type RedisYAMLConfig struct {
	Address   string `yaml:"address"`
	Password  string `yaml:"password"`
	Database  int    `yaml:"database"`
	KeyPrefix string `yaml:"key_prefix"`
}

// GitHubYAMLConfig represents GitHub lookup configuration from YAML files.
type GitHubYAMLConfig struct {
	Enabled bool   `yaml:"enabled"`
	Token   string `yaml:"token"`
	BaseURL string `yaml:"base_url"`

	// Timeout as string (e.g., "15s")
	Timeout string `yaml:"timeout"`
}

// YAMLConfig represents the structure of the YAML configuration file.
type YAMLConfig struct {
	Server  ServerYAMLConfig  `yaml:"server"`
	Dataset DatasetYAMLConfig `yaml:"dataset"`
	GitHub  GitHubYAMLConfig  `yaml:"github"`
}
