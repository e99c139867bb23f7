package config

import "time"

// Default configuration values
const (
	// DefaultPort is the default HTTP server port
	DefaultPort = "3000"

	// DefaultEnvironment is the default deployment environment
	DefaultEnvironment = "development"

	// DefaultLogLevel is the default logging level
	DefaultLogLevel = "info"

	// DefaultCSVPath is the incident CSV read when nothing else is configured
	DefaultCSVPath = "incidents.csv"

	// DefaultDatasetSource is the default dataset source kind
	DefaultDatasetSource = "file"

	// DefaultRedisKeyPrefix namespaces the keys read from Redis
	DefaultRedisKeyPrefix = "incident-dashboard"

	// DefaultConfigPath is where the YAML configuration is read from
	DefaultConfigPath = "configs/config.yaml"

	// DefaultGitHubTimeout bounds a single GitHub API call
	DefaultGitHubTimeout = 15 * time.Second
)

// Valid environment values
const (
	ValidEnvironmentDevelopment = "development"
	ValidEnvironmentProduction  = "production"
)

// Valid log level values
const (
	ValidLogLevelDebug = "debug"
	ValidLogLevelInfo  = "info"
	ValidLogLevelWarn  = "warn"
	ValidLogLevelError = "error"
)
