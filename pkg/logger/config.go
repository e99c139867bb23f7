package logger

import (
	"github.com/redhat-appstudio/incident-dashboard/internal/config"
)

// FromConfig derives the logger configuration from the application config:
// JSON output in production, colored console output otherwise.
func FromConfig(cfg *config.Config) *Config {
	loggerConfig := DefaultConfig()

	if cfg.LogLevel != "" {
		loggerConfig.Level = LogLevel(cfg.LogLevel)
	}

	if cfg.Environment == config.ValidEnvironmentProduction {
		loggerConfig.Format = FormatJSON
	} else {
		loggerConfig.Format = FormatConsole
	}

	return loggerConfig
}

func InitFromConfig(cfg *config.Config) error {
	return Init(FromConfig(cfg))
}
