package main

import (
	"flag"
	"fmt"
	"runtime"
	"strings"

	"github.com/redhat-appstudio/incident-dashboard/internal/config"
	"github.com/redhat-appstudio/incident-dashboard/internal/version"
)

// Valid values for validation
const (
	ValidEnvironmentDevelopment = config.ValidEnvironmentDevelopment
	ValidEnvironmentProduction  = config.ValidEnvironmentProduction

	ValidLogLevelDebug = config.ValidLogLevelDebug
	ValidLogLevelInfo  = config.ValidLogLevelInfo
	ValidLogLevelWarn  = config.ValidLogLevelWarn
	ValidLogLevelError = config.ValidLogLevelError
)

// AppDescription is shown in the help text.
const AppDescription = "Browse production incidents exported to CSV, with owners and suspect commits"

// ServerFlags holds all command-line flags for the incident dashboard.
// Empty values leave the environment, YAML or default value in place.
type ServerFlags struct {
	// HTTP server port number
	Port string
	// Deployment environment (development/production)
	Environment string
	// Logging verbosity level (debug/info/warn/error)
	LogLevel string
	// Path to the incident CSV
	CSVPath string
	// Path to the YAML configuration file
	ConfigPath string

	// Show help information and exit
	Help bool
	// Show version information and exit
	Version bool
}

// parseFlags parses args into a ServerFlags struct.
func parseFlags(args []string) (*ServerFlags, error) {
	f := &ServerFlags{}
	fs := flag.NewFlagSet("incident-dashboard", flag.ContinueOnError)

	fs.StringVar(&f.Port, "port", "",
		fmt.Sprintf("Server port number (default: %s)", config.DefaultPort))
	fs.StringVar(&f.Environment, "env", "",
		fmt.Sprintf("Deployment environment: %s, %s (default: %s)",
			ValidEnvironmentDevelopment, ValidEnvironmentProduction, config.DefaultEnvironment))
	fs.StringVar(&f.LogLevel, "log-level", "",
		fmt.Sprintf("Log level: %s, %s, %s, %s (default: %s)",
			ValidLogLevelDebug, ValidLogLevelInfo, ValidLogLevelWarn, ValidLogLevelError, config.DefaultLogLevel))
	fs.StringVar(&f.CSVPath, "csv", "",
		fmt.Sprintf("Path to the incident CSV (default: %s)", config.DefaultCSVPath))
	fs.StringVar(&f.ConfigPath, "config", "",
		fmt.Sprintf("Path to the YAML configuration file (default: %s)", config.DefaultConfigPath))

	fs.BoolVar(&f.Help, "help", false, "Show help information and exit")
	fs.BoolVar(&f.Help, "h", false, "Show help information and exit (short form)")
	fs.BoolVar(&f.Version, "version", false, "Show version information and exit")
	fs.BoolVar(&f.Version, "v", false, "Show version information and exit (short form)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return f, nil
}

// showHelp displays usage, flags and examples.
func (f *ServerFlags) showHelp() {
	fmt.Printf("%s - %s\n", version.AppName, AppDescription)
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  incident-dashboard [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("  Server Configuration:")
	fmt.Println("    -port string")
	fmt.Println("          Server port (default: 3000)")
	fmt.Println("    -env string")
	fmt.Println("          Environment: development, production (default: development)")
	fmt.Println("    -log-level string")
	fmt.Println("          Log level: debug, info, warn, error (default: info)")
	fmt.Println("    -config string")
	fmt.Println("          YAML configuration file (default: configs/config.yaml)")
	fmt.Println()
	fmt.Println("  Dataset:")
	fmt.Println("    -csv string")
	fmt.Println("          Incident CSV path (default: incidents.csv)")
	fmt.Println("    Redis sources, reload interval and GitHub lookup are configured in config.yaml")
	fmt.Println()
	fmt.Println("  General:")
	fmt.Println("    -help, -h")
	fmt.Println("          Show this help information")
	fmt.Println("    -version, -v")
	fmt.Println("          Show version information")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  # Serve ./incidents.csv on port 3000")
	fmt.Println("  incident-dashboard")
	fmt.Println()
	fmt.Println("  # Serve another export on a custom port")
	fmt.Println("  incident-dashboard -csv /data/incidents.csv -port 8080")
	fmt.Println()
	fmt.Println("  # Production mode with JSON logs")
	fmt.Println("  incident-dashboard -env production -log-level warn")
}

// showVersion displays version and build information.
func (f *ServerFlags) showVersion() {
	fmt.Printf("%s %s\n", version.AppName, version.GetVersion())
	fmt.Printf("Build info: %s\n", version.GetBuildInfo())
	fmt.Printf("Go version: %s\n", runtime.Version())
}

// validate checks the flags that were set. Unset flags are not validated.
func (f *ServerFlags) validate() error {
	if f.Environment != "" {
		validEnvs := []string{ValidEnvironmentDevelopment, ValidEnvironmentProduction}
		if !contains(validEnvs, f.Environment) {
			return fmt.Errorf("invalid environment: %s (must be one of: %s)", f.Environment, strings.Join(validEnvs, ", "))
		}
	}

	if f.LogLevel != "" {
		validLevels := []string{ValidLogLevelDebug, ValidLogLevelInfo, ValidLogLevelWarn, ValidLogLevelError}
		if !contains(validLevels, f.LogLevel) {
			return fmt.Errorf("invalid log level: %s (must be one of: %s)", f.LogLevel, strings.Join(validLevels, ", "))
		}
	}

	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// These methods implement the config.Flags interface.

// GetPort returns the configured server port number.
func (f *ServerFlags) GetPort() string {
	return f.Port
}

// GetEnvironment returns the configured deployment environment.
func (f *ServerFlags) GetEnvironment() string {
	return f.Environment
}

// GetLogLevel returns the configured logging verbosity level.
func (f *ServerFlags) GetLogLevel() string {
	return f.LogLevel
}

// GetCSVPath returns the configured incident CSV path.
func (f *ServerFlags) GetCSVPath() string {
	return f.CSVPath
}

// GetConfigPath returns the configured YAML configuration path.
func (f *ServerFlags) GetConfigPath() string {
	return f.ConfigPath
}
