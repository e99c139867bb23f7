package config

import (
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// Cache for configuration to avoid repeated file reads
	configCache *Config
	configOnce  sync.Once
)

// Load creates a new Config from the YAML file and environment only.
func Load() *Config {
	return LoadWithFlags(nil)
}

// LoadCached loads the configuration once and returns the same instance on
// every later call.
func LoadCached(flgs Flags) *Config {
	configOnce.Do(func() {
		configCache = LoadWithFlags(flgs)
	})
	return configCache
}

// Flags defines the interface for command-line flag access.
type Flags interface {
	GetPort() string
	GetEnvironment() string
	GetLogLevel() string
	GetCSVPath() string
	GetConfigPath() string
}

// LoadWithFlags creates a new Config by loading the YAML file and applying
// overrides.
//
// Configuration precedence (highest to lowest):
// 1. Command-line flags
// 2. Environment variables
// 3. YAML configuration file
// 4. Default values
func LoadWithFlags(flgs Flags) *Config {
	configPath := getEnv("CONFIG_PATH", DefaultConfigPath)
	if flgs != nil && flgs.GetConfigPath() != "" {
		configPath = flgs.GetConfigPath()
	}
	yamlConfig := loadFromYAML(configPath)

	port := resolve(getEnv("PORT", yamlConfig.Server.Port), DefaultPort)
	environment := resolve(getEnv("ENVIRONMENT", yamlConfig.Server.Environment), DefaultEnvironment)
	logLevel := resolve(getEnv("LOG_LEVEL", yamlConfig.Server.LogLevel), DefaultLogLevel)
	csvPath := resolve(getEnv("CSV_PATH", yamlConfig.Dataset.CSVPath), DefaultCSVPath)

	if flgs != nil {
		port = resolve(flgs.GetPort(), port)
		environment = resolve(flgs.GetEnvironment(), environment)
		logLevel = resolve(flgs.GetLogLevel(), logLevel)
		csvPath = resolve(flgs.GetCSVPath(), csvPath)
	}

	source := resolve(getEnv("DATASET_SOURCE", yamlConfig.Dataset.Source), DefaultDatasetSource)
	reloadInterval := parseDuration(getEnv("RELOAD_INTERVAL", yamlConfig.Dataset.ReloadInterval), 0)

	redisConfig := yamlConfig.Dataset.Redis
	redisHost := getEnv("REDIS_HOST", "")
	redisPort := getEnv("REDIS_PORT", "")
	redisPassword := getEnv("REDIS_PASSWORD", redisConfig.Password)

	// Build Redis address from environment variables or use YAML config
	redisAddress := redisConfig.Address
	if redisHost != "" && redisPort != "" {
		redisAddress = redisHost + ":" + redisPort
	} else if redisHost != "" {
		redisAddress = redisHost + ":6379"
	}

	githubToken := getEnv("GITHUB_TOKEN", yamlConfig.GitHub.Token)

	return &Config{
		Port:        port,
		Environment: environment,
		LogLevel:    logLevel,
		Dataset: DatasetConfig{
			Source:         source,
			CSVPath:        csvPath,
			ReloadInterval: reloadInterval,
			Redis: RedisConfig{
				Address:   redisAddress,
				Password:  redisPassword,
				Database:  redisConfig.Database,
				KeyPrefix: resolve(redisConfig.KeyPrefix, DefaultRedisKeyPrefix),
			},
		},
		GitHub: GitHubConfig{
			Enabled: yamlConfig.GitHub.Enabled,
			Token:   githubToken,
			BaseURL: yamlConfig.GitHub.BaseURL,
			Timeout: parseDuration(yamlConfig.GitHub.Timeout, DefaultGitHubTimeout),
		},
	}
}

// loadFromYAML reads the YAML file at path. A missing or invalid file yields
// an empty configuration so defaults apply.
func loadFromYAML(path string) *YAMLConfig {
	config := &YAMLConfig{}
	data, err := os.ReadFile(path)
	if err != nil {
		return config
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return &YAMLConfig{}
	}
	return config
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func resolve(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// parseDuration parses s, returning fallback for empty, invalid or negative
// values.
func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}
