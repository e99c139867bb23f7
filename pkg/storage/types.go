// Package storage provides the read-only sources an incident dataset can be
// loaded from: a CSV file on disk or a CSV blob published in Redis.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redhat-appstudio/incident-dashboard/pkg/incidents"
)

// Source kinds accepted in configuration.
const (
	SourceFile  = "file"
	SourceRedis = "redis"
)

// ErrMissingFile is matched by every error reporting that the dataset does
// not exist at its configured location.
var ErrMissingFile = errors.New("CSV not found")

// MissingFileError reports a dataset location with nothing at it.
type MissingFileError struct {
	// Location is the file path or Redis key that was read
	Location string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("CSV not found at: %s", e.Location)
}

// Is makes errors.Is(err, ErrMissingFile) true for any MissingFileError.
func (e *MissingFileError) Is(target error) bool {
	return target == ErrMissingFile
}

// Source loads an incident dataset.
type Source interface {
	// Load reads and parses the whole dataset
	Load(ctx context.Context) (*incidents.Dataset, error)

	// Describe returns a human-readable location for logs and messages
	Describe() string
}

// Config selects and configures a dataset source.
type Config struct {
	// Kind is SourceFile or SourceRedis
	Kind string `json:"kind"`

	// Path is the CSV file path for file sources
	Path string `json:"path"`

	// Redis configuration for redis sources
	Redis RedisConfig `json:"redis"`
}

// RedisConfig holds Redis-specific configuration.
type RedisConfig struct {
	// Address is the Redis server address (host:port)
	Address string `json:"address"`

	// Password is the Redis password (optional)
	Password string `json:"password"`

	// Database is the Redis database number (0-15)
	Database int `json:"database"`

	// KeyPrefix is the prefix for all Redis keys
	KeyPrefix string `json:"key_prefix"`
}
