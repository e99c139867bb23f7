package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redhat-appstudio/incident-dashboard/pkg/incidents"
	"github.com/redhat-appstudio/incident-dashboard/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// DatasetKey is the key, under the configured prefix, holding the CSV text.
const DatasetKey = "incidents:csv"

// DatasetMetaKey is the optional key holding producer metadata as JSON.
const DatasetMetaKey = "incidents:meta"

// DatasetMeta is what the producer records alongside the CSV blob.
type DatasetMeta struct {
	Producer    string    `json:"producer"`
	PublishedAt time.Time `json:"published_at"`
}

// RedisSource reads the dataset from a CSV blob stored in Redis by the
// incident producer. The dashboard never writes to Redis.
type RedisSource struct {
	client    *redis.Client
	keyPrefix string
	address   string
}

// NewRedisSource connects to Redis and validates connectivity.
func NewRedisSource(config RedisConfig) (*RedisSource, error) {
	if config.Address == "" {
		return nil, fmt.Errorf("Redis address is required")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         config.Address,
		Password:     config.Password,
		DB:           config.Database,
		PoolSize:     4,
		MinIdleConns: 1,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Infof("Redis dataset source connected to %s", config.Address)

	return &RedisSource{
		client:    rdb,
		keyPrefix: config.KeyPrefix,
		address:   config.Address,
	}, nil
}

// Close closes the Redis connection.
func (r *RedisSource) Close() error {
	return r.client.Close()
}

// buildKey builds Redis keys using strings.Builder
func (r *RedisSource) buildKey(parts ...string) string {
	var builder strings.Builder
	builder.WriteString(r.keyPrefix)
	for _, part := range parts {
		if builder.Len() > 0 {
			builder.WriteByte(':')
		}
		builder.WriteString(part)
	}
	return builder.String()
}

// Describe returns the Redis address and dataset key.
func (r *RedisSource) Describe() string {
	return fmt.Sprintf("redis://%s/%s", r.address, r.buildKey(DatasetKey))
}

// Load fetches and parses the CSV blob. A missing key yields a
// *MissingFileError naming the key.
func (r *RedisSource) Load(ctx context.Context) (*incidents.Dataset, error) {
	key := r.buildKey(DatasetKey)

	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, &MissingFileError{Location: r.Describe()}
		}
		return nil, fmt.Errorf("failed to get dataset from Redis: %w", err)
	}

	records, err := incidents.ReadCSV(strings.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV from Redis key %s: %w", key, err)
	}

	if meta, err := r.Meta(ctx); err != nil {
		logger.Warnf("Failed to read dataset metadata: %v", err)
	} else if meta != nil {
		logger.Debugf("Dataset published by %s at %s", meta.Producer, meta.PublishedAt.Format(time.RFC3339))
	}

	logger.Debugf("Loaded %d incidents from %s", len(records), key)
	return incidents.NewDataset(r.Describe(), records), nil
}

// Meta returns the producer metadata, or nil when none was published.
func (r *RedisSource) Meta(ctx context.Context) (*DatasetMeta, error) {
	data, err := r.client.Get(ctx, r.buildKey(DatasetMetaKey)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dataset metadata: %w", err)
	}

	var meta DatasetMeta
	if err := json.Unmarshal([]byte(data), &meta); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dataset metadata: %w", err)
	}

	return &meta, nil
}
