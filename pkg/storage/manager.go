package storage

import "fmt"

// NewSource creates the dataset source selected by config.Kind. An empty
// kind means a file source.
func NewSource(config Config) (Source, error) {
	switch config.Kind {
	case "", SourceFile:
		if config.Path == "" {
			return nil, fmt.Errorf("CSV path is required for a file source")
		}
		return NewFileSource(config.Path), nil
	case SourceRedis:
		source, err := NewRedisSource(config.Redis)
		if err != nil {
			return nil, err
		}
		return source, nil
	default:
		return nil, fmt.Errorf("unknown dataset source: %s", config.Kind)
	}
}
