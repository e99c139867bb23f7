package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/redhat-appstudio/incident-dashboard/pkg/incidents"
	"github.com/redhat-appstudio/incident-dashboard/pkg/logger"
)

// FileSource reads the dataset from a CSV file.
type FileSource struct {
	path string
}

// NewFileSource creates a source for the CSV file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Describe returns the file path.
func (f *FileSource) Describe() string {
	return f.path
}

// Load reads and parses the CSV file. A path that does not exist yields a
// *MissingFileError.
func (f *FileSource) Load(ctx context.Context) (*incidents.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingFileError{Location: f.path}
		}
		return nil, fmt.Errorf("failed to open CSV %s: %w", f.path, err)
	}
	defer file.Close()

	records, err := incidents.ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV %s: %w", f.path, err)
	}

	logger.Debugf("Loaded %d incidents from %s", len(records), f.path)
	return incidents.NewDataset(f.path, records), nil
}
