// Package fsstore reads resource lists from, and writes drift reports to,
// plain JSON or YAML files. The format follows the file extension.
package fsstore

import (
	"path/filepath"
	"strings"

	"github.com/crmarques/driftscan/faults"
	"github.com/crmarques/driftscan/reportstore"
)

var (
	_ reportstore.ResourceListStore = (*FileStore)(nil)
	_ reportstore.ReportStore       = (*FileStore)(nil)
)

type FileStore struct{}

func New() *FileStore {
	return &FileStore{}
}

func formatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return reportstore.FormatJSON, nil
	case ".yaml", ".yml":
		return reportstore.FormatYAML, nil
	default:
		return "", validationError("unsupported file extension (use .json, .yaml, or .yml): "+path, nil)
	}
}

func validationError(message string, cause error) error {
	return faults.NewTypedError(faults.ValidationError, message, cause)
}

func notFoundError(message string, cause error) error {
	return faults.NewTypedError(faults.NotFoundError, message, cause)
}

func internalError(message string, cause error) error {
	return faults.NewTypedError(faults.InternalError, message, cause)
}
