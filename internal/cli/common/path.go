package common

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ValidateInputFile checks that path names an existing regular JSON or YAML
// file and returns its absolute form.
func ValidateInputFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", NotFoundError("file not found: "+path, err)
		}
		return "", ValidationError("cannot access file: "+path, err)
	}
	if info.IsDir() {
		return "", ValidationError("not a file: "+path, nil)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
	default:
		return "", ValidationError("file must be JSON or YAML: "+path, nil)
	}

	absolute, err := filepath.Abs(path)
	if err != nil {
		return "", ValidationError("cannot resolve path: "+path, err)
	}
	return absolute, nil
}

// ValidateOutputPath ensures the output parent directory exists (creating it
// if needed) and is writable, and returns the absolute path.
func ValidateOutputPath(path string) (string, error) {
	absolute, err := filepath.Abs(path)
	if err != nil {
		return "", ValidationError("cannot resolve path: "+path, err)
	}

	parent := filepath.Dir(absolute)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return "", ValidationError("cannot create output directory "+parent, err)
	}

	probe, err := os.CreateTemp(parent, ".driftscan-probe-*")
	if err != nil {
		return "", ValidationError("output directory is not writable: "+parent, err)
	}
	probePath := probe.Name()
	_ = probe.Close()
	_ = os.Remove(probePath)

	return absolute, nil
}
