package fsstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/crmarques/driftscan/analyzer"
	"github.com/crmarques/driftscan/debugctx"
	"github.com/crmarques/driftscan/reportstore"
	"github.com/crmarques/driftscan/yamlutil"
)

func (s *FileStore) WriteReport(ctx context.Context, path string, report []analyzer.ReportEntry) error {
	format, err := formatForPath(path)
	if err != nil {
		return err
	}

	var encoded []byte
	switch format {
	case reportstore.FormatJSON:
		encoded, err = json.MarshalIndent(report, "", "  ")
		if err != nil {
			return internalError("failed to encode report", err)
		}
		encoded = append(encoded, '\n')
	case reportstore.FormatYAML:
		encoded, err = yamlutil.MarshalWithIndent(report, 2)
		if err != nil {
			return internalError("failed to encode report", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return internalError("failed to create report directory", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), ".driftscan-tmp-*")
	if err != nil {
		return internalError("failed to create temporary file", err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.Write(encoded); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempPath)
		return internalError("failed to write temporary report", err)
	}
	if err := tempFile.Close(); err != nil {
		_ = os.Remove(tempPath)
		return internalError("failed to finalize temporary report", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return internalError("failed to replace report file", err)
	}

	debugctx.Printf(ctx, "wrote report with %d entries to %s", len(report), path)
	return nil
}
