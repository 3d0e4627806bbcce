package fsstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/crmarques/driftscan/debugctx"
	"github.com/crmarques/driftscan/reportstore"
	"github.com/crmarques/driftscan/resource"
)

func (s *FileStore) LoadResourceList(ctx context.Context, path string) ([]resource.Resource, error) {
	format, err := formatForPath(path)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, notFoundError("resource list file not found: "+path, err)
		}
		return nil, internalError("failed to read resource list file: "+path, err)
	}

	var document any
	switch format {
	case reportstore.FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(raw))
		decoder.UseNumber()
		if err := decoder.Decode(&document); err != nil {
			return nil, validationError("invalid JSON in "+path, err)
		}
	case reportstore.FormatYAML:
		if err := yaml.Unmarshal(raw, &document); err != nil {
			return nil, validationError("invalid YAML in "+path, err)
		}
	}

	items, ok := document.([]any)
	if !ok {
		return nil, validationError(
			fmt.Sprintf("expected a top-level array in %s, got %T", path, document),
			nil,
		)
	}

	resources := make([]resource.Resource, 0, len(items))
	for idx, item := range items {
		res, err := resource.NewResource(item)
		if err != nil {
			return nil, validationError(fmt.Sprintf("invalid resource at index %d in %s", idx, path), err)
		}
		resources = append(resources, res)
	}

	debugctx.Printf(ctx, "loaded %d resources from %s", len(resources), path)
	return resources, nil
}
