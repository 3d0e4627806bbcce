package reportstore

import (
	"context"

	"github.com/crmarques/driftscan/analyzer"
	"github.com/crmarques/driftscan/resource"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ResourceListStore loads resource list documents from durable storage. A
// document must contain a top-level array.
type ResourceListStore interface {
	LoadResourceList(ctx context.Context, path string) ([]resource.Resource, error)
}

// ReportStore persists a finished drift report.
type ReportStore interface {
	WriteReport(ctx context.Context, path string, report []analyzer.ReportEntry) error
}
