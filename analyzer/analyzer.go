package analyzer

import (
	"context"

	"github.com/crmarques/driftscan/resource"
)

// Analyzer reconciles observed resources against declared resources and
// reports per-resource drift.
type Analyzer interface {
	Analyze(ctx context.Context, observed []resource.Resource, declared []resource.Resource) ([]ReportEntry, error)
}
