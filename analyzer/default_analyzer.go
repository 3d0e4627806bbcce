package analyzer

import (
	"context"

	"github.com/crmarques/driftscan/debugctx"
	"github.com/crmarques/driftscan/resource"
)

var _ Analyzer = (*DefaultAnalyzer)(nil)

// DefaultAnalyzer implements Analyzer. It holds no mutable state across runs;
// the identity index is rebuilt per Analyze call and is read-only afterwards.
type DefaultAnalyzer struct {
	rules  *CompareRules
	events func(IndexEvent)
}

type Option func(*DefaultAnalyzer)

// WithCompareRules applies attribute ignore/suppress rules and an optional jq
// transform to both sides before comparison.
func WithCompareRules(rules *CompareRules) Option {
	return func(a *DefaultAnalyzer) {
		a.rules = rules
	}
}

// WithIndexEventSink captures duplicate-identity warnings emitted while
// indexing the declared list. Without a sink the events are suppressed.
func WithIndexEventSink(sink func(IndexEvent)) Option {
	return func(a *DefaultAnalyzer) {
		a.events = sink
	}
}

func New(opts ...Option) *DefaultAnalyzer {
	a := &DefaultAnalyzer{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze produces exactly one report entry per observed resource, in the
// observed list's order. Declared resources with no observed counterpart do
// not appear in the report.
func (a *DefaultAnalyzer) Analyze(ctx context.Context, observed []resource.Resource, declared []resource.Resource) ([]ReportEntry, error) {
	index := buildIdentityIndex(declared, a.events)
	debugctx.Printf(ctx, "indexed %d declared resources (%d by id, %d by name)",
		len(declared), len(index.byID), len(index.byName))

	report := make([]ReportEntry, 0, len(observed))
	for _, current := range observed {
		match, found := index.resolve(current)
		if !found {
			report = append(report, ReportEntry{
				Observed:  current,
				Declared:  resource.EmptyObject(),
				State:     StateMissing,
				ChangeLog: []ChangeRecord{},
			})
			continue
		}

		state, changes, err := a.classify(current, match)
		if err != nil {
			return nil, err
		}
		report = append(report, ReportEntry{
			Observed:  current,
			Declared:  match,
			State:     state,
			ChangeLog: changes,
		})
	}

	debugctx.Printf(ctx, "analyzed %d observed resources", len(report))
	return report, nil
}

// classify compares both sides after compare rules are applied. Identity
// resolution always uses the unmodified resources, so a rule stripping the
// id or name attribute cannot change which resources pair up.
func (a *DefaultAnalyzer) classify(observed resource.Resource, declared resource.Resource) (State, []ChangeRecord, error) {
	preparedObserved, err := a.rules.Apply(observed)
	if err != nil {
		return "", nil, err
	}
	preparedDeclared, err := a.rules.Apply(declared)
	if err != nil {
		return "", nil, err
	}

	changes := compareValues(preparedObserved.V, preparedDeclared.V, "")
	if len(changes) == 0 {
		return StateMatch, []ChangeRecord{}, nil
	}
	return StateModified, changes, nil
}
