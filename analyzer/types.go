package analyzer

import "github.com/crmarques/driftscan/resource"

// State classifies one observed resource against its declared counterpart.
// The three states are exhaustive and mutually exclusive.
type State string

const (
	StateMatch    State = "Match"
	StateModified State = "Modified"
	StateMissing  State = "Missing"
)

// ChangeRecord is one field-level difference. Path uses ".key" for mapping
// descent and "[idx]" for sequence descent, with no leading dot at the root.
// A side absent at the path carries nil.
type ChangeRecord struct {
	Path     string         `json:"path" yaml:"path"`
	Observed resource.Value `json:"observed" yaml:"observed"`
	Declared resource.Value `json:"declared" yaml:"declared"`
}

// ReportEntry is the drift verdict for a single observed resource. Entries
// are immutable once appended to a report. Declared holds an empty object
// when no counterpart was found.
type ReportEntry struct {
	Observed  resource.Resource `json:"observed" yaml:"observed"`
	Declared  resource.Resource `json:"declared" yaml:"declared"`
	State     State             `json:"state" yaml:"state"`
	ChangeLog []ChangeRecord    `json:"change_log" yaml:"change_log"`
}

type IndexEventKind string

const (
	IndexEventDuplicateID   IndexEventKind = "duplicate-id"
	IndexEventDuplicateName IndexEventKind = "duplicate-name"
)

// IndexEvent reports a duplicate identity key seen while indexing the
// declared list. The later resource overwrites the earlier one; the event is
// informational, never an error.
type IndexEvent struct {
	Kind     IndexEventKind
	Key      string
	Position int
}
