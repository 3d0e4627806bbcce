package reportstore

import (
	"testing"

	"github.com/crmarques/driftscan/analyzer"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	report := []analyzer.ReportEntry{
		{State: analyzer.StateMatch},
		{State: analyzer.StateModified},
		{State: analyzer.StateModified},
		{State: analyzer.StateMissing},
	}

	summary := Summarize(report)
	expected := Summary{Total: 4, Match: 1, Modified: 2, Missing: 1}
	if summary != expected {
		t.Fatalf("expected %#v, got %#v", expected, summary)
	}
}
