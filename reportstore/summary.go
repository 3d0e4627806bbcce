package reportstore

import "github.com/crmarques/driftscan/analyzer"

// Summary holds per-state counts for one report.
type Summary struct {
	Total    int `json:"total" yaml:"total"`
	Match    int `json:"match" yaml:"match"`
	Modified int `json:"modified" yaml:"modified"`
	Missing  int `json:"missing" yaml:"missing"`
}

func Summarize(report []analyzer.ReportEntry) Summary {
	summary := Summary{Total: len(report)}
	for _, entry := range report {
		switch entry.State {
		case analyzer.StateMatch:
			summary.Match++
		case analyzer.StateModified:
			summary.Modified++
		case analyzer.StateMissing:
			summary.Missing++
		}
	}
	return summary
}
