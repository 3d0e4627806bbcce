package main

import "testing"

func TestConfigPathFromArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "no config flag",
			args:     []string{"analyze", "cloud.json", "iac.json", "report.json"},
			expected: "",
		},
		{
			name:     "separate value",
			args:     []string{"--config", "/tmp/driftscan.yaml", "analyze"},
			expected: "/tmp/driftscan.yaml",
		},
		{
			name:     "equals form",
			args:     []string{"analyze", "--config=/etc/driftscan/config.yaml"},
			expected: "/etc/driftscan/config.yaml",
		},
		{
			name:     "unknown flags are ignored",
			args:     []string{"--upload", "--config", "cfg.yaml"},
			expected: "cfg.yaml",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if got := configPathFromArgs(test.args); got != test.expected {
				t.Fatalf("expected %q, got %q", test.expected, got)
			}
		})
	}
}
