package cmd

import (
	"bytes"
	"strings"
	"testing"

	"xten/internal/ui"
)

func TestRenderDuration(t *testing.T) {
	tests := []struct {
		name        string
		durationSec float64
		want        string
	}{
		{"sub-minute", 42.5, "42.50 sec (00:00:42.500)"},
		{"minutes", 125, "125.00 sec (00:02:05.000)"},
		{"hours", 6350.68, "6350.68 sec (01:45:50.680)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			renderDuration(&buf, ui.DefaultStyles(), tt.durationSec)
			got := buf.String()
			if !strings.Contains(got, "Duration:") {
				t.Errorf("output %q missing Duration label", got)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("output %q, want to contain %q", got, tt.want)
			}
		})
	}
}
