package planner

import (
	"fmt"
	"strconv"
	"strings"

	"xten/internal/model"
)

// NormalizeTimeLabel validates a user-supplied time expression and
// returns the form handed to ffmpeg. Plain decimals pass through as
// seconds; anything else must contain a colon and is trusted to
// ffmpeg's own clock-string parser (HH:MM:SS.ms, MM:SS.ms). No range
// or ordering checks are performed.
func NormalizeTimeLabel(raw string) (string, error) {
	t := strings.TrimSpace(raw)
	if t == "" {
		return "", fmt.Errorf("%w: empty", model.ErrInvalidTime)
	}

	if _, err := strconv.ParseFloat(t, 64); err == nil {
		return t, nil
	}

	if !strings.Contains(t, ":") {
		return "", fmt.Errorf("%w: %q", model.ErrInvalidTime, raw)
	}
	return t, nil
}

// HHMMSSFromSeconds renders seconds as HH:MM:SS.mmm for display.
func HHMMSSFromSeconds(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := int(seconds) / 3600
	m := (int(seconds) % 3600) / 60
	s := seconds - float64(h*3600+m*60)
	return fmt.Sprintf("%02d:%02d:%06.3f", h, m, s)
}
