package encoder

import (
	"regexp"
	"strconv"
)

// timePattern matches the elapsed-time token ffmpeg prints on its
// stderr status lines, e.g. "... time=00:01:23.45 bitrate= ...".
var timePattern = regexp.MustCompile(`time=(\d+):(\d+):(\d+\.\d+)`)

// ParseTimeSeconds extracts the elapsed encoded time from one ffmpeg
// stderr line. ok is false when the line carries no time token.
func ParseTimeSeconds(line string) (seconds float64, ok bool) {
	m := timePattern.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	secs, _ := strconv.ParseFloat(m[3], 64)
	return float64(hours*3600+minutes*60) + secs, true
}

// Tracker maps scraped timestamps to a completion fraction against a
// known total duration. For trims the total is the full source
// duration, so the fraction is an approximation and elapsed time is
// clamped to it.
type Tracker struct {
	Total float64
}

// Observe feeds one diagnostic line to the tracker. When the line
// carries a timestamp it returns the clamped elapsed seconds and the
// completion percentage (0..100).
func (t *Tracker) Observe(line string) (seconds, percent float64, ok bool) {
	s, ok := ParseTimeSeconds(line)
	if !ok {
		return 0, 0, false
	}
	if t.Total > 0 && s > t.Total {
		s = t.Total
	}
	pct := 0.0
	if t.Total > 0 {
		pct = s / t.Total * 100
	}
	return s, pct, true
}
