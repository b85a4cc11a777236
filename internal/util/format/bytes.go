package format

import (
	"fmt"
	"strconv"
)

// HumanizeBytes converts a byte count into a human-readable string (e.g., "1.5 MB").
func HumanizeBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return strconv.FormatInt(b, 10) + " B"
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffix := []string{"KB", "MB", "GB", "TB"}[exp]
	return strconv.FormatFloat(float64(b)/float64(div), 'f', 1, 64) + " " + suffix
}

// MB renders a byte count as megabytes with two decimals, the unit the
// final-size report and info output use.
func MB(b int64) string {
	return fmt.Sprintf("%.2f MB", float64(b)/(1024*1024))
}
