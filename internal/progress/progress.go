// Package progress defines the event types flowing from an executing
// job to whatever renders it (TUI, plain text, or a test double).
package progress

// Update conveys encode progress for the running job.
type Update struct {
	Percent float64 // 0..100, clamped
	Seconds float64 // elapsed encoded time scraped from ffmpeg
	Message string  // short status, e.g. "Encoding" or "Trimming"
}

// Result is emitted once when the job completes or fails.
type Result struct {
	OutputPath string
	Bytes      int64
	Err        error // nil on success
}

// Reporter is the output-sink capability handed to the executor.
// Implementations must tolerate being called from the subprocess
// reader goroutine.
type Reporter interface {
	Update(u Update)
	Result(r Result)
}
