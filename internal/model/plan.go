package model

import "fmt"

// Mode selects how a compression plan controls output size.
type Mode string

const (
	// ModeTarget fits the output under a requested size by computing an
	// explicit video bitrate.
	ModeTarget Mode = "target"
	// ModeCRF encodes at constant quality; size falls where it falls.
	ModeCRF Mode = "crf"
)

// Preset names an x264 speed/efficiency tier.
type Preset string

// Presets ordered fastest to slowest. Any value outside this set is
// rejected before a plan is built.
var ValidPresets = []Preset{
	"ultrafast",
	"superfast",
	"veryfast",
	"faster",
	"fast",
	"medium",
	"slow",
	"slower",
	"veryslow",
}

// DefaultPreset balances encode time against compression efficiency.
const DefaultPreset Preset = "slow"

// ParsePreset validates a raw preset string against the fixed set.
func ParsePreset(raw string) (Preset, error) {
	for _, p := range ValidPresets {
		if raw == string(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPreset, raw)
}

// CompressionPlan fully describes one pending compression job. It is
// built once from validated inputs plus a duration probe and never
// mutated; Args is the literal ffmpeg argument vector (binary excluded).
type CompressionPlan struct {
	InputPath   string
	OutputPath  string
	DurationSec float64
	Mode        Mode

	// Target-mode fields; zero in CRF mode.
	TargetMB     float64
	VideoBitrate int // bits/sec
	AudioBitrate int // bits/sec

	// CRF-mode field; zero in target mode.
	CRF int

	Preset Preset
	Args   []string
}

// TrimPlan fully describes one pending stream-copy trim job.
// Start and End are normalized time labels ffmpeg accepts directly.
type TrimPlan struct {
	InputPath   string
	OutputPath  string
	DurationSec float64
	Start       string
	End         string
	Args        []string
}
