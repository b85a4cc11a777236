// Package probe wraps ffprobe's JSON interface for duration lookups and
// full media reports.
package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"xten/internal/model"
	"xten/internal/util"
)

// Prober runs ffprobe against local media files. Each call re-invokes
// the binary; results are not cached.
type Prober struct {
	Path    string // ffprobe binary path
	Verbose bool
}

// New returns a Prober using the given ffprobe binary path.
func New(path string) *Prober {
	return &Prober{Path: path}
}

// Duration returns the container-format duration of the file in seconds.
func (p *Prober) Duration(ctx context.Context, file string) (float64, error) {
	res, err := util.Run(ctx, util.CmdSpec{
		Path: p.Path,
		Args: []string{
			"-v", "error",
			"-show_entries", "format=duration",
			"-of", "json",
			file,
		},
		Verbose: p.Verbose,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: ffprobe exit %d", model.ErrExternalTool, res.Code)
	}

	var out ffprobeOutput
	if err := json.Unmarshal(res.Stdout, &out); err != nil {
		return 0, fmt.Errorf("%w: %v", model.ErrProbeParse, err)
	}
	if out.Format.Duration == "" {
		return 0, fmt.Errorf("%w: no format.duration", model.ErrProbeParse)
	}
	d, err := strconv.ParseFloat(out.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: format.duration %q", model.ErrProbeParse, out.Format.Duration)
	}
	return d, nil
}

// Inspect returns the parsed format+stream report for the file along
// with the raw ffprobe JSON (for --json passthrough).
func (p *Prober) Inspect(ctx context.Context, file string) (*Result, []byte, error) {
	res, err := util.Run(ctx, util.CmdSpec{
		Path: p.Path,
		Args: []string{
			"-v", "error",
			"-show_format",
			"-show_streams",
			"-of", "json",
			file,
		},
		Verbose: p.Verbose,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: ffprobe exit %d", model.ErrExternalTool, res.Code)
	}

	parsed, perr := ParseJSON(res.Stdout)
	if perr != nil {
		return nil, nil, perr
	}
	return parsed, res.Stdout, nil
}

// ParseJSON converts raw ffprobe JSON into a Result. Exported for
// testing without a real ffprobe binary.
func ParseJSON(data []byte) (*Result, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrProbeParse, err)
	}

	r := &Result{
		SizeBytes:   parseInt64(raw.Format.Size),
		DurationSec: parseFloat(raw.Format.Duration),
	}
	for _, s := range raw.Streams {
		r.Streams = append(r.Streams, Stream{
			CodecType: s.CodecType,
			CodecName: s.CodecName,
			Width:     s.Width,
			Height:    s.Height,
		})
	}
	return r, nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Duration string `json:"duration"`
	Size     string `json:"size"`
}

type ffprobeStream struct {
	CodecName string `json:"codec_name"`
	CodecType string `json:"codec_type"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// --- domain types ---

// Stream holds the per-stream fields the info report shows.
type Stream struct {
	CodecType string
	CodecName string
	Width     int // video only
	Height    int // video only
}

// Result is the parsed output of a full ffprobe call.
type Result struct {
	SizeBytes   int64
	DurationSec float64
	Streams     []Stream
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func parseInt64(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}
