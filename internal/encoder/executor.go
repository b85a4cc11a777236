// Package encoder executes planned ffmpeg invocations and tracks their
// progress by scraping the diagnostic stream.
package encoder

import (
	"context"
	"fmt"
	"os"

	"xten/internal/model"
	"xten/internal/progress"
	"xten/internal/util"
)

// Options control one ffmpeg execution.
type Options struct {
	FFmpegPath  string
	Args        []string // literal argument vector from the plan
	OutputPath  string
	DurationSec float64 // total duration driving the progress fraction
	Message     string  // status label, e.g. "Encoding" or "Trimming"
	Verbose     bool
	Reporter    progress.Reporter // may be nil
}

// Output describes a finished encode.
type Output struct {
	OutputPath string
	Bytes      int64
}

// Execute runs ffmpeg with the plan's argument vector, feeding each
// stderr line through the progress tracker, and blocks until the
// subprocess exits. A failed or cancelled run removes the partial
// output file before returning.
func Execute(ctx context.Context, opts Options) (Output, error) {
	tracker := &Tracker{Total: opts.DurationSec}

	res, runErr := util.Run(ctx, util.CmdSpec{
		Path:    opts.FFmpegPath,
		Args:    opts.Args,
		Verbose: opts.Verbose,
		StderrLine: func(line string) {
			seconds, percent, ok := tracker.Observe(line)
			if !ok || opts.Reporter == nil {
				return
			}
			opts.Reporter.Update(progress.Update{
				Percent: percent,
				Seconds: seconds,
				Message: opts.Message,
			})
		},
	})
	if runErr != nil {
		_ = util.RemoveIfExists(opts.OutputPath)
		err := fmt.Errorf("%w: ffmpeg exit %d", model.ErrExternalTool, res.Code)
		if opts.Reporter != nil {
			opts.Reporter.Result(progress.Result{OutputPath: opts.OutputPath, Err: err})
		}
		return Output{}, err
	}

	fi, err := os.Stat(opts.OutputPath)
	if err != nil {
		err = fmt.Errorf("stat output: %w", err)
		if opts.Reporter != nil {
			opts.Reporter.Result(progress.Result{OutputPath: opts.OutputPath, Err: err})
		}
		return Output{}, err
	}

	out := Output{OutputPath: opts.OutputPath, Bytes: fi.Size()}
	if opts.Reporter != nil {
		opts.Reporter.Result(progress.Result{OutputPath: out.OutputPath, Bytes: out.Bytes})
	}
	return out, nil
}
