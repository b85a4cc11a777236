// Package planner turns validated user intent into immutable plans
// carrying the literal ffmpeg argument vectors. Builders are pure apart
// from the injected duration probe and the output-name collision check;
// they never prompt and never execute anything.
package planner

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"xten/internal/model"
	"xten/internal/util"
	"xten/internal/util/bitrate"
)

// DurationProber supplies the source duration for a media file. The
// probe package implements it; tests inject canned values.
type DurationProber interface {
	Duration(ctx context.Context, file string) (float64, error)
}

// ParseTargetSize parses a size expression like "8mb" into megabytes.
func ParseTargetSize(raw string) (float64, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if !strings.HasSuffix(s, "mb") {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidTargetFormat, raw)
	}
	mb, err := strconv.ParseFloat(strings.TrimSuffix(s, "mb"), 64)
	if err != nil || mb <= 0 {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidTargetFormat, raw)
	}
	return mb, nil
}

// BuildTargetPlan assembles a size-targeted compression plan: probe the
// duration, derive the video bitrate that fits targetMB, and lay out
// the ffmpeg invocation.
func BuildTargetPlan(ctx context.Context, pr DurationProber, input string, targetMB float64, preset model.Preset, force bool) (model.CompressionPlan, error) {
	duration, err := pr.Duration(ctx, input)
	if err != nil {
		return model.CompressionPlan{}, err
	}

	videoBps := bitrate.VideoBps(targetMB, duration)
	output := compressOutputPath(input, force)

	args := overwritePrefix(force)
	args = append(args,
		"-i", input,
		"-b:v", strconv.Itoa(videoBps),
		"-b:a", strconv.Itoa(bitrate.AudioBps),
		"-preset", string(preset),
		"-movflags", "+faststart",
		output,
	)

	return model.CompressionPlan{
		InputPath:    input,
		OutputPath:   output,
		DurationSec:  duration,
		Mode:         model.ModeTarget,
		TargetMB:     targetMB,
		VideoBitrate: videoBps,
		AudioBitrate: bitrate.AudioBps,
		Preset:       preset,
		Args:         args,
	}, nil
}

// BuildCRFPlan assembles a constant-quality compression plan. No
// bitrate math: the quality value is handed to the encoder directly.
func BuildCRFPlan(ctx context.Context, pr DurationProber, input string, crf int, preset model.Preset, force bool) (model.CompressionPlan, error) {
	duration, err := pr.Duration(ctx, input)
	if err != nil {
		return model.CompressionPlan{}, err
	}

	output := compressOutputPath(input, force)

	args := overwritePrefix(force)
	args = append(args,
		"-i", input,
		"-crf", strconv.Itoa(crf),
		"-preset", string(preset),
		"-movflags", "+faststart",
		output,
	)

	return model.CompressionPlan{
		InputPath:   input,
		OutputPath:  output,
		DurationSec: duration,
		Mode:        model.ModeCRF,
		CRF:         crf,
		Preset:      preset,
		Args:        args,
	}, nil
}

// BuildTrimPlan assembles a stream-copy trim plan. Start and end must
// already be normalized time labels. Both seek flags precede -i for
// fast input seeking; the probed duration is only used for progress
// display, not to bound the range.
func BuildTrimPlan(ctx context.Context, pr DurationProber, input, start, end string, force bool) (model.TrimPlan, error) {
	duration, err := pr.Duration(ctx, input)
	if err != nil {
		return model.TrimPlan{}, err
	}

	base := stem(input) + "_xten_trim.mp4"
	output := base
	if !force {
		output = util.ResolveOutputName(base)
	}

	args := overwritePrefix(force)
	args = append(args,
		"-ss", start,
		"-to", end,
		"-i", input,
		"-c", "copy",
		"-movflags", "+faststart",
		output,
	)

	return model.TrimPlan{
		InputPath:   input,
		OutputPath:  output,
		DurationSec: duration,
		Start:       start,
		End:         end,
		Args:        args,
	}, nil
}

func compressOutputPath(input string, force bool) string {
	base := stem(input) + "_xten.mp4"
	if force {
		return base
	}
	return util.ResolveOutputName(base)
}

func stem(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

func overwritePrefix(force bool) []string {
	if force {
		return []string{"-y"}
	}
	return nil
}
