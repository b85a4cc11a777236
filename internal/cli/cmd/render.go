package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"xten/internal/encoder"
	"xten/internal/model"
	"xten/internal/planner"
	"xten/internal/progress"
	"xten/internal/ui"
	"xten/internal/util"
	"xten/internal/util/format"
)

func header(w io.Writer, sty ui.Styles, title string) {
	fmt.Fprintln(w, sty.Banner.Render("xten — "+title))
}

func renderCompressionPlan(w io.Writer, sty ui.Styles, plan model.CompressionPlan) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", sty.Label.Render("Input:"), plan.InputPath)
	fmt.Fprintf(w, "%s %s\n", sty.Label.Render("Output:"), plan.OutputPath)
	fmt.Fprintf(w, "%s %s\n", sty.Label.Render("Preset:"), plan.Preset)
	fmt.Fprintf(w, "%s %.2f sec\n", sty.Label.Render("Duration:"), plan.DurationSec)
	if plan.Mode == model.ModeTarget {
		fmt.Fprintf(w, "%s %g MB\n", sty.Label.Render("Target:"), plan.TargetMB)
		fmt.Fprintf(w, "%s %d kbps\n", sty.Label.Render("Video Bitrate:"), plan.VideoBitrate/1000)
		fmt.Fprintf(w, "%s %d kbps\n", sty.Label.Render("Audio Bitrate:"), plan.AudioBitrate/1000)
	} else {
		fmt.Fprintf(w, "%s %d\n", sty.Label.Render("CRF:"), plan.CRF)
	}
	fmt.Fprintln(w)
}

func renderDuration(w io.Writer, sty ui.Styles, durationSec float64) {
	fmt.Fprintf(w, "%s %.2f sec (%s)\n", sty.Label.Render("Duration:"), durationSec, planner.HHMMSSFromSeconds(durationSec))
}

func renderTrimPlan(w io.Writer, sty ui.Styles, plan model.TrimPlan) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s  %s\n", sty.Label.Render("Input:"), plan.InputPath)
	fmt.Fprintf(w, "%s %s\n", sty.Label.Render("Output:"), plan.OutputPath)
	fmt.Fprintf(w, "%s  %s\n", sty.Label.Render("Start:"), plan.Start)
	fmt.Fprintf(w, "%s    %s\n", sty.Label.Render("End:"), plan.End)
	fmt.Fprintln(w)
}

func renderDryRun(w io.Writer, sty ui.Styles, args []string) {
	fmt.Fprintln(w, sty.Warning.Render("Dry run mode — nothing executed."))
	fmt.Fprintln(w)
	fmt.Fprintln(w, sty.Label.Render("Command Preview:"))
	fmt.Fprintln(w, util.CommandLine("ffmpeg", args))
}

// executePlan runs a planned ffmpeg invocation, under the live progress
// view when stdout is a terminal, and prints the final size report.
func executePlan(ctx context.Context, w io.Writer, sty ui.Styles, ffmpegPath string, args []string, output string, durationSec float64, message string, verbose, noUI bool) error {
	run := func(ctx context.Context, rep progress.Reporter) error {
		_, err := encoder.Execute(ctx, encoder.Options{
			FFmpegPath:  ffmpegPath,
			Args:        args,
			OutputPath:  output,
			DurationSec: durationSec,
			Message:     message,
			Verbose:     verbose,
			Reporter:    rep,
		})
		return err
	}

	var err error
	if !noUI && isTerminal() {
		err = ui.RunEncode(ctx, durationSec, message, run)
	} else {
		err = run(ctx, &ui.PlainReporter{W: w})
	}
	if err != nil {
		fmt.Fprintln(w, sty.Error.Render("ffmpeg failed."))
		return fail(err)
	}

	fi, statErr := sizeOf(output)
	if statErr != nil {
		return fail(statErr)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", sty.Label.Render("Final Size:"), format.MB(fi))
	fmt.Fprintln(w, sty.Success.Render("Done."))
	return nil
}

func sizeOf(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}
