package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"xten/internal/model"
	"xten/internal/planner"
	"xten/internal/probe"
	"xten/internal/ui"
	"xten/internal/util"
	"xten/internal/util/deps"
)

func newTrimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "trim <input>",
		Short:         "Trim a video losslessly via stream copy",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(1),
		RunE:          runTrim,
	}
	cmd.Flags().String("start", "", "Start time (seconds or HH:MM:SS[.ms])")
	cmd.Flags().String("end", "", "End time (seconds or HH:MM:SS[.ms])")
	bindExecFlags(cmd.Flags())
	return cmd
}

func runTrim(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	sty := ui.DefaultStyles()
	header(w, sty, "media trim")

	input := args[0]
	if !util.Exists(input) {
		return fail(fmt.Errorf("%w: %s", model.ErrMissingInput, input))
	}

	ffmpegPath, err := deps.FindFFmpeg()
	if err != nil {
		return fail(err)
	}
	ffprobePath, err := deps.FindFFprobe()
	if err != nil {
		return fail(err)
	}

	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	force, _ := cmd.Flags().GetBool("force")
	verbose := getPersistentBool(cmd, "verbose")
	noUI := getPersistentBool(cmd, "no-ui")

	pr := probe.New(ffprobePath)
	pr.Verbose = verbose

	duration, err := pr.Duration(cmd.Context(), input)
	if err != nil {
		return fail(err)
	}
	renderDuration(w, sty, duration)

	if start == "" || end == "" {
		if noUI || !isTerminal() {
			return fail(fmt.Errorf("both --start and --end are required"))
		}
		start, end, err = collectTrimRange(start, end, duration)
		if err != nil {
			return fail(err)
		}
	}

	startNorm, err := planner.NormalizeTimeLabel(start)
	if err != nil {
		return fail(err)
	}
	endNorm, err := planner.NormalizeTimeLabel(end)
	if err != nil {
		return fail(err)
	}

	plan, err := planner.BuildTrimPlan(cmd.Context(), pr, input, startNorm, endNorm, force)
	if err != nil {
		return fail(err)
	}

	renderTrimPlan(w, sty, plan)

	if dryRun {
		renderDryRun(w, sty, plan.Args)
		return nil
	}

	// Stream-copy trims finish in I/O time; progress still tracks the
	// scraped timestamps against the full source duration.
	return executePlan(cmd.Context(), w, sty, ffmpegPath, plan.Args, plan.OutputPath, plan.DurationSec, "Trimming", verbose, noUI)
}

func collectTrimRange(start, end string, duration float64) (string, string, error) {
	var err error
	if start == "" {
		start, err = ui.Ask(ui.Prompt{
			Question: "Start time (seconds or HH:MM:SS)",
			Default:  "0",
			Validate: func(v string) error {
				_, verr := planner.NormalizeTimeLabel(v)
				return verr
			},
		})
		if err != nil {
			return "", "", err
		}
	}
	if end == "" {
		end, err = ui.Ask(ui.Prompt{
			Question: "End time (seconds or HH:MM:SS)",
			Default:  fmt.Sprintf("%.2f", duration),
			Validate: func(v string) error {
				_, verr := planner.NormalizeTimeLabel(v)
				return verr
			},
		})
		if err != nil {
			return "", "", err
		}
	}
	return start, end, nil
}
