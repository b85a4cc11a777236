package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"xten/internal/config"
	"xten/internal/model"
	"xten/internal/planner"
	"xten/internal/probe"
	"xten/internal/ui"
	"xten/internal/util"
	"xten/internal/util/deps"
)

func newCompressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "compress <input>",
		Short:         "Compress a video to a target size or quality level",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(1),
		RunE:          runCompress,
	}
	cmd.Flags().String("target", "", "Target file size (e.g. 8mb)")
	cmd.Flags().Int("crf", 0, "CRF quality mode (18-28)")
	cmd.Flags().String("preset", "", "Encoding preset (ultrafast..veryslow)")
	bindExecFlags(cmd.Flags())
	return cmd
}

func runCompress(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	sty := ui.DefaultStyles()
	header(w, sty, "media compression")

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

	target, _ := cmd.Flags().GetString("target")
	crf, _ := cmd.Flags().GetInt("crf")
	crfSet := cmd.Flags().Changed("crf")
	presetRaw, _ := cmd.Flags().GetString("preset")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	force, _ := cmd.Flags().GetBool("force")
	verbose := getPersistentBool(cmd, "verbose")
	noUI := getPersistentBool(cmd, "no-ui")

	interactive := !noUI && isTerminal()

	// Collect anything the flags left unresolved before validation;
	// planning itself never prompts.
	if target == "" && !crfSet {
		if !interactive {
			return fail(fmt.Errorf("either --target or --crf is required"))
		}
		target, crf, crfSet, err = collectCompressionMode()
		if err != nil {
			return fail(err)
		}
	}
	if presetRaw == "" {
		if interactive {
			presetRaw, err = collectPreset()
			if err != nil {
				return fail(err)
			}
		} else {
			presetRaw = config.DefaultPreset()
		}
	}

	preset, err := model.ParsePreset(presetRaw)
	if err != nil {
		return fail(err)
	}

	pr := probe.New(ffprobePath)
	pr.Verbose = verbose

	var plan model.CompressionPlan
	if target != "" {
		targetMB, perr := planner.ParseTargetSize(target)
		if perr != nil {
			return fail(perr)
		}
		plan, err = planner.BuildTargetPlan(cmd.Context(), pr, input, targetMB, preset, force)
	} else {
		plan, err = planner.BuildCRFPlan(cmd.Context(), pr, input, crf, preset, force)
	}
	if err != nil {
		return fail(err)
	}

	renderCompressionPlan(w, sty, plan)

	if dryRun {
		renderDryRun(w, sty, plan.Args)
		return nil
	}

	return executePlan(cmd.Context(), w, sty, ffmpegPath, plan.Args, plan.OutputPath, plan.DurationSec, "Encoding", verbose, noUI)
}

func collectCompressionMode() (target string, crf int, crfSet bool, err error) {
	mode, err := ui.Ask(ui.Prompt{
		Question: "Compression mode — 1) target file size  2) CRF quality",
		Choices:  []string{"1", "2"},
	})
	if err != nil {
		return "", 0, false, err
	}

	if mode == "1" {
		target, err = ui.Ask(ui.Prompt{
			Question: "Enter target size (e.g. 8mb)",
			Validate: func(v string) error {
				_, perr := planner.ParseTargetSize(v)
				return perr
			},
		})
		return target, 0, false, err
	}

	raw, err := ui.Ask(ui.Prompt{
		Question: "Enter CRF value (18-28)",
		Default:  "23",
		Validate: func(v string) error {
			_, perr := strconv.Atoi(v)
			return perr
		},
	})
	if err != nil {
		return "", 0, false, err
	}
	crf, _ = strconv.Atoi(raw)
	return "", crf, true, nil
}

func collectPreset() (string, error) {
	choices := make([]string, len(model.ValidPresets))
	for i, p := range model.ValidPresets {
		choices[i] = string(p)
	}
	return ui.Ask(ui.Prompt{
		Question: "Select preset (faster = quicker encode, larger file)",
		Default:  config.DefaultPreset(),
		Choices:  choices,
	})
}
