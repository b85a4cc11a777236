package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"xten/internal/model"
	"xten/internal/probe"
	"xten/internal/ui"
	"xten/internal/util"
	"xten/internal/util/deps"
	"xten/internal/util/format"
)

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "info <input>",
		Short:         "Report media metadata (size, duration, streams)",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(1),
		RunE:          runInfo,
	}
	cmd.Flags().Bool("json", false, "Output raw ffprobe JSON")
	return cmd
}

func runInfo(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	sty := ui.DefaultStyles()

	jsonOut, _ := cmd.Flags().GetBool("json")
	if !jsonOut {
		header(w, sty, "media info")
	}

	input := args[0]
	if !util.Exists(input) {
		return fail(fmt.Errorf("%w: %s", model.ErrMissingInput, input))
	}

	ffprobePath, err := deps.FindFFprobe()
	if err != nil {
		return fail(err)
	}

	pr := probe.New(ffprobePath)
	pr.Verbose = getPersistentBool(cmd, "verbose")

	res, raw, err := pr.Inspect(cmd.Context(), input)
	if err != nil {
		return fail(err)
	}

	if jsonOut {
		fmt.Fprintf(w, "%s", raw)
		return nil
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", sty.Label.Render("File:"), input)
	fmt.Fprintf(w, "%s %s\n", sty.Label.Render("Size:"), format.MB(res.SizeBytes))
	fmt.Fprintf(w, "%s %.2f sec\n", sty.Label.Render("Duration:"), res.DurationSec)

	for _, s := range res.Streams {
		switch s.CodecType {
		case "video":
			fmt.Fprintf(w, "%s %s | %dx%d\n", sty.Label.Render("Video:"), s.CodecName, s.Width, s.Height)
		case "audio":
			fmt.Fprintf(w, "%s %s\n", sty.Label.Render("Audio:"), s.CodecName)
		}
	}
	return nil
}
