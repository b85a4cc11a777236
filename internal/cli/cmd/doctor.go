package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"xten/internal/util/deps"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "doctor",
		Short:         "Diagnose external dependencies (ffmpeg, ffprobe)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ffmpeg, err := deps.FindFFmpeg()
			if err != nil {
				return fail(err)
			}
			ffprobe, err := deps.FindFFprobe()
			if err != nil {
				return fail(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "FFmpeg:  %s\n", ffmpeg)
			fmt.Fprintf(cmd.OutOrStdout(), "FFprobe: %s\n", ffprobe)
			return nil
		},
	}
}
