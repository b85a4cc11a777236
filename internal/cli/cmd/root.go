// Package cmd implements the xten command-line interface.
package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"xten/internal/config"
)

const (
	ExitOK      = 0
	ExitFailure = 1
)

// Version is overridable at build time via ldflags.
var Version = "0.1.0"

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "xten",
		Short:         "xten — local-first media utility CLI",
		Long:          "xten compresses and trims video files and reports media metadata by driving ffmpeg and ffprobe. It plans each job up front (bitrate math, output naming, the exact command line) and shows a live progress bar while encoding.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "Show full subprocess commands/output")
	root.PersistentFlags().Bool("no-ui", false, "Disable interactive UI; use plain textual output")

	_ = config.Init(root)

	root.AddCommand(newCompressCmd())
	root.AddCommand(newTrimCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newDoctorCmd())
	root.AddCommand(newCompletionCmd())

	return root
}

// Execute runs the CLI with the provided context.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	return root.ExecuteContext(ctx)
}

// bindExecFlags adds the flags shared by every command that can run
// ffmpeg (compress, trim).
func bindExecFlags(fs *pflag.FlagSet) {
	fs.Bool("dry-run", false, "Show plan and command without executing")
	fs.Bool("force", false, "Overwrite existing output file")
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func fail(err error) error {
	return &ExitError{Code: ExitFailure, Err: err}
}

func getPersistentBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.InheritedFlags().GetBool(name)
	return v
}
