package model

import "errors"

// Sentinel errors for every failure the tool can classify. All are
// terminal for the current invocation; the CLI layer maps them to a
// non-zero process exit.
var (
	ErrMissingInput        = errors.New("input file not found")
	ErrMissingTool         = errors.New("required tool not found in PATH")
	ErrInvalidPreset       = errors.New("invalid preset")
	ErrInvalidTargetFormat = errors.New("target must be specified in MB (e.g. 8mb)")
	ErrInvalidTime         = errors.New("invalid time")
	ErrExternalTool        = errors.New("external tool failed")
	ErrProbeParse          = errors.New("probe output missing expected fields")
)
