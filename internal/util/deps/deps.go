// Package deps locates the external tools xten drives.
package deps

import (
	"fmt"
	"os/exec"

	"xten/internal/model"
)

// FindFFmpeg returns the path to the ffmpeg binary in PATH.
func FindFFmpeg() (string, error) {
	if p, err := exec.LookPath("ffmpeg"); err == nil {
		return p, nil
	}
	return "", fmt.Errorf("%w: ffmpeg (please install ffmpeg)", model.ErrMissingTool)
}

// FindFFprobe returns the path to the ffprobe binary in PATH.
func FindFFprobe() (string, error) {
	if p, err := exec.LookPath("ffprobe"); err == nil {
		return p, nil
	}
	return "", fmt.Errorf("%w: ffprobe (please install ffmpeg)", model.ErrMissingTool)
}
