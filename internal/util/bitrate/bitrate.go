// Package bitrate computes the video bitrate for size-targeted encodes.
package bitrate

const (
	// AudioBps is the fixed audio bitrate used by every target-mode plan.
	AudioBps = 128_000

	// MinVideoBps floors the computed video bitrate so tiny targets or
	// very long inputs never produce a degenerate near-zero rate.
	MinVideoBps = 100_000

	// overheadFactor leaves headroom for encoder overshoot and container
	// overhead so the output lands under the requested size.
	overheadFactor = 0.95
)

// VideoBps returns the video bitrate in bits/sec that fits targetMB
// (with the fixed audio track) into durationSec of media.
func VideoBps(targetMB, durationSec float64) int {
	if durationSec <= 0 {
		return MinVideoBps
	}
	targetBits := targetMB * 8 * 1024 * 1024
	total := int(targetBits / durationSec * overheadFactor)
	video := total - AudioBps
	if video < MinVideoBps {
		return MinVideoBps
	}
	return video
}
