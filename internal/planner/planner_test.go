package planner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"xten/internal/model"
	"xten/internal/util/bitrate"
)

type fakeProber struct {
	duration float64
	err      error
}

func (f fakeProber) Duration(context.Context, string) (float64, error) {
	return f.duration, f.err
}

func TestParseTargetSize(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{raw: "8mb", want: 8},
		{raw: "8MB", want: 8},
		{raw: " 2.5mb ", want: 2.5},
		{raw: "8", wantErr: true},
		{raw: "8gb", wantErr: true},
		{raw: "mb", wantErr: true},
		{raw: "-3mb", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseTargetSize(tt.raw)
		if tt.wantErr {
			if !errors.Is(err, model.ErrInvalidTargetFormat) {
				t.Errorf("ParseTargetSize(%q) err = %v, want ErrInvalidTargetFormat", tt.raw, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseTargetSize(%q) = %v, %v; want %v", tt.raw, got, err, tt.want)
		}
	}
}

func TestBuildTargetPlan(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "movie.mp4")

	plan, err := BuildTargetPlan(context.Background(), fakeProber{duration: 300}, input, 8, "slow", false)
	if err != nil {
		t.Fatalf("BuildTargetPlan: %v", err)
	}

	if plan.Mode != model.ModeTarget {
		t.Errorf("Mode = %v, want target", plan.Mode)
	}
	if plan.AudioBitrate != 128000 {
		t.Errorf("AudioBitrate = %d, want 128000", plan.AudioBitrate)
	}
	// 8MB over 300s computes below the floor and clamps.
	if plan.VideoBitrate != bitrate.MinVideoBps {
		t.Errorf("VideoBitrate = %d, want %d", plan.VideoBitrate, bitrate.MinVideoBps)
	}
	if plan.OutputPath != filepath.Join(dir, "movie_xten.mp4") {
		t.Errorf("OutputPath = %q, want movie_xten.mp4", plan.OutputPath)
	}
	if plan.CRF != 0 || plan.TargetMB != 8 {
		t.Errorf("mode fields inconsistent: CRF=%d TargetMB=%g", plan.CRF, plan.TargetMB)
	}

	argsStr := strings.Join(plan.Args, " ")
	for _, want := range []string{"-i " + input, "-b:v 100000", "-b:a 128000", "-preset slow", "-movflags +faststart"} {
		if !strings.Contains(argsStr, want) {
			t.Errorf("args missing %q, got: %v", want, plan.Args)
		}
	}
	if strings.Contains(argsStr, "-y") {
		t.Errorf("args should not contain -y without force, got: %v", plan.Args)
	}
	if plan.Args[len(plan.Args)-1] != plan.OutputPath {
		t.Errorf("last arg = %q, want output path", plan.Args[len(plan.Args)-1])
	}
}

func TestBuildTargetPlanCollision(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "movie.mp4")
	if err := os.WriteFile(filepath.Join(dir, "movie_xten.mp4"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	plan, err := BuildTargetPlan(context.Background(), fakeProber{duration: 300}, input, 8, "slow", false)
	if err != nil {
		t.Fatalf("BuildTargetPlan: %v", err)
	}
	if plan.OutputPath != filepath.Join(dir, "movie_xten_1.mp4") {
		t.Errorf("OutputPath = %q, want movie_xten_1.mp4", plan.OutputPath)
	}

	// force skips collision avoidance and prepends the overwrite flag.
	forced, err := BuildTargetPlan(context.Background(), fakeProber{duration: 300}, input, 8, "slow", true)
	if err != nil {
		t.Fatalf("BuildTargetPlan force: %v", err)
	}
	if forced.OutputPath != filepath.Join(dir, "movie_xten.mp4") {
		t.Errorf("forced OutputPath = %q, want movie_xten.mp4", forced.OutputPath)
	}
	if forced.Args[0] != "-y" {
		t.Errorf("forced args[0] = %q, want -y", forced.Args[0])
	}
}

func TestBuildCRFPlan(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "clip.mkv")

	plan, err := BuildCRFPlan(context.Background(), fakeProber{duration: 120}, input, 23, "medium", false)
	if err != nil {
		t.Fatalf("BuildCRFPlan: %v", err)
	}

	if plan.Mode != model.ModeCRF || plan.CRF != 23 {
		t.Errorf("Mode=%v CRF=%d, want crf/23", plan.Mode, plan.CRF)
	}
	if plan.TargetMB != 0 || plan.VideoBitrate != 0 || plan.AudioBitrate != 0 {
		t.Errorf("target-mode fields should be zero in CRF mode: %+v", plan)
	}
	if plan.OutputPath != filepath.Join(dir, "clip_xten.mp4") {
		t.Errorf("OutputPath = %q, want clip_xten.mp4", plan.OutputPath)
	}

	argsStr := strings.Join(plan.Args, " ")
	for _, want := range []string{"-crf 23", "-preset medium", "-movflags +faststart"} {
		if !strings.Contains(argsStr, want) {
			t.Errorf("args missing %q, got: %v", want, plan.Args)
		}
	}
	if strings.Contains(argsStr, "-b:v") {
		t.Errorf("CRF args should not contain -b:v, got: %v", plan.Args)
	}
}

func TestBuildTrimPlan(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "clip.mov")

	plan, err := BuildTrimPlan(context.Background(), fakeProber{duration: 42.5}, input, "5", "12.5", false)
	if err != nil {
		t.Fatalf("BuildTrimPlan: %v", err)
	}

	if plan.OutputPath != filepath.Join(dir, "clip_xten_trim.mp4") {
		t.Errorf("OutputPath = %q, want clip_xten_trim.mp4", plan.OutputPath)
	}
	if plan.DurationSec != 42.5 {
		t.Errorf("DurationSec = %v, want 42.5", plan.DurationSec)
	}

	argsStr := strings.Join(plan.Args, " ")
	if !strings.Contains(argsStr, "-ss 5 -to 12.5 -i "+input+" -c copy") {
		t.Errorf("trim args out of order, got: %v", plan.Args)
	}

	// Both seek flags must precede -i for fast input seeking.
	idx := func(flag string) int {
		for i, a := range plan.Args {
			if a == flag {
				return i
			}
		}
		return -1
	}
	if !(idx("-ss") < idx("-to") && idx("-to") < idx("-i")) {
		t.Errorf("seek flags must precede -i, got: %v", plan.Args)
	}
}

func TestBuildPlanProbeFailure(t *testing.T) {
	probeErr := errors.New("ffprobe exploded")
	if _, err := BuildTargetPlan(context.Background(), fakeProber{err: probeErr}, "in.mp4", 8, "slow", false); !errors.Is(err, probeErr) {
		t.Errorf("BuildTargetPlan err = %v, want probe error", err)
	}
	if _, err := BuildTrimPlan(context.Background(), fakeProber{err: probeErr}, "in.mp4", "0", "5", false); !errors.Is(err, probeErr) {
		t.Errorf("BuildTrimPlan err = %v, want probe error", err)
	}
}
