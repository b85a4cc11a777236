package encoder

import (
	"math"
	"testing"
)

func TestParseTimeSeconds(t *testing.T) {
	tests := []struct {
		name string
		line string
		want float64
		ok   bool
	}{
		{
			name: "typical encode status line",
			line: "frame=  420 fps= 30 q=28.0 size=    2048kB time=00:01:23.45 bitrate= 201.1kbits/s speed=1.2x",
			want: 83.45,
			ok:   true,
		},
		{
			name: "hours component",
			line: "size=  233422kB time=01:45:50.68 bitrate= 301.1kbits/s",
			want: 6350.68,
			ok:   true,
		},
		{
			name: "no time token",
			line: "Stream mapping: Stream #0:0 -> #0:0 (h264 (native) -> h264 (libx264))",
		},
		{
			name: "empty line",
			line: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimeSeconds(tt.line)
			if ok != tt.ok {
				t.Fatalf("ParseTimeSeconds ok = %v, want %v", ok, tt.ok)
			}
			if ok && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ParseTimeSeconds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrackerObserve(t *testing.T) {
	tracker := &Tracker{Total: 100}

	// Canned diagnostic stream: noise, two timestamps, noise.
	lines := []string{
		"Input #0, mov,mp4,m4a,3gp,3g2,mj2, from 'movie.mp4':",
		"frame=  100 fps= 25 q=28.0 size=     512kB time=00:00:25.00 bitrate= 167.8kbits/s",
		"frame=  200 fps= 25 q=28.0 size=    1024kB time=00:00:50.00 bitrate= 167.8kbits/s",
		"video:900kB audio:120kB subtitle:0kB other streams:0kB",
	}

	var got []float64
	for _, line := range lines {
		if _, pct, ok := tracker.Observe(line); ok {
			got = append(got, pct)
		}
	}

	want := []float64{25, 50}
	if len(got) != len(want) {
		t.Fatalf("observed %d updates, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("update %d = %v%%, want %v%%", i, got[i], want[i])
		}
	}
}

func TestTrackerClampsToTotal(t *testing.T) {
	// Trim progress is displayed against the full source duration, so
	// timestamps past the total must clamp rather than overflow.
	tracker := &Tracker{Total: 30}
	seconds, pct, ok := tracker.Observe("size= 1024kB time=00:01:00.00 bitrate= 100kbits/s")
	if !ok {
		t.Fatal("expected a timestamp")
	}
	if seconds != 30 || pct != 100 {
		t.Errorf("got %vs %v%%, want clamped to 30s 100%%", seconds, pct)
	}
}

func TestTrackerZeroTotal(t *testing.T) {
	tracker := &Tracker{}
	_, pct, ok := tracker.Observe("time=00:00:10.00 bitrate= 1kbits/s")
	if !ok {
		t.Fatal("expected a timestamp")
	}
	if pct != 0 {
		t.Errorf("pct = %v, want 0 when total unknown", pct)
	}
}
