package model

import (
	"errors"
	"testing"
)

func TestParsePreset(t *testing.T) {
	for _, p := range ValidPresets {
		got, err := ParsePreset(string(p))
		if err != nil || got != p {
			t.Errorf("ParsePreset(%q) = %v, %v; want the preset back", p, got, err)
		}
	}

	for _, bad := range []string{"ultraslow", "Slow", "", "fastest"} {
		if _, err := ParsePreset(bad); !errors.Is(err, ErrInvalidPreset) {
			t.Errorf("ParsePreset(%q) err = %v, want ErrInvalidPreset", bad, err)
		}
	}
}
