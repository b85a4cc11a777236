package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveOutputName(t *testing.T) {
	dir := t.TempDir()
	touch := func(name string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	base := filepath.Join(dir, "movie_xten.mp4")

	// Nothing on disk: the base path comes back unchanged.
	if got := ResolveOutputName(base); got != base {
		t.Errorf("ResolveOutputName(%q) = %q, want unchanged", base, got)
	}

	touch("movie_xten.mp4")
	if got := ResolveOutputName(base); got != filepath.Join(dir, "movie_xten_1.mp4") {
		t.Errorf("first collision: got %q, want movie_xten_1.mp4", got)
	}

	touch("movie_xten_1.mp4")
	touch("movie_xten_2.mp4")
	if got := ResolveOutputName(base); got != filepath.Join(dir, "movie_xten_3.mp4") {
		t.Errorf("chained collisions: got %q, want movie_xten_3.mp4", got)
	}
}

func TestRemoveIfExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.mp4")

	// Missing file is not an error.
	if err := RemoveIfExists(path); err != nil {
		t.Fatalf("RemoveIfExists on missing file: %v", err)
	}

	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := RemoveIfExists(path); err != nil {
		t.Fatalf("RemoveIfExists: %v", err)
	}
	if Exists(path) {
		t.Error("file still present after RemoveIfExists")
	}
}
