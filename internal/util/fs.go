package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveOutputName returns basePath unchanged when nothing exists at
// that path; otherwise it appends an incrementing numeric suffix before
// the extension and returns the first candidate not on disk. The check
// is not atomic against concurrent writers.
func ResolveOutputName(basePath string) string {
	if !Exists(basePath) {
		return basePath
	}

	ext := filepath.Ext(basePath)
	stem := strings.TrimSuffix(basePath, ext)

	for counter := 1; ; counter++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, counter, ext)
		if !Exists(candidate) {
			return candidate
		}
	}
}

// Exists reports whether a file or directory is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// RemoveIfExists deletes the file if present.
func RemoveIfExists(path string) error {
	if _, err := os.Stat(path); err == nil {
		return os.Remove(path)
	} else if os.IsNotExist(err) {
		return nil
	} else {
		return err
	}
}
