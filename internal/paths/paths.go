// Package paths expands the user-facing file paths accepted by the config,
// session and prefs stores.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Expand resolves a leading ~ to the home directory and returns an absolute
// path.
func Expand(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

// Resolve expands path, or fallback when path is blank.
func Resolve(path, fallback string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return Expand(fallback)
	}
	return Expand(path)
}
