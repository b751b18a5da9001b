// Package pathutil expands user-relative paths in theme file locations.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Expand replaces a leading ~ with the user's home directory. Paths
// without the prefix, and paths whose home cannot be resolved, come
// back unchanged.
func Expand(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/"))
}
