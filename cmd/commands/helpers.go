package commands

import (
	"path/filepath"
	"strings"
)

// expectedNameFor derives the external identity a profile's name field
// should match: the file base name without the .json extension. Empty when
// the profile did not come from a file.
func expectedNameFor(path string) string {
	if path == "" {
		return ""
	}
	return strings.TrimSuffix(filepath.Base(path), ".json")
}
