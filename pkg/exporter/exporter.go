// Package exporter writes flattened profiles to disk as self-contained
// JSON files.
package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/orcaflat/orcaflat/pkg/models"
)

// DefaultSuffix separates flattened output from the source profiles.
const DefaultSuffix = "flattened"

// Exporter writes profiles under one output directory.
type Exporter struct {
	OutputDir string
}

// New creates an Exporter. An empty outputDir means the current directory.
func New(outputDir string) *Exporter {
	if outputDir == "" {
		outputDir = "."
	}
	return &Exporter{OutputDir: outputDir}
}

// Export writes one profile and returns the path written. An empty
// filename derives `{name}.flattened.json` from the profile. Filenames are
// sanitized so a hostile name field cannot escape the output directory.
func (e *Exporter) Export(profile *models.Profile, filename string) (string, error) {
	if profile == nil || len(profile.Fields) == 0 {
		return "", fmt.Errorf("cannot export empty profile")
	}
	if profile.Name == "" {
		return "", fmt.Errorf("cannot export profile without a name")
	}

	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", e.OutputDir, err)
	}

	if filename == "" {
		filename = fmt.Sprintf("%s.%s.json", profile.Name, DefaultSuffix)
	}
	filename = SanitizeFilename(filename)

	data, err := json.MarshalIndent(profile.Fields, "", "    ")
	if err != nil {
		return "", fmt.Errorf("failed to encode profile %s: %w", profile.Name, err)
	}
	data = append(data, '\n')

	outPath := filepath.Join(e.OutputDir, filename)
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return outPath, nil
}

// ExportAll writes multiple profiles, continuing past individual failures.
// The error, if any, aggregates every failure.
func (e *Exporter) ExportAll(profiles []*models.Profile) ([]string, error) {
	var paths []string
	var errs []string
	for _, p := range profiles {
		path, err := e.Export(p, "")
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		paths = append(paths, path)
	}
	if len(errs) > 0 {
		return paths, fmt.Errorf("%d profile(s) failed to export: %s", len(errs), strings.Join(errs, "; "))
	}
	return paths, nil
}

var unsafeChars = regexp.MustCompile(`[^\w\s\-.]`)
var multiSpace = regexp.MustCompile(`\s+`)

// SanitizeFilename strips path separators, parent references, and unsafe
// characters from a filename.
func SanitizeFilename(filename string) string {
	filename = strings.NewReplacer("../", "", `..\`, "", "/", "", `\`, "").Replace(filename)
	filename = strings.TrimLeft(filename, ".")
	filename = unsafeChars.ReplaceAllString(filename, "")
	filename = multiSpace.ReplaceAllString(filename, " ")
	if filename == "" {
		filename = "profile.json"
	}
	return filename
}
