// Package samples bundles a small sample vendor tree that can back the
// store when no real OrcaSlicer installation is present.
package samples

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/orcaflat/orcaflat/pkg/models"
)

// Vendor is the name of the bundled sample vendor.
const Vendor = "Sample"

// SampleProfile is one bundled profile template.
type SampleProfile struct {
	Filename string
	Type     models.ProfileType
	Content  string
}

// Install writes the bundled sample tree under dir, laid out the way the
// store's samples search path expects: <dir>/profiles/<vendor>/<type>/.
// Existing files are left untouched.
func Install(dir string) error {
	for _, sample := range Profiles() {
		target := filepath.Join(dir, "profiles", Vendor, string(sample.Type), sample.Filename)
		if _, err := os.Stat(target); err == nil {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", filepath.Dir(target), err)
		}
		if err := os.WriteFile(target, []byte(sample.Content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
	}
	return nil
}

// Installed reports whether the sample tree already exists under dir.
func Installed(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, "profiles", Vendor))
	return err == nil && info.IsDir()
}
