package store

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/orcaflat/orcaflat/pkg/models"
)

// SharedFilamentLibrary is the vendor-neutral filament template set shipped
// with the host application. It is searched as a fallback for filament
// references and skipped when iterating vendors.
const SharedFilamentLibrary = "OrcaFilamentLibrary"

// VendorTree is a read-only view over a resources/profiles-style directory:
// one subdirectory per vendor with filament/machine/process trees, plus a
// <vendor>.json index next to each.
type VendorTree struct {
	Dir string
}

// Vendors lists vendor directory names, excluding the shared filament
// library, sorted for deterministic iteration.
func (t *VendorTree) Vendors() ([]string, error) {
	entries, err := os.ReadDir(t.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles directory %s: %w", t.Dir, err)
	}
	var vendors []string
	for _, entry := range entries {
		if entry.IsDir() && entry.Name() != SharedFilamentLibrary {
			vendors = append(vendors, entry.Name())
		}
	}
	sort.Strings(vendors)
	return vendors, nil
}

// Profiles loads every parseable profile of a type under a vendor. Files
// that fail to parse are returned as errors alongside the successes so
// callers can report them without aborting the scan.
func (t *VendorTree) Profiles(vendor string, pt models.ProfileType) ([]*models.Profile, []error) {
	root := filepath.Join(t.Dir, vendor, string(pt))
	if !dirExists(root) {
		return nil, nil
	}

	var profiles []*models.Profile
	var loadErrs []error
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil //nolint:nilerr
		}
		if filepath.Base(path) == "filaments_color_codes.json" {
			return nil // color table, not a profile
		}
		p, loadErr := LoadProfileFile(path)
		if loadErr != nil {
			loadErrs = append(loadErrs, loadErr)
			return nil
		}
		if p.Type == "" {
			p.Type = pt
		}
		profiles = append(profiles, p)
		return nil
	})

	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Path < profiles[j].Path })
	return profiles, loadErrs
}

// FilamentNames collects filament profile names available to a vendor: its
// own filament tree plus the shared filament library.
func (t *VendorTree) FilamentNames(vendor string) map[string]bool {
	names := make(map[string]bool)
	for _, v := range []string{vendor, SharedFilamentLibrary} {
		profiles, _ := t.Profiles(v, models.TypeFilament)
		for _, p := range profiles {
			names[p.Name] = true
		}
	}
	return names
}

// Index loads the <vendor>.json index file, or nil if the vendor has none.
func (t *VendorTree) Index(vendor string) (*models.VendorIndex, error) {
	path := filepath.Join(t.Dir, vendor+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read vendor index %s: %w", path, err)
	}
	var idx models.VendorIndex
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("failed to parse vendor index %s: %w", path, err)
	}
	return &idx, nil
}
