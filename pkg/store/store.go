// Package store locates and loads OrcaSlicer profile files from the host
// application's configuration directory, user profiles, and bundled samples.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/orcaflat/orcaflat/pkg/models"
)

// ErrNotFound is returned when an identifier matches no profile in any
// search location.
var ErrNotFound = errors.New("profile not found")

// Config describes where profiles live.
type Config struct {
	// BaseDir is the OrcaSlicer configuration directory.
	BaseDir string

	// UserProfile selects which user/<name>/ subtree to search first.
	UserProfile string

	// SamplesDir optionally points at a bundled profiles tree used as the
	// lowest-priority fallback.
	SamplesDir string
}

// Location is one directory profiles are searched in. Lower priority values
// are searched first.
type Location struct {
	Path     string
	Priority int
	Source   string
}

// Store resolves profile identifiers against the configured search tree.
type Store struct {
	cfg Config
}

// New creates a Store. BaseDir must exist unless a samples directory is
// provided as fallback.
func New(cfg Config) (*Store, error) {
	if cfg.UserProfile == "" {
		cfg.UserProfile = "default"
	}
	if cfg.BaseDir == "" {
		cfg.BaseDir = DefaultBaseDir()
	}
	if cfg.SamplesDir == "" {
		if _, err := os.Stat(cfg.BaseDir); err != nil {
			return nil, fmt.Errorf("OrcaSlicer directory not found: %s (use --config-dir to specify location)", cfg.BaseDir)
		}
	}
	return &Store{cfg: cfg}, nil
}

// DefaultBaseDir returns the platform default OrcaSlicer configuration
// directory. The directory may not exist.
func DefaultBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "OrcaSlicer")
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "OrcaSlicer")
	default:
		return filepath.Join(home, ".config", "OrcaSlicer")
	}
}

// SearchPath builds the prioritized list of directories for a profile type:
// the user tree first, then each system vendor, then bundled samples.
func (s *Store) SearchPath(pt models.ProfileType) []Location {
	var locations []Location

	userDir := filepath.Join(s.cfg.BaseDir, "user", s.cfg.UserProfile, string(pt))
	if dirExists(userDir) {
		locations = append(locations, Location{
			Path:     userDir,
			Priority: 10,
			Source:   "user/" + s.cfg.UserProfile,
		})
	}

	systemBase := filepath.Join(s.cfg.BaseDir, "system")
	for _, vendor := range sortedSubdirs(systemBase) {
		profileDir := filepath.Join(systemBase, vendor, string(pt))
		if dirExists(profileDir) {
			locations = append(locations, Location{
				Path:     profileDir,
				Priority: 20,
				Source:   "system/" + vendor,
			})
		}
	}

	if s.cfg.SamplesDir != "" {
		samplesBase := filepath.Join(s.cfg.SamplesDir, "profiles")
		for _, vendor := range sortedSubdirs(samplesBase) {
			profileDir := filepath.Join(samplesBase, vendor, string(pt))
			if dirExists(profileDir) {
				locations = append(locations, Location{
					Path:     profileDir,
					Priority: 30,
					Source:   "samples/" + vendor,
				})
			}
		}
	}

	sort.SliceStable(locations, func(i, j int) bool {
		return locations[i].Priority < locations[j].Priority
	})
	return locations
}

// Load resolves an identifier to a profile. Absolute paths are loaded
// directly; bare filenames are searched through the type's search path.
// Relative multi-segment paths are rejected to avoid ambiguity.
func (s *Store) Load(identifier string, pt models.ProfileType) (*models.Profile, error) {
	if filepath.IsAbs(identifier) {
		info, err := os.Stat(identifier)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrNotFound, identifier)
			}
			return nil, fmt.Errorf("failed to access profile %s: %w", identifier, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("path is a directory, expected file: %s", identifier)
		}
		return LoadProfileFile(identifier)
	}

	if strings.ContainsAny(identifier, `/\`) {
		return nil, fmt.Errorf("relative paths not supported, use filename only or absolute path: %s", identifier)
	}

	filename := identifier
	if !strings.HasSuffix(filename, ".json") {
		filename += ".json"
	}

	for _, loc := range s.SearchPath(pt) {
		candidate := filepath.Join(loc.Path, filename)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return LoadProfileFile(candidate)
		}
	}

	searched := s.SearchPath(pt)
	if len(searched) == 0 {
		return nil, fmt.Errorf("%w: %s (no %s directories found under %s)", ErrNotFound, identifier, pt, s.cfg.BaseDir)
	}
	var dirs []string
	for _, loc := range searched {
		dirs = append(dirs, loc.Path)
	}
	return nil, fmt.Errorf("%w: %s (searched: %s)", ErrNotFound, identifier, strings.Join(dirs, ", "))
}

// FindParent locates a parent profile by name within a type's search tree.
// It tries an exact filename match in each location first, then falls back
// to scanning JSON files for a matching name field, since parents are named
// by display name rather than filename in many vendor trees.
func (s *Store) FindParent(name string, pt models.ProfileType) (*models.Profile, error) {
	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename += ".json"
	}
	bareName := strings.TrimSuffix(name, ".json")

	for _, loc := range s.SearchPath(pt) {
		candidate := filepath.Join(loc.Path, filename)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return LoadProfileFile(candidate)
		}
	}

	for _, loc := range s.SearchPath(pt) {
		var found *models.Profile
		err := filepath.WalkDir(loc.Path, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() || !strings.HasSuffix(path, ".json") {
				return nil //nolint:nilerr // unreadable entries are skipped
			}
			p, loadErr := LoadProfileFile(path)
			if loadErr != nil {
				return nil // skip files that can't be parsed
			}
			if p.Name == name || p.Name == bareName {
				found = p
				return fs.SkipAll
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", loc.Path, err)
		}
		if found != nil {
			return found, nil
		}
	}

	return nil, fmt.Errorf("%w: parent profile %s", ErrNotFound, name)
}

// ListSiblings loads every parseable profile of a type across the search
// tree. Higher-priority duplicates (by name) win, matching Load semantics.
func (s *Store) ListSiblings(pt models.ProfileType) ([]*models.Profile, error) {
	seen := make(map[string]bool)
	var siblings []*models.Profile

	for _, loc := range s.SearchPath(pt) {
		err := filepath.WalkDir(loc.Path, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() || !strings.HasSuffix(path, ".json") {
				return nil //nolint:nilerr
			}
			p, loadErr := LoadProfileFile(path)
			if loadErr != nil {
				return nil
			}
			if !seen[p.Name] {
				seen[p.Name] = true
				siblings = append(siblings, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", loc.Path, err)
		}
	}

	sort.Slice(siblings, func(i, j int) bool { return siblings[i].Name < siblings[j].Name })
	return siblings, nil
}

// ListProfiles returns profile file paths of a type grouped by source, for
// display. Only the top level of each location is listed.
func (s *Store) ListProfiles(pt models.ProfileType) (map[string][]string, error) {
	results := make(map[string][]string)
	for _, loc := range s.SearchPath(pt) {
		entries, err := os.ReadDir(loc.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", loc.Path, err)
		}
		var paths []string
		for _, entry := range entries {
			if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
				paths = append(paths, filepath.Join(loc.Path, entry.Name()))
			}
		}
		if len(paths) > 0 {
			sort.Strings(paths)
			results[loc.Source] = paths
		}
	}
	return results, nil
}

// BaseDir exposes the configured base directory.
func (s *Store) BaseDir() string { return s.cfg.BaseDir }

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func sortedSubdirs(base string) []string {
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil
	}
	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	sort.Strings(dirs)
	return dirs
}
