package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/orcaflat/orcaflat/pkg/models"
)

// writeProfile creates a profile JSON file, making parent directories.
func writeProfile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// newTestStore builds a store over a temp tree with user and system layers.
func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	base := t.TempDir()
	st, err := New(Config{BaseDir: base})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return st, base
}

func TestNewRequiresBaseDir(t *testing.T) {
	_, err := New(Config{BaseDir: filepath.Join(t.TempDir(), "missing")})
	if err == nil {
		t.Fatal("expected error for missing base directory")
	}
}

func TestNewAllowsMissingBaseDirWithSamples(t *testing.T) {
	samples := t.TempDir()
	_, err := New(Config{
		BaseDir:    filepath.Join(t.TempDir(), "missing"),
		SamplesDir: samples,
	})
	if err != nil {
		t.Fatalf("New with samples fallback failed: %v", err)
	}
}

func TestSearchPathPriority(t *testing.T) {
	st, base := newTestStore(t)

	writeProfile(t, filepath.Join(base, "user", "default", "filament", "a.json"), `{"name": "a"}`)
	writeProfile(t, filepath.Join(base, "system", "BBL", "filament", "b.json"), `{"name": "b"}`)
	writeProfile(t, filepath.Join(base, "system", "Anycubic", "filament", "c.json"), `{"name": "c"}`)

	locs := st.SearchPath(models.TypeFilament)
	if len(locs) != 3 {
		t.Fatalf("expected 3 locations, got %d", len(locs))
	}
	if locs[0].Source != "user/default" {
		t.Errorf("first location = %s, want user/default", locs[0].Source)
	}
	// Vendors come back alphabetically.
	if locs[1].Source != "system/Anycubic" || locs[2].Source != "system/BBL" {
		t.Errorf("vendor order = %s, %s", locs[1].Source, locs[2].Source)
	}
}

func TestLoadUserShadowsSystem(t *testing.T) {
	st, base := newTestStore(t)

	writeProfile(t, filepath.Join(base, "user", "default", "filament", "Generic PLA.json"),
		`{"name": "Generic PLA", "nozzle_temperature": ["230"]}`)
	writeProfile(t, filepath.Join(base, "system", "BBL", "filament", "Generic PLA.json"),
		`{"name": "Generic PLA", "nozzle_temperature": ["220"]}`)

	p, err := st.Load("Generic PLA", models.TypeFilament)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := p.ListField("nozzle_temperature"); len(got) != 1 || got[0] != "230" {
		t.Errorf("expected the user copy to win, got %v", got)
	}
}

func TestLoadAppendsJSONExtension(t *testing.T) {
	st, base := newTestStore(t)
	writeProfile(t, filepath.Join(base, "system", "BBL", "process", "standard.json"), `{"name": "standard"}`)

	if _, err := st.Load("standard", models.TypeProcess); err != nil {
		t.Errorf("Load without extension failed: %v", err)
	}
	if _, err := st.Load("standard.json", models.TypeProcess); err != nil {
		t.Errorf("Load with extension failed: %v", err)
	}
}

func TestLoadAbsolutePath(t *testing.T) {
	st, base := newTestStore(t)
	path := filepath.Join(base, "anywhere", "custom.json")
	writeProfile(t, path, `{"name": "custom"}`)

	p, err := st.Load(path, models.TypeFilament)
	if err != nil {
		t.Fatalf("Load by absolute path failed: %v", err)
	}
	if p.Name != "custom" {
		t.Errorf("Name = %q", p.Name)
	}
}

func TestLoadRejectsRelativePaths(t *testing.T) {
	st, _ := newTestStore(t)
	if _, err := st.Load("some/dir/profile.json", models.TypeFilament); err == nil {
		t.Fatal("expected error for relative multi-segment path")
	}
}

func TestLoadNotFound(t *testing.T) {
	st, base := newTestStore(t)
	writeProfile(t, filepath.Join(base, "system", "BBL", "filament", "other.json"), `{"name": "other"}`)

	_, err := st.Load("nonexistent", models.TypeFilament)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindParentByNameField(t *testing.T) {
	st, base := newTestStore(t)

	// Display name differs from the filename; only a content scan finds it.
	writeProfile(t, filepath.Join(base, "system", "BBL", "filament", "fdm_pla_base_file.json"),
		`{"name": "fdm_filament_pla", "filament_type": ["PLA"]}`)

	p, err := st.FindParent("fdm_filament_pla", models.TypeFilament)
	if err != nil {
		t.Fatalf("FindParent failed: %v", err)
	}
	if p.Name != "fdm_filament_pla" {
		t.Errorf("Name = %q", p.Name)
	}
}

func TestFindParentPrefersFilenameMatch(t *testing.T) {
	st, base := newTestStore(t)

	writeProfile(t, filepath.Join(base, "system", "BBL", "filament", "base.json"),
		`{"name": "base", "marker": "exact"}`)
	writeProfile(t, filepath.Join(base, "system", "BBL", "filament", "other.json"),
		`{"name": "base-alias", "marker": "scan"}`)

	p, err := st.FindParent("base", models.TypeFilament)
	if err != nil {
		t.Fatalf("FindParent failed: %v", err)
	}
	if p.StringField("marker") != "exact" {
		t.Errorf("expected the filename match, got marker %q", p.StringField("marker"))
	}
}

func TestFindParentNotFound(t *testing.T) {
	st, base := newTestStore(t)
	writeProfile(t, filepath.Join(base, "system", "BBL", "filament", "a.json"), `{"name": "a"}`)

	_, err := st.FindParent("phantom_template", models.TypeFilament)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListSiblingsDeduplicates(t *testing.T) {
	st, base := newTestStore(t)

	writeProfile(t, filepath.Join(base, "user", "default", "machine", "X1.json"),
		`{"name": "X1", "layer": "user"}`)
	writeProfile(t, filepath.Join(base, "system", "BBL", "machine", "X1.json"),
		`{"name": "X1", "layer": "system"}`)
	writeProfile(t, filepath.Join(base, "system", "BBL", "machine", "P1P.json"),
		`{"name": "P1P"}`)

	siblings, err := st.ListSiblings(models.TypeMachine)
	if err != nil {
		t.Fatalf("ListSiblings failed: %v", err)
	}
	if len(siblings) != 2 {
		t.Fatalf("expected 2 siblings, got %d", len(siblings))
	}
	for _, s := range siblings {
		if s.Name == "X1" && s.StringField("layer") != "user" {
			t.Errorf("duplicate resolution kept the %q copy, want user", s.StringField("layer"))
		}
	}
}

func TestListProfilesGroupsBySource(t *testing.T) {
	st, base := newTestStore(t)

	writeProfile(t, filepath.Join(base, "system", "BBL", "process", "a.json"), `{"name": "a"}`)
	writeProfile(t, filepath.Join(base, "system", "BBL", "process", "b.json"), `{"name": "b"}`)

	bySource, err := st.ListProfiles(models.TypeProcess)
	if err != nil {
		t.Fatalf("ListProfiles failed: %v", err)
	}
	paths := bySource["system/BBL"]
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths under system/BBL, got %v", bySource)
	}
}

func TestSamplesDirIsLowestPriority(t *testing.T) {
	base := t.TempDir()
	samplesDir := t.TempDir()
	writeProfile(t, filepath.Join(base, "system", "BBL", "filament", "x.json"), `{"name": "x"}`)
	writeProfile(t, filepath.Join(samplesDir, "profiles", "Sample", "filament", "x.json"), `{"name": "x-sample"}`)

	st, err := New(Config{BaseDir: base, SamplesDir: samplesDir})
	if err != nil {
		t.Fatal(err)
	}

	locs := st.SearchPath(models.TypeFilament)
	if len(locs) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(locs))
	}
	if locs[len(locs)-1].Source != "samples/Sample" {
		t.Errorf("samples should sort last, got %s", locs[len(locs)-1].Source)
	}
}
