package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/orcaflat/orcaflat/pkg/models"
)

func newTestVendorTree(t *testing.T) (*VendorTree, string) {
	t.Helper()
	dir := t.TempDir()
	return &VendorTree{Dir: dir}, dir
}

func TestVendorsExcludesSharedLibrary(t *testing.T) {
	tree, dir := newTestVendorTree(t)

	for _, v := range []string{"BBL", "Anycubic", SharedFilamentLibrary} {
		if err := os.MkdirAll(filepath.Join(dir, v), 0755); err != nil {
			t.Fatal(err)
		}
	}

	vendors, err := tree.Vendors()
	if err != nil {
		t.Fatalf("Vendors failed: %v", err)
	}
	if len(vendors) != 2 || vendors[0] != "Anycubic" || vendors[1] != "BBL" {
		t.Errorf("Vendors = %v", vendors)
	}
}

func TestProfilesSkipsColorCodes(t *testing.T) {
	tree, dir := newTestVendorTree(t)

	writeProfile(t, filepath.Join(dir, "BBL", "filament", "Generic PLA.json"),
		`{"name": "Generic PLA"}`)
	writeProfile(t, filepath.Join(dir, "BBL", "filament", "filaments_color_codes.json"),
		`["#FFFFFF", "#000000"]`)

	profiles, errs := tree.Profiles("BBL", models.TypeFilament)
	if len(errs) != 0 {
		t.Fatalf("unexpected load errors: %v", errs)
	}
	if len(profiles) != 1 || profiles[0].Name != "Generic PLA" {
		t.Errorf("Profiles = %v", profiles)
	}
}

func TestProfilesReportsLoadErrors(t *testing.T) {
	tree, dir := newTestVendorTree(t)

	writeProfile(t, filepath.Join(dir, "BBL", "process", "good.json"), `{"name": "good"}`)
	writeProfile(t, filepath.Join(dir, "BBL", "process", "broken.json"), `{not json`)

	profiles, errs := tree.Profiles("BBL", models.TypeProcess)
	if len(profiles) != 1 {
		t.Errorf("expected 1 good profile, got %d", len(profiles))
	}
	if len(errs) != 1 {
		t.Errorf("expected 1 load error, got %d", len(errs))
	}
}

func TestFilamentNamesIncludesSharedLibrary(t *testing.T) {
	tree, dir := newTestVendorTree(t)

	writeProfile(t, filepath.Join(dir, "BBL", "filament", "Vendor PLA.json"),
		`{"name": "Vendor PLA"}`)
	writeProfile(t, filepath.Join(dir, SharedFilamentLibrary, "filament", "Library PETG.json"),
		`{"name": "Library PETG"}`)

	names := tree.FilamentNames("BBL")
	if !names["Vendor PLA"] || !names["Library PETG"] {
		t.Errorf("FilamentNames = %v", names)
	}
}

func TestIndex(t *testing.T) {
	tree, dir := newTestVendorTree(t)

	writeProfile(t, filepath.Join(dir, "BBL.json"), `{
    "name": "BBL",
    "version": "01.09.00.00",
    "filament_list": [
        {"name": "Generic PLA", "sub_path": "filament/Generic PLA.json"}
    ]
}`)

	idx, err := tree.Index("BBL")
	if err != nil {
		t.Fatalf("Index failed: %v", err)
	}
	if idx == nil || idx.Name != "BBL" || len(idx.FilamentList) != 1 {
		t.Errorf("Index = %+v", idx)
	}

	missing, err := tree.Index("NoSuchVendor")
	if err != nil || missing != nil {
		t.Errorf("missing index: got %+v, %v", missing, err)
	}
}
