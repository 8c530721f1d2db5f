package validator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/orcaflat/orcaflat/pkg/store"
)

func writeVendorFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// newVendorFixture builds a small vendor tree with one deliberate error:
// the filament lists a printer no machine profile provides.
func newVendorFixture(t *testing.T) *store.VendorTree {
	t.Helper()
	dir := t.TempDir()

	writeVendorFile(t, dir, "Acme/filament/Acme PLA.json", `{
    "type": "filament",
    "name": "Acme PLA",
    "instantiation": "true",
    "filament_id": "APL01",
    "compatible_printers": ["Acme One 0.4 nozzle", "Ghost Printer"]
}`)
	writeVendorFile(t, dir, "Acme/machine/Acme One 0.4 nozzle.json", `{
    "type": "machine",
    "name": "Acme One 0.4 nozzle"
}`)
	writeVendorFile(t, dir, "Acme/process/0.20mm Standard.json", `{
    "type": "process",
    "name": "0.20mm Standard"
}`)

	return &store.VendorTree{Dir: dir}
}

func TestCheckVendorFindsUnknownPrinter(t *testing.T) {
	tree := newVendorFixture(t)

	report := CheckVendor(tree, "Acme", CheckOptions{})
	if !report.HasErrors() {
		t.Fatal("expected errors")
	}

	found := false
	for _, f := range report.Errors() {
		if f.RuleID == "compatible-printers" && strings.Contains(f.Message, "Ghost Printer") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing compatible-printers finding: %v", report.Findings)
	}
}

func TestCheckVendorReportsUnparseableFiles(t *testing.T) {
	tree := newVendorFixture(t)
	writeVendorFile(t, tree.Dir, "Acme/filament/broken.json", `{broken`)

	report := CheckVendor(tree, "Acme", CheckOptions{})

	found := false
	for _, f := range report.Errors() {
		if f.RuleID == "profile-load" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing profile-load finding: %v", report.Findings)
	}
}

func TestCheckVendorDuplicateNames(t *testing.T) {
	tree := newVendorFixture(t)
	writeVendorFile(t, tree.Dir, "Acme/filament/Acme PLA copy.json", `{
    "type": "filament",
    "name": "Acme PLA"
}`)

	report := CheckVendor(tree, "Acme", CheckOptions{})

	found := false
	for _, f := range report.Errors() {
		if strings.Contains(f.Message, "duplicate filament profile") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing duplicate-name finding: %v", report.Findings)
	}
}

func TestCheckVendorObsoleteKeysOptIn(t *testing.T) {
	tree := newVendorFixture(t)
	writeVendorFile(t, tree.Dir, "Acme/process/legacy.json", `{
    "type": "process",
    "name": "legacy",
    "spaghetti_detector": "1"
}`)

	hasObsolete := func(r *Report) bool {
		for _, f := range r.Findings {
			if f.RuleID == "obsolete-keys" {
				return true
			}
		}
		return false
	}

	if hasObsolete(CheckVendor(tree, "Acme", CheckOptions{})) {
		t.Error("obsolete-keys should be off by default")
	}
	if !hasObsolete(CheckVendor(tree, "Acme", CheckOptions{CheckObsolete: true})) {
		t.Error("obsolete-keys should run when enabled")
	}
}

func TestCheckVendorSharedLibraryResolvesFilamentRefs(t *testing.T) {
	tree := newVendorFixture(t)
	writeVendorFile(t, tree.Dir, store.SharedFilamentLibrary+"/filament/Library PLA.json", `{
    "type": "filament",
    "name": "Library PLA"
}`)
	writeVendorFile(t, tree.Dir, "Acme/machine/Acme Two.json", `{
    "type": "machine",
    "name": "Acme Two",
    "default_filament_profile": ["Library PLA"]
}`)

	report := CheckVendor(tree, "Acme", CheckOptions{})
	for _, f := range report.Errors() {
		if f.RuleID == "filament-reference" {
			t.Errorf("shared-library filament should resolve: %v", f)
		}
	}
}

func TestCheckVendorIndexMissingFile(t *testing.T) {
	tree := newVendorFixture(t)
	writeVendorFile(t, tree.Dir, "Acme.json", `{
    "name": "Acme",
    "filament_list": [
        {"name": "Acme PLA", "sub_path": "filament/Acme PLA.json"},
        {"name": "Gone PLA", "sub_path": "filament/Gone PLA.json"}
    ]
}`)

	report := CheckVendor(tree, "Acme", CheckOptions{})

	found := false
	for _, f := range report.Errors() {
		if f.RuleID == "name-consistency" && strings.Contains(f.Message, "Gone PLA") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing index finding: %v", report.Findings)
	}
}

func TestCheckVendorIndexFindingsStableOrder(t *testing.T) {
	tree := newVendorFixture(t)
	writeVendorFile(t, tree.Dir, "Acme.json", `{
    "name": "Acme",
    "machine_model_list": [{"name": "Gone Model", "sub_path": "machine/Gone Model.json"}],
    "machine_list": [{"name": "Gone Machine", "sub_path": "machine/Gone Machine.json"}],
    "filament_list": [{"name": "Gone PLA", "sub_path": "filament/Gone PLA.json"}],
    "process_list": [{"name": "Gone Process", "sub_path": "process/Gone Process.json"}]
}`)

	sectionOrder := func(r *Report) []string {
		var order []string
		for _, f := range r.Findings {
			if f.RuleID == "name-consistency" && strings.Contains(f.Message, "missing file") {
				order = append(order, strings.Fields(f.Message)[2])
			}
		}
		return order
	}

	want := []string{"machine_model_list", "machine_list", "filament_list", "process_list"}
	for i := 0; i < 10; i++ {
		got := sectionOrder(CheckVendor(tree, "Acme", CheckOptions{}))
		if len(got) != len(want) {
			t.Fatalf("run %d: findings %v", i, got)
		}
		for j := range want {
			if got[j] != want[j] {
				t.Fatalf("run %d: order %v, want %v", i, got, want)
			}
		}
	}
}

func TestCheckVendorIndexNameMismatch(t *testing.T) {
	tree := newVendorFixture(t)
	writeVendorFile(t, tree.Dir, "Acme.json", `{
    "name": "Acme",
    "filament_list": [
        {"name": "Renamed PLA", "sub_path": "filament/Acme PLA.json"}
    ]
}`)

	report := CheckVendor(tree, "Acme", CheckOptions{})

	found := false
	for _, f := range report.Warnings() {
		if f.RuleID == "name-consistency" && strings.Contains(f.Message, "Renamed PLA") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing name-consistency warning: %v", report.Findings)
	}
}
