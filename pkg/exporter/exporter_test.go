package exporter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/orcaflat/orcaflat/pkg/models"
)

func testProfile(name string) *models.Profile {
	return &models.Profile{
		Name: name,
		Type: models.TypeFilament,
		Fields: map[string]any{
			"name":               name,
			"nozzle_temperature": []any{"220"},
		},
	}
}

func TestExportDefaultFilename(t *testing.T) {
	dir := t.TempDir()
	e := New(dir)

	path, err := e.Export(testProfile("Generic PLA"), "")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if filepath.Base(path) != "Generic PLA.flattened.json" {
		t.Errorf("filename = %q", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["name"] != "Generic PLA" {
		t.Errorf("name = %v", decoded["name"])
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("output should end with a newline")
	}
	if !strings.Contains(string(data), "    \"name\"") {
		t.Error("output should be indented with four spaces")
	}
}

func TestExportExplicitFilename(t *testing.T) {
	dir := t.TempDir()
	e := New(dir)

	path, err := e.Export(testProfile("Generic PLA"), "custom.json")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if filepath.Base(path) != "custom.json" {
		t.Errorf("filename = %q", filepath.Base(path))
	}
}

func TestExportRejectsEmptyProfile(t *testing.T) {
	e := New(t.TempDir())

	if _, err := e.Export(nil, ""); err == nil {
		t.Error("expected error for nil profile")
	}
	if _, err := e.Export(&models.Profile{Name: "x"}, ""); err == nil {
		t.Error("expected error for empty fields")
	}
	if _, err := e.Export(&models.Profile{Fields: map[string]any{"k": "v"}}, ""); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestExportHostileNameStaysInside(t *testing.T) {
	dir := t.TempDir()
	e := New(dir)

	p := testProfile("../../etc/evil")
	path, err := e.Export(p, "")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		t.Errorf("export escaped the output directory: %s", path)
	}
}

func TestExportAllContinuesPastFailures(t *testing.T) {
	dir := t.TempDir()
	e := New(dir)

	profiles := []*models.Profile{
		testProfile("Good One"),
		{Name: "empty"},
		testProfile("Good Two"),
	}

	paths, err := e.ExportAll(profiles)
	if err == nil {
		t.Fatal("expected an aggregate error")
	}
	if len(paths) != 2 {
		t.Errorf("expected 2 successful exports, got %v", paths)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Generic PLA.json", "Generic PLA.json"},
		{"../../../etc/passwd", "etcpasswd"},
		{"a/b\\c.json", "abc.json"},
		{".hidden.json", "hidden.json"},
		{"name:with*chars?.json", "namewithchars.json"},
		{"too    many   spaces.json", "too many spaces.json"},
		{"", "profile.json"},
	}

	for _, tt := range tests {
		if got := SanitizeFilename(tt.input); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
