package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/orcaflat/orcaflat/pkg/validator"
)

func sampleReport() *validator.Report {
	return &validator.Report{
		FilesChecked: 3,
		Findings: []validator.Finding{
			{
				Severity: validator.SeverityError,
				RuleID:   "compatible-printers",
				Message:  `"Generic PLA" lists unknown printer "Ghost"`,
				Keys:     []string{"compatible_printers"},
				Path:     "/profiles/BBL/filament/Generic PLA.json",
			},
			{
				Severity: validator.SeverityWarning,
				RuleID:   "obsolete-keys",
				Message:  `"Old PLA" contains obsolete key "spaghetti_detector"`,
				Keys:     []string{"spaghetti_detector"},
			},
		},
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New("xml", &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for unknown format")
	}
	for _, format := range SupportedFormats() {
		if _, err := New(format, &bytes.Buffer{}); err != nil {
			t.Errorf("New(%q) failed: %v", format, err)
		}
	}
}

func TestTableFormat(t *testing.T) {
	var buf bytes.Buffer
	f, err := New("table", &buf)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Format(sampleReport()); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"SEVERITY", "ERROR", "WARNING", "compatible-printers", "Files checked : 3", "Errors        : 1", "Warnings      : 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestTableFormatEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	f, _ := New("table", &buf)
	if err := f.Format(&validator.Report{FilesChecked: 1}); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "SEVERITY") {
		t.Error("empty report should not print a findings table")
	}
	if !strings.Contains(out, "Errors        : 0") {
		t.Errorf("missing summary:\n%s", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	f, _ := New("json", &buf)
	if err := f.Format(sampleReport()); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var decoded validator.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Findings) != 2 || decoded.FilesChecked != 3 {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestYAMLFormat(t *testing.T) {
	var buf bytes.Buffer
	f, _ := New("yaml", &buf)
	if err := f.Format(sampleReport()); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var decoded validator.Report
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(decoded.Findings) != 2 {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestSARIFFormat(t *testing.T) {
	var buf bytes.Buffer
	f := &SARIFFormatter{writer: &buf, Version: "1.2.3"}
	if err := f.Format(sampleReport()); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc["version"] != "2.1.0" {
		t.Errorf("sarif version = %v", doc["version"])
	}
	out := buf.String()
	for _, want := range []string{"orcaflat", "compatible-printers", `"level"`, "Generic PLA"} {
		if !strings.Contains(out, want) {
			t.Errorf("sarif output missing %q", want)
		}
	}
}
