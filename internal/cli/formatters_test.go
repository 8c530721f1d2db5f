package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestOutputResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]any{"name": "Generic PLA", "count": 2}

	if err := OutputResults(&buf, "json", data); err != nil {
		t.Fatalf("OutputResults failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["name"] != "Generic PLA" {
		t.Errorf("decoded = %v", decoded)
	}
}

func TestOutputResultsYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := OutputResults(&buf, "yaml", map[string]string{"key": "value"}); err != nil {
		t.Fatalf("OutputResults failed: %v", err)
	}
	if !strings.Contains(buf.String(), "key: value") {
		t.Errorf("yaml output = %q", buf.String())
	}
}

func TestOutputResultsUnknownFormat(t *testing.T) {
	if err := OutputResults(&bytes.Buffer{}, "xml", nil); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	table := NewTableFormatter(&buf)
	table.Header("NAME", "TYPE")
	table.Row("Generic PLA", "filament")
	table.Flush()

	out := buf.String()
	if !strings.Contains(out, "NAME") || !strings.Contains(out, "Generic PLA") {
		t.Errorf("table output = %q", out)
	}
}

func TestValidateOutputFormat(t *testing.T) {
	for _, valid := range []string{"text", "json", "yaml"} {
		if err := ValidateOutputFormat(valid); err != nil {
			t.Errorf("ValidateOutputFormat(%q) failed: %v", valid, err)
		}
	}
	if err := ValidateOutputFormat("csv"); err == nil {
		t.Error("expected error for csv")
	}
}
