package validator

import "fmt"

// filamentRefKeys are the machine/process keys that reference filament
// profiles by name. Values may be JSON lists or semicolon-joined strings.
var filamentRefKeys = []string{"default_materials", "default_filament_profile"}

// FilamentReference verifies that filament references in machine and
// process profiles resolve to known filament profiles in the sibling set.
type FilamentReference struct{}

func (FilamentReference) ID() string { return "filament-reference" }

func (FilamentReference) Check(in *Input) []Finding {
	p := in.Profile
	if p.Type == "filament" {
		return nil
	}
	filaments := in.Siblings["filament"]
	if len(filaments) == 0 {
		return nil
	}
	known := make(map[string]bool, len(filaments))
	for _, f := range filaments {
		known[f.Name] = true
	}

	var findings []Finding
	for _, key := range filamentRefKeys {
		for _, material := range p.ListField(key) {
			if !known[material] {
				findings = append(findings, Finding{
					Severity: SeverityError,
					RuleID:   "filament-reference",
					Message:  fmt.Sprintf("%q references unknown filament %q in %s", p.Name, material, key),
					Keys:     []string{key},
					Path:     p.Path,
				})
			}
		}
	}
	return findings
}
