package validator

import (
	"fmt"
	"sort"
	"strings"
)

// FilamentID enforces the filament_id field constraints: non-empty, within
// the host application's length limit, and unique within the vendor scope.
// Duplicate IDs make filament selection ambiguous.
type FilamentID struct{}

func (FilamentID) ID() string { return "filament-id-constraint" }

func (FilamentID) Check(in *Input) []Finding {
	p := in.Profile
	if p.Type != "" && p.Type != "filament" {
		return nil
	}
	raw, present := p.Fields["filament_id"]
	if !present {
		return nil
	}

	var findings []Finding
	id, _ := raw.(string)
	if strings.TrimSpace(id) == "" {
		return []Finding{{
			Severity: SeverityError,
			RuleID:   "filament-id-constraint",
			Message:  fmt.Sprintf("%q has an empty filament_id", p.Name),
			Keys:     []string{"filament_id"},
			Path:     p.Path,
		}}
	}
	if len(id) > maxFilamentIDLength {
		findings = append(findings, Finding{
			Severity: SeverityError,
			RuleID:   "filament-id-constraint",
			Message:  fmt.Sprintf("%q filament_id %q exceeds %d characters", p.Name, id, maxFilamentIDLength),
			Keys:     []string{"filament_id"},
			Path:     p.Path,
		})
	}

	var holders []string
	for _, sibling := range in.Siblings["filament"] {
		if sibling.Name == p.Name {
			continue
		}
		if sibling.StringField("filament_id") == id {
			holders = append(holders, sibling.Name)
		}
	}
	if len(holders) > 0 {
		sort.Strings(holders)
		findings = append(findings, Finding{
			Severity: SeverityError,
			RuleID:   "filament-id-constraint",
			Message:  fmt.Sprintf("filament_id %q is shared by %q and %q", id, p.Name, strings.Join(holders, `", "`)),
			Keys:     []string{"filament_id"},
			Path:     p.Path,
		})
	}
	return findings
}
