package validator

import "fmt"

// CompatiblePrinters verifies that every printer named in a filament
// profile's compatible_printers list exists as a known machine profile, and
// that instantiated filaments declare at least one compatible printer.
type CompatiblePrinters struct{}

func (CompatiblePrinters) ID() string { return "compatible-printers" }

func (CompatiblePrinters) Check(in *Input) []Finding {
	p := in.Profile
	if p.Type != "" && p.Type != "filament" {
		return nil
	}

	printers := p.ListField("compatible_printers")

	var findings []Finding
	if p.Instantiated() && len(printers) == 0 {
		findings = append(findings, Finding{
			Severity: SeverityError,
			RuleID:   "compatible-printers",
			Message:  fmt.Sprintf("instantiated filament %q has no compatible_printers", p.Name),
			Keys:     []string{"compatible_printers"},
			Path:     p.Path,
		})
	}

	machines := in.Siblings["machine"]
	if len(machines) == 0 {
		return findings
	}
	known := make(map[string]bool, len(machines))
	for _, m := range machines {
		known[m.Name] = true
	}
	for _, printer := range printers {
		if !known[printer] {
			findings = append(findings, Finding{
				Severity: SeverityError,
				RuleID:   "compatible-printers",
				Message:  fmt.Sprintf("%q lists unknown printer %q in compatible_printers", p.Name, printer),
				Keys:     []string{"compatible_printers"},
				Path:     p.Path,
			})
		}
	}
	return findings
}
