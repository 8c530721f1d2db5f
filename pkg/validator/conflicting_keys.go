package validator

import "fmt"

// ConflictingKeys flags profiles that set both halves of a mutually
// exclusive key pair with different effective values.
type ConflictingKeys struct{}

func (ConflictingKeys) ID() string { return "conflicting-keys" }

func (ConflictingKeys) Check(in *Input) []Finding {
	p := in.Profile
	var findings []Finding
	for _, pair := range ConflictKeys {
		a, aOK := p.Fields[pair[0]]
		b, bOK := p.Fields[pair[1]]
		if !aOK || !bOK {
			continue
		}
		if fmt.Sprint(a) == fmt.Sprint(b) {
			continue // same effective meaning, harmless
		}
		findings = append(findings, Finding{
			Severity: SeverityError,
			RuleID:   "conflicting-keys",
			Message:  fmt.Sprintf("%q sets both %s and %s with different values", p.Name, pair[0], pair[1]),
			Keys:     []string{pair[0], pair[1]},
			Path:     p.Path,
		})
	}
	return findings
}
