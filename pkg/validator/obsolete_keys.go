package validator

import (
	"fmt"
	"sort"
)

// ObsoleteKeyCheck warns about keys the host application no longer reads.
type ObsoleteKeyCheck struct{}

func (ObsoleteKeyCheck) ID() string { return "obsolete-keys" }

func (ObsoleteKeyCheck) Check(in *Input) []Finding {
	p := in.Profile
	var present []string
	for key := range p.Fields {
		if ObsoleteKeys[key] {
			present = append(present, key)
		}
	}
	sort.Strings(present)

	findings := make([]Finding, 0, len(present))
	for _, key := range present {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			RuleID:   "obsolete-keys",
			Message:  fmt.Sprintf("%q contains obsolete key %q", p.Name, key),
			Keys:     []string{key},
			Path:     p.Path,
		})
	}
	return findings
}
