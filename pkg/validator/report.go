// Package validator checks flattened OrcaSlicer profiles against a fixed
// set of consistency rules and accumulates findings into a report.
package validator

// Severity classifies a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is one validation result tied to a rule and the keys involved.
type Finding struct {
	Severity Severity `json:"severity" yaml:"severity"`
	RuleID   string   `json:"rule_id" yaml:"rule_id"`
	Message  string   `json:"message" yaml:"message"`
	Keys     []string `json:"keys,omitempty" yaml:"keys,omitempty"`
	Path     string   `json:"path,omitempty" yaml:"path,omitempty"`
}

// Report is an ordered sequence of findings. Findings appear in the order
// their rules ran; rule order is fixed, so output is reproducible for
// identical input.
type Report struct {
	Findings     []Finding `json:"findings" yaml:"findings"`
	FilesChecked int       `json:"files_checked" yaml:"files_checked"`
}

// Errors returns the error-severity findings.
func (r *Report) Errors() []Finding {
	return r.filter(SeverityError)
}

// Warnings returns the warning-severity findings.
func (r *Report) Warnings() []Finding {
	return r.filter(SeverityWarning)
}

// HasErrors reports whether any finding is an error. A report with errors
// means the profile must not be treated as fit for use, though callers
// decide whether that blocks export.
func (r *Report) HasErrors() bool {
	return len(r.Errors()) > 0
}

// Merge appends another report's findings and file count.
func (r *Report) Merge(other *Report) {
	r.Findings = append(r.Findings, other.Findings...)
	r.FilesChecked += other.FilesChecked
}

func (r *Report) filter(sev Severity) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}
