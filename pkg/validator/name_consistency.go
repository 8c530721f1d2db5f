package validator

import "fmt"

// NameConsistency flags a name field that differs from the profile's
// external identity, which causes display-name/file-name drift in the host
// application.
type NameConsistency struct{}

func (NameConsistency) ID() string { return "name-consistency" }

func (NameConsistency) Check(in *Input) []Finding {
	if in.ExpectedName == "" || in.Profile.Name == in.ExpectedName {
		return nil
	}
	return []Finding{{
		Severity: SeverityWarning,
		RuleID:   "name-consistency",
		Message:  fmt.Sprintf("name %q does not match expected identity %q", in.Profile.Name, in.ExpectedName),
		Keys:     []string{"name"},
		Path:     in.Profile.Path,
	}}
}
