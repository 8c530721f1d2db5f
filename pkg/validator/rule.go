package validator

import "github.com/orcaflat/orcaflat/pkg/models"

// Input is the shared contract every rule checks against: one flattened
// profile plus an optional read-only view over sibling profiles of each
// type. Rules that need siblings skip silently when none are provided.
type Input struct {
	Profile  *models.Profile
	Siblings map[models.ProfileType][]*models.Profile

	// ExpectedName is the externally derived identity (file base name or
	// vendor index entry) the profile's name field should match. Empty
	// disables the name-consistency check.
	ExpectedName string
}

// Rule is a single independent check. Rules must not mutate the input and
// must not assume any other rule has run.
type Rule interface {
	// ID returns the stable rule identifier used in findings.
	ID() string

	// Check inspects the input and returns zero or more findings.
	Check(in *Input) []Finding
}

var rules []Rule

// Register adds a rule to the registry. Rules run in registration order.
func Register(r Rule) {
	rules = append(rules, r)
}

// Rules returns all registered rules in execution order.
func Rules() []Rule {
	return rules
}

// Validate runs every registered rule against the input. A rule producing
// findings never stops the others from running.
func Validate(in *Input) *Report {
	return ValidateWith(Rules(), in)
}

// ValidateWith runs a specific rule set, preserving order. Used by tests to
// prove rule independence and by callers that disable individual rules.
func ValidateWith(ruleSet []Rule, in *Input) *Report {
	report := &Report{FilesChecked: 1}
	for _, rule := range ruleSet {
		report.Findings = append(report.Findings, rule.Check(in)...)
	}
	return report
}
