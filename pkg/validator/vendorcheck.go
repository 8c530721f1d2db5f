package validator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/orcaflat/orcaflat/pkg/models"
	"github.com/orcaflat/orcaflat/pkg/store"
)

// CheckOptions controls optional checks when scanning a vendor tree.
type CheckOptions struct {
	// CheckObsolete enables the obsolete-keys rule, which is noisy on
	// older vendor trees and therefore opt-in.
	CheckObsolete bool
}

// CheckVendor runs the rule set over every profile of one vendor in a
// profiles tree. Files that fail to load are reported as findings, not
// errors: one bad file must not stop the rest of the scan.
func CheckVendor(tree *store.VendorTree, vendor string, opts CheckOptions) *Report {
	report := &Report{}

	byType := make(map[models.ProfileType][]*models.Profile)
	for _, pt := range models.ProfileTypes {
		profiles, loadErrs := tree.Profiles(vendor, pt)
		byType[pt] = profiles
		for _, loadErr := range loadErrs {
			report.Findings = append(report.Findings, Finding{
				Severity: SeverityError,
				RuleID:   "profile-load",
				Message:  loadErr.Error(),
			})
		}
	}

	// Duplicate display names make every cross-reference ambiguous.
	seen := make(map[string]string)
	for _, pt := range models.ProfileTypes {
		for _, p := range byType[pt] {
			key := string(pt) + "/" + p.Name
			if prev, dup := seen[key]; dup {
				report.Findings = append(report.Findings, Finding{
					Severity: SeverityError,
					RuleID:   "profile-load",
					Message:  fmt.Sprintf("duplicate %s profile %q (%s and %s)", pt, p.Name, prev, p.Path),
					Path:     p.Path,
				})
			}
			seen[key] = p.Path
		}
	}

	// Filament references may resolve through the shared library.
	siblings := map[models.ProfileType][]*models.Profile{
		models.TypeMachine: byType[models.TypeMachine],
		models.TypeProcess: byType[models.TypeProcess],
	}
	shared, _ := tree.Profiles(store.SharedFilamentLibrary, models.TypeFilament)
	siblings[models.TypeFilament] = append(append([]*models.Profile{}, byType[models.TypeFilament]...), shared...)

	expected := expectedNames(tree, vendor, report)

	ruleSet := Rules()
	if !opts.CheckObsolete {
		ruleSet = withoutRule(ruleSet, "obsolete-keys")
	}

	for _, pt := range models.ProfileTypes {
		for _, p := range byType[pt] {
			in := &Input{
				Profile:      p,
				Siblings:     siblings,
				ExpectedName: expected[p.Path],
			}
			report.Merge(ValidateWith(ruleSet, in))
		}
	}
	return report
}

// expectedNames maps profile paths to the display names the vendor index
// assigns them. Index entries pointing at missing files are reported.
func expectedNames(tree *store.VendorTree, vendor string, report *Report) map[string]string {
	expected := make(map[string]string)
	idx, err := tree.Index(vendor)
	if err != nil {
		report.Findings = append(report.Findings, Finding{
			Severity: SeverityError,
			RuleID:   "name-consistency",
			Message:  err.Error(),
		})
		return expected
	}
	if idx == nil {
		return expected
	}
	for _, section := range idx.Sections() {
		for _, entry := range section.Entries {
			path := filepath.Join(tree.Dir, vendor, filepath.FromSlash(entry.SubPath))
			if !fileExists(path) {
				report.Findings = append(report.Findings, Finding{
					Severity: SeverityError,
					RuleID:   "name-consistency",
					Message:  fmt.Sprintf("vendor index %s entry %q points at missing file %s", section.Name, entry.Name, entry.SubPath),
				})
				continue
			}
			expected[path] = entry.Name
		}
	}
	return expected
}

func withoutRule(ruleSet []Rule, id string) []Rule {
	out := make([]Rule, 0, len(ruleSet))
	for _, r := range ruleSet {
		if r.ID() != id {
			out = append(out, r)
		}
	}
	return out
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
