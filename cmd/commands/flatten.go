package commands

import (
	"encoding/json"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/orcaflat/orcaflat/internal/cli"
	"github.com/orcaflat/orcaflat/pkg/exporter"
	"github.com/orcaflat/orcaflat/pkg/models"
	"github.com/orcaflat/orcaflat/pkg/resolver"
	"github.com/orcaflat/orcaflat/pkg/validator"
)

var (
	flattenType   string
	flattenOutput string
	flattenFile   string
	flattenCopy   bool
	flattenCheck  bool
	flattenStrict bool
)

// NewFlattenCommand creates the flatten command
func NewFlattenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flatten <profile>...",
		Short: "Resolve inheritance and export self-contained profiles",
		Long: `Resolve a profile's full inheritance chain and export the flattened
result as a dependency-free JSON file.

Profiles can be given as bare names (searched through the configured
OrcaSlicer directories) or absolute paths. Several profiles can be
flattened in one invocation; a failure in one does not stop the others.

Examples:
  # Flatten a filament profile by name
  orcaflat flatten "Generic PLA.json" --type filament

  # Flatten by absolute path (type inferred from the directory)
  orcaflat flatten /path/to/machine/Ender-3.json

  # Flatten several profiles into a directory
  orcaflat flatten "Generic PLA" "Generic PETG" -t filament --output-dir exports

  # Validate before export and refuse to write on errors
  orcaflat flatten "Generic PLA" -t filament --check --strict

  # Copy the flattened JSON to the clipboard
  orcaflat flatten "Generic PLA" -t filament --copy`,
		Args: cobra.MinimumNArgs(1),
		RunE: runFlatten,
	}

	cmd.Flags().StringVarP(&flattenType, "type", "t", "", "Profile type (filament, machine, or process)")
	cmd.Flags().StringVar(&flattenOutput, "output-dir", ".", "Output directory for exported profiles")
	cmd.Flags().StringVarP(&flattenFile, "file", "f", "", "Output filename (single profile only)")
	cmd.Flags().BoolVar(&flattenCopy, "copy", false, "Copy the flattened JSON to the clipboard")
	cmd.Flags().BoolVar(&flattenCheck, "check", false, "Run validation rules and print findings")
	cmd.Flags().BoolVar(&flattenStrict, "strict", false, "With --check, refuse to export profiles with error findings")

	return cmd
}

func runFlatten(cmd *cobra.Command, args []string) error {
	if flattenFile != "" && len(args) > 1 {
		return fmt.Errorf("--file can only be used with a single profile")
	}

	st, err := newStore()
	if err != nil {
		return err
	}

	var pt models.ProfileType
	if flattenType != "" {
		pt, err = models.ParseProfileType(flattenType)
		if err != nil {
			return err
		}
	}

	res := resolver.New(st)
	exp := exporter.New(flattenOutput)

	failed := 0
	for _, identifier := range args {
		if err := flattenOne(res, exp, st, identifier, pt); err != nil {
			cli.PrintError("%s: %v", identifier, err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d profile(s) failed", failed, len(args))
	}
	return nil
}

func flattenOne(res *resolver.Resolver, exp *exporter.Exporter, st siblingLister, identifier string, pt models.ProfileType) error {
	flattened, err := res.Resolve(identifier, pt)
	if err != nil {
		return err
	}

	if flattenCheck {
		rep := validateFlattened(st, flattened)
		for _, finding := range rep.Findings {
			if finding.Severity == validator.SeverityError {
				cli.PrintError("[%s] %s", finding.RuleID, finding.Message)
			} else {
				cli.PrintWarning("[%s] %s", finding.RuleID, finding.Message)
			}
		}
		if flattenStrict && rep.HasErrors() {
			return fmt.Errorf("validation found %d error(s), not exporting", len(rep.Errors()))
		}
	}

	path, err := exp.Export(flattened, flattenFile)
	if err != nil {
		return err
	}
	cli.PrintSuccess("Flattened '%s' exported to: %s", flattened.Name, path)

	if flattenCopy {
		data, err := json.MarshalIndent(flattened.Fields, "", "    ")
		if err != nil {
			return fmt.Errorf("failed to encode profile for clipboard: %w", err)
		}
		if err := clipboard.WriteAll(string(data)); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		cli.PrintInfo("Copied to clipboard")
	}
	return nil
}

// siblingLister is the slice of the store the flatten/check validation path
// needs.
type siblingLister interface {
	ListSiblings(pt models.ProfileType) ([]*models.Profile, error)
}

// validateFlattened runs the rule set over one flattened profile with
// siblings loaded from the store. Sibling loading errors degrade to a
// profile-only check rather than failing the flatten.
func validateFlattened(st siblingLister, flattened *models.Profile) *validator.Report {
	siblings := make(map[models.ProfileType][]*models.Profile)
	for _, pt := range models.ProfileTypes {
		if list, err := st.ListSiblings(pt); err == nil {
			siblings[pt] = list
		}
	}
	return validator.Validate(&validator.Input{
		Profile:      flattened,
		Siblings:     siblings,
		ExpectedName: expectedNameFor(flattened.Path),
	})
}
