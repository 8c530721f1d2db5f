package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/orcaflat/orcaflat/internal/cli"
	"github.com/orcaflat/orcaflat/pkg/models"
	"github.com/orcaflat/orcaflat/pkg/report"
	"github.com/orcaflat/orcaflat/pkg/resolver"
	"github.com/orcaflat/orcaflat/pkg/store"
	"github.com/orcaflat/orcaflat/pkg/validator"
)

var (
	checkVendor      string
	checkProfilesDir string
	checkObsolete    bool
	checkFormat      string
	checkFile        string
	checkExternal    string
	checkType        string
)

// NewCheckCommand creates the check command
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [<profile>...]",
		Short: "Validate profiles against the consistency rule set",
		Long: `Run the validation rule set and report findings.

With profile arguments, each profile is flattened and checked against its
siblings from the configured OrcaSlicer directories. Without arguments,
the command scans a vendor profile tree (one directory per vendor with
filament/machine/process subtrees), either a single vendor or all of them.

The command exits non-zero when any error-severity finding is produced;
warnings alone do not fail the run.

Examples:
  # Check one profile
  orcaflat check "Generic PLA.json" --type filament

  # Check every vendor in a profiles tree
  orcaflat check --profiles-dir /path/to/resources/profiles

  # Check one vendor, including obsolete-key warnings
  orcaflat check --profiles-dir ./profiles --vendor BBL --check-obsolete-keys

  # Machine-readable output
  orcaflat check --profiles-dir ./profiles --format sarif --file findings.sarif
  orcaflat check "Generic PLA" -t filament --format json`,
		RunE: runCheck,
	}

	cmd.Flags().StringVar(&checkVendor, "vendor", "", "Check a single vendor")
	cmd.Flags().StringVar(&checkProfilesDir, "profiles-dir", "", "Vendor profiles directory (default: <config-dir>/system)")
	cmd.Flags().BoolVar(&checkObsolete, "check-obsolete-keys", false, "Warn if obsolete keys are found")
	cmd.Flags().StringVar(&checkFormat, "format", "table", "Report format (table, json, yaml, or sarif)")
	cmd.Flags().StringVar(&checkFile, "file", "", "Write the report to a file instead of stdout")
	cmd.Flags().StringVar(&checkExternal, "external", "", "Also run an external validator binary against each profile")
	cmd.Flags().StringVarP(&checkType, "type", "t", "", "Profile type for profile arguments")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	var rep *validator.Report
	var err error
	if len(args) > 0 {
		rep, err = checkProfiles(cmd, args)
	} else {
		rep, err = checkVendorTree()
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if checkFile != "" {
		f, createErr := os.Create(checkFile)
		if createErr != nil {
			return fmt.Errorf("failed to create report file: %w", createErr)
		}
		defer f.Close()
		out = f
	}

	if err := writeReport(out, checkFormat, rep); err != nil {
		return err
	}
	if checkFile != "" {
		cli.PrintSuccess("Report written to: %s (%s format)", checkFile, checkFormat)
	}

	if rep.HasErrors() {
		return fmt.Errorf("validation failed: %d error(s)", len(rep.Errors()))
	}
	return nil
}

func checkProfiles(cmd *cobra.Command, args []string) (*validator.Report, error) {
	st, err := newStore()
	if err != nil {
		return nil, err
	}

	var pt models.ProfileType
	if checkType != "" {
		pt, err = models.ParseProfileType(checkType)
		if err != nil {
			return nil, err
		}
	}

	res := resolver.New(st)
	merged := &validator.Report{}

	for _, identifier := range args {
		flattened, err := res.Resolve(identifier, pt)
		if err != nil {
			// One profile's failure must not stop the rest of the batch.
			cli.PrintError("%s: %v", identifier, err)
			merged.Findings = append(merged.Findings, validator.Finding{
				Severity: validator.SeverityError,
				RuleID:   "profile-load",
				Message:  err.Error(),
			})
			continue
		}
		merged.Merge(validateFlattened(st, flattened))

		if checkExternal != "" {
			external := &validator.External{Command: checkExternal}
			extReport, extErr := external.Run(cmd.Context(), flattened.Path)
			if extErr != nil {
				return nil, extErr
			}
			merged.Merge(extReport)
		}
	}
	return merged, nil
}

func checkVendorTree() (*validator.Report, error) {
	dir := checkProfilesDir
	if dir == "" {
		base := viper.GetString("config-dir")
		if base == "" {
			base = store.DefaultBaseDir()
		}
		dir = filepath.Join(base, "system")
	}
	if err := cli.ValidateDirectoryPath(dir); err != nil {
		return nil, err
	}

	tree := &store.VendorTree{Dir: dir}
	opts := validator.CheckOptions{CheckObsolete: checkObsolete}

	if checkVendor != "" {
		return validator.CheckVendor(tree, checkVendor, opts), nil
	}

	vendors, err := tree.Vendors()
	if err != nil {
		return nil, err
	}
	merged := &validator.Report{}
	for _, vendor := range vendors {
		merged.Merge(validator.CheckVendor(tree, vendor, opts))
	}
	return merged, nil
}

func writeReport(w io.Writer, format string, rep *validator.Report) error {
	formatter, err := report.New(format, w)
	if err != nil {
		return err
	}
	return formatter.Format(rep)
}
