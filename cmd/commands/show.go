package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/orcaflat/orcaflat/internal/cli"
	"github.com/orcaflat/orcaflat/pkg/models"
	"github.com/orcaflat/orcaflat/pkg/resolver"
)

var (
	showType  string
	showRaw   bool
	showChain bool
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <profile>",
		Short: "Display a profile, its inheritance chain, or its flattened form",
		Long: `Display a profile. By default the fully flattened JSON body is shown,
with every inherited value resolved.

Examples:
  # Show the flattened profile
  orcaflat show "Generic PLA.json" --type filament

  # Show the raw file content, without resolving inheritance
  orcaflat show "Generic PLA" -t filament --raw

  # Show the inheritance chain
  orcaflat show "Generic PLA" -t filament --chain`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().StringVarP(&showType, "type", "t", "", "Profile type (filament, machine, or process)")
	cmd.Flags().BoolVar(&showRaw, "raw", false, "Show the raw profile without resolving inheritance")
	cmd.Flags().BoolVar(&showChain, "chain", false, "Show the inheritance chain instead of the body")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	st, err := newStore()
	if err != nil {
		return err
	}

	var pt models.ProfileType
	if showType != "" {
		pt, err = models.ParseProfileType(showType)
		if err != nil {
			return err
		}
	}

	res := resolver.New(st)

	if showRaw {
		profile, err := res.Load(args[0], pt)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(profile.Path)
		if err != nil {
			return fmt.Errorf("failed to read profile %s: %w", profile.Path, err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}

	flattened, err := res.Resolve(args[0], pt)
	if err != nil {
		return err
	}

	if showChain {
		chain := append([]string{flattened.Name}, flattened.InheritedFrom...)
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(chain, " -> "))
		return nil
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat != "" {
		if err := cli.ValidateOutputFormat(outputFormat); err != nil {
			return err
		}
	}
	if outputFormat == "yaml" {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, flattened.Fields)
	}

	data, err := json.MarshalIndent(flattened.Fields, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
