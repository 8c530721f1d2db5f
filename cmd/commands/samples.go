package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/orcaflat/orcaflat/internal/cli"
	"github.com/orcaflat/orcaflat/pkg/samples"
)

var samplesDir string

// NewSamplesCommand creates the samples command
func NewSamplesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "samples",
		Short: "Install bundled sample profiles",
		Long: `Install a small sample vendor tree so orcaflat can be tried
without a local OrcaSlicer installation. The installed directory can be
passed to other commands with --samples-dir.

Examples:
  # Install samples to the default location
  orcaflat samples

  # Install to a specific directory and browse them
  orcaflat samples --dir ./samples
  orcaflat browse --samples-dir ./samples`,
		Args: cobra.NoArgs,
		RunE: runSamples,
	}

	cmd.Flags().StringVar(&samplesDir, "dir", "", "Target directory (default: user config dir)")

	return cmd
}

func runSamples(cmd *cobra.Command, args []string) error {
	dir := samplesDir
	if dir == "" {
		dir = viper.GetString("samples-dir")
	}
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("failed to find config directory: %w", err)
		}
		dir = filepath.Join(base, "orcaflat", "samples")
	}

	if samples.Installed(dir) {
		cli.PrintInfo("Samples already installed in %s", dir)
		return nil
	}

	if err := samples.Install(dir); err != nil {
		return fmt.Errorf("failed to install samples: %w", err)
	}

	cli.PrintSuccess("Installed %d sample profiles to %s", len(samples.Profiles()), dir)
	cli.PrintInfo("Try: orcaflat list --samples-dir %s", dir)
	return nil
}
