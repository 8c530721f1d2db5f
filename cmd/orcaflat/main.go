package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/orcaflat/orcaflat/cmd/commands"
	"github.com/orcaflat/orcaflat/internal/cli"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	cfgFile string
	verbose bool
	quiet   bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "orcaflat",
	Short: "Flatten and validate OrcaSlicer profiles",
	Long: `Orcaflat resolves the inheritance chains of OrcaSlicer filament,
machine, and process profiles into self-contained JSON files, and checks
profiles against a set of consistency rules (compatible printers, filament
references, obsolete keys, and more).`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
		cli.SetGlobalFlags(quiet, noColor)
	},
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of orcaflat",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("orcaflat version %s\n", version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.orcaflat.yaml)")
	rootCmd.PersistentFlags().String("config-dir", "", "OrcaSlicer configuration directory (auto-detected if not provided)")
	rootCmd.PersistentFlags().String("user-profile", "default", "User profile name")
	rootCmd.PersistentFlags().String("samples-dir", "", "Bundled sample profiles directory used as fallback")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format where applicable (text, json, or yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	for _, name := range []string{"config-dir", "user-profile", "samples-dir"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewFlattenCommand())
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewBrowseCommand())
	rootCmd.AddCommand(commands.NewSamplesCommand())
}

// initConfig loads configuration from the config file and environment.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			slog.Error("failed to find home directory", "error", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".orcaflat")
	}

	viper.SetEnvPrefix("ORCAFLAT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "file", viper.ConfigFileUsed())
	}
}

func setupLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
