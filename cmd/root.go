package cmd

import (
	"github.com/cmechlin/text-file-combiner/pkg/config"
	"github.com/cmechlin/text-file-combiner/pkg/logging"
	"github.com/cmechlin/text-file-combiner/pkg/version"

	"github.com/spf13/cobra"
)

var (
	debug   bool
	cfgFile string
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "tfc",
	Short: "tfc combines ordered text files into a single output file",
	Long: `tfc maintains an ordered list of text files and concatenates their
contents into one output file, each entry prefixed with a separator line and
the source path. The list order is exactly the order files are combined.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		enableDebug := debug
		if cfgPath, err := configPath(); err == nil {
			if cfg, err := config.Load(cfgPath); err == nil && cfg.Debug {
				enableDebug = true
			}
		}
		return logging.Setup(enableDebug, "tfc", version.Get().Version)
	},
}

// Execute runs the root command and returns any execution error.
func Execute() error {
	return RootCmd.Execute()
}

// configPath resolves the app config location, preferring the --config flag.
func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.DefaultPath()
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to the tfc config file (default: user config dir)")
}
