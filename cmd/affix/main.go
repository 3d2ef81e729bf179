package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose  bool
	fromFile bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "affix",
	Short: "Measure the prefix and suffix two texts have in common",
	Long: `affix compares texts given as arguments, or as files with --file,
and prints how many leading or trailing characters they share.

Example:
  affix prefix kitten kitchen     # 3
  affix suffix --file a.txt b.txt`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			return nil
		}
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&fromFile, "file", "f", false, "Treat arguments as paths and compare file contents")

	prefixCmd.Flags().BoolVar(&useBytes, "bytes", false, "Count bytes instead of characters")
	suffixCmd.Flags().BoolVar(&useBytes, "bytes", false, "Count bytes instead of characters")
	splitCmd.Flags().BoolVar(&asJSON, "json", false, "Print the parts as a JSON object")

	rootCmd.AddCommand(prefixCmd, suffixCmd, overlapCmd, splitCmd, lcpCmd, lcsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
