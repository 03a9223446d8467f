package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	cfgFile string
	verbose bool
	gitRoot bool
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "threatreport",
	Short: "Turn Checkov scan results into a threat report and Markdown summary",
	Long: `threatreport reshapes infrastructure-as-code scan results for CI.

Typical pipeline:
  checkov -d deploy/ -o json > threat_modelling/reports/results_json.json
  threatreport convert      Bucket failed checks by severity into pr-threats.json
  threatreport summarize    Print a Markdown summary of pr-threats.json`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./threatreport.{json,yaml} or ~/.threatreport/)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose/debug output")
	rootCmd.PersistentFlags().BoolVar(&gitRoot, "git-root", false,
		"resolve relative report paths from the enclosing git worktree root")

	rootCmd.Version = Version
	rootCmd.AddCommand(
		convertCmd,
		summarizeCmd,
		configCmd,
	)
}

func initConfig() {
	if verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		slog.Debug("Verbose logging enabled")
	}
}
