package cmd

import (
	"io"

	"github.com/CosmoTheDev/threatreport/internal/config"
	"github.com/CosmoTheDev/threatreport/internal/report"
	"github.com/CosmoTheDev/threatreport/internal/summary"
	"github.com/spf13/cobra"
)

var (
	summarizeReport string
	summarizeFormat string
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Print a Markdown summary of a threat report",
	Long: `Reads the threat report written by convert and prints the number of
threats per severity followed by the details of every critical threat.

Examples:
  threatreport summarize >> "$GITHUB_STEP_SUMMARY"
  threatreport summarize --report pr-threats.json --format terminal`,
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().StringVarP(&summarizeReport, "report", "r", "",
		"threat report to summarize (default: "+config.DefaultThreatReport+")")
	summarizeCmd.Flags().StringVarP(&summarizeFormat, "format", "f", "",
		"output format: markdown|terminal|yaml (default: markdown)")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("report") {
		cfg.Paths.ThreatReport = summarizeReport
	}
	if cmd.Flags().Changed("format") {
		cfg.Summary.Format = summarizeFormat
	}
	if err := resolvePaths(cfg); err != nil {
		return err
	}
	return summarize(cmd.OutOrStdout(), cfg)
}

// summarize renders the threat report at cfg.Paths.ThreatReport to w.
func summarize(w io.Writer, cfg *config.Config) error {
	format, err := summary.ParseFormat(cfg.Summary.Format)
	if err != nil {
		return err
	}
	tr, err := report.ReadFile(cfg.Paths.ThreatReport)
	if err != nil {
		return err
	}
	return summary.Write(w, tr, format)
}
