package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/CosmoTheDev/threatreport/internal/checkov"
	"github.com/CosmoTheDev/threatreport/internal/config"
	"github.com/CosmoTheDev/threatreport/internal/metrics"
	"github.com/CosmoTheDev/threatreport/internal/report"
	"github.com/CosmoTheDev/threatreport/models"
	"github.com/spf13/cobra"
)

var (
	convertInput       string
	convertOutput      string
	convertMetricsFile string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert Checkov results into a severity-bucketed threat report",
	Long: `Reads Checkov JSON output, sorts every failed check into the critical,
high, medium or low list by its severity and writes the threat report.

A missing results file is not an error: convert reports it and exits 0.

Examples:
  threatreport convert
  threatreport convert --input checkov.json --output pr-threats.json
  threatreport convert --metrics-file /var/lib/node_exporter/threatreport.prom`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertInput, "input", "i", "",
		"Checkov JSON results (default: "+config.DefaultScanResults+")")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "",
		"threat report destination (default: "+config.DefaultThreatReport+")")
	convertCmd.Flags().StringVar(&convertMetricsFile, "metrics-file", "",
		"also write per-severity gauges in Prometheus textfile format")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("input") {
		cfg.Paths.ScanResults = convertInput
	}
	if cmd.Flags().Changed("output") {
		cfg.Paths.ThreatReport = convertOutput
	}
	if cmd.Flags().Changed("metrics-file") {
		cfg.Metrics.Textfile = convertMetricsFile
	}
	if err := resolvePaths(cfg); err != nil {
		return err
	}
	return convert(cmd.OutOrStdout(), cfg)
}

// convert runs one conversion using the paths in cfg and prints the
// diagnostics CI relies on to w.
func convert(w io.Writer, cfg *config.Config) error {
	in, out := cfg.Paths.ScanResults, cfg.Paths.ThreatReport

	res, err := checkov.ReadFile(in)
	if errors.Is(err, checkov.ErrNotFound) {
		slog.Debug("No scan results, nothing to convert", "path", in)
		fmt.Fprintf(w, "Checkov results not found at %s\n", in)
		return nil
	}
	if err != nil {
		return err
	}

	tr := report.Convert(res)
	if err := report.WriteFile(out, tr); err != nil {
		return err
	}

	slog.Info("Threat report written",
		"path", out,
		"failed_checks", len(res.FailedChecks),
		"critical", len(tr.Critical),
		"high", len(tr.High),
		"medium", len(tr.Medium),
		"low", len(tr.Low),
	)

	if cfg.Metrics.Textfile != "" {
		if err := exportMetrics(cfg.Metrics.Textfile, tr); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "Threat report generated: %s\n", out)
	fmt.Fprintf(w, "Critical: %d, High: %d\n", len(tr.Critical), len(tr.High))
	return nil
}

func exportMetrics(path string, tr *models.ThreatReport) error {
	c := metrics.NewCollector()
	c.Observe(tr)
	if err := c.WriteTextfile(path); err != nil {
		return err
	}
	slog.Debug("Metrics textfile written", "path", path)
	return nil
}
