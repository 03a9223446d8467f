package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CosmoTheDev/threatreport/internal/config"
)

const sampleCheckov = `{"summary":{"parsing_errors":2},"results":{"failed_checks":[{"check_name":"Open SG","severity":"CRITICAL","resource":"aws_security_group.x","file_path":"main.tf","file_line_range":[10,12],"description":"0.0.0.0/0 ingress"},{"check_name":"No logging","severity":"HIGH"},{"check_name":"Tags"}]}}`

func testConfig(dir string) *config.Config {
	return &config.Config{
		Paths: config.PathsConfig{
			ScanResults:  filepath.Join(dir, "reports", "results_json.json"),
			ThreatReport: filepath.Join(dir, "reports", "pr-threats.json"),
		},
		Summary: config.SummaryConfig{Format: "markdown"},
	}
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestConvertMissingInputIsNoop(t *testing.T) {
	cfg := testConfig(t.TempDir())

	var out bytes.Buffer
	if err := convert(&out, cfg); err != nil {
		t.Fatalf("convert: %v", err)
	}
	if got := out.String(); got != "Checkov results not found at "+cfg.Paths.ScanResults+"\n" {
		t.Fatalf("unexpected diagnostic: %q", got)
	}
	if _, err := os.Stat(cfg.Paths.ThreatReport); !os.IsNotExist(err) {
		t.Fatalf("expected no report to be written, stat err = %v", err)
	}
}

func TestConvertWritesReport(t *testing.T) {
	cfg := testConfig(t.TempDir())
	writeFile(t, cfg.Paths.ScanResults, sampleCheckov)

	var out bytes.Buffer
	if err := convert(&out, cfg); err != nil {
		t.Fatalf("convert: %v", err)
	}
	want := "Threat report generated: " + cfg.Paths.ThreatReport + "\nCritical: 1, High: 1\n"
	if out.String() != want {
		t.Fatalf("unexpected output %q, want %q", out.String(), want)
	}
	data, err := os.ReadFile(cfg.Paths.ThreatReport)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	if !strings.Contains(string(data), `"scan_date": 2`) {
		t.Fatalf("unexpected report:\n%s", data)
	}
}

func TestConvertMalformedInput(t *testing.T) {
	cfg := testConfig(t.TempDir())
	writeFile(t, cfg.Paths.ScanResults, `{"results": [`)

	var out bytes.Buffer
	if err := convert(&out, cfg); err == nil {
		t.Fatal("expected error for malformed input")
	}
	if _, err := os.Stat(cfg.Paths.ThreatReport); !os.IsNotExist(err) {
		t.Fatalf("expected no report on failure, stat err = %v", err)
	}
}

func TestConvertWritesMetrics(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.Metrics.Textfile = filepath.Join(dir, "threatreport.prom")
	writeFile(t, cfg.Paths.ScanResults, sampleCheckov)

	if err := convert(&bytes.Buffer{}, cfg); err != nil {
		t.Fatalf("convert: %v", err)
	}
	data, err := os.ReadFile(cfg.Metrics.Textfile)
	if err != nil {
		t.Fatalf("reading metrics: %v", err)
	}
	if !strings.Contains(string(data), `threatreport_threats_total{severity="medium"} 1`) {
		t.Fatalf("unexpected metrics:\n%s", data)
	}
}

func TestConvertThenSummarize(t *testing.T) {
	cfg := testConfig(t.TempDir())
	writeFile(t, cfg.Paths.ScanResults, sampleCheckov)
	if err := convert(&bytes.Buffer{}, cfg); err != nil {
		t.Fatalf("convert: %v", err)
	}

	var out bytes.Buffer
	if err := summarize(&out, cfg); err != nil {
		t.Fatalf("summarize: %v", err)
	}
	want := "# Threat Modeling Summary\n\n" +
		"**Critical**: 1\n**High**: 1\n**Medium**: 1\n**Low**: 0\n\n" +
		"## Critical Threats\n\n" +
		"- **Open SG** (main.tf)\n" +
		"  - Resource: `aws_security_group.x`\n" +
		"  - 0.0.0.0/0 ingress\n\n"
	if out.String() != want {
		t.Fatalf("unexpected summary:\n%s", out.String())
	}
}

func TestSummarizeMissingReport(t *testing.T) {
	cfg := testConfig(t.TempDir())
	if err := summarize(&bytes.Buffer{}, cfg); err == nil {
		t.Fatal("expected error for missing threat report")
	}
}

func TestSummarizeMalformedReport(t *testing.T) {
	cfg := testConfig(t.TempDir())
	writeFile(t, cfg.Paths.ThreatReport, `{"scan_date": 0, "critical": []}`)
	if err := summarize(&bytes.Buffer{}, cfg); err == nil {
		t.Fatal("expected error for report without all buckets")
	}
}

func TestSummarizeUnknownFormat(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Summary.Format = "pdf"
	if err := summarize(&bytes.Buffer{}, cfg); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestRootCommandConvertAndSummarize(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	writeFile(t, filepath.Join(dir, config.DefaultScanResults), sampleCheckov)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs([]string{"convert"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !strings.Contains(out.String(), "Threat report generated: "+config.DefaultThreatReport) {
		t.Fatalf("unexpected convert output: %q", out.String())
	}

	out.Reset()
	rootCmd.SetArgs([]string{"summarize"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if !strings.HasPrefix(out.String(), "# Threat Modeling Summary\n") {
		t.Fatalf("unexpected summarize output: %q", out.String())
	}
}
