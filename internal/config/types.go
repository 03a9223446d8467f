package config

// Config is the root configuration structure for threatreport.
type Config struct {
	Paths   PathsConfig   `mapstructure:"paths"   json:"paths"`
	Summary SummaryConfig `mapstructure:"summary" json:"summary"`
	Metrics MetricsConfig `mapstructure:"metrics" json:"metrics"`
}

// PathsConfig locates the documents exchanged between convert and summarize.
type PathsConfig struct {
	// ScanResults is the Checkov JSON output read by convert.
	ScanResults string `mapstructure:"scan_results" json:"scan_results"`
	// ThreatReport is written by convert and read by summarize.
	ThreatReport string `mapstructure:"threat_report" json:"threat_report"`
	// RelativeToGitRoot anchors relative paths at the enclosing git worktree
	// instead of the working directory.
	RelativeToGitRoot bool `mapstructure:"relative_to_git_root" json:"relative_to_git_root"`
}

// SummaryConfig controls summarize output.
type SummaryConfig struct {
	// Format is "markdown" (default), "terminal" or "yaml".
	Format string `mapstructure:"format" json:"format"`
}

// MetricsConfig controls the optional Prometheus textfile export.
type MetricsConfig struct {
	// Textfile is where convert writes gauges; empty disables the export.
	Textfile string `mapstructure:"textfile" json:"textfile"`
}
