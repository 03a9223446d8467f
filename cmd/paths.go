package cmd

import (
	"fmt"

	"github.com/CosmoTheDev/threatreport/internal/config"
	"github.com/CosmoTheDev/threatreport/internal/workspace"
	"github.com/spf13/cobra"
)

// loadConfig reads configuration and applies the persistent flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if cmd.Flags().Changed("git-root") {
		cfg.Paths.RelativeToGitRoot = gitRoot
	}
	return cfg, nil
}

// resolvePaths anchors the configured report paths according to cfg.
func resolvePaths(cfg *config.Config) error {
	r, err := workspace.NewResolver(".", cfg.Paths.RelativeToGitRoot)
	if err != nil {
		return err
	}
	cfg.Paths.ScanResults = r.Resolve(cfg.Paths.ScanResults)
	cfg.Paths.ThreatReport = r.Resolve(cfg.Paths.ThreatReport)
	cfg.Metrics.Textfile = r.Resolve(cfg.Metrics.Textfile)
	return nil
}
