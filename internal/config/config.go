package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultConfigDir    = ".threatreport"
	DefaultConfigName   = "threatreport"
	DefaultScanResults  = "threat_modelling/reports/results_json.json"
	DefaultThreatReport = "threat_modelling/reports/pr-threats.json"
	EnvPrefix           = "THREATREPORT"
)

// Load reads the optional config file and environment overrides and returns
// a populated Config. configPath overrides the search for threatreport.json
// or threatreport.yaml in the working directory and ~/.threatreport.
func Load(configPath string) (*Config, error) {
	v, err := newViper(configPath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// ConfigPath returns the config file in effect, or "" when running on
// defaults and environment only.
func ConfigPath(override string) (string, error) {
	v, err := newViper(override)
	if err != nil {
		return "", err
	}
	return v.ConfigFileUsed(), nil
}

func newViper(configPath string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, DefaultConfigDir))
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			// An explicit --config must exist; a searched-for one is optional.
			if configPath != "" || !isNotExist(err) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}
	return v, nil
}

// setDefaults registers every key so AutomaticEnv can override it during
// Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("paths.scan_results", DefaultScanResults)
	v.SetDefault("paths.threat_report", DefaultThreatReport)
	v.SetDefault("paths.relative_to_git_root", false)

	v.SetDefault("summary.format", "markdown")

	v.SetDefault("metrics.textfile", "")
}

func isNotExist(err error) bool {
	return os.IsNotExist(err) || strings.Contains(err.Error(), "no such file")
}
