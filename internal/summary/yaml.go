package summary

import (
	"io"

	"github.com/CosmoTheDev/threatreport/models"
	"go.yaml.in/yaml/v3"
)

type yamlCounts struct {
	Critical int `yaml:"critical"`
	High     int `yaml:"high"`
	Medium   int `yaml:"medium"`
	Low      int `yaml:"low"`
}

type yamlSummary struct {
	Counts          yamlCounts      `yaml:"counts"`
	CriticalThreats []models.Threat `yaml:"critical_threats"`
}

// WriteYAML emits the counts and critical threats as a YAML document.
func WriteYAML(w io.Writer, r *models.ThreatReport) error {
	doc := yamlSummary{
		Counts: yamlCounts{
			Critical: len(r.Critical),
			High:     len(r.High),
			Medium:   len(r.Medium),
			Low:      len(r.Low),
		},
		CriticalThreats: r.Critical,
	}
	if doc.CriticalThreats == nil {
		doc.CriticalThreats = []models.Threat{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
