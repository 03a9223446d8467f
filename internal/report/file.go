package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/CosmoTheDev/threatreport/models"
)

// Marshal serialises r as JSON indented with two spaces, without a trailing
// newline.
func Marshal(r *models.ThreatReport) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteFile writes r to path, replacing any existing file. The parent
// directory is created when missing.
func WriteFile(path string, r *models.ThreatReport) error {
	data, err := Marshal(r)
	if err != nil {
		return fmt.Errorf("serialising threat report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing threat report: %w", err)
	}
	return nil
}

// strictReport requires every bucket key to be present.
type strictReport struct {
	ScanDate int              `json:"scan_date"`
	Critical *[]models.Threat `json:"critical"`
	High     *[]models.Threat `json:"high"`
	Medium   *[]models.Threat `json:"medium"`
	Low      *[]models.Threat `json:"low"`
}

// Unmarshal decodes a threat report. Unlike checkov.Parse it applies no
// defaults: a document missing any severity bucket is rejected.
func Unmarshal(data []byte) (*models.ThreatReport, error) {
	var sr strictReport
	if err := json.Unmarshal(data, &sr); err != nil {
		return nil, err
	}
	buckets := []struct {
		name string
		v    *[]models.Threat
	}{
		{"critical", sr.Critical},
		{"high", sr.High},
		{"medium", sr.Medium},
		{"low", sr.Low},
	}
	for _, b := range buckets {
		if b.v == nil {
			return nil, fmt.Errorf("threat report has no %q list", b.name)
		}
	}
	return &models.ThreatReport{
		ScanDate: sr.ScanDate,
		Critical: *sr.Critical,
		High:     *sr.High,
		Medium:   *sr.Medium,
		Low:      *sr.Low,
	}, nil
}

// ReadFile reads and decodes the threat report at path.
func ReadFile(path string) (*models.ThreatReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading threat report: %w", err)
	}
	r, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("parsing threat report %s: %w", path, err)
	}
	return r, nil
}
