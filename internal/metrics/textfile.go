// Package metrics exports threat counts in the Prometheus textfile-collector
// format, for node_exporter on CI runners.
package metrics

import (
	"fmt"
	"strings"
	"time"

	"github.com/CosmoTheDev/threatreport/models"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the gauges for one report. Each Collector owns its
// registry so repeated runs in one process never collide.
type Collector struct {
	registry      *prometheus.Registry
	threatsTotal  *prometheus.GaugeVec
	parsingErrors prometheus.Gauge
	lastRun       prometheus.Gauge
}

// NewCollector registers the threat report gauges on a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		threatsTotal: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "threatreport_threats_total",
				Help: "Number of failed checks in the threat report by severity.",
			},
			[]string{"severity"},
		),
		parsingErrors: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "threatreport_parsing_errors",
				Help: "Parsing errors reported by the scanner.",
			},
		),
		lastRun: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "threatreport_last_run_timestamp",
				Help: "Unix timestamp of the last conversion.",
			},
		),
	}
	c.registry.MustRegister(c.threatsTotal, c.parsingErrors, c.lastRun)
	return c
}

// Observe replaces the gauge values with those of r.
func (c *Collector) Observe(r *models.ThreatReport) {
	c.threatsTotal.Reset()
	for sev, n := range r.Counts() {
		c.threatsTotal.WithLabelValues(strings.ToLower(sev.String())).Set(float64(n))
	}
	c.parsingErrors.Set(float64(r.ScanDate))
	c.lastRun.Set(float64(time.Now().Unix()))
}

// WriteTextfile writes the current gauges to path.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}

// Registry exposes the underlying registry, mainly for tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
