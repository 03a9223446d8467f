// Package report builds, writes and reads the severity-bucketed threat report.
package report

import (
	"log/slog"

	"github.com/CosmoTheDev/threatreport/internal/checkov"
	"github.com/CosmoTheDev/threatreport/models"
)

// Convert buckets every failed check in res by severity. Order within a
// bucket follows the order of res.FailedChecks.
func Convert(res *checkov.Result) *models.ThreatReport {
	r := models.NewThreatReport(res.ParsingErrors)
	for _, fc := range res.FailedChecks {
		sev := models.ClassifySeverity(fc.Severity)
		r.Add(sev, ThreatFromCheck(fc))
		slog.Debug("Classified failed check",
			"check_id", fc.CheckID,
			"severity", fc.Severity,
			"bucket", sev,
		)
	}
	return r
}

// ThreatFromCheck projects a failed check onto the threat report schema.
func ThreatFromCheck(fc checkov.FailedCheck) models.Threat {
	lines := fc.FileLineRange
	if lines == nil {
		lines = []int{}
	}
	return models.Threat{
		Title:       fc.CheckName,
		Description: fc.Description,
		Resource:    fc.Resource,
		FilePath:    fc.FilePath,
		LineRange:   lines,
		Guideline:   fc.Guideline,
	}
}
