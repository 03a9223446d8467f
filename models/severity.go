package models

import "strings"

// SeverityLevel represents the bucket a failed check is reported under.
type SeverityLevel string

const (
	SeverityCritical SeverityLevel = "CRITICAL"
	SeverityHigh     SeverityLevel = "HIGH"
	SeverityMedium   SeverityLevel = "MEDIUM"
	SeverityLow      SeverityLevel = "LOW"
)

// Severities lists the buckets in report order.
var Severities = []SeverityLevel{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

func (s SeverityLevel) String() string {
	return string(s)
}

// Label returns the title-cased name used in summaries ("Critical", "High", ...).
func (s SeverityLevel) Label() string {
	if s == "" {
		return ""
	}
	lower := strings.ToLower(string(s))
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// ClassifySeverity maps a scanner severity string to its bucket. Matching is
// case-insensitive and anything unrecognised lands in LOW.
func ClassifySeverity(raw string) SeverityLevel {
	switch SeverityLevel(strings.ToUpper(raw)) {
	case SeverityCritical:
		return SeverityCritical
	case SeverityHigh:
		return SeverityHigh
	case SeverityMedium:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
