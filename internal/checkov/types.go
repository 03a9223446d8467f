// Package checkov reads Checkov's JSON output (`checkov -o json`) into the
// small subset of fields the threat report needs.
package checkov

import "errors"

// ErrNotFound is returned by ReadFile when the results file does not exist.
var ErrNotFound = errors.New("checkov results not found")

// Default values substituted for fields a failed check omits.
const (
	DefaultCheckName = "Unknown Check"
	DefaultSeverity  = "MEDIUM"
)

// Result is a parsed Checkov run. When Checkov scanned several frameworks the
// per-framework documents are merged into one Result.
type Result struct {
	// ParsingErrors is summary.parsing_errors (summed across frameworks).
	ParsingErrors int
	// FailedChecks keeps the order Checkov reported them in.
	FailedChecks []FailedCheck
}

// FailedCheck is one rule violation with defaults already applied.
type FailedCheck struct {
	CheckID       string
	CheckName     string
	Description   string
	Resource      string
	FilePath      string
	FileLineRange []int
	// Severity is the raw scanner value. It is DefaultSeverity when the key was
	// absent and empty when Checkov reported null (no severity available).
	Severity  string
	Guideline string
}
