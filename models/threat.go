package models

// Threat is the normalized projection of one failed check.
type Threat struct {
	Title       string `json:"title"       yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Resource    string `json:"resource"    yaml:"resource"`
	FilePath    string `json:"file_path"   yaml:"file_path"`
	LineRange   []int  `json:"line_range"  yaml:"line_range"`
	Guideline   string `json:"guideline"   yaml:"guideline"`
}

// ThreatReport is the severity-bucketed document written by convert and read
// by summarize.
type ThreatReport struct {
	// ScanDate holds the scanner's parsing error count. The name is kept for
	// compatibility with consumers of pr-threats.json.
	ScanDate int      `json:"scan_date"`
	Critical []Threat `json:"critical"`
	High     []Threat `json:"high"`
	Medium   []Threat `json:"medium"`
	Low      []Threat `json:"low"`
}

// NewThreatReport returns a report with all four buckets initialised so they
// serialise as [] rather than null.
func NewThreatReport(scanDate int) *ThreatReport {
	return &ThreatReport{
		ScanDate: scanDate,
		Critical: []Threat{},
		High:     []Threat{},
		Medium:   []Threat{},
		Low:      []Threat{},
	}
}

// Add appends t to the bucket for sev.
func (r *ThreatReport) Add(sev SeverityLevel, t Threat) {
	switch sev {
	case SeverityCritical:
		r.Critical = append(r.Critical, t)
	case SeverityHigh:
		r.High = append(r.High, t)
	case SeverityMedium:
		r.Medium = append(r.Medium, t)
	default:
		r.Low = append(r.Low, t)
	}
}

// Counts returns the number of threats per bucket.
func (r *ThreatReport) Counts() map[SeverityLevel]int {
	return map[SeverityLevel]int{
		SeverityCritical: len(r.Critical),
		SeverityHigh:     len(r.High),
		SeverityMedium:   len(r.Medium),
		SeverityLow:      len(r.Low),
	}
}

// Total returns the number of threats across all buckets.
func (r *ThreatReport) Total() int {
	return len(r.Critical) + len(r.High) + len(r.Medium) + len(r.Low)
}
