package summary

import (
	"fmt"
	"io"
	"strings"

	"github.com/CosmoTheDev/threatreport/models"
)

// WriteMarkdown prints the per-severity counts followed by the critical
// threats. High, medium and low threats are counted only.
func WriteMarkdown(w io.Writer, r *models.ThreatReport) error {
	var b strings.Builder

	b.WriteString("# Threat Modeling Summary\n\n")
	fmt.Fprintf(&b, "**Critical**: %d\n", len(r.Critical))
	fmt.Fprintf(&b, "**High**: %d\n", len(r.High))
	fmt.Fprintf(&b, "**Medium**: %d\n", len(r.Medium))
	fmt.Fprintf(&b, "**Low**: %d\n\n", len(r.Low))

	if len(r.Critical) > 0 {
		b.WriteString("## Critical Threats\n\n")
		for _, t := range r.Critical {
			fmt.Fprintf(&b, "- **%s** (%s)\n", t.Title, t.FilePath)
			fmt.Fprintf(&b, "  - Resource: `%s`\n", t.Resource)
			fmt.Fprintf(&b, "  - %s\n\n", t.Description)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
