package summary

import (
	"fmt"
	"io"
	"strings"

	"github.com/CosmoTheDev/threatreport/models"
)

// WriteTerminal renders the same content as WriteMarkdown with lipgloss
// styling. Colour is dropped automatically when w is not a terminal.
func WriteTerminal(w io.Writer, r *models.ThreatReport) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Threat Modeling Summary"))
	b.WriteString("\n\n")

	counts := r.Counts()
	for _, sev := range models.Severities {
		label := labelStyle.Render(sev.Label())
		b.WriteString(label)
		b.WriteString(severityStyle(sev).Render(fmt.Sprintf("%d", counts[sev])))
		b.WriteString("\n")
	}

	if len(r.Critical) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Critical Threats"))
		b.WriteString("\n\n")
		for _, t := range r.Critical {
			b.WriteString(criticalStyle.Render("● " + t.Title))
			b.WriteString(" ")
			b.WriteString(dimStyle.Render(t.FilePath))
			b.WriteString("\n")
			b.WriteString("    resource: ")
			b.WriteString(codeStyle.Render(t.Resource))
			b.WriteString("\n")
			if t.Description != "" {
				b.WriteString("    ")
				b.WriteString(t.Description)
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
