// Package summary renders a threat report for humans. Markdown is the format
// CI posts; terminal and yaml are conveniences for local runs.
package summary

import (
	"fmt"
	"io"
	"strings"

	"github.com/CosmoTheDev/threatreport/models"
)

// Format selects the renderer.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatTerminal Format = "terminal"
	FormatYAML     Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatMarkdown, FormatTerminal, FormatYAML:
		return f, nil
	case "md", "":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown summary format %q (want markdown|terminal|yaml)", s)
	}
}

// Write renders r to w in the given format.
func Write(w io.Writer, r *models.ThreatReport, f Format) error {
	switch f {
	case FormatMarkdown:
		return WriteMarkdown(w, r)
	case FormatTerminal:
		return WriteTerminal(w, r)
	case FormatYAML:
		return WriteYAML(w, r)
	default:
		return fmt.Errorf("unknown summary format %q", f)
	}
}
