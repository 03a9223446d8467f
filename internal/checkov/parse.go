package checkov

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

// ReadFile reads and parses the Checkov results file at path. A missing file
// yields an error wrapping ErrNotFound.
func ReadFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	res, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return res, nil
}

// rawDocument mirrors one framework's report. Failed checks stay raw so each
// field can fall back to its default independently.
type rawDocument struct {
	CheckType string `json:"check_type"`
	Summary   struct {
		ParsingErrors int `json:"parsing_errors"`
	} `json:"summary"`
	Results struct {
		FailedChecks []map[string]json.RawMessage `json:"failed_checks"`
	} `json:"results"`
}

// Parse decodes Checkov JSON output. Both the single-document form and the
// array form (one document per framework) are accepted.
func Parse(data []byte) (*Result, error) {
	trimmed := bytes.TrimSpace(data)
	var docs []rawDocument
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &docs); err != nil {
			return nil, err
		}
	} else {
		var doc rawDocument
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, err
		}
		docs = []rawDocument{doc}
	}

	res := &Result{FailedChecks: []FailedCheck{}}
	for _, doc := range docs {
		res.ParsingErrors += doc.Summary.ParsingErrors
		for _, raw := range doc.Results.FailedChecks {
			res.FailedChecks = append(res.FailedChecks, decodeFailedCheck(raw))
		}
		slog.Debug("Parsed checkov document",
			"check_type", doc.CheckType,
			"failed_checks", len(doc.Results.FailedChecks),
			"parsing_errors", doc.Summary.ParsingErrors,
		)
	}
	return res, nil
}

func decodeFailedCheck(raw map[string]json.RawMessage) FailedCheck {
	fc := FailedCheck{
		CheckID:       stringField(raw, "check_id", ""),
		CheckName:     stringField(raw, "check_name", DefaultCheckName),
		Description:   stringField(raw, "description", ""),
		Resource:      stringField(raw, "resource", ""),
		FilePath:      stringField(raw, "file_path", ""),
		FileLineRange: intsField(raw, "file_line_range"),
		Guideline:     stringField(raw, "guideline", ""),
		Severity:      DefaultSeverity,
	}
	if v, ok := raw["severity"]; ok {
		// null or a non-string value carries no usable severity.
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			s = ""
		}
		fc.Severity = s
	}
	return fc
}

// stringField returns raw[key] as a string, or def when the key is absent,
// null or not a string.
func stringField(raw map[string]json.RawMessage, key, def string) string {
	v, ok := raw[key]
	if !ok || isNull(v) {
		return def
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		slog.Debug("Ignoring non-string checkov field", "field", key, "value", string(v))
		return def
	}
	return s
}

// intsField returns raw[key] as an int slice, never nil.
func intsField(raw map[string]json.RawMessage, key string) []int {
	out := []int{}
	v, ok := raw[key]
	if !ok || isNull(v) {
		return out
	}
	if err := json.Unmarshal(v, &out); err != nil || out == nil {
		slog.Debug("Ignoring malformed checkov field", "field", key, "value", string(v))
		return []int{}
	}
	return out
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}
