package reporter

import (
	"encoding/json"
	"io"

	"github.com/rcalloway/prosecoach/internal/article"
	"github.com/rcalloway/prosecoach/internal/detector"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	Path    string      `json:"path"`
	Issues  []JSONIssue `json:"issues"`
	Summary Summary     `json:"summary"`
}

// JSONIssue represents an issue in JSON format
type JSONIssue struct {
	Type        string   `json:"type"`
	Severity    int      `json:"severity"`
	Band        string   `json:"band"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Why         string   `json:"why,omitempty"`
	Context     string   `json:"context,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Report outputs issues as JSON
func (r *JSONReporter) Report(path string, issues []detector.Issue) error {
	output := JSONOutput{
		Path:    path,
		Issues:  make([]JSONIssue, 0, len(issues)),
		Summary: ComputeSummary(issues),
	}

	for _, issue := range issues {
		output.Issues = append(output.Issues, JSONIssue{
			Type:        string(issue.Type),
			Severity:    issue.Severity,
			Band:        severityBand(issue.Severity),
			Location:    issue.Location,
			Description: issue.Description,
			Why:         issue.Why,
			Context:     issue.Context,
			Suggestions: issue.SuggestedApproach,
		})
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// jsonDocument mirrors Document with JSON field names
type jsonDocument struct {
	Path        string            `json:"path"`
	Outline     []article.Heading `json:"outline,omitempty"`
	Readability any               `json:"readability,omitempty"`
	Style       any               `json:"style,omitempty"`
	Grammar     any               `json:"grammar,omitempty"`
}

// ReportDocument outputs the full metrics report as JSON
func (r *JSONReporter) ReportDocument(doc Document) error {
	out := jsonDocument{Path: doc.Path, Outline: doc.Outline}
	if doc.Readability != nil {
		out.Readability = doc.Readability
	}
	if doc.Style != nil {
		out.Style = doc.Style
	}
	if doc.Grammar != nil {
		out.Grammar = doc.Grammar
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
