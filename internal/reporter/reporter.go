// Package reporter renders analysis results for non-interactive use: the
// analyze command lists detected issues, the report command prints full
// document metrics.
package reporter

import (
	"github.com/rcalloway/prosecoach/internal/analyzer"
	"github.com/rcalloway/prosecoach/internal/article"
	"github.com/rcalloway/prosecoach/internal/detector"
)

// Reporter defines the interface for outputting analysis results
type Reporter interface {
	// Report outputs the detected issues for one document
	Report(path string, issues []detector.Issue) error
	// ReportDocument outputs the full metrics report for one document
	ReportDocument(doc Document) error
}

// Document bundles everything the metrics report needs. Readability and
// Style are nil when the corresponding analyzer is unavailable; Outline is
// empty for plain-text articles.
type Document struct {
	Path        string
	Outline     []article.Heading
	Readability *analyzer.ReadabilityReport
	Style       *analyzer.StyleReport
	Grammar     *analyzer.GrammarReport
}

// Summary holds summary statistics for an analysis run
type Summary struct {
	TotalIssues int
	Critical    int
	Important   int
	Moderate    int
	Minor       int
	Types       int
}

// ComputeSummary computes summary statistics from issues
func ComputeSummary(issues []detector.Issue) Summary {
	s := Summary{
		TotalIssues: len(issues),
	}

	types := make(map[detector.IssueType]bool)
	for _, issue := range issues {
		types[issue.Type] = true
		switch {
		case issue.Severity >= 9:
			s.Critical++
		case issue.Severity >= 7:
			s.Important++
		case issue.Severity >= 5:
			s.Moderate++
		default:
			s.Minor++
		}
	}
	s.Types = len(types)

	return s
}

// severityBand names the 1-10 score band an issue falls in.
func severityBand(severity int) string {
	switch {
	case severity >= 9:
		return "critical"
	case severity >= 7:
		return "important"
	case severity >= 5:
		return "moderate"
	default:
		return "minor"
	}
}
