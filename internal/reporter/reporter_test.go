package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rcalloway/prosecoach/internal/analyzer"
	"github.com/rcalloway/prosecoach/internal/article"
	"github.com/rcalloway/prosecoach/internal/detector"
)

func sampleIssues() []detector.Issue {
	return []detector.Issue{
		{Type: detector.TypeSpelling, Severity: 10, Location: "Character 3", Description: "Possible spelling mistake"},
		{Type: detector.TypeSentenceTooLong, Severity: 7, Location: "Throughout article", Description: "Sentences are too long"},
		{Type: detector.TypePassiveVoice, Severity: 5, Location: "Multiple paragraphs", Description: "Excessive passive voice"},
		{Type: detector.TypeAdverbs, Severity: 3, Location: "Throughout article", Description: "Too many adverbs"},
	}
}

func TestComputeSummary(t *testing.T) {
	s := ComputeSummary(sampleIssues())

	if s.TotalIssues != 4 {
		t.Errorf("TotalIssues = %d, want 4", s.TotalIssues)
	}
	if s.Critical != 1 || s.Important != 1 || s.Moderate != 1 || s.Minor != 1 {
		t.Errorf("bands = %d/%d/%d/%d, want 1 each", s.Critical, s.Important, s.Moderate, s.Minor)
	}
	if s.Types != 4 {
		t.Errorf("Types = %d, want 4", s.Types)
	}
}

func TestComputeSummaryEmpty(t *testing.T) {
	s := ComputeSummary(nil)
	if s.TotalIssues != 0 || s.Types != 0 {
		t.Errorf("summary = %+v, want zeros", s)
	}
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONReporter(&buf)

	if err := r.Report("draft.md", sampleIssues()); err != nil {
		t.Fatalf("Report: %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if out.Path != "draft.md" {
		t.Errorf("Path = %q", out.Path)
	}
	if len(out.Issues) != 4 {
		t.Fatalf("Issues = %d, want 4", len(out.Issues))
	}
	if out.Issues[0].Band != "critical" {
		t.Errorf("Band = %q, want critical", out.Issues[0].Band)
	}
	if out.Summary.TotalIssues != 4 {
		t.Errorf("Summary.TotalIssues = %d", out.Summary.TotalIssues)
	}
}

func TestJSONReporterEmptyIssues(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONReporter(&buf)

	if err := r.Report("draft.md", nil); err != nil {
		t.Fatalf("Report: %v", err)
	}
	if !strings.Contains(buf.String(), `"issues": []`) {
		t.Errorf("empty issue list must encode as [], got %s", buf.String())
	}
}

func TestTerminalReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalReporter(&buf)

	if err := r.Report("draft.md", sampleIssues()); err != nil {
		t.Fatalf("Report: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"draft.md", "Spelling Error", "Found 4 issues"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTerminalReporterNoIssues(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalReporter(&buf)

	if err := r.Report("draft.md", nil); err != nil {
		t.Fatalf("Report: %v", err)
	}
	if !strings.Contains(buf.String(), "No issues found") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestReportDocument(t *testing.T) {
	doc := Document{
		Path: "draft.md",
		Readability: &analyzer.ReadabilityReport{
			WordCount:         120,
			SentenceCount:     8,
			AvgSentenceLength: 15,
			FleschReadingEase: 72.5,
			ReadingEase:       "Fairly Easy",
			ReadingLevel:      "Middle School",
		},
	}

	var buf bytes.Buffer
	if err := NewTerminalReporter(&buf).ReportDocument(doc); err != nil {
		t.Fatalf("ReportDocument: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Readability", "72.5", "Fairly Easy"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Style") {
		t.Error("nil style section must be omitted")
	}

	buf.Reset()
	if err := NewJSONReporter(&buf).ReportDocument(doc); err != nil {
		t.Fatalf("ReportDocument JSON: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if _, ok := decoded["style"]; ok {
		t.Error("nil style must be omitted from JSON")
	}
	rr, ok := decoded["readability"].(map[string]any)
	if !ok {
		t.Fatal("readability missing from JSON")
	}
	// Machine output uses snake_case keys throughout.
	if _, ok := rr["flesch_reading_ease"]; !ok {
		t.Errorf("readability keys = %v, want snake_case flesch_reading_ease", rr)
	}
}

func TestReportDocumentOutline(t *testing.T) {
	doc := Document{
		Path: "draft.md",
		Outline: []article.Heading{
			{Level: 1, Title: "Introduction", Line: 1},
			{Level: 2, Title: "Details", Line: 9},
		},
	}

	var buf bytes.Buffer
	if err := NewTerminalReporter(&buf).ReportDocument(doc); err != nil {
		t.Fatalf("ReportDocument: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Outline", "Introduction", "  Details"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := NewJSONReporter(&buf).ReportDocument(doc); err != nil {
		t.Fatalf("ReportDocument JSON: %v", err)
	}
	var decoded struct {
		Outline []article.Heading `json:"outline"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded.Outline) != 2 || decoded.Outline[1].Title != "Details" {
		t.Errorf("outline = %+v", decoded.Outline)
	}
}
