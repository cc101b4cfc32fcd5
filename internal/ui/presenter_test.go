package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rcalloway/prosecoach/internal/detector"
	"github.com/rcalloway/prosecoach/internal/session"
	"github.com/rcalloway/prosecoach/internal/validator"
)

func newTestPresenter(input string) (*ConsolePresenter, *bytes.Buffer) {
	var out bytes.Buffer
	u := New(&out, &out, "terminal") // bytes.Buffer is not a TTY: plain mode
	return NewPresenter(u, strings.NewReader(input)), &out
}

func TestPresentIssueActions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected session.Action
	}{
		{name: "edit inline", input: "e\n", expected: session.ActionEditInline},
		{name: "open editor", input: "o\n", expected: session.ActionEditExternal},
		{name: "skip", input: "s\n", expected: session.ActionSkip},
		{name: "empty line skips", input: "\n", expected: session.ActionSkip},
		{name: "quit", input: "q\n", expected: session.ActionQuit},
		{name: "full word", input: "edit\n", expected: session.ActionEditInline},
		{name: "invalid then valid", input: "x\nq\n", expected: session.ActionQuit},
	}

	issue := detector.Issue{
		Type:        detector.TypeSpelling,
		Severity:    10,
		Location:    "Character 3",
		Description: "Possible spelling mistake",
		Context:     "teh cat",
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newTestPresenter(tt.input)
			action, err := p.PresentIssue(issue, 1, 5)
			if err != nil {
				t.Fatalf("PresentIssue: %v", err)
			}
			if action != tt.expected {
				t.Errorf("action = %v, want %v", action, tt.expected)
			}
			if !strings.Contains(out.String(), "Issue 1 of 5") {
				t.Error("issue header missing")
			}
		})
	}
}

func TestConfirmQuit(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"\n", false},
		{"whatever\n", false},
	}

	for _, tt := range tests {
		p, _ := newTestPresenter(tt.input)
		if got := p.ConfirmQuit(); got != tt.expected {
			t.Errorf("ConfirmQuit with %q = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestShowValidation(t *testing.T) {
	p, out := newTestPresenter("")
	p.ShowValidation(validator.Verdict{Improved: true, Message: "Perfect! Fixed"})
	if !strings.Contains(out.String(), "Perfect! Fixed") {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	p.ShowValidation(validator.Verdict{Improved: false, Message: "Still 2 remaining"})
	if !strings.Contains(out.String(), "Still 2 remaining") {
		t.Errorf("output = %q", out.String())
	}
}

func TestShowSummary(t *testing.T) {
	p, out := newTestPresenter("")
	p.ShowSummary(3, 1, map[string]validator.Change{
		"readability":    {Before: 45.0, After: 58.2},
		"grammar_issues": {Before: 4, After: 0},
	})

	s := out.String()
	for _, want := range []string{"Fixed:   3", "Skipped: 1", "45.0 -> 58.2", "improved"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary missing %q:\n%s", want, s)
		}
	}
}

func TestMetricsLine(t *testing.T) {
	tests := []struct {
		name     string
		issue    detector.Issue
		expected string
	}{
		{
			name: "spelling count",
			issue: detector.Issue{
				Type:    detector.TypeSpelling,
				Metrics: detector.Metrics{IssueCount: 4},
			},
			expected: "4 in this category",
		},
		{
			name: "passive percentage",
			issue: detector.Issue{
				Type:    detector.TypePassiveVoice,
				Metrics: detector.Metrics{Percentage: 25.5},
			},
			expected: "25.5% of sentences",
		},
		{
			name: "transitions ratio",
			issue: detector.Issue{
				Type:    detector.TypePoorTransitions,
				Metrics: detector.Metrics{TransitionCount: 2, ParagraphCount: 7},
			},
			expected: "2 transitions across 7 paragraphs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := metricsLine(tt.issue); got != tt.expected {
				t.Errorf("metricsLine = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestShowNoIssues(t *testing.T) {
	p, out := newTestPresenter("")
	p.ShowNoIssues()

	got := out.String()
	for _, want := range []string{
		"Excellent work!",
		"meets all quality thresholds",
		"Grammar & Spelling",
		"Readability",
		"Passive Voice",
		"Sentence Length",
		"Paragraph Structure",
		"ready for review",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
