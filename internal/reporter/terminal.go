package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rcalloway/prosecoach/internal/detector"
)

// TerminalReporter outputs results to the terminal with colors
type TerminalReporter struct {
	w io.Writer
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer) *TerminalReporter {
	return &TerminalReporter{w: w}
}

// Report outputs issues to the terminal, highest severity first
func (r *TerminalReporter) Report(path string, issues []detector.Issue) error {
	if len(issues) == 0 {
		color.New(color.FgGreen).Fprintln(r.w, "✓ No issues found")
		return nil
	}

	fmt.Fprintln(r.w)
	color.New(color.FgWhite, color.Bold).Fprintf(r.w, "%s\n", path)

	for _, issue := range issues {
		r.printIssue(issue)
	}

	r.printSummary(issues)

	return nil
}

func (r *TerminalReporter) printIssue(issue detector.Issue) {
	var severityColor *color.Color
	var icon string

	switch {
	case issue.Severity >= 9:
		severityColor = color.New(color.FgRed)
		icon = "✗"
	case issue.Severity >= 7:
		severityColor = color.New(color.FgYellow)
		icon = "⚠"
	case issue.Severity >= 5:
		severityColor = color.New(color.FgCyan)
		icon = "💡"
	default:
		severityColor = color.New(color.FgBlue)
		icon = "ℹ"
	}

	fmt.Fprintln(r.w)
	severityColor.Fprintf(r.w, "  %s ", icon)
	fmt.Fprintf(r.w, "%s", issue.Type.Display())
	color.New(color.FgHiBlack).Fprintf(r.w, " [%d/10, %s]", issue.Severity, issue.Location)
	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "    %s\n", issue.Description)

	if issue.Context != "" && len(issue.Context) < 200 {
		color.New(color.FgHiBlack).Fprintf(r.w, "    > %s\n", strings.ReplaceAll(issue.Context, "\n", " "))
	}
}

func (r *TerminalReporter) printSummary(issues []detector.Issue) {
	summary := ComputeSummary(issues)

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, "─────────────────────────────────────")

	parts := []string{}

	if summary.Critical > 0 {
		parts = append(parts, color.RedString("%d critical", summary.Critical))
	}
	if summary.Important > 0 {
		parts = append(parts, color.YellowString("%d important", summary.Important))
	}
	if summary.Moderate > 0 {
		parts = append(parts, color.CyanString("%d moderate", summary.Moderate))
	}
	if summary.Minor > 0 {
		parts = append(parts, color.BlueString("%d minor", summary.Minor))
	}

	fmt.Fprintf(r.w, "Found %d issues across %d categories: ", summary.TotalIssues, summary.Types)
	for i, part := range parts {
		if i > 0 {
			fmt.Fprint(r.w, ", ")
		}
		fmt.Fprint(r.w, part)
	}
	fmt.Fprintln(r.w)
}

// ReportDocument prints the full metrics report
func (r *TerminalReporter) ReportDocument(doc Document) error {
	color.New(color.FgWhite, color.Bold).Fprintf(r.w, "\n%s\n", doc.Path)

	if len(doc.Outline) > 0 {
		r.section("Outline")
		for _, h := range doc.Outline {
			fmt.Fprintf(r.w, "  %s%s\n", strings.Repeat("  ", h.Level-1), h.Title)
		}
	}

	if doc.Readability != nil {
		rr := doc.Readability
		r.section("Readability")
		r.row("Words", fmt.Sprintf("%d", rr.WordCount))
		r.row("Sentences", fmt.Sprintf("%d", rr.SentenceCount))
		r.row("Avg sentence length", fmt.Sprintf("%.1f words", rr.AvgSentenceLength))
		r.row("Flesch reading ease", fmt.Sprintf("%.1f (%s)", rr.FleschReadingEase, rr.ReadingEase))
		r.row("Flesch-Kincaid grade", fmt.Sprintf("%.1f (%s)", rr.FleschKincaidGrade, rr.ReadingLevel))
		r.row("Gunning fog index", fmt.Sprintf("%.1f", rr.GunningFog))
		r.row("Difficult words", fmt.Sprintf("%d", rr.DifficultWords))
	}

	if doc.Style != nil {
		st := doc.Style
		r.section("Style")
		r.flaggedRow("Passive voice", fmt.Sprintf("%.1f%% of sentences", st.PassiveVoice.Percentage), st.PassiveVoice.IsExcessive)
		r.flaggedRow("Adverbs", fmt.Sprintf("%.1f per 100 words", st.Adverbs.Per100Words), st.Adverbs.IsExcessive)
		r.flaggedRow("Weak verbs", fmt.Sprintf("%.1f%% of verbs", st.WeakVerbs.Percentage), st.WeakVerbs.IsExcessive)
		r.flaggedRow("Close repetition", fmt.Sprintf("%d repeats", st.Repetition.TotalRepetitions), st.Repetition.IsExcessive)
		r.row("Transitions", fmt.Sprintf("%d (%d distinct)", st.Transitions.Count, st.Transitions.Variety))
		r.row("Paragraphs", fmt.Sprintf("%d, avg %.0f words", st.Paragraphs.Count, st.Paragraphs.AvgLength))
		if n := len(st.Paragraphs.LongParagraphs); n > 0 {
			r.flaggedRow("Long paragraphs", fmt.Sprintf("%d", n), true)
		}
	}

	if doc.Grammar != nil {
		g := doc.Grammar
		r.section("Grammar")
		r.flaggedRow("Spelling", fmt.Sprintf("%d issues", len(g.SpellingIssues)), len(g.SpellingIssues) > 0)
		r.flaggedRow("Grammar", fmt.Sprintf("%d issues", len(g.GrammarIssues)), len(g.GrammarIssues) > 0)
		r.row("Punctuation", fmt.Sprintf("%d issues", len(g.PunctuationIssues)))
	}

	fmt.Fprintln(r.w)
	return nil
}

func (r *TerminalReporter) section(name string) {
	fmt.Fprintln(r.w)
	color.New(color.FgCyan, color.Bold).Fprintf(r.w, "%s\n", name)
}

func (r *TerminalReporter) row(label, value string) {
	color.New(color.FgHiBlack).Fprintf(r.w, "  %-22s", label)
	fmt.Fprintf(r.w, " %s\n", value)
}

func (r *TerminalReporter) flaggedRow(label, value string, flagged bool) {
	color.New(color.FgHiBlack).Fprintf(r.w, "  %-22s", label)
	if flagged {
		color.New(color.FgYellow).Fprintf(r.w, " %s ⚠\n", value)
	} else {
		fmt.Fprintf(r.w, " %s\n", value)
	}
}
