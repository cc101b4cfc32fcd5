package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rcalloway/prosecoach/internal/detector"
	"github.com/rcalloway/prosecoach/internal/session"
	"github.com/rcalloway/prosecoach/internal/validator"
)

// ConsolePresenter renders issues and prompts on a terminal. It implements
// session.Presenter.
type ConsolePresenter struct {
	ui *UI
	in *bufio.Reader
}

// NewPresenter creates a presenter reading answers from in.
func NewPresenter(ui *UI, in io.Reader) *ConsolePresenter {
	return &ConsolePresenter{
		ui: ui,
		in: bufio.NewReader(in),
	}
}

// PresentIssue shows one issue panel and prompts until the user picks an
// action.
func (p *ConsolePresenter) PresentIssue(issue detector.Issue, num, total int) (session.Action, error) {
	s := p.ui.Styles
	w := p.ui.Writer

	var b strings.Builder

	title := fmt.Sprintf("Issue %d of %d: %s", num, total, issue.Type.Display())
	sev := fmt.Sprintf("severity %d/10", issue.Severity)
	fmt.Fprintf(&b, "%s %s  %s\n", s.SeverityIcon(issue.Severity), s.Header.Render(title), s.SeverityStyle(issue.Severity).Render(sev))

	if issue.Location != "" {
		fmt.Fprintf(&b, "%s %s\n", s.Label.Render("Where:"), issue.Location)
	}
	fmt.Fprintf(&b, "%s %s\n", s.Label.Render("What:"), issue.Description)
	if issue.Why != "" {
		fmt.Fprintf(&b, "%s %s\n", s.Label.Render("Why it matters:"), issue.Why)
	}
	if line := metricsLine(issue); line != "" {
		fmt.Fprintf(&b, "%s %s\n", s.Label.Render("Numbers:"), s.Dim.Render(line))
	}

	if issue.Context != "" {
		fmt.Fprintf(&b, "\n%s\n", s.Dim.Render(indentQuote(issue.Context)))
	}

	if len(issue.SuggestedApproach) > 0 {
		fmt.Fprintf(&b, "\n%s\n", s.Label.Render("How to fix:"))
		for _, step := range issue.SuggestedApproach {
			fmt.Fprintf(&b, "  %s %s\n", s.Dim.Render("-"), step)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, s.Panel.Render(strings.TrimRight(b.String(), "\n")))
	fmt.Fprintln(w)

	for {
		fmt.Fprintf(w, "%s ", s.Subheader.Render("[e]dit here  [o]pen editor  [s]kip  [q]uit:"))
		answer, err := p.readLine()
		if err != nil {
			return session.ActionQuit, err
		}

		switch strings.ToLower(answer) {
		case "e", "edit":
			return session.ActionEditInline, nil
		case "o", "open":
			return session.ActionEditExternal, nil
		case "s", "skip", "":
			return session.ActionSkip, nil
		case "q", "quit":
			return session.ActionQuit, nil
		default:
			fmt.Fprintln(w, s.Dim.Render("Please answer e, o, s, or q."))
		}
	}
}

// ConfirmQuit asks whether to abort the session.
func (p *ConsolePresenter) ConfirmQuit() bool {
	fmt.Fprintf(p.ui.Writer, "Quit coaching? Remaining issues will not be fixed. [y/N] ")
	answer, err := p.readLine()
	if err != nil {
		return true
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

// ShowValidation prints the verdict for a just-applied edit.
func (p *ConsolePresenter) ShowValidation(v validator.Verdict) {
	s := p.ui.Styles
	if v.Improved {
		fmt.Fprintf(p.ui.Writer, "%s %s\n", s.IconSuccess, s.Success.Render(v.Message))
	} else {
		fmt.Fprintf(p.ui.Writer, "%s %s\n", s.IconWarning, s.Warning.Render(v.Message))
	}
}

// noIssueMetrics names the quality thresholds a clean document has met.
var noIssueMetrics = []struct{ label, status string }{
	{"Grammar & Spelling", "Clean"},
	{"Readability", "Good"},
	{"Passive Voice", "Minimal"},
	{"Sentence Length", "Appropriate"},
	{"Paragraph Structure", "Well-balanced"},
}

// ShowNoIssues reports a clean document with its metric status table.
func (p *ConsolePresenter) ShowNoIssues() {
	s := p.ui.Styles
	fmt.Fprintf(p.ui.Writer, "\n%s %s\n\n", s.IconSuccess, s.Success.Render("Excellent work!"))
	fmt.Fprintln(p.ui.Writer, "No significant issues found. Your writing meets all quality thresholds:")
	fmt.Fprintln(p.ui.Writer)
	for _, m := range noIssueMetrics {
		fmt.Fprintf(p.ui.Writer, "  %-22s %s\n", m.label, s.Success.Render(s.IconSuccess+" "+m.status))
	}
	fmt.Fprintln(p.ui.Writer)
	fmt.Fprintln(p.ui.Writer, "Your article is ready for review!")
}

// Pause waits for the user to press enter.
func (p *ConsolePresenter) Pause() {
	fmt.Fprintf(p.ui.Writer, "%s", p.ui.Styles.Dim.Render("Press Enter to continue..."))
	_, _ = p.readLine()
}

// Notify prints a short informational line.
func (p *ConsolePresenter) Notify(msg string) {
	fmt.Fprintf(p.ui.Writer, "%s %s\n", p.ui.Styles.IconInfo, msg)
}

// summaryMetrics fixes the order and labels of the session summary rows.
var summaryMetrics = []struct {
	key    string
	label  string
	format string
	higher bool
}{
	{"readability", "Reading ease", "%.1f", true},
	{"avg_sentence_length", "Avg sentence length", "%.1f words", false},
	{"passive_voice", "Passive voice", "%.1f%%", false},
	{"adverbs", "Adverbs per 100 words", "%.1f", false},
	{"weak_verbs", "Weak verbs", "%.1f%%", false},
	{"grammar_issues", "Grammar and spelling", "%.0f issues", false},
}

// ShowSummary prints the end-of-session report with before/after metrics.
func (p *ConsolePresenter) ShowSummary(fixed, skipped int, improvements map[string]validator.Change) {
	s := p.ui.Styles
	w := p.ui.Writer

	fmt.Fprintf(w, "\n%s\n\n", s.Header.Render("Coaching Session Complete"))
	fmt.Fprintf(w, "  Fixed:   %d\n", fixed)
	fmt.Fprintf(w, "  Skipped: %d\n\n", skipped)

	if len(improvements) == 0 {
		return
	}

	fmt.Fprintf(w, "%s\n", s.Subheader.Render("Before and after:"))
	for _, m := range summaryMetrics {
		c, ok := improvements[m.key]
		if !ok {
			continue
		}
		before := fmt.Sprintf(m.format, c.Before)
		after := fmt.Sprintf(m.format, c.After)
		arrow := changeMark(s, c, m.higher)
		fmt.Fprintf(w, "  %-22s %s -> %s %s\n", m.label, before, after, arrow)
	}
	fmt.Fprintln(w)
}

// ShowSaved tells the user where the coached copy was written.
func (p *ConsolePresenter) ShowSaved(path string) {
	s := p.ui.Styles
	fmt.Fprintf(p.ui.Writer, "%s Coached copy saved to %s\n", s.IconSuccess, s.Success.Render(path))
}

func (p *ConsolePresenter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// changeMark returns a styled improvement marker, or nothing when the metric
// did not move.
func changeMark(s *Styles, c validator.Change, higherIsBetter bool) string {
	switch {
	case c.After == c.Before:
		return ""
	case (c.After > c.Before) == higherIsBetter:
		return s.Success.Render("improved")
	default:
		return s.Warning.Render("worse")
	}
}

// metricsLine renders the numbers behind an issue, varying by type.
func metricsLine(issue detector.Issue) string {
	m := issue.Metrics
	switch issue.Type {
	case detector.TypeSpelling, detector.TypeGrammar:
		return fmt.Sprintf("%d in this category", m.IssueCount)
	case detector.TypeSentenceTooLong:
		return fmt.Sprintf("average %.1f words per sentence", m.AvgSentenceLength)
	case detector.TypeDifficultWords:
		return fmt.Sprintf("reading ease %.1f, %d difficult words", m.FleschScore, m.DifficultWords)
	case detector.TypePassiveVoice:
		return fmt.Sprintf("%.1f%% of sentences", m.Percentage)
	case detector.TypeAdverbs:
		return fmt.Sprintf("%d adverbs, %.1f per 100 words%s", m.Count, m.Rate, mostCommonSuffix(m))
	case detector.TypeWeakVerbs:
		return fmt.Sprintf("%.1f%% of verbs", m.Percentage)
	case detector.TypeWordRepetition:
		return fmt.Sprintf("%d close repeats%s", m.TotalRepetitions, repeatedSuffix(m))
	case detector.TypePoorTransitions:
		return fmt.Sprintf("%d transitions across %d paragraphs", m.TransitionCount, m.ParagraphCount)
	case detector.TypeParagraphTooLong:
		return fmt.Sprintf("%d of %d paragraphs over length", len(m.LongParagraphs), m.TotalParagraphs)
	}
	return ""
}

func mostCommonSuffix(m detector.Metrics) string {
	if len(m.MostCommon) == 0 {
		return ""
	}
	parts := make([]string, 0, len(m.MostCommon))
	for _, wc := range m.MostCommon {
		parts = append(parts, fmt.Sprintf("%s x%d", wc.Word, wc.Count))
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

func repeatedSuffix(m detector.Metrics) string {
	if len(m.RepeatedWords) == 0 {
		return ""
	}
	parts := make([]string, 0, len(m.RepeatedWords))
	for _, wc := range m.RepeatedWords {
		parts = append(parts, wc.Word)
	}
	return ": " + strings.Join(parts, ", ")
}

// indentQuote prefixes each context line for display inside the panel.
func indentQuote(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i, line := range lines {
		lines[i] = "  > " + line
	}
	return strings.Join(lines, "\n")
}
