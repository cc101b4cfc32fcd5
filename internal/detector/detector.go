package detector

import (
	"fmt"
	"strings"

	"github.com/rcalloway/prosecoach/internal/analyzer"
)

const maxGrammarIssues = 5 // per category (spelling, grammar)

// Detector finds writing problems in article text. Analyzer fields may be
// nil when the capability failed to initialize; the corresponding issue
// categories are then skipped for the whole session.
type Detector struct {
	Grammar     *analyzer.GrammarAnalyzer
	Readability *analyzer.ReadabilityAnalyzer
	Style       *analyzer.StyleAnalyzer
}

// New creates a detector with all available analyzers. Initialization
// failures are returned as warnings, not errors: the detector degrades to
// the analyzers that did come up.
func New() (*Detector, []error) {
	var warnings []error
	d := &Detector{
		Readability: analyzer.NewReadabilityAnalyzer(),
		Style:       analyzer.NewStyleAnalyzer(),
	}

	g, err := analyzer.NewGrammarAnalyzer()
	if err != nil {
		warnings = append(warnings, fmt.Errorf("grammar analyzer unavailable: %w", err))
	} else {
		d.Grammar = g
	}

	return d, warnings
}

// Category is one independently runnable issue-detection pass.
type Category struct {
	Name string
	Run  func(text string) []Issue
}

// Categories returns the detection passes for the available analyzers, in
// fixed emission order: grammar, readability, style, structure.
func (d *Detector) Categories() []Category {
	var cats []Category
	if d.Grammar != nil {
		cats = append(cats, Category{Name: "grammar", Run: d.detectGrammarIssues})
	}
	if d.Readability != nil {
		cats = append(cats, Category{Name: "readability", Run: d.detectReadabilityIssues})
	}
	if d.Style != nil {
		cats = append(cats, Category{Name: "style", Run: d.detectStyleIssues})
	}
	cats = append(cats, Category{Name: "structure", Run: d.detectStructureIssues})
	return cats
}

// FindAllIssues runs every detection category on the text and returns the
// issues in emission order with severities applied from the static table.
func (d *Detector) FindAllIssues(text string) []Issue {
	var issues []Issue
	for _, cat := range d.Categories() {
		issues = append(issues, cat.Run(text)...)
	}
	ApplySeverities(issues)
	return issues
}

// ApplySeverities overwrites every issue's severity from the static table.
func ApplySeverities(issues []Issue) {
	for i := range issues {
		issues[i].Severity = SeverityOf(issues[i].Type)
	}
}

func (d *Detector) detectGrammarIssues(text string) []Issue {
	report := d.Grammar.Analyze(text)
	var issues []Issue

	for _, m := range capMatches(report.SpellingIssues) {
		issues = append(issues, Issue{
			Type:        TypeSpelling,
			Severity:    SeverityOf(TypeSpelling),
			Location:    fmt.Sprintf("Character %d", m.Offset),
			Context:     m.Context,
			Description: m.Message,
			Why:         "Spelling errors hurt credibility and distract readers.",
			SuggestedApproach: []string{
				replacementHint("Replace with", m.Replacements, "Check spelling"),
			},
			Metrics: Metrics{IssueCount: len(report.SpellingIssues)},
		})
	}

	for _, m := range capMatches(report.GrammarIssues) {
		issues = append(issues, Issue{
			Type:        TypeGrammar,
			Severity:    SeverityOf(TypeGrammar),
			Location:    fmt.Sprintf("Character %d", m.Offset),
			Context:     m.Context,
			Description: m.Message,
			Why:         "Grammar errors reduce clarity and professionalism.",
			SuggestedApproach: []string{
				replacementHint("Consider", m.Replacements, "Review the grammar rule"),
			},
			Metrics: Metrics{IssueCount: len(report.GrammarIssues)},
		})
	}

	// Punctuation matches are computed and classified but not surfaced as
	// coachable issues.
	return issues
}

func capMatches(matches []analyzer.Match) []analyzer.Match {
	if len(matches) > maxGrammarIssues {
		return matches[:maxGrammarIssues]
	}
	return matches
}

func replacementHint(verb string, replacements []string, fallback string) string {
	if len(replacements) == 0 {
		return fallback
	}
	if len(replacements) > 3 {
		replacements = replacements[:3]
	}
	return fmt.Sprintf("%s: %s", verb, strings.Join(replacements, ", "))
}

func (d *Detector) detectReadabilityIssues(text string) []Issue {
	report := d.Readability.Analyze(text)
	var issues []Issue

	if report.FleschReadingEase < 50 {
		issues = append(issues, Issue{
			Type:        TypeDifficultWords,
			Severity:    SeverityOf(TypeDifficultWords),
			Location:    "Throughout article",
			Context:     hardestSentence(text),
			Description: fmt.Sprintf("Article is difficult to read (Flesch %.1f, %s)", report.FleschReadingEase, report.ReadingEase),
			Why:         "Lower readability scores mean fewer people can easily understand your writing.",
			SuggestedApproach: []string{
				"Use simpler words where possible",
				"Break long sentences into shorter ones",
				fmt.Sprintf("Target: Flesch Reading Ease above 60 (currently %.1f)", report.FleschReadingEase),
			},
			Metrics: Metrics{
				FleschScore:       report.FleschReadingEase,
				DifficultWords:    report.DifficultWords,
				AvgSentenceLength: report.AvgSentenceLength,
			},
		})
	}

	if report.AvgSentenceLength > 20 {
		issues = append(issues, Issue{
			Type:        TypeSentenceTooLong,
			Severity:    SeverityOf(TypeSentenceTooLong),
			Location:    "Throughout article",
			Context:     longestSentence(text),
			Description: fmt.Sprintf("Sentences are too long on average (%.1f words)", report.AvgSentenceLength),
			Why:         "Long sentences are harder to follow and can lose readers.",
			SuggestedApproach: []string{
				"Break long sentences (>25 words) into two shorter ones",
				"Use periods instead of commas to separate ideas",
				fmt.Sprintf("Target: average sentence length under 20 words (currently %.1f)", report.AvgSentenceLength),
			},
			Metrics: Metrics{AvgSentenceLength: report.AvgSentenceLength},
		})
	}

	return issues
}

func (d *Detector) detectStyleIssues(text string) []Issue {
	report := d.Style.Analyze(text)
	var issues []Issue

	if report.PassiveVoice.IsExcessive {
		pct := report.PassiveVoice.Percentage
		context := ""
		if len(report.PassiveVoice.Examples) > 0 {
			context = report.PassiveVoice.Examples[0]
		}
		issues = append(issues, Issue{
			Type:        TypePassiveVoice,
			Severity:    SeverityOf(TypePassiveVoice),
			Location:    "Multiple paragraphs",
			Context:     context,
			Description: fmt.Sprintf("Excessive passive voice (%.1f%% of sentences)", pct),
			Why:         "Passive voice makes writing less direct and engaging. Active voice is clearer and stronger.",
			SuggestedApproach: []string{
				"Identify the actor (who did the action)",
				"Make the actor the subject of the sentence",
				fmt.Sprintf("Target: <10%% passive voice (currently %.1f%%)", pct),
			},
			Metrics: Metrics{
				Percentage: pct,
				Count:      report.PassiveVoice.Count,
				Examples:   capStrings(report.PassiveVoice.Examples, 3),
			},
		})
	}

	if report.Adverbs.IsExcessive {
		rate := report.Adverbs.Per100Words
		issues = append(issues, Issue{
			Type:        TypeAdverbs,
			Severity:    SeverityOf(TypeAdverbs),
			Location:    "Throughout article",
			Context:     sentenceContaining(text, topWord(report.Adverbs.MostCommon)),
			Description: fmt.Sprintf("Too many adverbs (%d total, %.1f per 100 words)", report.Adverbs.Count, rate),
			Why:         "Excessive adverbs weaken writing. Stronger verbs beat weak verbs propped up by adverbs.",
			SuggestedApproach: []string{
				"Replace 'walked slowly' with 'ambled' or 'strolled'",
				"Remove unnecessary intensifiers",
				fmt.Sprintf("Target: <3 adverbs per 100 words (currently %.1f)", rate),
			},
			Metrics: Metrics{
				Count:      report.Adverbs.Count,
				Rate:       rate,
				MostCommon: capWordCounts(report.Adverbs.MostCommon, 5),
			},
		})
	}

	if report.WeakVerbs.IsExcessive {
		pct := report.WeakVerbs.Percentage
		issues = append(issues, Issue{
			Type:        TypeWeakVerbs,
			Severity:    SeverityOf(TypeWeakVerbs),
			Location:    "Throughout article",
			Context:     firstSentenceWithWeakVerb(text),
			Description: fmt.Sprintf("Too many weak verbs (%d, %.1f%% of verbs)", report.WeakVerbs.Count, pct),
			Why:         "Weak verbs (be, have, do, get, make) create lifeless writing. Strong verbs make it vivid.",
			SuggestedApproach: []string{
				"Replace 'is able to' with 'can'",
				"Replace 'has impact on' with 'affects'",
				fmt.Sprintf("Target: <30%% weak verbs (currently %.1f%%)", pct),
			},
			Metrics: Metrics{
				Percentage: pct,
				Count:      report.WeakVerbs.Count,
			},
		})
	}

	if report.Repetition.IsExcessive {
		issues = append(issues, Issue{
			Type:        TypeWordRepetition,
			Severity:    SeverityOf(TypeWordRepetition),
			Location:    "Multiple sections",
			Context:     sentenceContaining(text, topWord(report.Repetition.RepeatedWords)),
			Description: fmt.Sprintf("Excessive word repetition (%d close repeats)", report.Repetition.TotalRepetitions),
			Why:         "Repeating the same words too often makes writing monotonous. Use synonyms for variety.",
			SuggestedApproach: []string{
				"Use synonyms for variety",
				"Rephrase sentences to avoid repetition",
				"Most repeated: " + formatWordCounts(report.Repetition.RepeatedWords, 3),
			},
			Metrics: Metrics{
				TotalRepetitions: report.Repetition.TotalRepetitions,
				RepeatedWords:    capWordCounts(report.Repetition.RepeatedWords, 10),
			},
		})
	}

	if report.Transitions.Count < report.Paragraphs.Count {
		issues = append(issues, Issue{
			Type:        TypePoorTransitions,
			Severity:    SeverityOf(TypePoorTransitions),
			Location:    "Between paragraphs",
			Context:     firstParagraph(text),
			Description: fmt.Sprintf("Few transition words (%d transitions in %d paragraphs)", report.Transitions.Count, report.Paragraphs.Count),
			Why:         "Transition words help readers follow your logic and connect ideas smoothly.",
			SuggestedApproach: []string{
				"Add transitions like 'however', 'therefore', 'moreover'",
				"Connect paragraphs with transitional sentences",
				"Show relationships between ideas explicitly",
			},
			Metrics: Metrics{
				TransitionCount: report.Transitions.Count,
				ParagraphCount:  report.Paragraphs.Count,
			},
		})
	}

	return issues
}

func (d *Detector) detectStructureIssues(text string) []Issue {
	paragraphs := analyzer.Paragraphs(text)

	var long []analyzer.ParagraphLength
	for i, p := range paragraphs {
		if n := len(strings.Fields(p)); n > 150 {
			long = append(long, analyzer.ParagraphLength{Index: i + 1, Words: n})
		}
	}
	if len(long) == 0 {
		return nil
	}

	longest := 0
	var numbers []string
	for i, p := range long {
		if p.Words > longest {
			longest = p.Words
		}
		if i < 3 {
			numbers = append(numbers, fmt.Sprintf("%d", p.Index))
		}
	}

	context := paragraphs[long[0].Index-1]

	return []Issue{{
		Type:        TypeParagraphTooLong,
		Severity:    SeverityOf(TypeParagraphTooLong),
		Location:    "Paragraph(s) " + strings.Join(numbers, ", "),
		Context:     context,
		Description: fmt.Sprintf("%d paragraph(s) over 150 words", len(long)),
		Why:         "Long paragraphs are intimidating and hard to follow. Readers may skip them.",
		SuggestedApproach: []string{
			"Break long paragraphs into smaller chunks",
			"Each paragraph should focus on one main idea",
			fmt.Sprintf("Longest: %d words (target: <150)", longest),
		},
		Metrics: Metrics{
			LongParagraphs:  long,
			TotalParagraphs: len(paragraphs),
		},
	}}
}

// Context helpers. Document-wide issues still carry a verbatim excerpt of
// the article as context so the coaching session can apply a substring edit.

func longestSentence(text string) string {
	best := ""
	bestWords := 0
	for _, s := range analyzer.Sentences(text) {
		if n := analyzer.WordCountOf(s); n > bestWords {
			best, bestWords = s, n
		}
	}
	return best
}

func hardestSentence(text string) string {
	best := ""
	bestScore := -1
	for _, s := range analyzer.Sentences(text) {
		score := 0
		for _, w := range analyzer.Words(s) {
			if analyzer.CountSyllables(w) >= 3 {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = s, score
		}
	}
	return best
}

func sentenceContaining(text, word string) string {
	if word == "" {
		return firstParagraph(text)
	}
	for _, s := range analyzer.Sentences(text) {
		for _, w := range analyzer.Words(s) {
			if strings.EqualFold(w, word) {
				return s
			}
		}
	}
	return firstParagraph(text)
}

func firstSentenceWithWeakVerb(text string) string {
	weak := []string{"is", "are", "was", "were", "be", "been", "have", "has", "had", "do", "does", "did", "get", "got", "make", "made"}
	for _, s := range analyzer.Sentences(text) {
		for _, w := range analyzer.Words(s) {
			lower := strings.ToLower(w)
			for _, v := range weak {
				if lower == v {
					return s
				}
			}
		}
	}
	return firstParagraph(text)
}

func firstParagraph(text string) string {
	paragraphs := analyzer.Paragraphs(text)
	if len(paragraphs) == 0 {
		return strings.TrimSpace(text)
	}
	return paragraphs[0]
}

func capStrings(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func capWordCounts(s []analyzer.WordCount, n int) []analyzer.WordCount {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func topWord(counts []analyzer.WordCount) string {
	if len(counts) == 0 {
		return ""
	}
	return counts[0].Word
}

func formatWordCounts(counts []analyzer.WordCount, n int) string {
	var parts []string
	for i, wc := range counts {
		if i >= n {
			break
		}
		parts = append(parts, fmt.Sprintf("%s (%dx)", wc.Word, wc.Count))
	}
	return strings.Join(parts, ", ")
}
