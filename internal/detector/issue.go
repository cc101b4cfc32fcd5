package detector

import (
	"github.com/rcalloway/prosecoach/internal/analyzer"
)

// IssueType identifies the kind of writing problem an Issue describes.
type IssueType string

const (
	TypeSpelling         IssueType = "spelling"
	TypeGrammar          IssueType = "grammar"
	TypeSentenceTooLong  IssueType = "sentence_too_long"
	TypeDifficultWords   IssueType = "difficult_words"
	TypePoorTransitions  IssueType = "poor_transitions"
	TypeParagraphTooLong IssueType = "paragraph_too_long"
	TypePassiveVoice     IssueType = "passive_voice"
	TypeWeakVerbs        IssueType = "weak_verbs"
	TypeAdverbs          IssueType = "adverbs"
	TypeWordRepetition   IssueType = "word_repetition"
)

// Display returns a human-readable name for the issue type.
func (t IssueType) Display() string {
	switch t {
	case TypeSpelling:
		return "Spelling Error"
	case TypeGrammar:
		return "Grammar Issue"
	case TypeSentenceTooLong:
		return "Sentence Too Long"
	case TypeDifficultWords:
		return "Difficult to Read"
	case TypePoorTransitions:
		return "Missing Transitions"
	case TypeParagraphTooLong:
		return "Paragraph Too Long"
	case TypePassiveVoice:
		return "Passive Voice Overuse"
	case TypeWeakVerbs:
		return "Weak Verbs"
	case TypeAdverbs:
		return "Excessive Adverbs"
	case TypeWordRepetition:
		return "Word Repetition"
	default:
		return string(t)
	}
}

// severityScores is the static severity table. Severity is a pure function
// of issue type; it is never set per instance.
var severityScores = map[IssueType]int{
	// Correctness (must fix)
	TypeSpelling: 10,
	TypeGrammar:  9,

	// Readability (important)
	TypeSentenceTooLong:  7,
	TypeDifficultWords:   6,
	TypePoorTransitions:  6,
	TypeParagraphTooLong: 6,

	// Style (nice to have)
	TypePassiveVoice:   5,
	TypeWeakVerbs:      4,
	TypeWordRepetition: 4,
	TypeAdverbs:        3,
}

const defaultSeverity = 3

// SeverityOf returns the static severity score (1-10) for an issue type.
func SeverityOf(t IssueType) int {
	if s, ok := severityScores[t]; ok {
		return s
	}
	return defaultSeverity
}

// Metrics carries the baseline values an issue was flagged with. The fields
// populated depend on the issue type; the fix validator reads the same
// fields back when judging improvement.
type Metrics struct {
	IssueCount        int
	Percentage        float64
	Count             int
	Rate              float64
	FleschScore       float64
	DifficultWords    int
	AvgSentenceLength float64
	TotalRepetitions  int
	TransitionCount   int
	ParagraphCount    int
	TotalParagraphs   int
	LongParagraphs    []analyzer.ParagraphLength
	RepeatedWords     []analyzer.WordCount
	MostCommon        []analyzer.WordCount
	Examples          []string
}

// Issue represents one detected writing problem. Issues are immutable after
// creation: the prioritizer and the coaching session only read them.
type Issue struct {
	Type              IssueType
	Severity          int
	Location          string
	Context           string
	Description       string
	Why               string
	SuggestedApproach []string
	Metrics           Metrics
}
