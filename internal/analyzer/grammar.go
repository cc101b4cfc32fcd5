package analyzer

import (
	_ "embed"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

//go:embed data/misspellings.txt
var misspellingData string

// Match represents a single grammar, spelling, or punctuation finding,
// shaped like a LanguageTool match.
type Match struct {
	Message      string   `json:"message"`
	Context      string   `json:"context"`
	Offset       int      `json:"offset"`
	Length       int      `json:"length"`
	Replacements []string `json:"replacements"`
	RuleID       string   `json:"rule_id"`
}

// GrammarReport contains categorized grammar findings for a text.
type GrammarReport struct {
	GrammarIssues     []Match `json:"grammar_issues"`
	SpellingIssues    []Match `json:"spelling_issues"`
	PunctuationIssues []Match `json:"punctuation_issues"`
	TotalIssues       int     `json:"total_issues"`
}

// GrammarAnalyzer finds grammar, spelling, and punctuation problems using
// rule-based checks and an embedded misspelling dictionary.
type GrammarAnalyzer struct {
	misspellings map[string]string
}

var (
	commaSpacePattern   = regexp.MustCompile(`,[^\s\d]| ,`)
	doublePunctPattern  = regexp.MustCompile(`\.{2,}|,{2,}|!{2,}|\?{2,}`)
	sentenceStartLower  = regexp.MustCompile(`(?:^|[.!?]\s+)([a-z])`)
	articlePattern      = regexp.MustCompile(`(?i)\b(an?) +([a-z]+)`)
)

// Vowel-initial words that take "a", and consonant-initial words that take
// "an", due to pronunciation.
var (
	aExceptions  = map[string]bool{"university": true, "unique": true, "unit": true, "user": true, "useful": true, "european": true, "one": true, "once": true}
	anExceptions = map[string]bool{"hour": true, "honest": true, "honor": true, "heir": true, "herb": true}
)

// NewGrammarAnalyzer creates a grammar analyzer, loading the embedded
// misspelling dictionary. Returns an error if the dictionary is malformed.
func NewGrammarAnalyzer() (*GrammarAnalyzer, error) {
	dict := make(map[string]string)
	for lineNum, line := range strings.Split(misspellingData, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		wrong, correct, ok := strings.Cut(line, "=")
		if !ok || wrong == "" || correct == "" {
			return nil, fmt.Errorf("misspelling dictionary line %d: malformed entry %q", lineNum+1, line)
		}
		dict[wrong] = correct
	}
	return &GrammarAnalyzer{misspellings: dict}, nil
}

// Analyze checks text and returns categorized findings. Categorization is by
// rule-id substring: SPELL/MORFOLOGIK rules are spelling, PUNCT/COMMA rules
// are punctuation, everything else is grammar.
func (g *GrammarAnalyzer) Analyze(text string) *GrammarReport {
	var matches []Match
	matches = append(matches, g.checkSpelling(text)...)
	matches = append(matches, g.checkRepeatedWords(text)...)
	matches = append(matches, g.checkArticles(text)...)
	matches = append(matches, g.checkSentenceStarts(text)...)
	matches = append(matches, g.checkCommaSpacing(text)...)
	matches = append(matches, g.checkDoublePunctuation(text)...)

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Offset < matches[j].Offset
	})

	report := &GrammarReport{TotalIssues: len(matches)}
	for _, m := range matches {
		switch {
		case strings.Contains(m.RuleID, "SPELL") || strings.Contains(m.RuleID, "MORFOLOGIK"):
			report.SpellingIssues = append(report.SpellingIssues, m)
		case strings.Contains(m.RuleID, "PUNCT") || strings.Contains(m.RuleID, "COMMA"):
			report.PunctuationIssues = append(report.PunctuationIssues, m)
		default:
			report.GrammarIssues = append(report.GrammarIssues, m)
		}
	}
	return report
}

func (g *GrammarAnalyzer) checkSpelling(text string) []Match {
	var matches []Match
	for _, loc := range wordPattern.FindAllStringIndex(text, -1) {
		word := text[loc[0]:loc[1]]
		correct, ok := g.misspellings[strings.ToLower(word)]
		if !ok {
			continue
		}
		matches = append(matches, Match{
			Message:      fmt.Sprintf("Possible spelling mistake: %q", word),
			Context:      snippet(text, loc[0], loc[1]-loc[0]),
			Offset:       loc[0],
			Length:       loc[1] - loc[0],
			Replacements: []string{matchCase(word, correct)},
			RuleID:       "MORFOLOGIK_RULE_EN_US",
		})
	}
	return matches
}

func (g *GrammarAnalyzer) checkRepeatedWords(text string) []Match {
	var matches []Match
	locs := wordPattern.FindAllStringIndex(text, -1)
	for i := 1; i < len(locs); i++ {
		prev, cur := locs[i-1], locs[i]
		if strings.Trim(text[prev[1]:cur[0]], " ") != "" {
			continue
		}
		first := text[prev[0]:prev[1]]
		second := text[cur[0]:cur[1]]
		if !strings.EqualFold(first, second) || !isAlphabetic(strings.ToLower(first)) {
			continue
		}
		// Deliberate doubling ("had had", "that that") is rare but legal;
		// still worth flagging for review.
		matches = append(matches, Match{
			Message:      fmt.Sprintf("Possible word duplication: %q", first+" "+second),
			Context:      snippet(text, prev[0], cur[1]-prev[0]),
			Offset:       prev[0],
			Length:       cur[1] - prev[0],
			Replacements: []string{first},
			RuleID:       "ENGLISH_WORD_REPEAT_RULE",
		})
	}
	return matches
}

func (g *GrammarAnalyzer) checkArticles(text string) []Match {
	var matches []Match
	for _, loc := range articlePattern.FindAllStringSubmatchIndex(text, -1) {
		article := strings.ToLower(text[loc[2]:loc[3]])
		noun := strings.ToLower(text[loc[4]:loc[5]])

		wantAn := startsWithVowelSound(noun)
		if article == "a" && wantAn {
			matches = append(matches, articleMatch(text, loc, "an"))
		} else if article == "an" && !wantAn {
			matches = append(matches, articleMatch(text, loc, "a"))
		}
	}
	return matches
}

func startsWithVowelSound(word string) bool {
	if aExceptions[word] {
		return false
	}
	if anExceptions[word] {
		return true
	}
	return strings.ContainsRune("aeiou", rune(word[0]))
}

func articleMatch(text string, loc []int, want string) Match {
	return Match{
		Message:      fmt.Sprintf("Use %q before %q", want, text[loc[4]:loc[5]]),
		Context:      snippet(text, loc[0], loc[1]-loc[0]),
		Offset:       loc[2],
		Length:       loc[3] - loc[2],
		Replacements: []string{want},
		RuleID:       "EN_A_VS_AN",
	}
}

func (g *GrammarAnalyzer) checkSentenceStarts(text string) []Match {
	var matches []Match
	for _, loc := range sentenceStartLower.FindAllStringSubmatchIndex(text, -1) {
		letter := text[loc[2]:loc[3]]
		matches = append(matches, Match{
			Message:      "Sentence does not start with an uppercase letter",
			Context:      snippet(text, loc[2], 1),
			Offset:       loc[2],
			Length:       1,
			Replacements: []string{strings.ToUpper(letter)},
			RuleID:       "UPPERCASE_SENTENCE_START",
		})
	}
	return matches
}

func (g *GrammarAnalyzer) checkCommaSpacing(text string) []Match {
	var matches []Match
	for _, loc := range commaSpacePattern.FindAllStringIndex(text, -1) {
		matches = append(matches, Match{
			Message:      "Put a space after the comma, but not before it",
			Context:      snippet(text, loc[0], loc[1]-loc[0]),
			Offset:       loc[0],
			Length:       loc[1] - loc[0],
			Replacements: []string{", "},
			RuleID:       "COMMA_PARENTHESIS_WHITESPACE",
		})
	}
	return matches
}

func (g *GrammarAnalyzer) checkDoublePunctuation(text string) []Match {
	var matches []Match
	for _, loc := range doublePunctPattern.FindAllStringIndex(text, -1) {
		run := text[loc[0]:loc[1]]
		if run == "..." {
			continue // ellipsis
		}
		matches = append(matches, Match{
			Message:      "Two consecutive punctuation marks",
			Context:      snippet(text, loc[0], loc[1]-loc[0]),
			Offset:       loc[0],
			Length:       loc[1] - loc[0],
			Replacements: []string{run[:1]},
			RuleID:       "DOUBLE_PUNCTUATION",
		})
	}
	return matches
}

// snippet extracts a short context window around [off, off+length) without
// splitting multi-byte runes.
func snippet(text string, off, length int) string {
	const margin = 25
	start := off - margin
	if start < 0 {
		start = 0
	}
	end := off + length + margin
	if end > len(text) {
		end = len(text)
	}
	for start > 0 && !utf8Start(text[start]) {
		start--
	}
	for end < len(text) && !utf8Start(text[end]) {
		end++
	}
	return text[start:end]
}

func utf8Start(b byte) bool {
	return b&0xC0 != 0x80
}

// matchCase applies the capitalization of the original word to the
// replacement.
func matchCase(original, replacement string) string {
	if original == "" || replacement == "" {
		return replacement
	}
	r := []rune(original)[0]
	if unicode.IsUpper(r) {
		return strings.ToUpper(replacement[:1]) + replacement[1:]
	}
	return replacement
}
