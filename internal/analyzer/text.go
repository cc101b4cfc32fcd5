package analyzer

import (
	"regexp"
	"strings"
	"unicode"
)

var wordPattern = regexp.MustCompile(`[A-Za-z0-9]+(?:['’-][A-Za-z0-9]+)*`)

// Abbreviations that end with a period but do not terminate a sentence.
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"st": true, "jr": true, "sr": true, "vs": true, "etc": true,
	"e.g": true, "i.e": true, "fig": true, "no": true, "approx": true,
}

// Common function words excluded from content-word analysis.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"if": true, "then": true, "else": true, "when": true, "while": true,
	"of": true, "at": true, "by": true, "for": true, "with": true,
	"about": true, "against": true, "between": true, "into": true,
	"through": true, "during": true, "before": true, "after": true,
	"above": true, "below": true, "to": true, "from": true, "up": true,
	"down": true, "in": true, "out": true, "on": true, "off": true,
	"over": true, "under": true, "again": true, "further": true,
	"is": true, "am": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true, "have": true, "has": true,
	"had": true, "do": true, "does": true, "did": true, "will": true,
	"would": true, "shall": true, "should": true, "can": true, "could": true,
	"may": true, "might": true, "must": true, "that": true, "this": true,
	"these": true, "those": true, "it": true, "its": true, "they": true,
	"them": true, "their": true, "we": true, "our": true, "you": true,
	"your": true, "he": true, "she": true, "his": true, "her": true,
	"i": true, "me": true, "my": true, "what": true, "which": true,
	"who": true, "whom": true, "as": true, "so": true, "than": true,
	"too": true, "very": true, "not": true, "only": true, "own": true,
	"same": true, "such": true, "no": true, "nor": true, "all": true,
	"any": true, "both": true, "each": true, "few": true, "more": true,
	"most": true, "other": true, "some": true, "there": true, "here": true,
}

// Words returns the word tokens of text, punctuation stripped.
func Words(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

// WordCountOf returns the number of word tokens in text.
func WordCountOf(text string) int {
	return len(wordPattern.FindAllStringIndex(text, -1))
}

// Sentences splits text into sentences. Each returned sentence is a
// contiguous substring of the input (leading/trailing whitespace trimmed),
// so callers can locate it verbatim in the source document.
func Sentences(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0

	flush := func(end int) {
		s := strings.TrimSpace(string(runes[start:end]))
		if s != "" {
			sentences = append(sentences, s)
		}
		start = end
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		// Consume runs of terminal punctuation ("?!", "...").
		for i+1 < len(runes) && (runes[i+1] == '.' || runes[i+1] == '!' || runes[i+1] == '?') {
			i++
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if r == '.' && isAbbreviation(runes[start:i]) {
			continue
		}
		flush(i + 1)
	}
	flush(len(runes))

	return sentences
}

// isAbbreviation reports whether the text ends with a known abbreviation,
// meaning the following period does not terminate a sentence.
func isAbbreviation(before []rune) bool {
	s := string(before)
	idx := strings.LastIndexFunc(s, unicode.IsSpace)
	last := strings.ToLower(s[idx+1:])
	last = strings.TrimSuffix(last, ".")
	return abbreviations[last]
}

// CountSyllables estimates the syllable count of a single word by counting
// vowel groups, with a correction for silent trailing e.
func CountSyllables(word string) int {
	w := strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range w {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	if strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// IsStopword reports whether the lowercase form of w is a function word.
func IsStopword(w string) bool {
	return stopwords[strings.ToLower(w)]
}

// ContentWords returns the lowercase alphabetic, non-stopword tokens of text.
func ContentWords(text string) []string {
	var out []string
	for _, w := range Words(text) {
		lower := strings.ToLower(strings.TrimSuffix(w, "'s"))
		if stopwords[lower] || !isAlphabetic(lower) {
			continue
		}
		out = append(out, lower)
	}
	return out
}

func isAlphabetic(w string) bool {
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(w) > 0
}

// Paragraphs splits text on blank lines, dropping empty paragraphs. Each
// returned paragraph is a trimmed contiguous substring of the input.
func Paragraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(text, "\n\n") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
