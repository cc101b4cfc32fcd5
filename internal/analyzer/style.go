package analyzer

import (
	"sort"
	"strings"
)

// WordCount pairs a word with its occurrence count.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// ParagraphLength records a 1-based paragraph number and its word count.
type ParagraphLength struct {
	Index int `json:"index"`
	Words int `json:"words"`
}

// PassiveVoiceStats describes passive-voice usage across sentences.
type PassiveVoiceStats struct {
	Count       int      `json:"count"`
	Percentage  float64  `json:"percentage"`
	Examples    []string `json:"examples"`
	IsExcessive bool     `json:"is_excessive"`
}

// AdverbStats describes adverb density.
type AdverbStats struct {
	Count       int         `json:"count"`
	Per100Words float64     `json:"per_100_words"`
	MostCommon  []WordCount `json:"most_common"`
	IsExcessive bool        `json:"is_excessive"`
}

// WeakVerbStats describes weak-verb usage relative to all verbs.
type WeakVerbStats struct {
	Count       int     `json:"count"`
	TotalVerbs  int     `json:"total_verbs"`
	Percentage  float64 `json:"percentage"`
	IsExcessive bool    `json:"is_excessive"`
}

// RepetitionStats describes close-proximity word repetition.
type RepetitionStats struct {
	RepeatedWords    []WordCount `json:"repeated_words"`
	TotalRepetitions int         `json:"total_repetitions"`
	IsExcessive      bool        `json:"is_excessive"`
}

// TransitionStats describes transition-word usage.
type TransitionStats struct {
	Count   int `json:"count"`
	Variety int `json:"variety"`
}

// ParagraphStats describes paragraph structure.
type ParagraphStats struct {
	Count          int               `json:"count"`
	AvgLength      float64           `json:"avg_length"`
	Lengths        []int             `json:"lengths"`
	LongParagraphs []ParagraphLength `json:"long_paragraphs"`
}

// StyleReport aggregates all writing-quality signals for a text.
type StyleReport struct {
	PassiveVoice PassiveVoiceStats `json:"passive_voice"`
	Adverbs      AdverbStats       `json:"adverbs"`
	WeakVerbs    WeakVerbStats     `json:"weak_verbs"`
	Repetition   RepetitionStats   `json:"repetition"`
	Transitions  TransitionStats   `json:"transitions"`
	Paragraphs   ParagraphStats    `json:"paragraphs"`
}

// Thresholds above which a style signal is flagged as excessive.
const (
	passiveVoiceThreshold = 10.0 // percent of sentences
	adverbThreshold       = 3.0  // per 100 words
	weakVerbThreshold     = 30.0 // percent of verbs
	repetitionWindow      = 50   // words
	repetitionRatio       = 0.1  // repetitions per content word
	longParagraphWords    = 150
)

var beForms = map[string]bool{
	"is": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "being": true, "get": true, "gets": true, "got": true,
	"getting": true,
}

// Passive-skippable tokens that can sit between the auxiliary and the
// participle ("was quickly written", "is not known").
var auxiliaryGap = map[string]bool{
	"not": true, "never": true, "also": true, "still": true, "often": true,
	"always": true, "usually": true, "already": true, "just": true,
	"being": true,
}

var irregularParticiples = map[string]bool{
	"done": true, "made": true, "given": true, "taken": true, "seen": true,
	"known": true, "written": true, "found": true, "told": true,
	"shown": true, "chosen": true, "built": true, "sent": true, "kept": true,
	"held": true, "brought": true, "thought": true, "bought": true,
	"caught": true, "taught": true, "left": true, "put": true, "set": true,
	"paid": true, "said": true, "read": true, "heard": true, "felt": true,
	"meant": true, "led": true, "sold": true, "understood": true,
	"spoken": true, "broken": true, "driven": true, "eaten": true,
	"forgotten": true, "hidden": true, "worn": true, "won": true,
	"lost": true, "drawn": true, "grown": true, "thrown": true,
	"beaten": true, "begun": true, "sung": true, "swung": true,
}

var weakVerbs = map[string]bool{
	"be": true, "is": true, "are": true, "was": true, "were": true,
	"been": true, "being": true, "have": true, "has": true, "had": true,
	"having": true, "do": true, "does": true, "did": true, "doing": true,
	"get": true, "gets": true, "got": true, "gotten": true, "getting": true,
	"make": true, "makes": true, "made": true, "making": true,
}

// Common verbs whose forms do not carry -ed/-ing suffixes, used to estimate
// the total verb count without part-of-speech tagging.
var commonVerbs = map[string]bool{
	"say": true, "says": true, "said": true, "go": true, "goes": true,
	"went": true, "gone": true, "know": true, "knows": true, "knew": true,
	"think": true, "thinks": true, "thought": true, "take": true,
	"takes": true, "took": true, "see": true, "sees": true, "saw": true,
	"come": true, "comes": true, "came": true, "want": true, "wants": true,
	"use": true, "uses": true, "find": true, "finds": true, "give": true,
	"gives": true, "gave": true, "tell": true, "tells": true, "told": true,
	"work": true, "works": true, "call": true, "calls": true, "try": true,
	"tries": true, "ask": true, "asks": true, "need": true, "needs": true,
	"feel": true, "feels": true, "felt": true, "become": true,
	"becomes": true, "became": true, "leave": true, "leaves": true,
	"left": true, "put": true, "puts": true, "mean": true, "means": true,
	"meant": true, "keep": true, "keeps": true, "kept": true, "let": true,
	"lets": true, "begin": true, "begins": true, "began": true,
	"seem": true, "seems": true, "help": true, "helps": true, "show": true,
	"shows": true, "hear": true, "hears": true, "heard": true, "run": true,
	"runs": true, "ran": true, "move": true, "moves": true, "believe": true,
	"believes": true, "bring": true, "brings": true, "brought": true,
	"write": true, "writes": true, "wrote": true, "sit": true, "sits": true,
	"sat": true, "stand": true, "stands": true, "stood": true, "lose": true,
	"loses": true, "lost": true, "pay": true, "pays": true, "paid": true,
	"meet": true, "meets": true, "met": true, "lead": true, "leads": true,
	"led": true, "grow": true, "grows": true, "grew": true, "speak": true,
	"speaks": true, "spoke": true, "spend": true, "spends": true,
	"spent": true, "build": true, "builds": true, "built": true,
	"send": true, "sends": true, "sent": true, "buy": true, "buys": true,
	"bought": true, "fall": true, "falls": true, "fell": true, "cut": true,
	"cuts": true, "reach": true, "reaches": true, "teach": true,
	"teaches": true, "win": true, "wins": true, "won": true,
}

// Words ending in -ly that are not adverbs.
var nonAdverbLy = map[string]bool{
	"family": true, "supply": true, "reply": true, "apply": true,
	"assembly": true, "ally": true, "rally": true, "belly": true,
	"bully": true, "jelly": true, "italy": true, "july": true,
	"monopoly": true, "anomaly": true, "butterfly": true, "fly": true,
	"holy": true, "ugly": true, "silly": true, "likely": true,
	"friendly": true, "lonely": true, "lovely": true, "lily": true,
}

var transitionWords = map[string]bool{
	"however": true, "therefore": true, "moreover": true,
	"furthermore": true, "consequently": true, "nevertheless": true,
	"additionally": true, "meanwhile": true, "thus": true, "hence": true,
	"first": true, "second": true, "third": true, "finally": true,
}

// StyleAnalyzer computes writing-quality signals from raw text.
type StyleAnalyzer struct{}

// NewStyleAnalyzer creates a new style analyzer.
func NewStyleAnalyzer() *StyleAnalyzer {
	return &StyleAnalyzer{}
}

// Analyze computes all style signals for the given text.
func (a *StyleAnalyzer) Analyze(text string) *StyleReport {
	sentences := Sentences(text)
	words := Words(text)

	return &StyleReport{
		PassiveVoice: a.detectPassiveVoice(sentences),
		Adverbs:      a.analyzeAdverbs(words),
		WeakVerbs:    a.detectWeakVerbs(words),
		Repetition:   a.detectRepetition(text),
		Transitions:  a.analyzeTransitions(text, words),
		Paragraphs:   a.analyzeParagraphs(text),
	}
}

func (a *StyleAnalyzer) detectPassiveVoice(sentences []string) PassiveVoiceStats {
	stats := PassiveVoiceStats{}

	for _, sent := range sentences {
		if sentenceIsPassive(sent) {
			stats.Count++
			if len(stats.Examples) < 5 {
				stats.Examples = append(stats.Examples, sent)
			}
		}
	}

	if len(sentences) > 0 {
		stats.Percentage = float64(stats.Count) / float64(len(sentences)) * 100
	}
	stats.IsExcessive = stats.Percentage > passiveVoiceThreshold

	return stats
}

// sentenceIsPassive looks for a be-form auxiliary followed by a past
// participle, optionally with adverbs or negation between them.
func sentenceIsPassive(sentence string) bool {
	tokens := Words(strings.ToLower(sentence))
	for i, tok := range tokens {
		if !beForms[tok] {
			continue
		}
		for j := i + 1; j < len(tokens) && j <= i+3; j++ {
			next := tokens[j]
			if auxiliaryGap[next] || isLyAdverb(next) {
				continue
			}
			if isPastParticiple(next) {
				return true
			}
			break
		}
	}
	return false
}

func isPastParticiple(w string) bool {
	if irregularParticiples[w] {
		return true
	}
	return len(w) > 3 && strings.HasSuffix(w, "ed")
}

func isLyAdverb(w string) bool {
	return len(w) >= 4 && strings.HasSuffix(w, "ly") && !nonAdverbLy[w]
}

func (a *StyleAnalyzer) analyzeAdverbs(words []string) AdverbStats {
	stats := AdverbStats{}
	counts := make(map[string]int)

	for _, w := range words {
		lower := strings.ToLower(w)
		if isLyAdverb(lower) {
			stats.Count++
			counts[lower]++
		}
	}

	if len(words) > 0 {
		stats.Per100Words = float64(stats.Count) / float64(len(words)) * 100
	}
	stats.MostCommon = topCounts(counts, 10)
	stats.IsExcessive = stats.Per100Words > adverbThreshold

	return stats
}

func (a *StyleAnalyzer) detectWeakVerbs(words []string) WeakVerbStats {
	stats := WeakVerbStats{}

	for _, w := range words {
		lower := strings.ToLower(w)
		if weakVerbs[lower] {
			stats.Count++
			stats.TotalVerbs++
		} else if looksLikeVerb(lower) {
			stats.TotalVerbs++
		}
	}

	if stats.TotalVerbs > 0 {
		stats.Percentage = float64(stats.Count) / float64(stats.TotalVerbs) * 100
	}
	stats.IsExcessive = stats.Percentage > weakVerbThreshold

	return stats
}

// looksLikeVerb is a part-of-speech approximation: inflected -ed/-ing forms
// plus a lexicon of common verbs whose base forms carry no suffix.
func looksLikeVerb(w string) bool {
	if commonVerbs[w] {
		return true
	}
	if len(w) > 4 && strings.HasSuffix(w, "ing") {
		return true
	}
	return len(w) > 3 && strings.HasSuffix(w, "ed")
}

func (a *StyleAnalyzer) detectRepetition(text string) RepetitionStats {
	stats := RepetitionStats{}
	words := ContentWords(text)

	positions := make(map[string][]int)
	repeats := make(map[string]int)

	for i, w := range words {
		for _, prev := range positions[w] {
			if i-prev <= repetitionWindow {
				stats.TotalRepetitions++
				repeats[w]++
			}
		}
		positions[w] = append(positions[w], i)
	}

	stats.RepeatedWords = topCounts(repeats, 10)
	stats.IsExcessive = float64(stats.TotalRepetitions) > float64(len(words))*repetitionRatio

	return stats
}

func (a *StyleAnalyzer) analyzeTransitions(text string, words []string) TransitionStats {
	counts := make(map[string]int)
	total := 0

	for _, w := range words {
		lower := strings.ToLower(w)
		if transitionWords[lower] {
			counts[lower]++
			total++
		}
	}

	// Multi-word transition phrase, invisible to single-token matching.
	if n := strings.Count(strings.ToLower(text), "in conclusion"); n > 0 {
		counts["in conclusion"] += n
		total += n
	}

	return TransitionStats{Count: total, Variety: len(counts)}
}

func (a *StyleAnalyzer) analyzeParagraphs(text string) ParagraphStats {
	paragraphs := Paragraphs(text)
	stats := ParagraphStats{Count: len(paragraphs)}

	if len(paragraphs) == 0 {
		return stats
	}

	total := 0
	for i, p := range paragraphs {
		n := len(strings.Fields(p))
		stats.Lengths = append(stats.Lengths, n)
		total += n
		if n > longParagraphWords {
			stats.LongParagraphs = append(stats.LongParagraphs, ParagraphLength{
				Index: i + 1,
				Words: n,
			})
		}
	}
	stats.AvgLength = float64(total) / float64(len(paragraphs))

	return stats
}

// topCounts returns the n highest-count entries, ties broken alphabetically
// for deterministic output.
func topCounts(counts map[string]int, n int) []WordCount {
	out := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		out = append(out, WordCount{Word: w, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
