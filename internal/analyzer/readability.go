package analyzer

// ReadabilityReport contains standard readability indices for a text.
type ReadabilityReport struct {
	FleschReadingEase  float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade float64 `json:"flesch_kincaid_grade"`
	GunningFog         float64 `json:"gunning_fog"`

	WordCount         int     `json:"word_count"`
	SentenceCount     int     `json:"sentence_count"`
	SyllableCount     int     `json:"syllable_count"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	DifficultWords    int     `json:"difficult_words"`
	CharCount         int     `json:"char_count"`

	ReadingLevel string `json:"reading_level"`
	ReadingEase  string `json:"reading_ease"`
}

// ReadabilityAnalyzer computes readability metrics from raw text.
type ReadabilityAnalyzer struct{}

// NewReadabilityAnalyzer creates a new readability analyzer.
func NewReadabilityAnalyzer() *ReadabilityAnalyzer {
	return &ReadabilityAnalyzer{}
}

// Analyze computes readability metrics for the given text.
func (a *ReadabilityAnalyzer) Analyze(text string) *ReadabilityReport {
	words := Words(text)
	sentences := Sentences(text)

	r := &ReadabilityReport{
		WordCount:     len(words),
		SentenceCount: len(sentences),
		CharCount:     len(text),
	}

	if len(words) == 0 || len(sentences) == 0 {
		r.ReadingLevel = interpretGradeLevel(0)
		r.ReadingEase = interpretReadingEase(r.FleschReadingEase)
		return r
	}

	difficult := 0
	syllables := 0
	for _, w := range words {
		s := CountSyllables(w)
		syllables += s
		if s >= 3 && !IsStopword(w) {
			difficult++
		}
	}

	asl := float64(len(words)) / float64(len(sentences))
	spw := float64(syllables) / float64(len(words))

	r.SyllableCount = syllables
	r.DifficultWords = difficult
	r.AvgSentenceLength = asl
	r.FleschReadingEase = 206.835 - 1.015*asl - 84.6*spw
	r.FleschKincaidGrade = 0.39*asl + 11.8*spw - 15.59
	r.GunningFog = 0.4 * (asl + 100*float64(difficult)/float64(len(words)))
	r.ReadingLevel = interpretGradeLevel(r.FleschKincaidGrade)
	r.ReadingEase = interpretReadingEase(r.FleschReadingEase)

	return r
}

func interpretGradeLevel(grade float64) string {
	switch {
	case grade < 6:
		return "Elementary"
	case grade < 9:
		return "Middle School"
	case grade < 13:
		return "High School"
	case grade < 16:
		return "College"
	default:
		return "Graduate"
	}
}

func interpretReadingEase(score float64) string {
	switch {
	case score >= 90:
		return "Very Easy"
	case score >= 80:
		return "Easy"
	case score >= 70:
		return "Fairly Easy"
	case score >= 60:
		return "Standard"
	case score >= 50:
		return "Fairly Difficult"
	case score >= 30:
		return "Difficult"
	default:
		return "Very Difficult"
	}
}
