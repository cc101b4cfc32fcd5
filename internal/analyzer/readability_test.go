package analyzer

import (
	"math"
	"testing"
)

func TestReadabilitySimpleText(t *testing.T) {
	a := NewReadabilityAnalyzer()
	// 12 monosyllabic words in 3 sentences: ASL = 4, syllables per word = 1.
	r := a.Analyze("The cat sat down. The dog ran off. We all went home.")

	if r.WordCount != 12 {
		t.Errorf("WordCount = %d, want 12", r.WordCount)
	}
	if r.SentenceCount != 3 {
		t.Errorf("SentenceCount = %d, want 3", r.SentenceCount)
	}
	if r.AvgSentenceLength != 4 {
		t.Errorf("AvgSentenceLength = %v, want 4", r.AvgSentenceLength)
	}

	// 206.835 - 1.015*4 - 84.6*1 = 118.175
	if math.Abs(r.FleschReadingEase-118.175) > 0.001 {
		t.Errorf("FleschReadingEase = %v, want 118.175", r.FleschReadingEase)
	}
	// 0.39*4 + 11.8*1 - 15.59 = -2.23
	if math.Abs(r.FleschKincaidGrade-(-2.23)) > 0.001 {
		t.Errorf("FleschKincaidGrade = %v, want -2.23", r.FleschKincaidGrade)
	}
	if r.DifficultWords != 0 {
		t.Errorf("DifficultWords = %d, want 0", r.DifficultWords)
	}
	if r.ReadingEase != "Very Easy" {
		t.Errorf("ReadingEase = %q, want Very Easy", r.ReadingEase)
	}
	if r.ReadingLevel != "Elementary" {
		t.Errorf("ReadingLevel = %q, want Elementary", r.ReadingLevel)
	}
}

func TestReadabilityDifficultWords(t *testing.T) {
	a := NewReadabilityAnalyzer()
	// "considerable" and "quantities" are 3+ syllables; "against" is a
	// stopword so it never counts as difficult regardless of syllables.
	r := a.Analyze("They argued against considerable quantities.")

	if r.DifficultWords != 2 {
		t.Errorf("DifficultWords = %d, want 2", r.DifficultWords)
	}
}

func TestReadabilityEmptyText(t *testing.T) {
	a := NewReadabilityAnalyzer()
	r := a.Analyze("")

	if r.WordCount != 0 || r.SentenceCount != 0 {
		t.Errorf("expected zero counts, got words=%d sentences=%d", r.WordCount, r.SentenceCount)
	}
	if r.FleschReadingEase != 0 {
		t.Errorf("FleschReadingEase = %v, want 0", r.FleschReadingEase)
	}
	if r.ReadingEase != "Very Difficult" {
		t.Errorf("ReadingEase = %q, want Very Difficult", r.ReadingEase)
	}
}

func TestInterpretReadingEaseBands(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{95, "Very Easy"},
		{90, "Very Easy"},
		{85, "Easy"},
		{75, "Fairly Easy"},
		{65, "Standard"},
		{55, "Fairly Difficult"},
		{50, "Fairly Difficult"},
		{49.9, "Difficult"},
		{30, "Difficult"},
		{10, "Very Difficult"},
	}

	for _, tt := range tests {
		if got := interpretReadingEase(tt.score); got != tt.expected {
			t.Errorf("interpretReadingEase(%v) = %q, want %q", tt.score, got, tt.expected)
		}
	}
}
