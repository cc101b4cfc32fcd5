package analyzer

import (
	"reflect"
	"strings"
	"testing"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "simple sentence",
			text:     "The cat sat.",
			expected: []string{"The", "cat", "sat"},
		},
		{
			name:     "contractions stay whole",
			text:     "Don't stop, it's fine.",
			expected: []string{"Don't", "stop", "it's", "fine"},
		},
		{
			name:     "hyphenated word stays whole",
			text:     "A well-known fact.",
			expected: []string{"A", "well-known", "fact"},
		},
		{
			name:     "numbers count as words",
			text:     "Chapter 12 has 3 parts.",
			expected: []string{"Chapter", "12", "has", "3", "parts"},
		},
		{
			name:     "empty input",
			text:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Words(tt.text)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Words(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestSentences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "three sentences",
			text:     "First one. Second one! Third one?",
			expected: []string{"First one.", "Second one!", "Third one?"},
		},
		{
			name:     "abbreviation does not split",
			text:     "Dr. Smith arrived late. He apologized.",
			expected: []string{"Dr. Smith arrived late.", "He apologized."},
		},
		{
			name:     "decimal number does not split",
			text:     "It rose 3.5 percent. Good news.",
			expected: []string{"It rose 3.5 percent.", "Good news."},
		},
		{
			name:     "ellipsis consumed as a single terminator",
			text:     "Well... maybe. We shall see.",
			expected: []string{"Well...", "maybe.", "We shall see."},
		},
		{
			name:     "trailing text without period",
			text:     "Done. And one more",
			expected: []string{"Done.", "And one more"},
		},
		{
			name:     "empty input",
			text:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sentences(tt.text)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Sentences(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestSentencesAreSubstrings(t *testing.T) {
	text := "Mr. Jones spoke first. Then Mrs. Lee asked a question! Everyone listened... and waited."
	for _, s := range Sentences(text) {
		if !strings.Contains(text, s) {
			t.Errorf("sentence %q is not a substring of the input", s)
		}
	}
}

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word     string
		expected int
	}{
		{"cat", 1},
		{"hello", 2},
		{"beautiful", 3},
		{"university", 5},
		{"the", 1},
		{"make", 1},   // silent e
		{"table", 2},  // -le keeps its syllable
		{"a", 1},
		{"rhythm", 1},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := CountSyllables(tt.word); got != tt.expected {
				t.Errorf("CountSyllables(%q) = %d, want %d", tt.word, got, tt.expected)
			}
		})
	}
}

func TestContentWords(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "stopwords removed and lowercased",
			text:     "The Quick fox jumped over the lazy Dog",
			expected: []string{"quick", "fox", "jumped", "lazy", "dog"},
		},
		{
			name:     "possessive suffix stripped",
			text:     "The author's argument",
			expected: []string{"author", "argument"},
		},
		{
			name:     "numbers excluded",
			text:     "We sold 500 tickets",
			expected: []string{"sold", "tickets"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContentWords(tt.text)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ContentWords(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestParagraphs(t *testing.T) {
	text := "First paragraph here.\n\nSecond paragraph\nacross two lines.\n\n\n\nThird."
	got := Paragraphs(text)
	expected := []string{
		"First paragraph here.",
		"Second paragraph\nacross two lines.",
		"Third.",
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Paragraphs() = %v, want %v", got, expected)
	}
}
