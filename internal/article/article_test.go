package article

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMarkdown(t *testing.T) {
	content := `---
title: Test Draft
author: Someone
---

# Introduction

Some opening text.

## Details

More text here.
`
	path := writeTemp(t, "draft.md", content)

	a, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if a.Frontmatter["title"] != "Test Draft" {
		t.Errorf("title = %v", a.Frontmatter["title"])
	}
	if strings.Contains(a.Text, "title:") {
		t.Error("frontmatter leaked into analysis text")
	}
	if !strings.Contains(a.Text, "Some opening text.") {
		t.Errorf("body missing from Text: %q", a.Text)
	}

	if len(a.Headings) != 2 {
		t.Fatalf("headings = %d, want 2", len(a.Headings))
	}
	if a.Headings[0].Title != "Introduction" || a.Headings[0].Level != 1 {
		t.Errorf("first heading = %+v", a.Headings[0])
	}
	if a.Headings[1].Title != "Details" || a.Headings[1].Level != 2 {
		t.Errorf("second heading = %+v", a.Headings[1])
	}
}

func TestLoadPlainText(t *testing.T) {
	// Non-markdown files keep their content untouched, frontmatter included.
	content := "---\nnot frontmatter\n---\nBody text."
	path := writeTemp(t, "notes.txt", content)

	a, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if a.Text != content {
		t.Errorf("Text = %q, want unmodified content", a.Text)
	}
	if a.Frontmatter != nil || a.Headings != nil {
		t.Error("plain text must not be parsed as markdown")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeTemp(t, "empty.md", "   \n\n  ")
	if _, err := Load(path); err == nil {
		t.Error("expected error for empty article")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.md")); err == nil {
		t.Error("expected error for missing article")
	}
}

func TestParseFrontmatterMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "no frontmatter", content: "Just text."},
		{name: "unterminated", content: "---\ntitle: x\nno closing delimiter"},
		{name: "invalid yaml", content: "---\n\t{bad\n---\nBody."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body := ParseFrontmatter([]byte(tt.content))
			if fm != nil {
				t.Errorf("frontmatter = %v, want nil", fm)
			}
			if string(body) != tt.content {
				t.Errorf("body = %q, want original content", body)
			}
		})
	}
}

func TestCoachedPath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"draft.md", "draft_coached.md"},
		{"dir/notes.txt", "dir/notes_coached.txt"},
		{"noext", "noext_coached"},
	}

	for _, tt := range tests {
		if got := CoachedPath(tt.path); got != tt.expected {
			t.Errorf("CoachedPath(%q) = %q, want %q", tt.path, got, tt.expected)
		}
	}
}

func TestSaveCoached(t *testing.T) {
	original := writeTemp(t, "draft.md", "old text")

	out, err := SaveCoached(original, "new text")
	if err != nil {
		t.Fatalf("SaveCoached: %v", err)
	}
	if filepath.Base(out) != "draft_coached.md" {
		t.Errorf("out = %q", out)
	}

	saved, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(saved) != "new text" {
		t.Errorf("saved = %q", saved)
	}
}
