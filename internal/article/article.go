// Package article loads prose documents for analysis. Markdown articles
// get their YAML frontmatter stripped so metadata never counts against the
// writing metrics, and their heading outline extracted for reports.
package article

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// Heading is one entry in a markdown article's outline.
type Heading struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	Line  int    `json:"line"`
}

// Article is a loaded prose document.
type Article struct {
	Path        string
	Text        string // analysis text, frontmatter stripped
	Frontmatter map[string]interface{}
	Headings    []Heading
}

// Load reads and parses the article at path. Empty files are an error.
func Load(path string) (*Article, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read article: %w", err)
	}

	a := &Article{Path: path}

	body := content
	if isMarkdown(path) {
		a.Frontmatter, body = ParseFrontmatter(content)
		a.Headings = extractHeadings(body)
	}

	a.Text = string(body)
	if strings.TrimSpace(a.Text) == "" {
		return nil, fmt.Errorf("article file is empty: %s", path)
	}

	return a, nil
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// ParseFrontmatter extracts YAML frontmatter from content between ---
// delimiters. Returns the parsed frontmatter and the remaining content.
func ParseFrontmatter(content []byte) (map[string]interface{}, []byte) {
	s := string(content)

	if !strings.HasPrefix(s, "---") {
		return nil, content
	}

	rest := s[3:]
	endIdx := strings.Index(rest, "\n---")
	if endIdx == -1 {
		return nil, content
	}

	var frontmatter map[string]interface{}
	if err := yaml.Unmarshal([]byte(strings.TrimSpace(rest[:endIdx])), &frontmatter); err != nil {
		return nil, content
	}

	remaining := rest[endIdx+4:]
	remaining = strings.TrimPrefix(remaining, "\n")

	return frontmatter, []byte(remaining)
}

// extractHeadings walks the markdown AST and collects the heading outline.
func extractHeadings(source []byte) []Heading {
	md := goldmark.New()
	doc := md.Parser().Parse(gmtext.NewReader(source))

	var headings []Heading
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			line := 1
			if h.Lines().Len() > 0 {
				seg := h.Lines().At(0)
				line = bytes.Count(source[:seg.Start], []byte("\n")) + 1
			}
			headings = append(headings, Heading{
				Level: h.Level,
				Title: string(h.Text(source)),
				Line:  line,
			})
		}
		return ast.WalkContinue, nil
	})

	return headings
}

// CoachedPath derives the output filename for the coached copy of an
// article: "draft.md" becomes "draft_coached.md".
func CoachedPath(path string) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	return stem + "_coached" + ext
}

// SaveCoached writes the coached text next to the original article and
// returns the path written.
func SaveCoached(originalPath, text string) (string, error) {
	out := CoachedPath(originalPath)
	if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("save coached article: %w", err)
	}
	return out, nil
}
