package session

import (
	"os"
	"strings"
	"testing"

	"github.com/rcalloway/prosecoach/internal/detector"
	"github.com/rcalloway/prosecoach/internal/validator"
)

// scriptedPresenter replays a fixed sequence of actions and quit answers.
type scriptedPresenter struct {
	actions     []Action
	quitAnswers []bool

	presented   []detector.Issue
	validations []validator.Verdict
	notices     []string
	noIssues    bool
}

func (p *scriptedPresenter) PresentIssue(issue detector.Issue, num, total int) (Action, error) {
	p.presented = append(p.presented, issue)
	if len(p.actions) == 0 {
		return ActionSkip, nil
	}
	a := p.actions[0]
	p.actions = p.actions[1:]
	return a, nil
}

func (p *scriptedPresenter) ConfirmQuit() bool {
	if len(p.quitAnswers) == 0 {
		return true
	}
	a := p.quitAnswers[0]
	p.quitAnswers = p.quitAnswers[1:]
	return a
}

func (p *scriptedPresenter) ShowValidation(v validator.Verdict) {
	p.validations = append(p.validations, v)
}

func (p *scriptedPresenter) ShowNoIssues()     { p.noIssues = true }
func (p *scriptedPresenter) Pause()            {}
func (p *scriptedPresenter) Notify(msg string) { p.notices = append(p.notices, msg) }

// scriptedEditor returns canned snippet edits and applies a document edit
// function to external-edit scratch files.
type scriptedEditor struct {
	snippetEdits []string
	docEdit      func(path string) error
}

func (e *scriptedEditor) EditSnippet(snippet, description string) (string, error) {
	if len(e.snippetEdits) == 0 {
		return snippet, nil
	}
	out := e.snippetEdits[0]
	e.snippetEdits = e.snippetEdits[1:]
	return out, nil
}

func (e *scriptedEditor) EditDocument(path string) error {
	if e.docEdit == nil {
		return nil
	}
	return e.docEdit(path)
}

func newCoach(p Presenter, e Editor) *Coach {
	d, _ := detector.New()
	return New(d, validator.New(d), p, e)
}

func spellingIssue(context string) detector.Issue {
	return detector.Issue{
		Type:     detector.TypeSpelling,
		Severity: 10,
		Context:  context,
		Metrics:  detector.Metrics{IssueCount: 1},
	}
}

func TestRunNoIssues(t *testing.T) {
	p := &scriptedPresenter{}
	c := newCoach(p, &scriptedEditor{})

	result, err := c.Run("Clean text here.", nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.Completed {
		t.Error("empty session must count as completed")
	}
	if !p.noIssues {
		t.Error("ShowNoIssues was not called")
	}
}

func TestRunSkipAll(t *testing.T) {
	p := &scriptedPresenter{actions: []Action{ActionSkip, ActionSkip}}
	c := newCoach(p, &scriptedEditor{})

	issues := []detector.Issue{spellingIssue("teh cat"), spellingIssue("teh dog")}
	result, err := c.Run("teh cat and teh dog.", issues)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.Completed || result.Skipped != 2 || result.Fixed != 0 {
		t.Errorf("result = %+v, want completed with 2 skips", result)
	}
	if result.FinalText != "teh cat and teh dog." {
		t.Error("skipping must not mutate the text")
	}
}

func TestRunQuitConfirmed(t *testing.T) {
	p := &scriptedPresenter{
		actions:     []Action{ActionQuit},
		quitAnswers: []bool{true},
	}
	c := newCoach(p, &scriptedEditor{})

	result, err := c.Run("teh cat.", []detector.Issue{spellingIssue("teh cat")})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Completed {
		t.Error("confirmed quit must not count as completed")
	}
}

func TestRunQuitDeclinedRepresents(t *testing.T) {
	p := &scriptedPresenter{
		actions:     []Action{ActionQuit, ActionSkip},
		quitAnswers: []bool{false},
	}
	c := newCoach(p, &scriptedEditor{})

	result, err := c.Run("teh cat.", []detector.Issue{spellingIssue("teh cat")})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.Completed {
		t.Error("declined quit should let the session finish")
	}
	if len(p.presented) != 2 {
		t.Errorf("issue presented %d times, want 2 (re-presented after declined quit)", len(p.presented))
	}
}

func TestEditInlineAppliesFix(t *testing.T) {
	p := &scriptedPresenter{actions: []Action{ActionEditInline}}
	e := &scriptedEditor{snippetEdits: []string{"the cat"}}
	c := newCoach(p, e)

	result, err := c.Run("I saw teh cat today.", []detector.Issue{spellingIssue("teh cat")})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.FinalText != "I saw the cat today." {
		t.Errorf("FinalText = %q", result.FinalText)
	}
	if result.Fixed != 1 {
		t.Errorf("Fixed = %d, want 1", result.Fixed)
	}
	if len(p.validations) != 1 || !p.validations[0].Improved {
		t.Errorf("validations = %+v, want one improved verdict", p.validations)
	}
}

func TestEditInlineUnchangedSnippetSkipsValidation(t *testing.T) {
	p := &scriptedPresenter{actions: []Action{ActionEditInline}}
	e := &scriptedEditor{} // returns the snippet unchanged
	c := newCoach(p, e)

	result, err := c.Run("I saw teh cat today.", []detector.Issue{spellingIssue("teh cat")})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Fixed != 0 {
		t.Errorf("Fixed = %d, want 0", result.Fixed)
	}
	if len(p.validations) != 0 {
		t.Errorf("validations = %+v, want none for a no-op edit", p.validations)
	}
	if result.FinalText != "I saw teh cat today." {
		t.Errorf("FinalText = %q", result.FinalText)
	}
}

func TestEditInlineStaleContext(t *testing.T) {
	p := &scriptedPresenter{actions: []Action{ActionEditInline}}
	e := &scriptedEditor{snippetEdits: []string{"the dog"}}
	c := newCoach(p, e)
	c.Verbose = true

	// The issue's context no longer appears in the working text.
	issue := spellingIssue("teh bird")
	result, err := c.Run("I saw teh cat today.", []detector.Issue{issue})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.FinalText != "I saw teh cat today." {
		t.Errorf("FinalText = %q, stale context must not be applied", result.FinalText)
	}

	found := false
	for _, n := range p.notices {
		if strings.Contains(n, "no longer present") {
			found = true
		}
	}
	if !found {
		t.Errorf("notices = %v, want a stale-context notice in verbose mode", p.notices)
	}
}

func TestEditExternalReloadsAndCountsFixed(t *testing.T) {
	p := &scriptedPresenter{actions: []Action{ActionEditExternal}}
	e := &scriptedEditor{
		docEdit: func(path string) error {
			return os.WriteFile(path, []byte("Completely rewritten."), 0o644)
		},
	}
	c := newCoach(p, e)

	result, err := c.Run("teh cat.", []detector.Issue{spellingIssue("teh cat")})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.FinalText != "Completely rewritten." {
		t.Errorf("FinalText = %q", result.FinalText)
	}
	if result.Fixed != 1 {
		t.Errorf("Fixed = %d, want 1 (external edits count unconditionally)", result.Fixed)
	}
}

func TestSkipTypesFilter(t *testing.T) {
	p := &scriptedPresenter{actions: []Action{ActionSkip}}
	c := newCoach(p, &scriptedEditor{})
	c.SkipTypes = []detector.IssueType{detector.TypeSpelling}

	issues := []detector.Issue{
		spellingIssue("teh cat"),
		{Type: detector.TypeGrammar, Severity: 9, Context: "a apple"},
	}
	result, err := c.Run("teh cat ate a apple.", issues)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(p.presented) != 1 || p.presented[0].Type != detector.TypeGrammar {
		t.Errorf("presented = %+v, want only the grammar issue", p.presented)
	}
	if !result.Completed {
		t.Error("session should complete")
	}
}

func TestLimitCapsSession(t *testing.T) {
	p := &scriptedPresenter{actions: []Action{ActionSkip, ActionSkip}}
	c := newCoach(p, &scriptedEditor{})
	c.Limit = 2

	var issues []detector.Issue
	for i := 0; i < 6; i++ {
		issues = append(issues, spellingIssue("teh"))
	}
	result, err := c.Run("teh teh teh.", issues)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(p.presented) != 2 {
		t.Errorf("presented %d issues, want 2", len(p.presented))
	}
	if result.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", result.Skipped)
	}
}
