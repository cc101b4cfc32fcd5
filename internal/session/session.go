// Package session runs the interactive coaching loop: issues are presented
// one at a time, the user edits, skips, or quits, and accepted edits are
// applied to a working copy of the article and validated.
package session

import (
	"fmt"
	"os"
	"strings"

	"github.com/rcalloway/prosecoach/internal/detector"
	"github.com/rcalloway/prosecoach/internal/validator"
)

// Action is the user's decision for a presented issue.
type Action int

const (
	ActionEditInline Action = iota
	ActionEditExternal
	ActionSkip
	ActionQuit
)

// Presenter displays issues and session results to the user.
type Presenter interface {
	// PresentIssue shows one issue and returns the user's chosen action.
	PresentIssue(issue detector.Issue, num, total int) (Action, error)
	// ConfirmQuit asks whether the user really wants to abort the session.
	ConfirmQuit() bool
	ShowValidation(v validator.Verdict)
	ShowNoIssues()
	// Pause waits for the user to acknowledge before moving on.
	Pause()
	// Notify prints a short informational line.
	Notify(msg string)
}

// Editor lets the user edit text outside the coaching loop.
type Editor interface {
	// EditSnippet opens the snippet for editing and returns the edited
	// text. Returning the snippet unchanged (or an empty string) means the
	// user made no edit.
	EditSnippet(snippet, description string) (string, error)
	// EditDocument opens the file at path in an editor and blocks until
	// the user is done.
	EditDocument(path string) error
}

// Result summarizes a finished (or aborted) coaching session.
type Result struct {
	Completed bool
	Fixed     int
	Skipped   int
	FinalText string
}

// Coach owns the working text for one coaching session. The working text is
// mutated only here; the validator and summary receive copies.
type Coach struct {
	detector  *detector.Detector
	validator *validator.Validator
	presenter Presenter
	editor    Editor

	SkipTypes []detector.IssueType
	Limit     int
	Verbose   bool

	originalText string
	workingText  string
	fixed        int
	skipped      int
}

// New creates a coaching session.
func New(d *detector.Detector, v *validator.Validator, p Presenter, e Editor) *Coach {
	return &Coach{
		detector:  d,
		validator: v,
		presenter: p,
		editor:    e,
		Limit:     10,
	}
}

// Run presents the prioritized issues for text and collects user edits.
// The issues argument is the full detection result for text; Run applies
// skip-type filtering and prioritization itself.
func (c *Coach) Run(text string, issues []detector.Issue) (Result, error) {
	c.originalText = text
	c.workingText = text
	c.fixed = 0
	c.skipped = 0

	issues = c.filterIssues(issues)
	if len(issues) == 0 {
		c.presenter.ShowNoIssues()
		return c.result(true), nil
	}

	completed, err := c.presentIssues(issues)
	if err != nil {
		return c.result(false), err
	}
	return c.result(completed), nil
}

func (c *Coach) result(completed bool) Result {
	return Result{
		Completed: completed,
		Fixed:     c.fixed,
		Skipped:   c.skipped,
		FinalText: c.workingText,
	}
}

func (c *Coach) filterIssues(issues []detector.Issue) []detector.Issue {
	if len(c.SkipTypes) > 0 {
		var kept []detector.Issue
		for _, issue := range issues {
			if !c.skipType(issue.Type) {
				kept = append(kept, issue)
			}
		}
		issues = kept
	}
	return detector.TopIssues(issues, c.Limit)
}

func (c *Coach) skipType(t detector.IssueType) bool {
	for _, s := range c.SkipTypes {
		if s == t {
			return true
		}
	}
	return false
}

func (c *Coach) presentIssues(issues []detector.Issue) (bool, error) {
	total := len(issues)

	for i := 0; i < total; {
		issue := issues[i]
		action, err := c.presenter.PresentIssue(issue, i+1, total)
		if err != nil {
			return false, err
		}

		switch action {
		case ActionQuit:
			if c.presenter.ConfirmQuit() {
				return false, nil
			}
			continue // re-present the same issue

		case ActionSkip:
			c.skipped++

		case ActionEditInline:
			c.editInline(issue)

		case ActionEditExternal:
			c.editExternal()
		}

		i++
	}

	return true, nil
}

// editInline lets the user rework just the flagged snippet. A changed
// snippet replaces the first occurrence of the original context in the
// working text, then the fix is validated against the issue's baseline.
func (c *Coach) editInline(issue detector.Issue) {
	edited, err := c.editor.EditSnippet(issue.Context, issue.Description)
	if err != nil {
		c.presenter.Notify(fmt.Sprintf("Editor failed: %v (no edit applied)", err))
		return
	}
	if edited == "" || edited == issue.Context {
		return // no edit, no validation
	}

	if !strings.Contains(c.workingText, issue.Context) {
		// A previous edit already rewrote this passage. The replacement
		// would be a silent no-op; surface it instead of guessing.
		if c.Verbose {
			c.presenter.Notify("Context no longer present in the working text; edit not applied")
		}
	} else {
		c.workingText = strings.Replace(c.workingText, issue.Context, edited, 1)
	}

	verdict := c.validator.ValidateFix(issue.Context, edited, c.workingText, issue)
	c.presenter.ShowValidation(verdict)
	if verdict.Improved {
		c.fixed++
	}
	c.presenter.Pause()
}

// editExternal hands the whole working document to the user's editor and
// reloads it wholesale. No per-issue validation is possible after a
// whole-document edit, so the edit unconditionally counts as fixed.
func (c *Coach) editExternal() {
	tmp, err := os.CreateTemp("", "prosecoach-*.txt")
	if err != nil {
		c.presenter.Notify(fmt.Sprintf("Could not create scratch file: %v", err))
		return
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.WriteString(c.workingText); err != nil {
		tmp.Close()
		c.presenter.Notify(fmt.Sprintf("Could not write scratch file: %v", err))
		return
	}
	tmp.Close()

	if err := c.editor.EditDocument(path); err != nil {
		c.presenter.Notify(fmt.Sprintf("External editor failed: %v (no edit applied)", err))
		return
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		c.presenter.Notify(fmt.Sprintf("Could not reload edited file: %v", err))
		return
	}

	c.workingText = string(edited)
	c.fixed++
	c.presenter.Notify("Changes loaded")
}

// OriginalText returns the pristine article text the session started with.
func (c *Coach) OriginalText() string { return c.originalText }
