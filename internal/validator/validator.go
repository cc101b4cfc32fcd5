// Package validator decides, after the user edits a flagged passage,
// whether the specific problem got measurably better. Each issue type
// re-runs the analyzer that flagged it and compares the fresh value to the
// baseline stored in the issue's metrics, using the same threshold that
// triggered the issue in the first place.
package validator

import (
	"fmt"
	"strings"

	"github.com/rcalloway/prosecoach/internal/analyzer"
	"github.com/rcalloway/prosecoach/internal/detector"
)

// Verdict is the result of validating a single fix.
type Verdict struct {
	Improved bool
	Message  string
	Before   float64
	After    float64
}

// Change is a before/after pair for one document-wide metric.
type Change struct {
	Before float64
	After  float64
}

// Validator re-analyzes edited text to judge whether fixes helped.
type Validator struct {
	detector *detector.Detector
}

// New creates a validator backed by the given detector's analyzers.
func New(d *detector.Detector) *Validator {
	return &Validator{detector: d}
}

// ValidateFix checks whether editing original into edited improved the
// issue. Snippet-scale checks analyze only the edited snippet; paragraph
// and transition checks also consult doc, the full post-edit document.
// When the analyzer an issue type depends on is unavailable, the edit is
// accepted as an improvement.
func (v *Validator) ValidateFix(original, edited, doc string, issue detector.Issue) Verdict {
	switch issue.Type {
	case detector.TypeSpelling, detector.TypeGrammar:
		return v.validateGrammarFix(edited, issue)
	case detector.TypePassiveVoice:
		return v.validatePassiveFix(edited, issue)
	case detector.TypeAdverbs:
		return v.validateAdverbFix(edited, issue)
	case detector.TypeWeakVerbs:
		return v.validateWeakVerbFix(edited, issue)
	case detector.TypeDifficultWords:
		return v.validateReadabilityFix(edited, issue)
	case detector.TypeSentenceTooLong:
		return v.validateSentenceLengthFix(edited, issue)
	case detector.TypeParagraphTooLong:
		return v.validateParagraphFix(doc, issue)
	case detector.TypeWordRepetition:
		return v.validateRepetitionFix(edited, issue)
	case detector.TypePoorTransitions:
		return v.validateTransitionFix(edited, doc, issue)
	default:
		return Verdict{Improved: true, Message: "Text edited"}
	}
}

func (v *Validator) validateGrammarFix(edited string, issue detector.Issue) Verdict {
	if v.detector.Grammar == nil {
		return Verdict{Improved: true, Message: "Text edited"}
	}

	newCount := 0
	for _, fresh := range v.detector.FindAllIssues(edited) {
		if fresh.Type == issue.Type {
			newCount++
		}
	}
	oldCount := issue.Metrics.IssueCount
	verdict := Verdict{Before: float64(oldCount), After: float64(newCount)}

	kind := string(issue.Type)
	switch {
	case newCount == 0:
		verdict.Improved = true
		verdict.Message = fmt.Sprintf("Perfect! No %s issues remaining", kind)
	case newCount < oldCount:
		verdict.Improved = true
		verdict.Message = fmt.Sprintf("Fixed! Reduced %s issues from %d to %d", kind, oldCount, newCount)
	default:
		verdict.Message = fmt.Sprintf("Still %d %s issue(s) remaining", newCount, kind)
	}
	return verdict
}

func (v *Validator) validatePassiveFix(edited string, issue detector.Issue) Verdict {
	if v.detector.Style == nil {
		return Verdict{Improved: true, Message: "Text edited"}
	}

	newPct := v.detector.Style.Analyze(edited).PassiveVoice.Percentage
	oldPct := issue.Metrics.Percentage
	verdict := Verdict{Before: oldPct, After: newPct}
	improvement := oldPct - newPct

	switch {
	case newPct < 10:
		verdict.Improved = true
		verdict.Message = fmt.Sprintf("Excellent! Passive voice reduced to %.1f%% (target met)", newPct)
	case improvement > 3:
		verdict.Improved = true
		verdict.Message = fmt.Sprintf("Good improvement! Passive voice: %.1f%% → %.1f%%", oldPct, newPct)
	case improvement > 0:
		verdict.Improved = true
		verdict.Message = fmt.Sprintf("Small improvement. Passive voice: %.1f%% → %.1f%%", oldPct, newPct)
	default:
		verdict.Message = fmt.Sprintf("No improvement. Passive voice still at %.1f%%", newPct)
	}
	return verdict
}

func (v *Validator) validateAdverbFix(edited string, issue detector.Issue) Verdict {
	if v.detector.Style == nil {
		return Verdict{Improved: true, Message: "Text edited"}
	}

	newRate := v.detector.Style.Analyze(edited).Adverbs.Per100Words
	oldRate := issue.Metrics.Rate
	verdict := Verdict{Before: oldRate, After: newRate}

	switch {
	case newRate < 3:
		verdict.Improved = true
		verdict.Message = fmt.Sprintf("Excellent! Adverb rate reduced to %.1f per 100 words", newRate)
	case oldRate-newRate > 0.5:
		verdict.Improved = true
		verdict.Message = fmt.Sprintf("Good! Adverbs: %.1f → %.1f per 100 words", oldRate, newRate)
	default:
		verdict.Message = fmt.Sprintf("Still %.1f adverbs per 100 words (target: <3)", newRate)
	}
	return verdict
}

func (v *Validator) validateWeakVerbFix(edited string, issue detector.Issue) Verdict {
	if v.detector.Style == nil {
		return Verdict{Improved: true, Message: "Text edited"}
	}

	newPct := v.detector.Style.Analyze(edited).WeakVerbs.Percentage
	oldPct := issue.Metrics.Percentage
	verdict := Verdict{Before: oldPct, After: newPct}

	switch {
	case newPct < 30:
		verdict.Improved = true
		verdict.Message = fmt.Sprintf("Great! Weak verbs reduced to %.1f%%", newPct)
	case oldPct-newPct > 3:
		verdict.Improved = true
		verdict.Message = fmt.Sprintf("Improved! Weak verbs: %.1f%% → %.1f%%", oldPct, newPct)
	default:
		verdict.Message = fmt.Sprintf("Still %.1f%% weak verbs (target: <30%%)", newPct)
	}
	return verdict
}

func (v *Validator) validateReadabilityFix(edited string, issue detector.Issue) Verdict {
	if v.detector.Readability == nil {
		return Verdict{Improved: true, Message: "Text edited"}
	}

	newScore := v.detector.Readability.Analyze(edited).FleschReadingEase
	oldScore := issue.Metrics.FleschScore
	verdict := Verdict{Before: oldScore, After: newScore}
	improvement := newScore - oldScore

	switch {
	case newScore >= 60:
		verdict.Improved = true
		verdict.Message = fmt.Sprintf("Excellent! Readability improved to %.1f", newScore)
	case improvement > 5:
		verdict.Improved = true
		verdict.Message = fmt.Sprintf("Better! Readability: %.1f → %.1f", oldScore, newScore)
	case improvement > 0:
		verdict.Improved = true
		verdict.Message = fmt.Sprintf("Slight improvement: %.1f → %.1f", oldScore, newScore)
	default:
		verdict.Message = fmt.Sprintf("Readability unchanged at %.1f", newScore)
	}
	return verdict
}

func (v *Validator) validateSentenceLengthFix(edited string, issue detector.Issue) Verdict {
	if v.detector.Readability == nil {
		return Verdict{Improved: true, Message: "Text edited"}
	}

	newAvg := v.detector.Readability.Analyze(edited).AvgSentenceLength
	oldAvg := issue.Metrics.AvgSentenceLength
	verdict := Verdict{Before: oldAvg, After: newAvg}

	switch {
	case newAvg < 20:
		verdict.Improved = true
		verdict.Message = fmt.Sprintf("Perfect! Average sentence length: %.1f words", newAvg)
	case oldAvg-newAvg > 2:
		verdict.Improved = true
		verdict.Message = fmt.Sprintf("Better! Sentence length: %.1f → %.1f words", oldAvg, newAvg)
	default:
		verdict.Message = fmt.Sprintf("Still averaging %.1f words per sentence", newAvg)
	}
	return verdict
}

func (v *Validator) validateParagraphFix(doc string, issue detector.Issue) Verdict {
	newCount := 0
	for _, p := range analyzer.Paragraphs(doc) {
		if len(strings.Fields(p)) > 150 {
			newCount++
		}
	}
	oldCount := len(issue.Metrics.LongParagraphs)
	verdict := Verdict{Before: float64(oldCount), After: float64(newCount)}

	switch {
	case newCount == 0:
		verdict.Improved = true
		verdict.Message = "Excellent! All paragraphs are now under 150 words"
	case newCount < oldCount:
		verdict.Improved = true
		verdict.Message = fmt.Sprintf("Improved! Long paragraphs: %d → %d", oldCount, newCount)
	default:
		verdict.Message = fmt.Sprintf("Still %d paragraph(s) over 150 words", newCount)
	}
	return verdict
}

func (v *Validator) validateRepetitionFix(edited string, issue detector.Issue) Verdict {
	if v.detector.Style == nil {
		return Verdict{Improved: true, Message: "Text edited"}
	}

	newCount := v.detector.Style.Analyze(edited).Repetition.TotalRepetitions
	oldCount := issue.Metrics.TotalRepetitions
	verdict := Verdict{Before: float64(oldCount), After: float64(newCount)}

	if newCount < oldCount {
		verdict.Improved = true
		verdict.Message = fmt.Sprintf("Better! Repetitions reduced from %d to %d", oldCount, newCount)
	} else {
		verdict.Message = fmt.Sprintf("Still %d repeated words", newCount)
	}
	return verdict
}

func (v *Validator) validateTransitionFix(edited, doc string, issue detector.Issue) Verdict {
	if v.detector.Style == nil {
		return Verdict{Improved: true, Message: "Text edited"}
	}

	newCount := v.detector.Style.Analyze(edited).Transitions.Count
	oldCount := issue.Metrics.TransitionCount
	paraCount := len(analyzer.Paragraphs(doc))
	verdict := Verdict{Before: float64(oldCount), After: float64(newCount)}

	switch {
	case newCount >= paraCount:
		verdict.Improved = true
		verdict.Message = fmt.Sprintf("Great! Added transition words (%d transitions)", newCount)
	case newCount > oldCount:
		verdict.Improved = true
		verdict.Message = fmt.Sprintf("Improved! Transitions: %d → %d", oldCount, newCount)
	default:
		verdict.Message = fmt.Sprintf("Still only %d transitions for %d paragraphs", newCount, paraCount)
	}
	return verdict
}

// OverallImprovements computes document-wide before/after metric pairs for
// the session summary. It depends only on the two texts, not on the issue
// list or edit history.
func (v *Validator) OverallImprovements(original, final string) map[string]Change {
	improvements := make(map[string]Change)

	if v.detector.Readability != nil {
		before := v.detector.Readability.Analyze(original)
		after := v.detector.Readability.Analyze(final)
		improvements["readability"] = Change{before.FleschReadingEase, after.FleschReadingEase}
		improvements["avg_sentence_length"] = Change{before.AvgSentenceLength, after.AvgSentenceLength}
	}

	if v.detector.Style != nil {
		before := v.detector.Style.Analyze(original)
		after := v.detector.Style.Analyze(final)
		improvements["passive_voice"] = Change{before.PassiveVoice.Percentage, after.PassiveVoice.Percentage}
		improvements["adverbs"] = Change{before.Adverbs.Per100Words, after.Adverbs.Per100Words}
		improvements["weak_verbs"] = Change{before.WeakVerbs.Percentage, after.WeakVerbs.Percentage}
	}

	if v.detector.Grammar != nil {
		before := v.detector.Grammar.Analyze(original)
		after := v.detector.Grammar.Analyze(final)
		improvements["grammar_issues"] = Change{float64(before.TotalIssues), float64(after.TotalIssues)}
	}

	return improvements
}
