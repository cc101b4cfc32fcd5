package cmd

import (
	"fmt"
	"os"

	"github.com/rcalloway/prosecoach/internal/article"
	"github.com/rcalloway/prosecoach/internal/config"
	"github.com/rcalloway/prosecoach/internal/detector"
	"github.com/rcalloway/prosecoach/internal/editor"
	"github.com/rcalloway/prosecoach/internal/session"
	"github.com/rcalloway/prosecoach/internal/ui"
	"github.com/rcalloway/prosecoach/internal/validator"
	"github.com/spf13/cobra"
)

var (
	quick           bool
	limit           int
	skipStyle       bool
	skipGrammar     bool
	skipReadability bool
	configPath      string
	editorCommand   string
)

var coachCmd = &cobra.Command{
	Use:   "coach <article>",
	Short: "Fix writing issues interactively",
	Long: `Analyze an article and walk through the most important issues one
at a time. For each issue you can edit the flagged passage inline,
open the whole document in your editor, skip it, or quit.

On completion the coached text is saved next to the original as
<name>_coached<ext>. Quitting mid-session discards all edits.

Examples:
  prosecoach coach draft.md
  prosecoach coach --quick draft.md
  prosecoach coach --skip-style --limit 5 draft.md`,
	Args:         cobra.ExactArgs(1),
	RunE:         runCoach,
	SilenceUsage: true,
}

func init() {
	coachCmd.Flags().BoolVarP(&quick, "quick", "q", false, "Quick mode: only the top 3 issues")
	coachCmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum issues to present (overrides config)")
	coachCmd.Flags().BoolVar(&skipStyle, "skip-style", false, "Skip style issues (passive voice, adverbs, weak verbs)")
	coachCmd.Flags().BoolVar(&skipGrammar, "skip-grammar", false, "Skip grammar and spelling issues")
	coachCmd.Flags().BoolVar(&skipReadability, "skip-readability", false, "Skip readability issues (sentence length, difficult words, paragraph length)")
	coachCmd.Flags().StringVar(&configPath, "config", "", "Path to config file")
	coachCmd.Flags().StringVar(&editorCommand, "editor", "", "Editor command (overrides config and $EDITOR)")
	RootCmd.AddCommand(coachCmd)
}

// skipTypesFromFlags maps the category flags onto concrete issue types.
func skipTypesFromFlags(cfg config.Config) []detector.IssueType {
	var types []detector.IssueType
	if skipStyle {
		types = append(types, detector.TypePassiveVoice, detector.TypeAdverbs, detector.TypeWeakVerbs)
	}
	if skipGrammar {
		types = append(types, detector.TypeSpelling, detector.TypeGrammar)
	}
	if skipReadability {
		types = append(types, detector.TypeSentenceTooLong, detector.TypeDifficultWords, detector.TypeParagraphTooLong)
	}
	for _, t := range cfg.Skip {
		types = append(types, detector.IssueType(t))
	}
	return types
}

func runCoach(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	u := GetUI()

	// Stage 1: Load the article
	progress := u.StartProgress()
	defer func() {
		if progress != nil {
			progress.Done(nil)
		}
	}()

	art, err := article.Load(args[0])
	if err != nil {
		if progress != nil {
			progress.Done(err)
			progress = nil
		}
		return fmt.Errorf("failed to load article: %w", err)
	}

	// Stage 2: Detect issues
	det, warnings := detector.New()
	reportWarnings(u, warnings)

	if progress != nil {
		progress.SetStage(ui.StageAnalyze)
	}

	issues := runDetection(det, progress, art.Text)

	if progress != nil {
		progress.Done(nil)
		progress = nil
	}

	if verbose {
		fmt.Fprintf(u.Writer, "Found %d issues in %s\n", len(issues), art.Path)
	}

	// Stage 3: Coach
	val := validator.New(det)
	presenter := ui.NewPresenter(u, os.Stdin)
	ed := editor.New(editorChoice(cfg))

	coach := session.New(det, val, presenter, ed)
	coach.SkipTypes = skipTypesFromFlags(cfg)
	coach.Limit = sessionLimit(cfg)
	coach.Verbose = verbose

	result, err := coach.Run(art.Text, issues)
	if err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	if !result.Completed {
		presenter.Notify("Session aborted. No changes were saved.")
		return fmt.Errorf("session aborted")
	}

	presenter.ShowSummary(result.Fixed, result.Skipped, val.OverallImprovements(art.Text, result.FinalText))

	// The coached copy is written only for a completed session, and only
	// when something actually changed.
	if result.FinalText != art.Text {
		saved, err := article.SaveCoached(art.Path, result.FinalText)
		if err != nil {
			return fmt.Errorf("failed to save coached copy: %w", err)
		}
		presenter.ShowSaved(saved)
	}

	return nil
}

// runDetection runs each detection pass separately so the progress display
// can advance between them.
func runDetection(det *detector.Detector, progress *ui.ProgressController, text string) []detector.Issue {
	categories := det.Categories()
	if progress != nil {
		progress.SetAnalyzerCount(len(categories))
	}

	var issues []detector.Issue
	for _, cat := range categories {
		if progress != nil {
			progress.AnalyzerStart(cat.Name)
		}
		issues = append(issues, cat.Run(text)...)
		if progress != nil {
			progress.AnalyzerDone()
		}
	}

	detector.ApplySeverities(issues)
	return issues
}

// reportWarnings surfaces analyzer initialization failures without stopping
// the run.
func reportWarnings(u *ui.UI, warnings []error) {
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, u.Styles.Warning.Render(
			fmt.Sprintf("%s Warning: %v (category disabled)", u.Styles.IconWarning, w),
		))
	}
}

func editorChoice(cfg config.Config) string {
	if editorCommand != "" {
		return editorCommand
	}
	return cfg.Editor
}

func sessionLimit(cfg config.Config) int {
	switch {
	case limit > 0:
		return limit
	case quick:
		return cfg.QuickLimit
	default:
		return cfg.Limit
	}
}
