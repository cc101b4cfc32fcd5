package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/rcalloway/prosecoach/internal/article"
	"github.com/rcalloway/prosecoach/internal/detector"
	"github.com/rcalloway/prosecoach/internal/reporter"
	"github.com/rcalloway/prosecoach/internal/ui"
	"github.com/spf13/cobra"
)

var analyzeAll bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <article>",
	Short: "List detected issues without fixing them",
	Long: `Run all detection passes on an article and print the issues,
highest severity first. Nothing is edited or saved.

By default only issues a coaching session would present are shown
(severity 5 and up). Use --all to include minor style notes.

Examples:
  prosecoach analyze draft.md
  prosecoach analyze --all draft.md
  prosecoach analyze --format json draft.md > issues.json`,
	Args:         cobra.ExactArgs(1),
	RunE:         runAnalyze,
	SilenceUsage: true,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeAll, "all", false, "Include minor issues below coaching severity")
	RootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	u := GetUI()

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

	if analyzeAll {
		sort.SliceStable(issues, func(i, j int) bool {
			return issues[i].Severity > issues[j].Severity
		})
	} else {
		issues = detector.TopIssues(issues, len(issues))
	}

	var rep reporter.Reporter
	switch format {
	case "json":
		rep = reporter.NewJSONReporter(os.Stdout)
	default:
		rep = reporter.NewTerminalReporter(os.Stdout)
	}

	return rep.Report(art.Path, issues)
}
