package cmd

import (
	"fmt"
	"os"

	"github.com/rcalloway/prosecoach/internal/article"
	"github.com/rcalloway/prosecoach/internal/detector"
	"github.com/rcalloway/prosecoach/internal/reporter"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report <article>",
	Short: "Print the full metrics report for an article",
	Long: `Compute and print every readability, style, and grammar metric for
an article: reading-ease scores, sentence and paragraph statistics,
passive voice, adverb density, weak verbs, repetition, transitions.

Sections for unavailable analyzers are omitted.

Examples:
  prosecoach report draft.md
  prosecoach report --format json draft.md > metrics.json`,
	Args:         cobra.ExactArgs(1),
	RunE:         runReport,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	u := GetUI()

	art, err := article.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load article: %w", err)
	}

	det, warnings := detector.New()
	reportWarnings(u, warnings)

	doc := reporter.Document{Path: art.Path, Outline: art.Headings}
	if det.Readability != nil {
		doc.Readability = det.Readability.Analyze(art.Text)
	}
	if det.Style != nil {
		doc.Style = det.Style.Analyze(art.Text)
	}
	if det.Grammar != nil {
		doc.Grammar = det.Grammar.Analyze(art.Text)
	}

	var rep reporter.Reporter
	switch format {
	case "json":
		rep = reporter.NewJSONReporter(os.Stdout)
	default:
		rep = reporter.NewTerminalReporter(os.Stdout)
	}

	return rep.ReportDocument(doc)
}
