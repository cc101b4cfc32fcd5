// Package cmd wires the CLI commands together.
package cmd

import (
	"os"

	"github.com/rcalloway/prosecoach/internal/ui"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	format  string
)

// RootCmd is the top-level prosecoach command.
var RootCmd = &cobra.Command{
	Use:   "prosecoach",
	Short: "An interactive coach for article drafts",
	Long: `prosecoach analyzes article drafts for readability, style, and
grammar problems, then walks you through fixing the most important
ones interactively.

Issues are ranked by severity: correctness problems like spelling
come first, then readability, then style polish. Each accepted edit
is validated against the metric that flagged it, so you can see
whether the fix actually helped.`,
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

var globalUI *ui.UI

// GetUI returns the process-wide UI, created on first use so the --format
// flag has been parsed by then.
func GetUI() *ui.UI {
	if globalUI == nil {
		globalUI = ui.New(os.Stdout, os.Stderr, format)
	}
	return globalUI
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json)")
}
