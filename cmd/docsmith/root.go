package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	docsmithlog "github.com/mkadrlik/docsmith/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for docsmith.
var rootCmd = &cobra.Command{
	Use:   "docsmith",
	Short: "Turn raw notes into polished documentation",
	Long: `Docsmith turns raw content — meeting notes, chat transcripts, rough
drafts — into structured markdown documents using AI providers. Documents
are generated from named templates (SOPs, runbooks, architecture docs, and
more), saved locally, and indexed for later retrieval. It also runs as an
MCP server so AI agents can generate documentation directly.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		docsmithlog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(transformCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}
