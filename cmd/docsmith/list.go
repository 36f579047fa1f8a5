package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// List-specific flag values.
var listType string

// listCmd lists previously generated documents.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List generated documents",
	Long:  "List previously generated documents, newest first, optionally filtered by document type.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listType, "type", "t", "", "restrict the listing to one document type")
}

func runList(cmd *cobra.Command, _ []string) error {
	gen, err := buildGenerator()
	if err != nil {
		return err
	}

	docs := gen.List(listType)
	if len(docs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No generated documents found.")
		return nil
	}

	dim := color.New(color.Faint)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, doc := range docs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			dim.Sprint(doc.ID), doc.CreatedAt.Format("2006-01-02 15:04"), doc.DocType, doc.Title)
	}
	return tw.Flush()
}
