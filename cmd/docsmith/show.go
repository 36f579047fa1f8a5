package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkadrlik/docsmith/internal/docgen"
)

// showCmd prints a generated document.
var showCmd = &cobra.Command{
	Use:   "show <identifier>",
	Short: "Print a generated document",
	Long:  "Print a previously generated document, looked up by id, exact filename, or filename substring.",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	gen, err := buildGenerator()
	if err != nil {
		return err
	}

	got, err := gen.Get(args[0])
	if err != nil {
		if errors.Is(err, docgen.ErrNotFound) {
			return fmt.Errorf("docsmith: no document matches %q (see docsmith list)", args[0])
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), got.Content)
	return nil
}
