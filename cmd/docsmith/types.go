// Copyright 2026 The Docsmith Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Type management flag values.
var (
	addTypeDescription  string
	addTypeTemplate     string
	addTypeTemplateFile string
)

// typesCmd lists the available document types.
var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List available document types",
	Long:  "List the available document types, built-in and custom, with their descriptions.",
	Args:  cobra.NoArgs,
	RunE:  runTypes,
}

// typesShowCmd prints a document type's prompt template.
var typesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print the prompt template for a document type",
	Args:  cobra.ExactArgs(1),
	RunE:  runTypesShow,
}

// typesAddCmd registers a custom document type.
var typesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a custom document type",
	Long: `Register a custom document type with its own prompt template. The
template must contain a {content} placeholder and may use {title} and
{context}. Custom types persist across restarts and shadow built-in types in
the listing.`,
	Args: cobra.ExactArgs(1),
	RunE: runTypesAdd,
}

func init() {
	typesAddCmd.Flags().StringVarP(&addTypeDescription, "description", "d", "", "short description of the document type")
	typesAddCmd.Flags().StringVar(&addTypeTemplate, "template", "", "prompt template body")
	typesAddCmd.Flags().StringVar(&addTypeTemplateFile, "template-file", "", "file containing the prompt template body")

	typesCmd.AddCommand(typesShowCmd)
	typesCmd.AddCommand(typesAddCmd)
}

func runTypes(cmd *cobra.Command, _ []string) error {
	gen, err := buildGenerator()
	if err != nil {
		return err
	}

	types := gen.Types()
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)

	bold := color.New(color.Bold)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(tw, "%s\t%s\n", bold.Sprint(name), types[name].Description)
	}
	return tw.Flush()
}

func runTypesShow(cmd *cobra.Command, args []string) error {
	gen, err := buildGenerator()
	if err != nil {
		return err
	}

	body, ok := gen.Template(args[0])
	if !ok {
		return fmt.Errorf("docsmith: unknown document type %q (see docsmith types)", args[0])
	}

	fmt.Fprintln(cmd.OutOrStdout(), body)
	return nil
}

func runTypesAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	body := addTypeTemplate
	if addTypeTemplateFile != "" {
		data, err := os.ReadFile(addTypeTemplateFile)
		if err != nil {
			return fmt.Errorf("docsmith: cannot read %q (%v)", addTypeTemplateFile, err)
		}
		body = string(data)
	}
	if body == "" {
		return fmt.Errorf("docsmith: a template is required (use --template or --template-file)")
	}
	if !strings.Contains(body, "{content}") {
		return fmt.Errorf("docsmith: template must contain a {content} placeholder")
	}

	gen, err := buildGenerator()
	if err != nil {
		return err
	}

	if err := gen.AddType(name, addTypeDescription, body); err != nil {
		return fmt.Errorf("docsmith: cannot add document type (%v)", err)
	}

	green := color.New(color.FgGreen)
	green.Fprintf(cmd.OutOrStdout(), "Document type %q added.\n", name) //nolint:errcheck // best-effort terminal output
	return nil
}
