// Copyright 2026 The Docsmith Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mkadrlik/docsmith/internal/docgen"
)

// Generate-specific flag values.
var (
	genType        string
	genTitle       string
	genContext     string
	genProvider    string
	genModel       string
	genMaxTokens   int
	genTemperature float64
	genPrint       bool
)

// generateCmd turns raw content into a saved markdown document.
var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate a markdown document from raw content",
	Long: `Generate a structured markdown document from raw content: meeting notes,
chat transcripts, rough drafts. Content is read from the given file, or from
stdin when the argument is omitted or is "-". The document is saved to the
output directory and indexed for later retrieval with list and show.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genType, "type", "t", "", "document type to generate (see docsmith types)")
	generateCmd.Flags().StringVar(&genTitle, "title", "", "title for the generated document")
	generateCmd.Flags().StringVar(&genContext, "context", "", "additional context to guide generation")
	generateCmd.Flags().StringVar(&genProvider, "provider", "", "AI provider: openai, anthropic, or openrouter")
	generateCmd.Flags().StringVar(&genModel, "model", "", "model identifier")
	generateCmd.Flags().IntVar(&genMaxTokens, "max-tokens", 0, "maximum response tokens")
	generateCmd.Flags().Float64Var(&genTemperature, "temperature", -1, "sampling temperature 0.0-1.0")
	generateCmd.Flags().BoolVar(&genPrint, "print", false, "print the generated markdown to stdout")

	_ = generateCmd.MarkFlagRequired("type")
	_ = generateCmd.MarkFlagRequired("title")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	content, err := readContent(cmd, args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("docsmith: no content to generate from")
	}

	gen, err := buildGenerator()
	if err != nil {
		return err
	}

	input := docgen.GenerateInput{
		Content:   content,
		DocType:   genType,
		Title:     genTitle,
		Context:   genContext,
		Provider:  genProvider,
		Model:     genModel,
		MaxTokens: genMaxTokens,
	}
	if genTemperature >= 0 {
		input.Temperature = &genTemperature
	}

	res, err := gen.Generate(cmd.Context(), input)
	if err != nil {
		return fmt.Errorf("docsmith: generation failed (%v)", err)
	}

	green := color.New(color.FgGreen)
	dim := color.New(color.Faint)

	w := cmd.OutOrStdout()
	green.Fprintln(w, "Document generated.") //nolint:errcheck // best-effort terminal output
	fmt.Fprintf(w, "  ID:   %s\n", res.ID)
	fmt.Fprintf(w, "  File: %s\n", res.Filename)
	dim.Fprintf(w, "  Retrieve it later with: docsmith show %s\n", res.ID) //nolint:errcheck // best-effort terminal output

	if genPrint {
		fmt.Fprintf(w, "\n%s\n", res.Markdown)
	}
	return nil
}

// readContent reads the generation input from the file argument, or stdin
// when the argument is omitted or "-".
func readContent(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("docsmith: cannot read stdin (%v)", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("docsmith: cannot read %q (%v)", args[0], err)
	}
	return string(data), nil
}
