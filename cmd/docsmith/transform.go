package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkadrlik/docsmith/internal/docgen"
)

// Transform-specific flag values.
var (
	transformPrompt      string
	transformProvider    string
	transformModel       string
	transformMaxTokens   int
	transformTemperature float64
)

// transformCmd applies an ad-hoc prompt to text without saving anything.
var transformCmd = &cobra.Command{
	Use:   "transform [file]",
	Short: "Apply a transformation prompt to text",
	Long: `Apply an arbitrary transformation prompt to text read from the given
file, or from stdin when the argument is omitted or is "-". A {content}
placeholder in the prompt marks where the text is inserted; without one the
text is appended after the prompt. The result is printed to stdout and
nothing is saved.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTransform,
}

func init() {
	transformCmd.Flags().StringVarP(&transformPrompt, "prompt", "p", "", "transformation instructions")
	transformCmd.Flags().StringVar(&transformProvider, "provider", "", "AI provider: openai, anthropic, or openrouter")
	transformCmd.Flags().StringVar(&transformModel, "model", "", "model identifier")
	transformCmd.Flags().IntVar(&transformMaxTokens, "max-tokens", 0, "maximum response tokens")
	transformCmd.Flags().Float64Var(&transformTemperature, "temperature", -1, "sampling temperature 0.0-1.0")

	_ = transformCmd.MarkFlagRequired("prompt")
}

func runTransform(cmd *cobra.Command, args []string) error {
	text, err := readContent(cmd, args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("docsmith: no text to transform")
	}

	gen, err := buildGenerator()
	if err != nil {
		return err
	}

	input := docgen.TransformInput{
		Text:      text,
		Prompt:    transformPrompt,
		Provider:  transformProvider,
		Model:     transformModel,
		MaxTokens: transformMaxTokens,
	}
	if transformTemperature >= 0 {
		input.Temperature = &transformTemperature
	}

	out, err := gen.TransformText(cmd.Context(), input)
	if err != nil {
		return fmt.Errorf("docsmith: transformation failed (%v)", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
