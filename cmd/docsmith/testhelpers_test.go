package main

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mkadrlik/docsmith/internal/config"
	"github.com/mkadrlik/docsmith/internal/docgen"
	"github.com/mkadrlik/docsmith/internal/llm"
	"github.com/mkadrlik/docsmith/internal/metrics"
)

// stubClient is a canned TextGenerator so command tests stay off the network.
type stubClient struct {
	response string
	err      error
	requests []llm.GenerateRequest
}

func (s *stubClient) Generate(_ context.Context, req llm.GenerateRequest) (string, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

// setupTestEnv points all state directories at a temp dir and swaps the
// provider client for a stub.
func setupTestEnv(t *testing.T, stub *stubClient) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("DOCSMITH_OUTPUT_DIR", filepath.Join(dir, "output"))
	t.Setenv("DOCSMITH_TEMPLATES_DIR", filepath.Join(dir, "templates"))

	orig := newClient
	newClient = func(_ *config.Settings, _ *metrics.Recorder, _ *slog.Logger) docgen.TextGenerator {
		return stub
	}
	t.Cleanup(func() { newClient = orig })

	resetFlags()
}

// resetFlags clears flag values and Changed state that would otherwise leak
// between Execute calls in the same process.
func resetFlags() {
	genType, genTitle, genContext, genProvider, genModel = "", "", "", "", ""
	genMaxTokens, genTemperature, genPrint = 0, -1, false
	transformPrompt, transformProvider, transformModel = "", "", ""
	transformMaxTokens, transformTemperature = 0, -1
	listType = ""
	addTypeDescription, addTypeTemplate, addTypeTemplateFile = "", "", ""

	for _, c := range []*cobra.Command{generateCmd, transformCmd, listCmd, typesAddCmd} {
		c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}
}

// execute runs the root command with the given stdin and args, capturing
// combined output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}
