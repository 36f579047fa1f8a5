// Copyright 2026 The Docsmith Authors
// SPDX-License-Identifier: MIT

package docgen_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkadrlik/docsmith/internal/config"
	"github.com/mkadrlik/docsmith/internal/docgen"
	"github.com/mkadrlik/docsmith/internal/llm"
	"github.com/mkadrlik/docsmith/internal/log"
	"github.com/mkadrlik/docsmith/internal/template"
)

// stubGenerator records the requests it receives and returns a canned
// response or error.
type stubGenerator struct {
	response string
	err      error
	requests []llm.GenerateRequest
}

func (s *stubGenerator) Generate(_ context.Context, req llm.GenerateRequest) (string, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func newTestGenerator(t *testing.T, stub *stubGenerator) (*docgen.Generator, *config.Settings) {
	t.Helper()

	dir := t.TempDir()
	settings := &config.Settings{
		DefaultProvider:    "openai",
		DefaultModel:       "gpt-4o-mini",
		DefaultMaxTokens:   4000,
		DefaultTemperature: 0.3,
		OutputDir:          filepath.Join(dir, "output"),
		TemplatesDir:       filepath.Join(dir, "templates"),
	}
	logger := log.New(false, true)
	registry := template.NewRegistry(settings.TemplatesDir, logger)

	return docgen.New(settings, registry, stub, nil, logger), settings
}

func TestGenerateWritesFileAndMetadata(t *testing.T) {
	stub := &stubGenerator{response: "# SOP\n\nGenerated body."}
	gen, settings := newTestGenerator(t, stub)

	res, err := gen.Generate(context.Background(), docgen.GenerateInput{
		Content: "deploy notes",
		DocType: "sop",
		Title:   "Release Process",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.ID)

	// Markdown returned and the file on disk are the same bytes.
	assert.Equal(t, stub.response, res.Markdown)
	data, err := os.ReadFile(filepath.Join(settings.OutputDir, res.Filename))
	require.NoError(t, err)
	assert.Equal(t, stub.response, string(data))

	// Filename carries the id, doc type, and underscored title.
	assert.Equal(t, res.ID+"_sop_Release_Process.md", res.Filename)

	// Metadata record reflects the resolved request parameters.
	doc := res.Document
	assert.Equal(t, "sop", doc.DocType)
	assert.Equal(t, "Release Process", doc.Title)
	assert.Equal(t, "openai", doc.Provider)
	assert.Equal(t, "gpt-4o-mini", doc.Model)
	assert.Equal(t, 4000, doc.MaxTokens)
	assert.InDelta(t, 0.3, doc.Temperature, 0.0001)
	assert.WithinDuration(t, time.Now().UTC(), doc.CreatedAt, 5*time.Second)

	// The index file exists alongside the document.
	_, err = os.Stat(filepath.Join(settings.OutputDir, docgen.MetadataFile))
	require.NoError(t, err)
}

func TestGeneratePromptSubstitution(t *testing.T) {
	stub := &stubGenerator{response: "ok"}
	gen, _ := newTestGenerator(t, stub)

	_, err := gen.Generate(context.Background(), docgen.GenerateInput{
		Content: "CONTENT-MARKER",
		DocType: "runbook",
		Title:   "TITLE-MARKER",
		Context: "CONTEXT-MARKER",
	})
	require.NoError(t, err)
	require.Len(t, stub.requests, 1)

	prompt := stub.requests[0].Prompt
	assert.Contains(t, prompt, "CONTENT-MARKER")
	assert.Contains(t, prompt, "TITLE-MARKER")
	assert.Contains(t, prompt, "CONTEXT-MARKER")
	assert.NotContains(t, prompt, "{content}")
	assert.NotContains(t, prompt, "{title}")
	assert.NotContains(t, prompt, "{context}")
}

func TestGenerateDefaultContext(t *testing.T) {
	stub := &stubGenerator{response: "ok"}
	gen, _ := newTestGenerator(t, stub)

	_, err := gen.Generate(context.Background(), docgen.GenerateInput{
		Content: "body",
		DocType: "sop",
		Title:   "No Context",
	})
	require.NoError(t, err)
	require.Len(t, stub.requests, 1)
	assert.Contains(t, stub.requests[0].Prompt, "No additional context provided.")
}

func TestGenerateUnknownTypeSkipsProvider(t *testing.T) {
	stub := &stubGenerator{response: "should not be used"}
	gen, _ := newTestGenerator(t, stub)

	_, err := gen.Generate(context.Background(), docgen.GenerateInput{
		Content: "body",
		DocType: "no_such_type",
		Title:   "X",
	})
	require.ErrorIs(t, err, docgen.ErrUnknownType)
	assert.Empty(t, stub.requests, "provider must not be called for an unknown type")
}

func TestGenerateProviderErrorPropagates(t *testing.T) {
	wantErr := errors.New("provider down")
	stub := &stubGenerator{err: wantErr}
	gen, settings := newTestGenerator(t, stub)

	_, err := gen.Generate(context.Background(), docgen.GenerateInput{
		Content: "body",
		DocType: "sop",
		Title:   "X",
	})
	require.ErrorIs(t, err, wantErr)

	// No document file gets written on failure.
	entries, err := os.ReadDir(settings.OutputDir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotEqual(t, ".md", filepath.Ext(e.Name()))
	}
}

func TestGenerateParameterOverrides(t *testing.T) {
	stub := &stubGenerator{response: "ok"}
	gen, _ := newTestGenerator(t, stub)

	temp := 0.9
	res, err := gen.Generate(context.Background(), docgen.GenerateInput{
		Content:     "body",
		DocType:     "sop",
		Title:       "Overrides",
		Provider:    "Anthropic",
		Model:       "claude-3-sonnet-20240229",
		MaxTokens:   512,
		Temperature: &temp,
	})
	require.NoError(t, err)

	require.Len(t, stub.requests, 1)
	req := stub.requests[0]
	assert.Equal(t, "anthropic", req.Provider)
	assert.Equal(t, "claude-3-sonnet-20240229", req.Model)
	assert.Equal(t, 512, req.MaxTokens)
	require.NotNil(t, req.Temperature)
	assert.InDelta(t, 0.9, *req.Temperature, 0.0001)

	assert.Equal(t, "anthropic", res.Document.Provider)
	assert.InDelta(t, 0.9, res.Document.Temperature, 0.0001)
}

func TestListNewestFirstAndTypeFilter(t *testing.T) {
	stub := &stubGenerator{response: "doc"}
	gen, _ := newTestGenerator(t, stub)

	for i, dt := range []string{"sop", "runbook", "sop"} {
		_, err := gen.Generate(context.Background(), docgen.GenerateInput{
			Content: "body",
			DocType: dt,
			Title:   strings.Repeat("x", i+1),
		})
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	all := gen.List("")
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].CreatedAt.After(all[i-1].CreatedAt), "listing must be newest first")
	}

	sops := gen.List("sop")
	require.Len(t, sops, 2)
	for _, d := range sops {
		assert.Equal(t, "sop", d.DocType)
	}

	assert.Empty(t, gen.List("meeting_summary"))
}

func TestGetByIDFilenameAndSubstring(t *testing.T) {
	stub := &stubGenerator{response: "retrievable content"}
	gen, _ := newTestGenerator(t, stub)

	res, err := gen.Generate(context.Background(), docgen.GenerateInput{
		Content: "body",
		DocType: "sop",
		Title:   "Findable Doc",
	})
	require.NoError(t, err)

	byID, err := gen.Get(res.ID)
	require.NoError(t, err)
	assert.Equal(t, "retrievable content", byID.Content)
	assert.Equal(t, res.ID, byID.Document.ID)

	byName, err := gen.Get(res.Filename)
	require.NoError(t, err)
	assert.Equal(t, res.ID, byName.Document.ID)

	bySub, err := gen.Get("Findable")
	require.NoError(t, err)
	assert.Equal(t, res.ID, bySub.Document.ID)
}

func TestGetSubstringPrefersNewest(t *testing.T) {
	stub := &stubGenerator{response: "ok"}
	gen, _ := newTestGenerator(t, stub)

	_, err := gen.Generate(context.Background(), docgen.GenerateInput{
		Content: "body", DocType: "sop", Title: "Weekly Report One",
	})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)

	second, err := gen.Generate(context.Background(), docgen.GenerateInput{
		Content: "body", DocType: "sop", Title: "Weekly Report Two",
	})
	require.NoError(t, err)

	got, err := gen.Get("Weekly_Report")
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.Document.ID)
}

func TestGetNotFound(t *testing.T) {
	stub := &stubGenerator{response: "ok"}
	gen, _ := newTestGenerator(t, stub)

	_, err := gen.Get("nonexistent")
	require.ErrorIs(t, err, docgen.ErrNotFound)
}

func TestGetMissingFileReportsNotFound(t *testing.T) {
	stub := &stubGenerator{response: "ok"}
	gen, settings := newTestGenerator(t, stub)

	res, err := gen.Generate(context.Background(), docgen.GenerateInput{
		Content: "body",
		DocType: "sop",
		Title:   "Doomed",
	})
	require.NoError(t, err)

	require.NoError(t, os.Remove(filepath.Join(settings.OutputDir, res.Filename)))

	_, err = gen.Get(res.ID)
	require.ErrorIs(t, err, docgen.ErrNotFound)
}

func TestMetadataSurvivesRestart(t *testing.T) {
	stub := &stubGenerator{response: "persisted"}
	gen, settings := newTestGenerator(t, stub)

	res, err := gen.Generate(context.Background(), docgen.GenerateInput{
		Content: "body",
		DocType: "sop",
		Title:   "Durable",
	})
	require.NoError(t, err)

	logger := log.New(false, true)
	registry := template.NewRegistry(settings.TemplatesDir, logger)
	reloaded := docgen.New(settings, registry, stub, nil, logger)

	got, err := reloaded.Get(res.ID)
	require.NoError(t, err)
	assert.Equal(t, "persisted", got.Content)
	assert.Equal(t, "Durable", got.Document.Title)
}

func TestTransformTextPlaceholder(t *testing.T) {
	stub := &stubGenerator{response: "transformed"}
	gen, _ := newTestGenerator(t, stub)

	out, err := gen.TransformText(context.Background(), docgen.TransformInput{
		Text:   "RAW",
		Prompt: "Rewrite this: {content} carefully.",
	})
	require.NoError(t, err)
	assert.Equal(t, "transformed", out)

	require.Len(t, stub.requests, 1)
	assert.Equal(t, "Rewrite this: RAW carefully.", stub.requests[0].Prompt)
}

func TestTransformTextAppendsWithoutPlaceholder(t *testing.T) {
	stub := &stubGenerator{response: "ok"}
	gen, _ := newTestGenerator(t, stub)

	_, err := gen.TransformText(context.Background(), docgen.TransformInput{
		Text:   "RAW",
		Prompt: "Summarize the following.",
	})
	require.NoError(t, err)

	require.Len(t, stub.requests, 1)
	assert.Equal(t, "Summarize the following.\n\nRAW", stub.requests[0].Prompt)
}

func TestTransformTextNotPersisted(t *testing.T) {
	stub := &stubGenerator{response: "ephemeral"}
	gen, _ := newTestGenerator(t, stub)

	_, err := gen.TransformText(context.Background(), docgen.TransformInput{
		Text:   "RAW",
		Prompt: "Do the thing.",
	})
	require.NoError(t, err)
	assert.Empty(t, gen.List(""))
}

func TestAddTypeAvailableForGeneration(t *testing.T) {
	stub := &stubGenerator{response: "custom output"}
	gen, _ := newTestGenerator(t, stub)

	err := gen.AddType("postmortem", "Incident postmortems",
		"Write a postmortem titled {title} from:\n{content}\nContext: {context}")
	require.NoError(t, err)

	body, ok := gen.Template("postmortem")
	require.True(t, ok)
	assert.Contains(t, body, "{content}")

	types := gen.Types()
	require.Contains(t, types, "postmortem")
	assert.Equal(t, "Incident postmortems", types["postmortem"].Description)

	_, err = gen.Generate(context.Background(), docgen.GenerateInput{
		Content: "it broke",
		DocType: "postmortem",
		Title:   "Outage",
	})
	require.NoError(t, err)
}

func TestFilenameSanitizesSeparators(t *testing.T) {
	stub := &stubGenerator{response: "ok"}
	gen, settings := newTestGenerator(t, stub)

	res, err := gen.Generate(context.Background(), docgen.GenerateInput{
		Content: "body",
		DocType: "sop",
		Title:   "a/b c",
	})
	require.NoError(t, err)

	assert.NotContains(t, res.Filename, "/")
	assert.Contains(t, res.Filename, "a-b_c")

	_, err = os.Stat(filepath.Join(settings.OutputDir, res.Filename))
	require.NoError(t, err)
}
