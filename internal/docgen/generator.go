// Copyright 2026 The Docsmith Authors
// SPDX-License-Identifier: MIT

// Package docgen orchestrates document generation: template lookup, prompt
// construction, provider dispatch, file persistence, and the append-only
// metadata index.
package docgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mkadrlik/docsmith/internal/config"
	"github.com/mkadrlik/docsmith/internal/llm"
	"github.com/mkadrlik/docsmith/internal/metrics"
	"github.com/mkadrlik/docsmith/internal/template"
)

// Sentinel errors surfaced to the transport layer as non-fatal results.
var (
	// ErrUnknownType indicates a doc type with no registered template.
	ErrUnknownType = errors.New("unknown document type")

	// ErrNotFound indicates a generated document that cannot be resolved,
	// including the case where metadata exists but the file is gone.
	ErrNotFound = errors.New("document not found")
)

// defaultContext fills the {context} placeholder when the caller provides
// no additional context.
const defaultContext = "No additional context provided."

// TextGenerator is the provider-dispatch capability the generator depends
// on. *llm.Client satisfies it; tests substitute a stub.
type TextGenerator interface {
	Generate(ctx context.Context, req llm.GenerateRequest) (string, error)
}

// Generator turns raw meeting or chat content into persisted markdown
// documents. It holds no per-request state beyond the metadata store, so a
// single Generator serves concurrent requests.
type Generator struct {
	settings *config.Settings
	registry *template.Registry
	client   TextGenerator
	metrics  *metrics.Recorder
	logger   *slog.Logger

	outputDir string
	store     *metadataStore
}

// New creates a Generator. The output directory is created best-effort and
// the metadata index is loaded in full. The metrics recorder may be nil; a
// nil logger falls back to slog.Default().
func New(settings *config.Settings, registry *template.Registry, client TextGenerator, rec *metrics.Recorder, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(settings.OutputDir, 0o750); err != nil {
		logger.Warn("could not create output directory", "dir", settings.OutputDir, "error", err)
	}

	g := &Generator{
		settings:  settings,
		registry:  registry,
		client:    client,
		metrics:   rec,
		logger:    logger,
		outputDir: settings.OutputDir,
		store:     newMetadataStore(filepath.Join(settings.OutputDir, MetadataFile), logger),
	}

	g.metrics.SetTemplateCount(registry.Count())
	logger.Debug("generator ready",
		"output_dir", g.outputDir, "templates", registry.Count(), "documents", g.store.len())
	return g
}

// GenerateInput carries one generation request. Zero-valued provider
// parameters fall back to the configured defaults.
type GenerateInput struct {
	Content string
	DocType string
	Title   string
	Context string

	Provider    string
	Model       string
	MaxTokens   int
	Temperature *float64
}

// GenerateResult is the outcome of one successful generation.
type GenerateResult struct {
	ID       string
	Filename string
	Markdown string
	Document Document
}

// Generate runs the full pipeline: resolve template, build the prompt,
// dispatch to the provider, write the document file, and record metadata.
// Unknown doc types fail before any provider call.
func (g *Generator) Generate(ctx context.Context, in GenerateInput) (*GenerateResult, error) {
	body, ok := g.registry.Get(in.DocType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, in.DocType)
	}

	prompt := buildPrompt(body, in.Title, in.Content, in.Context)

	// Resolve provider parameters up front so the metadata record reflects
	// what was actually requested.
	provider := strings.ToLower(valueOr(in.Provider, g.settings.DefaultProvider))
	model := valueOr(in.Model, g.settings.DefaultModel)
	maxTokens := in.MaxTokens
	if maxTokens == 0 {
		maxTokens = g.settings.DefaultMaxTokens
	}
	temperature := g.settings.DefaultTemperature
	if in.Temperature != nil {
		temperature = *in.Temperature
	}

	g.logger.Info("generating document", "doc_type", in.DocType, "title", in.Title,
		"provider", provider, "model", model)

	start := time.Now()
	markdown, err := g.client.Generate(ctx, llm.GenerateRequest{
		Prompt:      prompt,
		Provider:    provider,
		Model:       model,
		MaxTokens:   maxTokens,
		Temperature: &temperature,
	})
	if err != nil {
		return nil, err
	}
	g.metrics.RecordGeneration(in.DocType, time.Since(start))

	id := uuid.NewString()
	filename := documentFilename(id, in.DocType, in.Title)
	path := filepath.Join(g.outputDir, filename)

	if err := os.WriteFile(path, []byte(markdown), 0o644); err != nil { //nolint:gosec // generated document
		return nil, fmt.Errorf("write document file: %w", err)
	}

	doc := Document{
		ID:          id,
		Title:       in.Title,
		DocType:     in.DocType,
		Filename:    filename,
		CreatedAt:   time.Now().UTC(),
		Provider:    provider,
		Model:       model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		Context:     in.Context,
	}

	// A failed index write is logged but does not undo the generation: the
	// document file exists and the in-memory record serves this process.
	if err := g.store.put(doc); err != nil {
		g.logger.Error("could not save document metadata", "id", id, "error", err)
	}

	g.logger.Info("generated document saved", "filename", filename)

	return &GenerateResult{
		ID:       id,
		Filename: filename,
		Markdown: markdown,
		Document: doc,
	}, nil
}

// TransformInput carries one ad-hoc text transformation request.
type TransformInput struct {
	Text   string
	Prompt string

	Provider    string
	Model       string
	MaxTokens   int
	Temperature *float64
}

// TransformText applies an arbitrary prompt to arbitrary text through the
// same provider dispatch as Generate, without persisting anything. When the
// prompt contains a {content} placeholder the text is substituted in place;
// otherwise the text is appended after the prompt.
func (g *Generator) TransformText(ctx context.Context, in TransformInput) (string, error) {
	var prompt string
	if strings.Contains(in.Prompt, "{content}") {
		prompt = strings.ReplaceAll(in.Prompt, "{content}", in.Text)
	} else {
		prompt = in.Prompt + "\n\n" + in.Text
	}

	return g.client.Generate(ctx, llm.GenerateRequest{
		Prompt:      prompt,
		Provider:    in.Provider,
		Model:       in.Model,
		MaxTokens:   in.MaxTokens,
		Temperature: in.Temperature,
	})
}

// DocumentContent pairs a metadata record with the document body.
type DocumentContent struct {
	Document Document
	Content  string
}

// List returns generated documents newest first, optionally restricted to
// one document type.
func (g *Generator) List(typeFilter string) []Document {
	return g.store.list(typeFilter)
}

// Get retrieves a generated document by id, exact filename, or filename
// substring (newest match wins). Metadata whose backing file is missing is
// reported as not found.
func (g *Generator) Get(identifier string) (*DocumentContent, error) {
	doc, ok := g.store.find(identifier)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, identifier)
	}

	path := filepath.Join(g.outputDir, doc.Filename)
	data, err := os.ReadFile(path) //nolint:gosec // filename from our own index
	if err != nil {
		g.logger.Warn("document file not found", "id", doc.ID, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %q", ErrNotFound, identifier)
	}

	return &DocumentContent{Document: doc, Content: string(data)}, nil
}

// Types returns the merged view of available document types.
func (g *Generator) Types() map[string]template.Entry {
	return g.registry.All()
}

// Template returns the prompt template body for a document type.
func (g *Generator) Template(name string) (string, bool) {
	return g.registry.Get(name)
}

// AddType registers a custom document type and persists it.
func (g *Generator) AddType(name, description, body string) error {
	if err := g.registry.Add(name, description, body); err != nil {
		return err
	}
	g.metrics.SetTemplateCount(g.registry.Count())
	return nil
}

// buildPrompt substitutes the three named placeholders into a template
// body. Bodies are trusted to carry exactly these slots.
func buildPrompt(body, title, content, context string) string {
	if context == "" {
		context = defaultContext
	}
	return strings.NewReplacer(
		"{title}", title,
		"{content}", content,
		"{context}", context,
	).Replace(body)
}

// documentFilename derives the on-disk name for a generated document.
// Spaces become underscores; path separators are stripped so a title can
// never escape the output directory.
func documentFilename(id, docType, title string) string {
	safe := strings.ReplaceAll(title, " ", "_")
	safe = strings.ReplaceAll(safe, "/", "-")
	safe = strings.ReplaceAll(safe, "\\", "-")
	return fmt.Sprintf("%s_%s_%s.md", id, docType, safe)
}

// valueOr returns v unless it is empty, in which case it returns fallback.
func valueOr(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
