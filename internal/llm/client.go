// Copyright 2026 The Docsmith Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/mkadrlik/docsmith/internal/config"
	"github.com/mkadrlik/docsmith/internal/metrics"
)

// systemPrompt is prepended to every request so models produce markdown
// suitable for direct persistence.
const systemPrompt = "You are an expert technical writer who creates clear, comprehensive documentation. Always respond with well-structured markdown."

// GenerateRequest is one text-generation call as seen by callers of Client.
// Zero-valued fields fall back to the configured defaults.
type GenerateRequest struct {
	Prompt      string
	Provider    string
	Model       string
	MaxTokens   int
	Temperature *float64
}

// Client dispatches generation requests to the configured provider backends.
// Backends are constructed lazily on first use and cached for the life of
// the client; construction fails fast when the credential is absent.
type Client struct {
	settings *config.Settings
	metrics  *metrics.Recorder
	logger   *slog.Logger

	mu        sync.Mutex
	providers map[string]Provider
	extraOpts map[string][]Option
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithProviderOptions appends constructor options for one named backend.
// Mainly used to point a backend at a test server or gateway.
func WithProviderOptions(name string, opts ...Option) ClientOption {
	return func(c *Client) {
		name = strings.ToLower(name)
		c.extraOpts[name] = append(c.extraOpts[name], opts...)
	}
}

// WithProvider seeds the backend cache with a ready-made provider under
// name, bypassing lazy construction and credential checks. Tests inject a
// MockProvider this way to exercise dispatch without a network.
func WithProvider(name string, p Provider) ClientOption {
	return func(c *Client) {
		c.providers[strings.ToLower(name)] = p
	}
}

// NewClient creates a dispatching client. The metrics recorder may be nil;
// a nil logger falls back to slog.Default().
func NewClient(settings *config.Settings, rec *metrics.Recorder, logger *slog.Logger, opts ...ClientOption) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		settings:  settings,
		metrics:   rec,
		logger:    logger,
		providers: make(map[string]Provider),
		extraOpts: make(map[string][]Option),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Generate resolves the request against configured defaults, dispatches it
// to the selected provider, and returns the trimmed response text.
//
// Failures are logged and counted, then returned to the caller unchanged:
// no retry, no fallback provider.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	name := req.Provider
	if name == "" {
		name = c.settings.DefaultProvider
	}
	name = strings.ToLower(name)

	model := req.Model
	if model == "" {
		model = c.settings.DefaultModel
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.settings.DefaultMaxTokens
	}
	temperature := req.Temperature
	if temperature == nil {
		t := c.settings.DefaultTemperature
		temperature = &t
	}

	provider, err := c.provider(name)
	if err != nil {
		return "", err
	}

	resp, err := provider.Complete(ctx, Request{
		Prompt:       req.Prompt,
		Model:        model,
		MaxTokens:    maxTokens,
		Temperature:  temperature,
		SystemPrompt: systemPrompt,
	})
	c.metrics.RecordRequest(name, model, err == nil)
	if err != nil {
		c.logger.Error("generation request failed",
			"provider", name, "model", model, "error", err)
		return "", err
	}

	text := strings.TrimSpace(resp.Content)
	c.metrics.ObserveTokens(name, model, estimateTokens(text))
	return text, nil
}

// provider returns the cached backend for name, constructing it on first
// use. Construction errors are not cached so a fixed credential takes
// effect on the next call.
func (c *Client) provider(name string) (Provider, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.providers[name]; ok {
		return p, nil
	}

	var (
		p   Provider
		err error
	)
	switch name {
	case "openai":
		opts := append([]Option{WithAPIKey(c.settings.OpenAIAPIKey)}, c.extraOpts[name]...)
		p, err = NewOpenAIProvider(opts...)
	case "anthropic":
		opts := append([]Option{WithAPIKey(c.settings.AnthropicAPIKey)}, c.extraOpts[name]...)
		p, err = NewAnthropicProvider(opts...)
	case "openrouter":
		opts := append([]Option{WithAPIKey(c.settings.OpenRouterAPIKey)}, c.extraOpts[name]...)
		p, err = NewOpenRouterProvider(opts...)
	default:
		return nil, fmt.Errorf("%w: %q (supported: openai, anthropic, openrouter)", ErrUnknownProvider, name)
	}
	if err != nil {
		return nil, err
	}

	c.providers[name] = p
	return p, nil
}

// estimateTokens approximates token usage from text length (1 token ≈ 4
// characters). Observability only; never used for truncation.
func estimateTokens(text string) int {
	return len(text) / 4
}
