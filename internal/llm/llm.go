// Copyright 2026 The Docsmith Authors
// SPDX-License-Identifier: MIT

// Package llm provides a provider-agnostic LLM client interface, backend
// implementations for the supported providers, and the dispatching client
// used by the document generator.
package llm

import (
	"context"
	"errors"
)

// Sentinel errors for configuration problems. Both are surfaced before any
// network call is attempted.
var (
	// ErrMissingAPIKey indicates the selected provider has no credential.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrUnknownProvider indicates an unrecognized provider name.
	ErrUnknownProvider = errors.New("unknown provider")
)

// Provider abstracts an LLM API behind a single synchronous completion method.
type Provider interface {
	// Complete sends a prompt to the LLM and returns the response.
	// Implementations must respect context cancellation and deadlines.
	Complete(ctx context.Context, req Request) (*Response, error)
}

// Request describes a single completion request.
type Request struct {
	// Prompt is the user message to send.
	Prompt string

	// Model overrides the provider's default model. If empty, the provider
	// uses its configured default.
	Model string

	// MaxTokens limits the response length. If zero, the provider uses its
	// own default.
	MaxTokens int

	// Temperature controls randomness. If nil, the provider uses its default.
	Temperature *float64

	// SystemPrompt sets the system instruction for the completion.
	SystemPrompt string
}

// Response holds the result of a completion call.
type Response struct {
	// Content is the text returned by the model.
	Content string

	// Model is the model that actually served the request (may differ from
	// the requested model if the provider remapped it).
	Model string

	// Usage reports token consumption.
	Usage Usage
}

// Usage tracks input and output token counts for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Option configures a provider constructor. The same options apply to all
// backends; each constructor reads the fields it understands.
type Option func(*providerConfig)

type providerConfig struct {
	apiKey     string
	model      string
	baseURL    string
	maxRetries int
}

// WithAPIKey sets the API key. If not provided, each provider falls back to
// its own environment variable.
func WithAPIKey(key string) Option {
	return func(c *providerConfig) {
		c.apiKey = key
	}
}

// WithModel overrides the provider's default model for all requests.
func WithModel(model string) Option {
	return func(c *providerConfig) {
		c.model = model
	}
}

// WithBaseURL points the provider at a different API endpoint. Used for
// gateways and tests.
func WithBaseURL(url string) Option {
	return func(c *providerConfig) {
		c.baseURL = url
	}
}

// WithMaxRetries sets the SDK-level retry count for transient errors.
// Docsmith itself never retries; this only tunes the underlying transport.
func WithMaxRetries(n int) Option {
	return func(c *providerConfig) {
		c.maxRetries = n
	}
}
