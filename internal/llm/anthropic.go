// Copyright 2026 The Docsmith Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	// defaultAnthropicModel is the model used when no override is provided.
	defaultAnthropicModel = "claude-3-sonnet-20240229"

	// defaultAnthropicMaxTokens is the default maximum output tokens per request.
	defaultAnthropicMaxTokens = 4096

	// defaultMaxRetries is the number of automatic retries on transient errors
	// (429 rate-limit, 5xx server errors). The SDK handles exponential backoff.
	defaultMaxRetries = 2
)

// anthropicModelRemap substitutes Anthropic-native models when a request
// configured for another provider's model is routed here. Callers that pass
// an Anthropic model name are unaffected.
var anthropicModelRemap = map[string]string{
	"gpt-4o-mini": "claude-3-haiku-20240307",
	"gpt-4":       "claude-3-sonnet-20240229",
}

// AnthropicProvider implements Provider using the official Anthropic SDK.
type AnthropicProvider struct {
	client anthropic.Client
	model  string
}

// Compile-time check that AnthropicProvider satisfies the Provider interface.
var _ Provider = (*AnthropicProvider)(nil)

// NewAnthropicProvider creates a new Anthropic provider. It returns
// ErrMissingAPIKey if no key is available via option or ANTHROPIC_API_KEY.
func NewAnthropicProvider(opts ...Option) (*AnthropicProvider, error) {
	cfg := providerConfig{
		model:      defaultAnthropicModel,
		maxRetries: defaultMaxRetries,
	}
	for _, o := range opts {
		o(&cfg)
	}

	apiKey := cfg.apiKey
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic: %w (set ANTHROPIC_API_KEY)", ErrMissingAPIKey)
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(cfg.maxRetries),
	}
	if cfg.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.baseURL))
	}

	return &AnthropicProvider{
		client: anthropic.NewClient(clientOpts...),
		model:  cfg.model,
	}, nil
}

// Complete sends a completion request to the Anthropic Messages API.
func (p *AnthropicProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	model := p.model
	if req.Model != "" {
		model = req.Model
	}
	if native, ok := anthropicModelRemap[model]; ok {
		model = native
	}

	maxTokens := int64(defaultAnthropicMaxTokens)
	if req.MaxTokens > 0 {
		maxTokens = int64(req.MaxTokens)
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}

	if req.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: req.SystemPrompt},
		}
	}

	if req.Temperature != nil {
		params.Temperature = anthropic.Float(*req.Temperature)
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic: completion failed: %w", err)
	}

	// Extract text from content blocks.
	var content string
	for _, block := range msg.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			content += variant.Text
		}
	}

	return &Response{
		Content: content,
		Model:   string(msg.Model),
		Usage: Usage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
		},
	}, nil
}

// Model returns the default model configured for this provider.
func (p *AnthropicProvider) Model() string {
	return p.model
}
