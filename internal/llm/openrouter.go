// Copyright 2026 The Docsmith Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const (
	// openRouterBaseURL is the OpenAI-compatible OpenRouter endpoint.
	openRouterBaseURL = "https://openrouter.ai/api/v1"

	// defaultOpenRouterModel is used when no override is provided. OpenRouter
	// model names are upstream-prefixed, e.g. anthropic/claude-3-haiku or
	// meta-llama/llama-3.1-8b-instruct.
	defaultOpenRouterModel = "openai/gpt-4o-mini"

	// OpenRouter asks API consumers to identify themselves on every request.
	openRouterReferer = "https://github.com/mkadrlik/docsmith"
	openRouterTitle   = "Docsmith Documentation Generator"
)

// OpenRouterProvider implements Provider against OpenRouter's
// OpenAI-compatible gateway, which fans out to many third-party models.
type OpenRouterProvider struct {
	client openai.Client
	model  string
}

// Compile-time check that OpenRouterProvider satisfies the Provider interface.
var _ Provider = (*OpenRouterProvider)(nil)

// NewOpenRouterProvider creates a new OpenRouter provider. It returns
// ErrMissingAPIKey if no key is available via option or OPENROUTER_API_KEY.
func NewOpenRouterProvider(opts ...Option) (*OpenRouterProvider, error) {
	cfg := providerConfig{
		model:      defaultOpenRouterModel,
		baseURL:    openRouterBaseURL,
		maxRetries: defaultMaxRetries,
	}
	for _, o := range opts {
		o(&cfg)
	}

	apiKey := cfg.apiKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENROUTER_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("openrouter: %w (set OPENROUTER_API_KEY)", ErrMissingAPIKey)
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(cfg.baseURL),
		option.WithMaxRetries(cfg.maxRetries),
		option.WithHeader("HTTP-Referer", openRouterReferer),
		option.WithHeader("X-Title", openRouterTitle),
	}

	return &OpenRouterProvider{
		client: openai.NewClient(clientOpts...),
		model:  cfg.model,
	}, nil
}

// Complete sends a chat completion request through the OpenRouter gateway.
func (p *OpenRouterProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	model := p.model
	if req.Model != "" {
		model = req.Model
	}

	params := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(model),
		Messages: chatMessages(req),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openrouter: completion failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("openrouter: no completion choices returned")
	}

	return &Response{
		Content: completion.Choices[0].Message.Content,
		Model:   completion.Model,
		Usage: Usage{
			InputTokens:  int(completion.Usage.PromptTokens),
			OutputTokens: int(completion.Usage.CompletionTokens),
		},
	}, nil
}

// Model returns the default model configured for this provider.
func (p *OpenRouterProvider) Model() string {
	return p.model
}
