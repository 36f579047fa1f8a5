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

// defaultOpenAIModel is the model used when no override is provided.
const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIProvider implements Provider using the official OpenAI SDK.
type OpenAIProvider struct {
	client openai.Client
	model  string
}

// Compile-time check that OpenAIProvider satisfies the Provider interface.
var _ Provider = (*OpenAIProvider)(nil)

// NewOpenAIProvider creates a new OpenAI provider. It returns
// ErrMissingAPIKey if no key is available via option or OPENAI_API_KEY.
func NewOpenAIProvider(opts ...Option) (*OpenAIProvider, error) {
	cfg := providerConfig{
		model:      defaultOpenAIModel,
		maxRetries: defaultMaxRetries,
	}
	for _, o := range opts {
		o(&cfg)
	}

	apiKey := cfg.apiKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("openai: %w (set OPENAI_API_KEY)", ErrMissingAPIKey)
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(cfg.maxRetries),
	}
	if cfg.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.baseURL))
	}

	return &OpenAIProvider{
		client: openai.NewClient(clientOpts...),
		model:  cfg.model,
	}, nil
}

// Complete sends a chat completion request to the OpenAI API.
func (p *OpenAIProvider) Complete(ctx context.Context, req Request) (*Response, error) {
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
		return nil, fmt.Errorf("openai: completion failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("openai: no completion choices returned")
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
func (p *OpenAIProvider) Model() string {
	return p.model
}

// chatMessages builds the message list for OpenAI-compatible chat APIs,
// prepending the system instruction when present.
func chatMessages(req Request) []openai.ChatCompletionMessageParamUnion {
	var messages []openai.ChatCompletionMessageParamUnion
	if req.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	}
	return append(messages, openai.UserMessage(req.Prompt))
}
