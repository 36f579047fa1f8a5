// Copyright 2026 The Docsmith Authors
// SPDX-License-Identifier: MIT

package llm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkadrlik/docsmith/internal/llm"
)

func TestMockProvider_ReplaysScriptThenSticks(t *testing.T) {
	boom := errors.New("upstream unavailable")
	m := llm.NewMockProvider(
		llm.MockResponse{Content: "first"},
		llm.MockResponse{Err: boom},
		llm.MockResponse{Content: "last"},
	)
	ctx := context.Background()

	resp, err := m.Complete(ctx, llm.Request{Prompt: "a"})
	require.NoError(t, err)
	assert.Equal(t, "first", resp.Content)
	assert.Equal(t, "mock", resp.Model)

	resp, err = m.Complete(ctx, llm.Request{Prompt: "b"})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, boom)

	// Past the end of the script the last entry repeats.
	for range 3 {
		resp, err = m.Complete(ctx, llm.Request{Prompt: "c"})
		require.NoError(t, err)
		assert.Equal(t, "last", resp.Content)
	}
}

func TestMockProvider_EmptyScript(t *testing.T) {
	m := llm.NewMockProvider()
	resp, err := m.Complete(context.Background(), llm.Request{Prompt: "anything"})
	require.NoError(t, err)
	assert.Empty(t, resp.Content)
}

func TestMockProvider_RecordsRequests(t *testing.T) {
	m := llm.NewMockProvider(llm.MockResponse{Content: "ok"})
	ctx := context.Background()

	_, err := m.Complete(ctx, llm.Request{Prompt: "generate a runbook", Model: "gpt-4o", SystemPrompt: "write markdown"})
	require.NoError(t, err)
	_, err = m.Complete(ctx, llm.Request{Prompt: "again"})
	require.NoError(t, err)

	calls := m.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "generate a runbook", calls[0].Prompt)
	assert.Equal(t, "gpt-4o", calls[0].Model)
	assert.Equal(t, "write markdown", calls[0].SystemPrompt)
	assert.Equal(t, "again", calls[1].Prompt)
}

func TestMockProvider_CancelledContextNotRecorded(t *testing.T) {
	m := llm.NewMockProvider(llm.MockResponse{Content: "unreached"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := m.Complete(ctx, llm.Request{Prompt: "x"})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, m.Calls())
}

func TestMockProvider_ResetRewindsScript(t *testing.T) {
	m := llm.NewMockProvider(
		llm.MockResponse{Content: "first"},
		llm.MockResponse{Content: "second"},
	)
	ctx := context.Background()

	_, err := m.Complete(ctx, llm.Request{Prompt: "a"})
	require.NoError(t, err)
	_, err = m.Complete(ctx, llm.Request{Prompt: "b"})
	require.NoError(t, err)

	m.Reset()
	assert.Empty(t, m.Calls())

	resp, err := m.Complete(ctx, llm.Request{Prompt: "c"})
	require.NoError(t, err)
	assert.Equal(t, "first", resp.Content)
}

func TestMockProvider_UsageTracksTextLength(t *testing.T) {
	m := llm.NewMockProvider(llm.MockResponse{Content: "a response long enough to count"})

	resp, err := m.Complete(context.Background(), llm.Request{Prompt: "a prompt long enough to count"})
	require.NoError(t, err)
	assert.Positive(t, resp.Usage.InputTokens)
	assert.Positive(t, resp.Usage.OutputTokens)
}
