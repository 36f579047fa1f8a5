// Copyright 2026 The Docsmith Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"sync"
)

// MockResponse is one scripted reply for MockProvider: either Content is
// returned or Err is, never both.
type MockResponse struct {
	Content string
	Err     error
}

// MockProvider is an in-memory Provider for tests. It replays scripted
// responses in order, sticking on the last one once the script runs out,
// and records every request it receives. Seed it into a Client with
// WithProvider to exercise dispatch without touching a real backend.
type MockProvider struct {
	mu     sync.Mutex
	script []MockResponse
	calls  []Request
	next   int
}

var _ Provider = (*MockProvider)(nil)

// NewMockProvider scripts the mock with responses, replayed in order.
// With an empty script every call returns an empty Response.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{script: responses}
}

// Complete records req and returns the next scripted response. A cancelled
// context wins over the script and the call is not recorded.
func (m *MockProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, req)

	if len(m.script) == 0 {
		return &Response{Model: "mock"}, nil
	}

	r := m.script[m.next]
	if m.next < len(m.script)-1 {
		m.next++
	}
	if r.Err != nil {
		return nil, r.Err
	}

	return &Response{
		Content: r.Content,
		Model:   "mock",
		Usage: Usage{
			InputTokens:  estimateTokens(req.Prompt),
			OutputTokens: estimateTokens(r.Content),
		},
	}, nil
}

// Calls returns a copy of every request received so far.
func (m *MockProvider) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Request, len(m.calls))
	copy(out, m.calls)
	return out
}

// Reset clears recorded calls and rewinds the script.
func (m *MockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = nil
	m.next = 0
}
