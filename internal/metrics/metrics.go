// Copyright 2026 The Docsmith Authors
// SPDX-License-Identifier: MIT

// Package metrics provides an in-process recorder for request outcomes and
// generation counts. The recorder is constructed once and passed into the
// provider client and generator; there is no global registry.
package metrics

import (
	"log/slog"
	"sync"
	"time"
)

// RequestKey identifies a provider call outcome series.
type RequestKey struct {
	Provider string
	Model    string
	Success  bool
}

// Recorder accumulates counters for provider requests, generated documents,
// and estimated token usage. All methods are safe for concurrent use and
// are no-ops on a nil receiver, so wiring stays optional.
type Recorder struct {
	mu     sync.Mutex
	logger *slog.Logger

	requests      map[RequestKey]int64
	documents     map[string]int64
	tokensTotal   int64
	templateCount int64
}

// New creates a Recorder. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{
		logger:    logger,
		requests:  make(map[RequestKey]int64),
		documents: make(map[string]int64),
	}
}

// RecordRequest counts one provider call outcome, tagged by provider and model.
func (r *Recorder) RecordRequest(provider, model string, success bool) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.requests[RequestKey{Provider: provider, Model: model, Success: success}]++
	r.mu.Unlock()
	r.logger.Debug("provider request recorded",
		"provider", provider, "model", model, "success", success)
}

// RecordGeneration counts one completed document generation.
func (r *Recorder) RecordGeneration(docType string, duration time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.documents[docType]++
	r.mu.Unlock()
	r.logger.Debug("document generation recorded",
		"doc_type", docType, "duration", duration)
}

// ObserveTokens adds an approximate token count for one response. The count
// is observability-only and has no bearing on request handling.
func (r *Recorder) ObserveTokens(provider, model string, tokens int) {
	if r == nil || tokens <= 0 {
		return
	}
	r.mu.Lock()
	r.tokensTotal += int64(tokens)
	r.mu.Unlock()
	r.logger.Debug("tokens observed",
		"provider", provider, "model", model, "tokens", tokens)
}

// SetTemplateCount records the number of available document types.
func (r *Recorder) SetTemplateCount(n int) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.templateCount = int64(n)
	r.mu.Unlock()
}

// Snapshot is a point-in-time copy of all counters.
type Snapshot struct {
	Requests      map[RequestKey]int64
	Documents     map[string]int64
	TokensTotal   int64
	TemplateCount int64
}

// Snapshot returns a copy of the current counter state.
func (r *Recorder) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{
		Requests:      make(map[RequestKey]int64, len(r.requests)),
		Documents:     make(map[string]int64, len(r.documents)),
		TokensTotal:   r.tokensTotal,
		TemplateCount: r.templateCount,
	}
	for k, v := range r.requests {
		snap.Requests[k] = v
	}
	for k, v := range r.documents {
		snap.Documents[k] = v
	}
	return snap
}
