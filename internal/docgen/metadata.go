// Copyright 2026 The Docsmith Authors
// SPDX-License-Identifier: MIT

package docgen

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// MetadataFile is the name of the document index, stored in the output
// directory alongside the generated markdown files.
const MetadataFile = "documents_metadata.json"

// Document is the persisted metadata record for one generated document.
// Records are created once per successful generation and never mutated.
type Document struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	DocType     string    `json:"doc_type"`
	Filename    string    `json:"filename"`
	CreatedAt   time.Time `json:"created_at"`
	Provider    string    `json:"provider"`
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	Context     string    `json:"context"`
}

// metadataStore owns the id → Document mapping. The whole map is loaded at
// construction and serialized in full on every write; writes are serialized
// by a mutex so concurrent generations cannot interleave saves.
type metadataStore struct {
	path   string
	logger *slog.Logger

	mu   sync.Mutex
	docs map[string]Document
}

// newMetadataStore loads the index at path. A missing file is the normal
// first-run case; an unreadable or malformed file is logged and the store
// starts empty.
func newMetadataStore(path string, logger *slog.Logger) *metadataStore {
	s := &metadataStore{
		path:   path,
		logger: logger,
		docs:   make(map[string]Document),
	}

	data, err := os.ReadFile(path) //nolint:gosec // configured output path
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("could not load document metadata", "path", path, "error", err)
		}
		return s
	}

	if err := json.Unmarshal(data, &s.docs); err != nil {
		logger.Warn("could not parse document metadata", "path", path, "error", err)
		s.docs = make(map[string]Document)
	}
	return s
}

// put records a new document and rewrites the whole index file before
// returning. The in-memory map keeps the entry even when the write fails.
func (s *metadataStore) put(doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[doc.ID] = doc

	data, err := json.MarshalIndent(s.docs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644) //nolint:gosec // shared document index
}

// get returns the record for an exact document id.
func (s *metadataStore) get(id string) (Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	return doc, ok
}

// list returns all records, newest first, optionally restricted to one
// document type.
func (s *metadataStore) list(typeFilter string) []Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := make([]Document, 0, len(s.docs))
	for _, doc := range s.docs {
		if typeFilter == "" || doc.DocType == typeFilter {
			docs = append(docs, doc)
		}
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].CreatedAt.After(docs[j].CreatedAt)
	})
	return docs
}

// find resolves an identifier to a record: exact id first, then exact
// filename, then substring match against filenames. Substring matches are
// resolved newest-first so repeated lookups are deterministic.
func (s *metadataStore) find(identifier string) (Document, bool) {
	if identifier == "" {
		return Document{}, false
	}
	if doc, ok := s.get(identifier); ok {
		return doc, true
	}

	docs := s.list("")
	for _, doc := range docs {
		if doc.Filename == identifier {
			return doc, true
		}
	}
	for _, doc := range docs {
		if strings.Contains(doc.Filename, identifier) {
			return doc, true
		}
	}
	return Document{}, false
}

// len reports the number of records.
func (s *metadataStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}
