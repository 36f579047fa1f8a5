// Copyright 2026 The Docsmith Authors
// SPDX-License-Identifier: MIT

// Package template manages the prompt templates behind each document type:
// a fixed set of built-ins plus user-added custom types persisted to a JSON
// file in the templates directory.
package template

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// CustomTemplatesFile is the filename for persisted custom document types,
// stored in the templates directory.
const CustomTemplatesFile = "custom_templates.json"

// Entry is one document type: a description shown in listings and the
// prompt template body. Bodies carry the named placeholders {title},
// {content}, and {context}.
type Entry struct {
	Description string `json:"description"`
	Template    string `json:"template"`
}

// Registry holds the built-in templates and the mutable custom set.
// All methods are safe for concurrent use; custom-set writes are serialized
// so concurrent Add calls cannot interleave file writes.
type Registry struct {
	dir     string
	logger  *slog.Logger
	persist bool

	mu     sync.Mutex
	custom map[string]Entry
}

// NewRegistry creates a registry rooted at dir. The directory is created
// best-effort; if it cannot be created the registry still works but custom
// templates will not survive a restart. Any existing custom_templates.json
// is loaded.
func NewRegistry(dir string, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}

	r := &Registry{
		dir:     dir,
		logger:  logger,
		persist: true,
		custom:  make(map[string]Entry),
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		logger.Warn("templates directory not writable, custom templates will not persist",
			"dir", dir, "error", err)
		r.persist = false
	}

	r.loadLocked()
	return r
}

// loadLocked reads custom_templates.json into memory. A missing file is the
// normal first-run case; an unreadable or malformed file is logged and the
// custom set starts empty.
func (r *Registry) loadLocked() {
	data, err := os.ReadFile(r.customPath()) //nolint:gosec // configured templates path
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.logger.Warn("could not load custom templates", "error", err)
		}
		return
	}

	var custom map[string]Entry
	if err := json.Unmarshal(data, &custom); err != nil {
		r.logger.Warn("could not parse custom templates", "error", err)
		return
	}
	r.custom = custom
}

// Reload re-reads the custom template file, discarding in-memory custom
// entries. Used after out-of-band edits to custom_templates.json.
func (r *Registry) Reload() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.custom = make(map[string]Entry)
	r.loadLocked()
}

// All returns the merged view of built-in and custom document types.
// A custom entry with the same name as a built-in wins in this view, since
// it was added later; direct lookup via Get still prefers the built-in.
func (r *Registry) All() map[string]Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make(map[string]Entry, len(builtins)+len(r.custom))
	for name, e := range builtins {
		all[name] = e
	}
	for name, e := range r.custom {
		all[name] = e
	}
	return all
}

// Get returns the template body for a document type. Built-ins are checked
// before custom entries.
func (r *Registry) Get(name string) (string, bool) {
	if e, ok := builtins[name]; ok {
		return e.Template, true
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.custom[name]; ok {
		return e.Template, true
	}
	return "", false
}

// Add registers a custom document type, overwriting any existing custom
// entry of the same name, and persists the full custom set. The in-memory
// registry is updated even when the write fails; the error tells the caller
// the new type will not survive a restart.
func (r *Registry) Add(name, description, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.custom[name] = Entry{Description: description, Template: body}

	if !r.persist {
		r.logger.Warn("custom template not persisted, templates directory unavailable",
			"name", name)
		return nil
	}

	if err := r.saveLocked(); err != nil {
		r.logger.Error("could not save custom templates", "name", name, "error", err)
		return fmt.Errorf("save custom templates: %w", err)
	}

	r.logger.Info("added custom document type", "name", name)
	return nil
}

// Count returns the number of distinct document types in the merged view.
func (r *Registry) Count() int {
	return len(r.All())
}

// saveLocked writes the whole custom set to custom_templates.json.
// Callers must hold r.mu.
func (r *Registry) saveLocked() error {
	data, err := json.MarshalIndent(r.custom, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.customPath(), data, 0o644) //nolint:gosec // shared template data
}

func (r *Registry) customPath() string {
	return filepath.Join(r.dir, CustomTemplatesFile)
}
