// Copyright 2026 The Docsmith Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/mkadrlik/docsmith/internal/config"
	"github.com/mkadrlik/docsmith/internal/docgen"
	"github.com/mkadrlik/docsmith/internal/llm"
	"github.com/mkadrlik/docsmith/internal/metrics"
	"github.com/mkadrlik/docsmith/internal/template"
)

// newClient builds the provider dispatch client. Tests replace this to keep
// command tests off the network.
var newClient = func(settings *config.Settings, rec *metrics.Recorder, logger *slog.Logger) docgen.TextGenerator {
	return llm.NewClient(settings, rec, logger)
}

// buildGenerator wires configuration, templates, metrics, and the provider
// client into a ready Generator.
func buildGenerator() (*docgen.Generator, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("docsmith: cannot load configuration (%v)", err)
	}

	logger := slog.Default()
	rec := metrics.New(logger)
	registry := template.NewRegistry(settings.TemplatesDir, logger)
	client := newClient(settings, rec, logger)

	return docgen.New(settings, registry, client, rec, logger), nil
}
