// Copyright 2026 The Docsmith Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mkadrlik/docsmith/internal/docgen"
)

// New creates a new MCP server with docsmith's tools registered. The
// generator carries all state; the server itself is stateless.
func New(version string, gen *docgen.Generator) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "docsmith",
		Title:   "Docsmith — Documentation Generator",
		Version: version,
	}, nil)

	registerTools(server, &toolHandler{gen: gen})
	return server
}

// Run creates an MCP server and runs it on the given transport.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version string, gen *docgen.Generator, transport mcp.Transport) error {
	server := New(version, gen)
	return server.Run(ctx, transport)
}
