// Copyright 2026 The Docsmith Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/mkadrlik/docsmith/internal/mcpserver"
)

// mcpCmd is the parent command for MCP-related subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server commands",
	Long:  "Commands for running docsmith as an MCP server, exposing document generation tools to AI agents.",
}

// mcpServeCmd runs the MCP server over stdio.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Start an MCP server on stdin/stdout, exposing docsmith's tools:
  - list_document_types:      List available document types
  - generate_documentation:   Generate and save a markdown document
  - get_document_template:    Inspect a document type's prompt template
  - transform_text:           Apply a one-off transformation prompt
  - add_document_type:        Register a custom document type
  - list_generated_documents: List previously generated documents
  - get_generated_document:   Retrieve a generated document

The server communicates using the Model Context Protocol (MCP) over stdio
transport, enabling AI agents to generate documentation directly.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		gen, err := buildGenerator()
		if err != nil {
			return err
		}
		return mcpserver.Run(cmd.Context(), Version, gen, &mcp.StdioTransport{})
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
}
