package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mkadrlik/docsmith/internal/docgen"
)

// GenerateInput is the input schema for the generate_documentation MCP tool.
type GenerateInput struct {
	Content     string   `json:"content" jsonschema:"Raw content to transform: meeting notes, chat transcripts, rough notes"`
	DocType     string   `json:"doc_type" jsonschema:"Document type to generate (see list_document_types)"`
	Title       string   `json:"title" jsonschema:"Title for the generated document"`
	Context     string   `json:"context,omitempty" jsonschema:"Additional context to guide generation"`
	Provider    string   `json:"provider,omitempty" jsonschema:"AI provider: openai, anthropic, or openrouter (default: configured provider)"`
	Model       string   `json:"model,omitempty" jsonschema:"Model identifier (default: provider's configured model)"`
	MaxTokens   int      `json:"max_tokens,omitempty" jsonschema:"Maximum response tokens (default: configured limit)"`
	Temperature *float64 `json:"temperature,omitempty" jsonschema:"Sampling temperature 0.0-1.0 (default: configured value)"`
}

// TransformInput is the input schema for the transform_text MCP tool.
type TransformInput struct {
	Text        string   `json:"text" jsonschema:"Text to transform"`
	Prompt      string   `json:"prompt" jsonschema:"Transformation instructions; {content} marks where the text is inserted"`
	Provider    string   `json:"provider,omitempty" jsonschema:"AI provider: openai, anthropic, or openrouter (default: configured provider)"`
	Model       string   `json:"model,omitempty" jsonschema:"Model identifier (default: provider's configured model)"`
	MaxTokens   int      `json:"max_tokens,omitempty" jsonschema:"Maximum response tokens (default: configured limit)"`
	Temperature *float64 `json:"temperature,omitempty" jsonschema:"Sampling temperature 0.0-1.0 (default: configured value)"`
}

// TemplateInput is the input schema for the get_document_template MCP tool.
type TemplateInput struct {
	DocType string `json:"doc_type" jsonschema:"Document type whose prompt template to return"`
}

// AddTypeInput is the input schema for the add_document_type MCP tool.
type AddTypeInput struct {
	Name        string `json:"name" jsonschema:"Name for the new document type"`
	Description string `json:"description" jsonschema:"Short description of what this document type produces"`
	Template    string `json:"template" jsonschema:"Prompt template body; must contain {content}, may use {title} and {context}"`
}

// ListDocumentsInput is the input schema for the list_generated_documents MCP tool.
type ListDocumentsInput struct {
	DocType string `json:"doc_type,omitempty" jsonschema:"Restrict the listing to one document type"`
}

// GetDocumentInput is the input schema for the get_generated_document MCP tool.
type GetDocumentInput struct {
	Identifier string `json:"identifier" jsonschema:"Document id, exact filename, or filename substring"`
}

// ListTypesInput is the (empty) input schema for the list_document_types MCP tool.
type ListTypesInput struct{}

// toolHandler binds the MCP tool surface to the generator.
type toolHandler struct {
	gen *docgen.Generator
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// registerTools adds all docsmith tools to the MCP server.
func registerTools(server *mcp.Server, h *toolHandler) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_document_types",
		Description: "List the available document types, built-in and custom, with their descriptions.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, h.handleListTypes)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_documentation",
		Description: "Generate a markdown document of the given type from raw content (meeting notes, transcripts, rough notes). The document is saved and indexed for later retrieval.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    false,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(true),
		},
	}, h.handleGenerate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_document_template",
		Description: "Return the prompt template used for a document type.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, h.handleTemplate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "transform_text",
		Description: "Apply an arbitrary transformation prompt to text. Nothing is saved; the transformed text is returned directly.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(true),
		},
	}, h.handleTransform)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_document_type",
		Description: "Register a custom document type with its own prompt template. Custom types persist across restarts.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    false,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, h.handleAddType)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_generated_documents",
		Description: "List previously generated documents, newest first, optionally filtered by document type.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, h.handleListDocuments)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_generated_document",
		Description: "Retrieve a previously generated document by id, filename, or filename substring.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, h.handleGetDocument)
}

func (h *toolHandler) handleListTypes(_ context.Context, _ *mcp.CallToolRequest, _ ListTypesInput) (*mcp.CallToolResult, any, error) {
	types := h.gen.Types()

	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Available document types:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "- %s: %s\n", name, types[name].Description)
	}

	return textResult(b.String()), nil, nil
}

func (h *toolHandler) handleGenerate(ctx context.Context, _ *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, any, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, nil, fmt.Errorf("content must not be empty")
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, nil, fmt.Errorf("title must not be empty")
	}

	res, err := h.gen.Generate(ctx, docgen.GenerateInput{
		Content:     input.Content,
		DocType:     input.DocType,
		Title:       input.Title,
		Context:     input.Context,
		Provider:    input.Provider,
		Model:       input.Model,
		MaxTokens:   input.MaxTokens,
		Temperature: input.Temperature,
	})
	if err != nil {
		return nil, nil, err
	}

	text := fmt.Sprintf("Documentation generated successfully.\n\nDocument ID: %s\nSaved as: %s\n\n---\n\n%s",
		res.ID, res.Filename, res.Markdown)
	return textResult(text), nil, nil
}

func (h *toolHandler) handleTemplate(_ context.Context, _ *mcp.CallToolRequest, input TemplateInput) (*mcp.CallToolResult, any, error) {
	body, ok := h.gen.Template(input.DocType)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", docgen.ErrUnknownType, input.DocType)
	}
	return textResult(body), nil, nil
}

func (h *toolHandler) handleTransform(ctx context.Context, _ *mcp.CallToolRequest, input TransformInput) (*mcp.CallToolResult, any, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, nil, fmt.Errorf("text must not be empty")
	}
	if strings.TrimSpace(input.Prompt) == "" {
		return nil, nil, fmt.Errorf("prompt must not be empty")
	}

	out, err := h.gen.TransformText(ctx, docgen.TransformInput{
		Text:        input.Text,
		Prompt:      input.Prompt,
		Provider:    input.Provider,
		Model:       input.Model,
		MaxTokens:   input.MaxTokens,
		Temperature: input.Temperature,
	})
	if err != nil {
		return nil, nil, err
	}
	return textResult(out), nil, nil
}

func (h *toolHandler) handleAddType(_ context.Context, _ *mcp.CallToolRequest, input AddTypeInput) (*mcp.CallToolResult, any, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, nil, fmt.Errorf("name must not be empty")
	}
	if !strings.Contains(input.Template, "{content}") {
		return nil, nil, fmt.Errorf("template must contain a {content} placeholder")
	}

	if err := h.gen.AddType(name, input.Description, input.Template); err != nil {
		return nil, nil, fmt.Errorf("add document type: %w", err)
	}

	return textResult(fmt.Sprintf("Document type %q added.", name)), nil, nil
}

func (h *toolHandler) handleListDocuments(_ context.Context, _ *mcp.CallToolRequest, input ListDocumentsInput) (*mcp.CallToolResult, any, error) {
	docs := h.gen.List(input.DocType)
	if len(docs) == 0 {
		return textResult("No generated documents found."), nil, nil
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("encode document listing: %w", err)
	}
	return textResult(string(data)), nil, nil
}

func (h *toolHandler) handleGetDocument(_ context.Context, _ *mcp.CallToolRequest, input GetDocumentInput) (*mcp.CallToolResult, any, error) {
	got, err := h.gen.Get(input.Identifier)
	if err != nil {
		return nil, nil, err
	}

	doc := got.Document
	text := fmt.Sprintf("Document: %s\nType: %s\nCreated: %s\nFile: %s\n\n---\n\n%s",
		doc.Title, doc.DocType, doc.CreatedAt.Format("2006-01-02 15:04:05 UTC"), doc.Filename, got.Content)
	return textResult(text), nil, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}
