package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docstrata/strata-mcp/internal/operations"
)

// DocumentResourceHandler serves read-only document resources under the
// doc:// scheme. Every read resolves against the data directory at request
// time, so the resource view always reflects the directory's current
// contents.
type DocumentResourceHandler struct {
	ops *operations.Context
}

// NewDocumentResourceHandler creates a new document resource handler.
func NewDocumentResourceHandler(ops *operations.Context) *DocumentResourceHandler {
	return &DocumentResourceHandler{ops: ops}
}

// ListResources returns a resource entry per PDF plus the catalog itself.
func (h *DocumentResourceHandler) ListResources(ctx context.Context) ([]mcp.Resource, error) {
	names, err := h.ops.ListPDFs()
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	resources := []mcp.Resource{
		{
			URI:         "doc://documents",
			Name:        "documents",
			Description: "Catalog of PDF documents in the data directory",
			MIMEType:    "application/json",
		},
	}
	for _, name := range names {
		resources = append(resources, mcp.Resource{
			URI:         fmt.Sprintf("doc://%s", name),
			Name:        fmt.Sprintf("%s (Metadata)", name),
			Description: fmt.Sprintf("Document metadata for %s", name),
			MIMEType:    "application/json",
		})
		resources = append(resources, mcp.Resource{
			URI:         fmt.Sprintf("doc://%s/outline", name),
			Name:        fmt.Sprintf("%s (Outline)", name),
			Description: fmt.Sprintf("Reconstructed section hierarchy for %s", name),
			MIMEType:    "application/json",
		})
	}

	return resources, nil
}

// ReadResource reads a specific resource by URI.
func (h *DocumentResourceHandler) ReadResource(ctx context.Context, uri string) (*mcp.ReadResourceResult, error) {
	// Parse URI: doc://documents, doc://filename, or doc://filename/outline
	if !strings.HasPrefix(uri, "doc://") {
		return nil, fmt.Errorf("invalid URI scheme, expected doc://")
	}

	path := strings.TrimPrefix(uri, "doc://")
	if path == "" {
		return nil, fmt.Errorf("invalid URI, missing document name")
	}

	var content string
	var err error

	switch {
	case path == "documents":
		content, err = h.documentCatalog()
	case strings.HasSuffix(path, "/outline"):
		content, err = h.documentOutline(strings.TrimSuffix(path, "/outline"))
	case strings.Contains(path, "/"):
		return nil, fmt.Errorf("unknown resource: %s", path)
	default:
		content, err = h.documentMetadata(path)
	}

	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     content,
			},
		},
	}, nil
}

func (h *DocumentResourceHandler) documentCatalog() (string, error) {
	files, err := h.ops.ListFiles()
	if err != nil {
		return "", fmt.Errorf("failed to list documents: %w", err)
	}

	var pdfs []operations.FileInfo
	for _, file := range files {
		if file.Extension == ".pdf" {
			pdfs = append(pdfs, file)
		}
	}

	catalog := map[string]any{
		"directory":      h.ops.DataDir,
		"document_count": len(pdfs),
		"documents":      pdfs,
	}

	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal catalog: %w", err)
	}

	return string(data), nil
}

func (h *DocumentResourceHandler) documentMetadata(filename string) (string, error) {
	resolved, err := h.ops.ResolveExisting(filename)
	if err != nil {
		return "", fmt.Errorf("document not found: %s", filename)
	}

	meta, err := h.ops.Proc.Metadata(resolved)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", filename, err)
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal metadata: %w", err)
	}

	return string(data), nil
}

func (h *DocumentResourceHandler) documentOutline(filename string) (string, error) {
	resolved, err := h.ops.ResolveExisting(filename)
	if err != nil {
		return "", fmt.Errorf("document not found: %s", filename)
	}

	outline, err := h.ops.Parser.ParseStructure(resolved)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	data, err := json.MarshalIndent(outline, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal outline: %w", err)
	}

	return string(data), nil
}
