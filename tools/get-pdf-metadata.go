package tools

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docstrata/strata-mcp/internal/logger"
	"github.com/docstrata/strata-mcp/internal/operations"
	"github.com/docstrata/strata-mcp/models"
)

type GetPDFMetadataQuery struct {
	FilePath string `json:"file_path"` // Path to the PDF, relative to the data directory or absolute
}

type GetPDFMetadataResponse struct {
	Success  bool                     `json:"success"`
	FilePath string                   `json:"file_path,omitempty"`
	Metadata *models.DocumentMetadata `json:"metadata,omitempty"`
	Error    string                   `json:"error,omitempty"`
}

func GetPDFMetadataTool() *mcp.Tool {
	inputschema, err := jsonschema.For[GetPDFMetadataQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "get_pdf_metadata",
		Description: "Read the document-level metadata of a PDF: title, author, subject, creator, producer, creation and modification dates, page count, file size, and flags for encryption, PDF/A conformance, forms, and bookmarks.",
		InputSchema: inputschema,
	}
}

func GetPDFMetadataToolHandler(ctx context.Context, req *mcp.CallToolRequest, query GetPDFMetadataQuery, ops *operations.Context, log logger.Logger) (*mcp.CallToolResult, *GetPDFMetadataResponse, error) {
	log.Info("get_pdf_metadata tool called")

	resolved, err := ops.ResolveExisting(query.FilePath)
	if err != nil {
		return nil, &GetPDFMetadataResponse{
			FilePath: resolved,
			Error:    fmt.Sprintf("File not found: %s", query.FilePath),
		}, nil
	}

	meta, err := ops.Proc.Metadata(resolved)
	if err != nil {
		log.Error("get_pdf_metadata failed for %s: %v", query.FilePath, err)
		return nil, &GetPDFMetadataResponse{
			FilePath: query.FilePath,
			Error:    fmt.Sprintf("PDF processing error: %v", err),
		}, nil
	}

	return nil, &GetPDFMetadataResponse{
		Success:  true,
		FilePath: resolved,
		Metadata: meta,
	}, nil
}
