package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docstrata/strata-mcp/internal/logger"
	"github.com/docstrata/strata-mcp/internal/operations"
	"github.com/docstrata/strata-mcp/models"
)

type ExtractPDFContentQuery struct {
	FilePath  string `json:"file_path"`            // Path to the PDF, relative to the data directory or absolute
	StartPage int    `json:"start_page,omitempty"` // First page to extract (1-based, default 1)
	EndPage   int    `json:"end_page,omitempty"`   // Last page to extract (inclusive, default last page)
}

type ExtractPDFContentResponse struct {
	Success             bool                      `json:"success"`
	FilePath            string                    `json:"file_path,omitempty"`
	Text                string                    `json:"text,omitempty"`
	Metadata            *models.DocumentMetadata  `json:"metadata,omitempty"`
	Structure           *models.DocumentStructure `json:"structure,omitempty"`
	Pages               []models.PageMetadata     `json:"pages,omitempty"`
	ExtractionTimestamp *time.Time                `json:"extraction_timestamp,omitempty"`
	PageRange           string                    `json:"page_range,omitempty"`
	Error               string                    `json:"error,omitempty"`
}

func ExtractPDFContentTool() *mcp.Tool {
	inputschema, err := jsonschema.For[ExtractPDFContentQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "extract_pdf_content",
		Description: "Extract the full text of a PDF over an optional page range, together with document metadata, coarse structure lists (sections, headers, bookmarks, page labels), and per-page details such as dimensions and text length.",
		InputSchema: inputschema,
	}
}

func ExtractPDFContentToolHandler(ctx context.Context, req *mcp.CallToolRequest, query ExtractPDFContentQuery, ops *operations.Context, log logger.Logger) (*mcp.CallToolResult, *ExtractPDFContentResponse, error) {
	log.Info("extract_pdf_content tool called")

	resolved, err := ops.ResolveExisting(query.FilePath)
	if err != nil {
		return nil, &ExtractPDFContentResponse{
			FilePath: resolved,
			Error:    fmt.Sprintf("File not found: %s", query.FilePath),
		}, nil
	}

	startPage := query.StartPage
	if startPage == 0 {
		startPage = 1
	}

	content, err := ops.Proc.ExtractContent(resolved, startPage, query.EndPage)
	if err != nil {
		log.Error("extract_pdf_content failed for %s: %v", query.FilePath, err)
		return nil, &ExtractPDFContentResponse{
			FilePath: query.FilePath,
			Error:    fmt.Sprintf("PDF processing error: %v", err),
		}, nil
	}

	endPage := query.EndPage
	if endPage == 0 {
		endPage = content.Metadata.PageCount
	}

	return nil, &ExtractPDFContentResponse{
		Success:             true,
		FilePath:            resolved,
		Text:                content.Text,
		Metadata:            &content.Metadata,
		Structure:           &content.Structure,
		Pages:               content.Pages,
		ExtractionTimestamp: &content.ExtractionTimestamp,
		PageRange:           fmt.Sprintf("%d-%d", startPage, endPage),
	}, nil
}
