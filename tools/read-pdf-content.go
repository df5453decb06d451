package tools

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docstrata/strata-mcp/internal/logger"
	"github.com/docstrata/strata-mcp/internal/operations"
)

type ReadPDFContentQuery struct {
	FilePath      string `json:"file_path"`                // Path to the PDF, relative to the data directory or absolute
	PageRange     string `json:"page_range,omitempty"`     // Pages to read, "5" or "2-7" (default all)
	SectionFilter string `json:"section_filter,omitempty"` // Keep only top-level sections whose title contains this text
}

type ReadPDFContentResponse struct {
	Success             bool       `json:"success"`
	FilePath            string     `json:"file_path,omitempty"`
	FileName            string     `json:"file_name,omitempty"`
	PageRange           string     `json:"page_range,omitempty"`
	SectionFilter       string     `json:"section_filter,omitempty"`
	Text                string     `json:"text,omitempty"`
	TextLength          int        `json:"text_length,omitempty"`
	TotalPages          int        `json:"total_pages,omitempty"`
	ExtractionTimestamp *time.Time `json:"extraction_timestamp,omitempty"`
	Error               string     `json:"error,omitempty"`
}

func ReadPDFContentTool() *mcp.Tool {
	inputschema, err := jsonschema.For[ReadPDFContentQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "read_pdf_content",
		Description: "Read PDF text with optional narrowing: a page range such as \"5\" or \"2-7\", and a section filter that keeps only top-level sections whose title contains the given text. Filtered output lists each matching section under a \"=== Title ===\" header.",
		InputSchema: inputschema,
	}
}

func ReadPDFContentToolHandler(ctx context.Context, req *mcp.CallToolRequest, query ReadPDFContentQuery, ops *operations.Context, log logger.Logger) (*mcp.CallToolResult, *ReadPDFContentResponse, error) {
	log.Info("read_pdf_content tool called")

	resolved, err := ops.ResolveExisting(query.FilePath)
	if err != nil {
		return nil, &ReadPDFContentResponse{
			FilePath: resolved,
			Error:    fmt.Sprintf("File not found: %s", query.FilePath),
		}, nil
	}

	startPage, endPage, err := operations.ParsePageRange(query.PageRange)
	if err != nil {
		return nil, &ReadPDFContentResponse{
			FilePath: query.FilePath,
			Error:    fmt.Sprintf("Invalid page range format: %s", query.PageRange),
		}, nil
	}

	content, err := ops.Proc.ExtractContent(resolved, startPage, endPage)
	if err != nil {
		log.Error("read_pdf_content failed for %s: %v", query.FilePath, err)
		return nil, &ReadPDFContentResponse{
			FilePath: query.FilePath,
			Error:    fmt.Sprintf("PDF processing error: %v", err),
		}, nil
	}

	text := content.Text
	if query.SectionFilter != "" {
		outline, err := ops.Parser.ParseStructure(resolved)
		if err != nil {
			log.Error("read_pdf_content failed for %s: %v", query.FilePath, err)
			return nil, &ReadPDFContentResponse{
				FilePath: query.FilePath,
				Error:    fmt.Sprintf("PDF processing error: %v", err),
			}, nil
		}

		needle := strings.ToLower(query.SectionFilter)
		var parts []string
		for _, section := range outline.Sections {
			if strings.Contains(strings.ToLower(section.Title), needle) {
				parts = append(parts, fmt.Sprintf("=== %s ===", section.Title))
				parts = append(parts, section.TextContent)
			}
		}
		if len(parts) > 0 {
			text = strings.Join(parts, "\n\n")
		}
	}

	pageRange := query.PageRange
	if pageRange == "" {
		pageRange = fmt.Sprintf("1-%d", content.Metadata.PageCount)
	}

	return nil, &ReadPDFContentResponse{
		Success:             true,
		FilePath:            resolved,
		FileName:            filepath.Base(resolved),
		PageRange:           pageRange,
		SectionFilter:       query.SectionFilter,
		Text:                text,
		TextLength:          len(text),
		TotalPages:          content.Metadata.PageCount,
		ExtractionTimestamp: &content.ExtractionTimestamp,
	}, nil
}
