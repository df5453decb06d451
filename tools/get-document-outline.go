package tools

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docstrata/strata-mcp/internal/logger"
	"github.com/docstrata/strata-mcp/internal/operations"
)

type GetDocumentOutlineQuery struct {
	FilePath string `json:"file_path"` // Path to the PDF, relative to the data directory or absolute
}

// OutlineView is the navigation-only rendering of a document hierarchy.
type OutlineView struct {
	TotalSections          int           `json:"total_sections"`
	MaxDepth               int           `json:"max_depth"`
	SectionNumberingScheme string        `json:"section_numbering_scheme"`
	Outline                []OutlineItem `json:"outline"`
}

type GetDocumentOutlineResponse struct {
	Success   bool         `json:"success"`
	FilePath  string       `json:"file_path,omitempty"`
	FileName  string       `json:"file_name,omitempty"`
	Structure *OutlineView `json:"structure,omitempty"`
	Error     string       `json:"error,omitempty"`
}

func GetDocumentOutlineTool() *mcp.Tool {
	inputschema, err := jsonschema.For[GetDocumentOutlineQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "get_document_outline",
		Description: "Produce a table of contents for a PDF: the reconstructed section hierarchy with titles, levels, section numbers, page ranges, and section types, without any body text. Lighter than get_document_structure when only navigation is needed.",
		InputSchema: inputschema,
	}
}

func GetDocumentOutlineToolHandler(ctx context.Context, req *mcp.CallToolRequest, query GetDocumentOutlineQuery, ops *operations.Context, log logger.Logger) (*mcp.CallToolResult, *GetDocumentOutlineResponse, error) {
	log.Info("get_document_outline tool called")

	resolved, err := ops.ResolveExisting(query.FilePath)
	if err != nil {
		return nil, &GetDocumentOutlineResponse{
			FilePath: resolved,
			Error:    fmt.Sprintf("File not found: %s", query.FilePath),
		}, nil
	}

	outline, err := ops.Parser.ParseStructure(resolved)
	if err != nil {
		log.Error("get_document_outline failed for %s: %v", query.FilePath, err)
		return nil, &GetDocumentOutlineResponse{
			FilePath: query.FilePath,
			Error:    fmt.Sprintf("PDF processing error: %v", err),
		}, nil
	}

	items := make([]OutlineItem, 0, len(outline.Sections))
	for _, section := range outline.Sections {
		items = append(items, outlineItem(section))
	}

	return nil, &GetDocumentOutlineResponse{
		Success:  true,
		FilePath: resolved,
		FileName: filepath.Base(resolved),
		Structure: &OutlineView{
			TotalSections:          outline.TotalSections,
			MaxDepth:               outline.MaxDepth,
			SectionNumberingScheme: outline.NumberingScheme,
			Outline:                items,
		},
	}, nil
}
