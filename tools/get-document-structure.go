package tools

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docstrata/strata-mcp/internal/logger"
	"github.com/docstrata/strata-mcp/internal/operations"
)

type GetDocumentStructureQuery struct {
	FilePath string `json:"file_path"` // Path to the PDF, relative to the data directory or absolute
}

// StructureView is the reconstructed hierarchy with per-section text
// previews.
type StructureView struct {
	Sections               []SectionView `json:"sections"`
	TotalSections          int           `json:"total_sections"`
	MaxDepth               int           `json:"max_depth"`
	SectionNumberingScheme string        `json:"section_numbering_scheme"`
}

type GetDocumentStructureResponse struct {
	Success   bool           `json:"success"`
	FilePath  string         `json:"file_path,omitempty"`
	Structure *StructureView `json:"structure,omitempty"`
	Error     string         `json:"error,omitempty"`
}

func GetDocumentStructureTool() *mcp.Tool {
	inputschema, err := jsonschema.For[GetDocumentStructureQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "get_document_structure",
		Description: "Reconstruct the hierarchical section structure of a PDF from font analysis and bookmarks. Returns the full section tree with titles, levels, page ranges, section numbers, classification, and a text preview per section, plus totals, maximum depth, and the detected numbering scheme.",
		InputSchema: inputschema,
	}
}

func GetDocumentStructureToolHandler(ctx context.Context, req *mcp.CallToolRequest, query GetDocumentStructureQuery, ops *operations.Context, log logger.Logger) (*mcp.CallToolResult, *GetDocumentStructureResponse, error) {
	log.Info("get_document_structure tool called")

	resolved, err := ops.ResolveExisting(query.FilePath)
	if err != nil {
		return nil, &GetDocumentStructureResponse{
			FilePath: resolved,
			Error:    fmt.Sprintf("File not found: %s", query.FilePath),
		}, nil
	}

	outline, err := ops.Parser.ParseStructure(resolved)
	if err != nil {
		log.Error("get_document_structure failed for %s: %v", query.FilePath, err)
		return nil, &GetDocumentStructureResponse{
			FilePath: query.FilePath,
			Error:    fmt.Sprintf("PDF processing error: %v", err),
		}, nil
	}

	sections := make([]SectionView, 0, len(outline.Sections))
	for _, section := range outline.Sections {
		sections = append(sections, sectionView(section))
	}

	return nil, &GetDocumentStructureResponse{
		Success:  true,
		FilePath: resolved,
		Structure: &StructureView{
			Sections:               sections,
			TotalSections:          outline.TotalSections,
			MaxDepth:               outline.MaxDepth,
			SectionNumberingScheme: outline.NumberingScheme,
		},
	}, nil
}
