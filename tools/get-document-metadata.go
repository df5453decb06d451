package tools

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docstrata/strata-mcp/internal/logger"
	"github.com/docstrata/strata-mcp/internal/operations"
	"github.com/docstrata/strata-mcp/models"
)

type GetDocumentMetadataQuery struct {
	FilePath string `json:"file_path"` // Path to the PDF, relative to the data directory or absolute
}

// StructureSummary condenses a reconstructed outline to its headline
// numbers and the first few top-level titles.
type StructureSummary struct {
	TotalSections          int      `json:"total_sections"`
	MaxDepth               int      `json:"max_depth"`
	SectionNumberingScheme string   `json:"section_numbering_scheme"`
	SectionTitles          []string `json:"section_titles"`
}

type GetDocumentMetadataResponse struct {
	Success          bool                     `json:"success"`
	FilePath         string                   `json:"file_path,omitempty"`
	FileName         string                   `json:"file_name,omitempty"`
	DocumentType     string                   `json:"document_type,omitempty"`
	Version          string                   `json:"version,omitempty"`
	DateFromFilename string                   `json:"date_from_filename,omitempty"`
	Metadata         *models.DocumentMetadata `json:"metadata,omitempty"`
	Structure        *StructureSummary        `json:"structure,omitempty"`
	Error            string                   `json:"error,omitempty"`
}

func GetDocumentMetadataTool() *mcp.Tool {
	inputschema, err := jsonschema.For[GetDocumentMetadataQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "get_document_metadata",
		Description: "Combine PDF metadata with a structural summary of one document: the document type, version, and date parsed from the filename, the embedded metadata block, and the reconstructed outline's section count, depth, numbering scheme, and first ten top-level section titles.",
		InputSchema: inputschema,
	}
}

func GetDocumentMetadataToolHandler(ctx context.Context, req *mcp.CallToolRequest, query GetDocumentMetadataQuery, ops *operations.Context, log logger.Logger) (*mcp.CallToolResult, *GetDocumentMetadataResponse, error) {
	log.Info("get_document_metadata tool called")

	resolved, err := ops.ResolveExisting(query.FilePath)
	if err != nil {
		return nil, &GetDocumentMetadataResponse{
			FilePath: resolved,
			Error:    fmt.Sprintf("File not found: %s", query.FilePath),
		}, nil
	}

	meta, err := ops.Proc.Metadata(resolved)
	if err != nil {
		log.Error("get_document_metadata failed for %s: %v", query.FilePath, err)
		return nil, &GetDocumentMetadataResponse{
			FilePath: query.FilePath,
			Error:    fmt.Sprintf("PDF processing error: %v", err),
		}, nil
	}

	outline, err := ops.Parser.ParseStructure(resolved)
	if err != nil {
		log.Error("get_document_metadata failed for %s: %v", query.FilePath, err)
		return nil, &GetDocumentMetadataResponse{
			FilePath: query.FilePath,
			Error:    fmt.Sprintf("PDF processing error: %v", err),
		}, nil
	}

	titles := make([]string, 0, 10)
	for _, section := range outline.Sections {
		if len(titles) == 10 {
			break
		}
		titles = append(titles, section.Title)
	}

	name := filepath.Base(resolved)
	return nil, &GetDocumentMetadataResponse{
		Success:          true,
		FilePath:         resolved,
		FileName:         name,
		DocumentType:     operations.DocumentType(name),
		Version:          operations.DocumentVersion(name),
		DateFromFilename: operations.FilenameDate(name),
		Metadata:         meta,
		Structure: &StructureSummary{
			TotalSections:          outline.TotalSections,
			MaxDepth:               outline.MaxDepth,
			SectionNumberingScheme: outline.NumberingScheme,
			SectionTitles:          titles,
		},
	}, nil
}
