package tools

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docstrata/strata-mcp/internal/logger"
	"github.com/docstrata/strata-mcp/internal/operations"
)

type ListDocumentsQuery struct{}

// DocumentSummary is the catalog entry for one PDF. Entries that fail to
// process keep their name and path and carry an error note instead of
// metadata.
type DocumentSummary struct {
	FileName         string     `json:"file_name"`
	FilePath         string     `json:"file_path"`
	DocumentType     string     `json:"document_type,omitempty"`
	Version          string     `json:"version,omitempty"`
	DateFromFilename string     `json:"date_from_filename,omitempty"`
	FileSize         int64      `json:"file_size,omitempty"`
	PageCount        int        `json:"page_count,omitempty"`
	Title            string     `json:"title,omitempty"`
	Author           string     `json:"author,omitempty"`
	CreationDate     *time.Time `json:"creation_date,omitempty"`
	ModificationDate *time.Time `json:"modification_date,omitempty"`
	Error            string     `json:"error,omitempty"`
}

type ListDocumentsResponse struct {
	Success        bool              `json:"success"`
	Directory      string            `json:"directory"`
	TotalDocuments int               `json:"total_documents"`
	Documents      []DocumentSummary `json:"documents"`
	Error          string            `json:"error,omitempty"`
}

func ListDocumentsTool() *mcp.Tool {
	inputschema, err := jsonschema.For[ListDocumentsQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "list_documents",
		Description: "Catalog the PDF documents in the data directory. Each entry carries the document type, version, and date parsed from the filename plus page count, title, author, and creation and modification dates from the PDF itself, sorted newest first by filename date.",
		InputSchema: inputschema,
	}
}

func ListDocumentsToolHandler(ctx context.Context, req *mcp.CallToolRequest, query ListDocumentsQuery, ops *operations.Context, log logger.Logger) (*mcp.CallToolResult, *ListDocumentsResponse, error) {
	log.Info("list_documents tool called")

	names, err := ops.ListPDFs()
	if err != nil {
		log.Error("list_documents failed: %v", err)
		return nil, &ListDocumentsResponse{
			Directory: ops.DataDir,
			Documents: []DocumentSummary{},
			Error:     fmt.Sprintf("Failed to list documents: %v", err),
		}, nil
	}

	documents := make([]DocumentSummary, 0, len(names))
	for _, name := range names {
		path := filepath.Join(ops.DataDir, name)

		// First page only: cheap way to get document-level metadata.
		content, err := ops.Proc.ExtractContent(path, 1, 1)
		if err != nil {
			log.Error("Error processing %s: %v", name, err)
			documents = append(documents, DocumentSummary{
				FileName: name,
				FilePath: path,
				Error:    fmt.Sprintf("Failed to process: %v", err),
			})
			continue
		}

		documents = append(documents, DocumentSummary{
			FileName:         name,
			FilePath:         path,
			DocumentType:     operations.DocumentType(name),
			Version:          operations.DocumentVersion(name),
			DateFromFilename: operations.FilenameDate(name),
			FileSize:         content.Metadata.FileSize,
			PageCount:        content.Metadata.PageCount,
			Title:            content.Metadata.Title,
			Author:           content.Metadata.Author,
			CreationDate:     content.Metadata.CreationDate,
			ModificationDate: content.Metadata.ModificationDate,
		})
	}

	// Newest first; entries without a filename date sort last.
	sort.SliceStable(documents, func(i, j int) bool {
		return documents[i].DateFromFilename > documents[j].DateFromFilename
	})

	return nil, &ListDocumentsResponse{
		Success:        true,
		Directory:      ops.DataDir,
		TotalDocuments: len(documents),
		Documents:      documents,
	}, nil
}
