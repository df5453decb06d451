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

type ExtractImagesMetadataQuery struct {
	FilePath string `json:"file_path"` // Path to the PDF, relative to the data directory or absolute
}

type ExtractImagesMetadataResponse struct {
	Success     bool                `json:"success"`
	FilePath    string              `json:"file_path,omitempty"`
	TotalImages int                 `json:"total_images"`
	Images      []models.PageImages `json:"images"`
	Error       string              `json:"error,omitempty"`
}

func ExtractImagesMetadataTool() *mcp.Tool {
	inputschema, err := jsonschema.For[ExtractImagesMetadataQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "extract_images_metadata",
		Description: "Report the images embedded in a PDF: a per-page record with the image count and page dimensions, plus the total number of images across the document. No image data is extracted, only counts and geometry.",
		InputSchema: inputschema,
	}
}

func ExtractImagesMetadataToolHandler(ctx context.Context, req *mcp.CallToolRequest, query ExtractImagesMetadataQuery, ops *operations.Context, log logger.Logger) (*mcp.CallToolResult, *ExtractImagesMetadataResponse, error) {
	log.Info("extract_images_metadata tool called")

	resolved, err := ops.ResolveExisting(query.FilePath)
	if err != nil {
		return nil, &ExtractImagesMetadataResponse{
			FilePath: resolved,
			Images:   []models.PageImages{},
			Error:    fmt.Sprintf("File not found: %s", query.FilePath),
		}, nil
	}

	images, err := ops.Proc.ImagesMetadata(resolved)
	if err != nil {
		log.Error("extract_images_metadata failed for %s: %v", query.FilePath, err)
		return nil, &ExtractImagesMetadataResponse{
			FilePath: query.FilePath,
			Images:   []models.PageImages{},
			Error:    fmt.Sprintf("PDF processing error: %v", err),
		}, nil
	}

	total := 0
	for _, page := range images {
		total += page.ImageCount
	}

	return nil, &ExtractImagesMetadataResponse{
		Success:     true,
		FilePath:    resolved,
		TotalImages: total,
		Images:      images,
	}, nil
}
