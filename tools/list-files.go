package tools

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docstrata/strata-mcp/internal/logger"
	"github.com/docstrata/strata-mcp/internal/operations"
)

type ListFilesQuery struct{}

type ListFilesResponse struct {
	Success    bool                  `json:"success"`
	Directory  string                `json:"directory"`
	TotalFiles int                   `json:"total_files"`
	Files      []operations.FileInfo `json:"files"`
	Error      string                `json:"error,omitempty"`
}

func ListFilesTool() *mcp.Tool {
	inputschema, err := jsonschema.For[ListFilesQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "list_files",
		Description: "List every file in the server's data directory with name, path, size, modification time (unix), and extension. Use this to discover which documents and supporting files are available before reading them.",
		InputSchema: inputschema,
	}
}

func ListFilesToolHandler(ctx context.Context, req *mcp.CallToolRequest, query ListFilesQuery, ops *operations.Context, log logger.Logger) (*mcp.CallToolResult, *ListFilesResponse, error) {
	log.Info("list_files tool called")

	files, err := ops.ListFiles()
	if err != nil {
		log.Error("list_files failed: %v", err)
		return nil, &ListFilesResponse{
			Directory: ops.DataDir,
			Files:     []operations.FileInfo{},
			Error:     fmt.Sprintf("Failed to list files: %v", err),
		}, nil
	}
	if files == nil {
		files = []operations.FileInfo{}
	}

	return nil, &ListFilesResponse{
		Success:    true,
		Directory:  ops.DataDir,
		TotalFiles: len(files),
		Files:      files,
	}, nil
}
