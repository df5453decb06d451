package tools

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docstrata/strata-mcp/internal/knowledge"
	"github.com/docstrata/strata-mcp/internal/logger"
	"github.com/docstrata/strata-mcp/internal/operations"
)

type GetComponentsBySectorQuery struct {
	Sector string `json:"sector"` // Sector name to match, e.g. "Defence" or "Cybersecurity"
}

type GetComponentsBySectorResponse struct {
	Success         bool                       `json:"success"`
	Sector          string                     `json:"sector"`
	TotalComponents int                        `json:"total_components"`
	Components      []knowledge.OwnedComponent `json:"components"`
	Error           string                     `json:"error,omitempty"`
}

func GetComponentsBySectorTool() *mcp.Tool {
	inputschema, err := jsonschema.For[GetComponentsBySectorQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "get_components_by_sector",
		Description: "Find the architecture components associated with a sector. The sector is matched case-insensitively against each component's sector tags, and each hit carries the component's full ownership record.",
		InputSchema: inputschema,
	}
}

func GetComponentsBySectorToolHandler(ctx context.Context, req *mcp.CallToolRequest, query GetComponentsBySectorQuery, ops *operations.Context, log logger.Logger) (*mcp.CallToolResult, *GetComponentsBySectorResponse, error) {
	log.Info("get_components_by_sector tool called")

	components := ops.Graph.BySector(query.Sector)
	if components == nil {
		components = []knowledge.OwnedComponent{}
	}

	return nil, &GetComponentsBySectorResponse{
		Success:         true,
		Sector:          query.Sector,
		TotalComponents: len(components),
		Components:      components,
	}, nil
}
