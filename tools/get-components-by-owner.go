package tools

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docstrata/strata-mcp/internal/knowledge"
	"github.com/docstrata/strata-mcp/internal/logger"
	"github.com/docstrata/strata-mcp/internal/operations"
)

type GetComponentsByOwnerQuery struct {
	PersonName string `json:"person_name"` // Name to match against owners, technical leads, and business owners
}

type GetComponentsByOwnerResponse struct {
	Success         bool                       `json:"success"`
	PersonName      string                     `json:"person_name"`
	TotalComponents int                        `json:"total_components"`
	Components      []knowledge.OwnedComponent `json:"components"`
	Error           string                     `json:"error,omitempty"`
}

func GetComponentsByOwnerTool() *mcp.Tool {
	inputschema, err := jsonschema.For[GetComponentsByOwnerQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "get_components_by_owner",
		Description: "Find every architecture component a person is responsible for. The name is matched case-insensitively against primary owners, technical leads, and business owners, and each hit carries the component's full ownership record.",
		InputSchema: inputschema,
	}
}

func GetComponentsByOwnerToolHandler(ctx context.Context, req *mcp.CallToolRequest, query GetComponentsByOwnerQuery, ops *operations.Context, log logger.Logger) (*mcp.CallToolResult, *GetComponentsByOwnerResponse, error) {
	log.Info("get_components_by_owner tool called")

	components := ops.Graph.ByOwner(query.PersonName)
	if components == nil {
		components = []knowledge.OwnedComponent{}
	}

	return nil, &GetComponentsByOwnerResponse{
		Success:         true,
		PersonName:      query.PersonName,
		TotalComponents: len(components),
		Components:      components,
	}, nil
}
