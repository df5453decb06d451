package tools

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docstrata/strata-mcp/internal/knowledge"
	"github.com/docstrata/strata-mcp/internal/logger"
	"github.com/docstrata/strata-mcp/internal/operations"
)

type GetComponentOwnersQuery struct {
	ComponentID string `json:"component_id,omitempty"` // Exact component name; omit to get ownership for every component
}

type GetComponentOwnersResponse struct {
	Success         bool                           `json:"success"`
	ComponentID     string                         `json:"component_id,omitempty"`
	Ownership       *knowledge.Ownership           `json:"ownership,omitempty"`
	TotalComponents int                            `json:"total_components,omitempty"`
	OwnershipData   map[string]knowledge.Ownership `json:"ownership_data,omitempty"`
	Error           string                         `json:"error,omitempty"`
}

func GetComponentOwnersTool() *mcp.Tool {
	inputschema, err := jsonschema.For[GetComponentOwnersQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "get_component_owners",
		Description: "Report who owns an architecture component: primary owner, technical lead, business owner, development team, sectors, stakeholders, and contact channels. With no component_id the full ownership table for every component is returned.",
		InputSchema: inputschema,
	}
}

func GetComponentOwnersToolHandler(ctx context.Context, req *mcp.CallToolRequest, query GetComponentOwnersQuery, ops *operations.Context, log logger.Logger) (*mcp.CallToolResult, *GetComponentOwnersResponse, error) {
	log.Info("get_component_owners tool called")

	if query.ComponentID != "" {
		ownership, ok := ops.Graph.OwnershipOf(query.ComponentID)
		if !ok {
			return nil, &GetComponentOwnersResponse{
				ComponentID: query.ComponentID,
				Error:       "Ownership information not found",
			}, nil
		}
		return nil, &GetComponentOwnersResponse{
			Success:     true,
			ComponentID: query.ComponentID,
			Ownership:   &ownership,
		}, nil
	}

	all := ops.Graph.AllOwnership()
	return nil, &GetComponentOwnersResponse{
		Success:         true,
		TotalComponents: len(all),
		OwnershipData:   all,
	}, nil
}
