package tools

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docstrata/strata-mcp/internal/knowledge"
	"github.com/docstrata/strata-mcp/internal/logger"
	"github.com/docstrata/strata-mcp/internal/operations"
)

type GetComponentRelationshipsQuery struct {
	ComponentID string `json:"component_id"` // Exact component name, e.g. "Integration Bus"
}

type GetComponentRelationshipsResponse struct {
	Success            bool                     `json:"success"`
	ComponentID        string                   `json:"component_id"`
	TotalRelationships int                      `json:"total_relationships"`
	Relationships      []knowledge.Relationship `json:"relationships"`
	Error              string                   `json:"error,omitempty"`
}

func GetComponentRelationshipsTool() *mcp.Tool {
	inputschema, err := jsonschema.For[GetComponentRelationshipsQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "get_component_relationships",
		Description: "List the dependency and service edges of one architecture component: the components it depends on and the components it provides services to, each with a human-readable context line.",
		InputSchema: inputschema,
	}
}

func GetComponentRelationshipsToolHandler(ctx context.Context, req *mcp.CallToolRequest, query GetComponentRelationshipsQuery, ops *operations.Context, log logger.Logger) (*mcp.CallToolResult, *GetComponentRelationshipsResponse, error) {
	log.Info("get_component_relationships tool called")

	relationships, ok := ops.Graph.Relationships(query.ComponentID)
	if !ok {
		return nil, &GetComponentRelationshipsResponse{
			ComponentID:   query.ComponentID,
			Relationships: []knowledge.Relationship{},
			Error:         "Component not found",
		}, nil
	}
	if relationships == nil {
		relationships = []knowledge.Relationship{}
	}

	return nil, &GetComponentRelationshipsResponse{
		Success:            true,
		ComponentID:        query.ComponentID,
		TotalRelationships: len(relationships),
		Relationships:      relationships,
	}, nil
}
