package tools

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docstrata/strata-mcp/internal/knowledge"
	"github.com/docstrata/strata-mcp/internal/logger"
	"github.com/docstrata/strata-mcp/internal/operations"
)

type SearchComponentsQuery struct {
	ComponentType string `json:"component_type,omitempty"` // Filter by type, e.g. "Core", "Interface", "Optional"
	Category      string `json:"category,omitempty"`       // Filter by category, e.g. "Data", "Security", "Communication"
}

type SearchComponentsResponse struct {
	Success         bool                  `json:"success"`
	ComponentType   string                `json:"component_type,omitempty"`
	Category        string                `json:"category,omitempty"`
	TotalComponents int                   `json:"total_components"`
	Components      []knowledge.Component `json:"components"`
	Error           string                `json:"error,omitempty"`
}

func SearchComponentsTool() *mcp.Tool {
	inputschema, err := jsonschema.For[SearchComponentsQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "search_components",
		Description: "Find architecture components in the knowledge graph by type and category. Both filters are optional case-insensitive substrings; with no filters every component is returned. Results are sorted by type, category, then name.",
		InputSchema: inputschema,
	}
}

func SearchComponentsToolHandler(ctx context.Context, req *mcp.CallToolRequest, query SearchComponentsQuery, ops *operations.Context, log logger.Logger) (*mcp.CallToolResult, *SearchComponentsResponse, error) {
	log.Info("search_components tool called")

	components := ops.Graph.Search(query.ComponentType, query.Category)
	if components == nil {
		components = []knowledge.Component{}
	}

	return nil, &SearchComponentsResponse{
		Success:         true,
		ComponentType:   query.ComponentType,
		Category:        query.Category,
		TotalComponents: len(components),
		Components:      components,
	}, nil
}
