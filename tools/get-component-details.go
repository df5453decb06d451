package tools

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docstrata/strata-mcp/internal/logger"
	"github.com/docstrata/strata-mcp/internal/operations"
)

type GetComponentDetailsQuery struct {
	ComponentID string `json:"component_id"` // Exact component name, e.g. "Data Management Service"
}

// ComponentSection is the descriptive part of a component record with its
// provenance.
type ComponentSection struct {
	Title          string `json:"title"`
	Content        string `json:"content"`
	SourceDocument string `json:"source_document"`
	Confidence     string `json:"confidence"`
}

// ComponentInformation is the structured part of a component record.
type ComponentInformation struct {
	Responsibilities []string `json:"responsibilities"`
	Interfaces       []string `json:"interfaces"`
	Dependencies     []string `json:"dependencies"`
	ProvidesTo       []string `json:"provides_to"`
	Specifications   []string `json:"specifications"`
	Type             string   `json:"type"`
	Category         string   `json:"category"`
}

// ComponentDetails pairs the descriptive section with the structured
// information block.
type ComponentDetails struct {
	Section     ComponentSection     `json:"section"`
	Information ComponentInformation `json:"information"`
}

type GetComponentDetailsResponse struct {
	Success         bool              `json:"success"`
	ComponentID     string            `json:"component_id"`
	Found           bool              `json:"found"`
	TotalReferences int               `json:"total_references"`
	Details         *ComponentDetails `json:"details,omitempty"`
	Error           string            `json:"error,omitempty"`
}

func GetComponentDetailsTool() *mcp.Tool {
	inputschema, err := jsonschema.For[GetComponentDetailsQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "get_component_details",
		Description: "Look up one architecture component by its exact name and return its full record: description with source document and confidence, responsibilities, interfaces, dependencies, downstream consumers, and governing specifications.",
		InputSchema: inputschema,
	}
}

func GetComponentDetailsToolHandler(ctx context.Context, req *mcp.CallToolRequest, query GetComponentDetailsQuery, ops *operations.Context, log logger.Logger) (*mcp.CallToolResult, *GetComponentDetailsResponse, error) {
	log.Info("get_component_details tool called")

	component, ok := ops.Graph.Component(query.ComponentID)
	if !ok {
		return nil, &GetComponentDetailsResponse{
			ComponentID: query.ComponentID,
			Error:       "Component not found",
		}, nil
	}

	return nil, &GetComponentDetailsResponse{
		Success:         true,
		ComponentID:     query.ComponentID,
		Found:           true,
		TotalReferences: len(component.Responsibilities),
		Details: &ComponentDetails{
			Section: ComponentSection{
				Title:          query.ComponentID,
				Content:        component.Description,
				SourceDocument: component.SourceDocument,
				Confidence:     component.Confidence,
			},
			Information: ComponentInformation{
				Responsibilities: component.Responsibilities,
				Interfaces:       component.Interfaces,
				Dependencies:     component.Dependencies,
				ProvidesTo:       component.ProvidesTo,
				Specifications:   component.Specifications,
				Type:             component.Type,
				Category:         component.Category,
			},
		},
	}, nil
}
