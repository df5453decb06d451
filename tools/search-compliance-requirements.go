package tools

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docstrata/strata-mcp/internal/compliance"
	"github.com/docstrata/strata-mcp/internal/logger"
	"github.com/docstrata/strata-mcp/internal/operations"
)

type SearchComplianceRequirementsQuery struct {
	Query string `json:"query"` // Topic to find requirements for, e.g. "data exchange" or "authentication"
}

type SearchComplianceRequirementsResponse struct {
	Success           bool                     `json:"success"`
	Query             string                   `json:"query"`
	TotalRequirements int                      `json:"total_requirements"`
	Requirements      []compliance.Requirement `json:"requirements"`
	Error             string                   `json:"error,omitempty"`
}

func SearchComplianceRequirementsTool() *mcp.Tool {
	inputschema, err := jsonschema.For[SearchComplianceRequirementsQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "search_compliance_requirements",
		Description: "Search the technical standard family for requirements about a topic. Each occurrence of the query is widened to its surrounding sentence, kept only when requirement language is present nearby, deduplicated, and ranked so sentences with binding verbs come first.",
		InputSchema: inputschema,
	}
}

func SearchComplianceRequirementsToolHandler(ctx context.Context, req *mcp.CallToolRequest, query SearchComplianceRequirementsQuery, ops *operations.Context, log logger.Logger) (*mcp.CallToolResult, *SearchComplianceRequirementsResponse, error) {
	log.Info("search_compliance_requirements tool called")

	if query.Query == "" {
		return nil, &SearchComplianceRequirementsResponse{
			Query:        query.Query,
			Requirements: []compliance.Requirement{},
			Error:        "query is required",
		}, nil
	}

	docs, err := ops.DocumentsMatching(compliance.IsStandardFamily)
	if err != nil {
		log.Error("search_compliance_requirements failed: %v", err)
		return nil, &SearchComplianceRequirementsResponse{
			Query:        query.Query,
			Requirements: []compliance.Requirement{},
			Error:        fmt.Sprintf("Failed to read documents: %v", err),
		}, nil
	}

	requirements, total := compliance.SearchRequirements(docs, query.Query)
	if requirements == nil {
		requirements = []compliance.Requirement{}
	}

	return nil, &SearchComplianceRequirementsResponse{
		Success:           true,
		Query:             query.Query,
		TotalRequirements: total,
		Requirements:      requirements,
	}, nil
}
