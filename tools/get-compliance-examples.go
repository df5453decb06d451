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

type GetComplianceExamplesQuery struct {
	Scenario string `json:"scenario,omitempty"` // Only keep examples mentioning this scenario, e.g. "data exchange"
}

type GetComplianceExamplesResponse struct {
	Success       bool                 `json:"success"`
	Scenario      string               `json:"scenario,omitempty"`
	TotalExamples int                  `json:"total_examples"`
	Examples      []compliance.Example `json:"examples"`
	Error         string               `json:"error,omitempty"`
}

func GetComplianceExamplesTool() *mcp.Tool {
	inputschema, err := jsonschema.For[GetComplianceExamplesQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "get_compliance_examples",
		Description: "Collect worked examples and use cases from the guidance documents. Example blocks are typed by subject area (Data Exchange, System Integration, Interface, Security, Testing) and deduplicated. An optional scenario filter keeps only examples mentioning that term and marks them high relevance.",
		InputSchema: inputschema,
	}
}

func GetComplianceExamplesToolHandler(ctx context.Context, req *mcp.CallToolRequest, query GetComplianceExamplesQuery, ops *operations.Context, log logger.Logger) (*mcp.CallToolResult, *GetComplianceExamplesResponse, error) {
	log.Info("get_compliance_examples tool called")

	docs, err := ops.DocumentsMatching(compliance.IsGuidance)
	if err != nil {
		log.Error("get_compliance_examples failed: %v", err)
		return nil, &GetComplianceExamplesResponse{
			Scenario: query.Scenario,
			Examples: []compliance.Example{},
			Error:    fmt.Sprintf("Failed to read documents: %v", err),
		}, nil
	}

	examples, total := compliance.ExtractExamples(docs, query.Scenario)
	if examples == nil {
		examples = []compliance.Example{}
	}

	return nil, &GetComplianceExamplesResponse{
		Success:       true,
		Scenario:      query.Scenario,
		TotalExamples: total,
		Examples:      examples,
	}, nil
}
