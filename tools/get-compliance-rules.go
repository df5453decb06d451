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

type GetComplianceRulesQuery struct {
	Category string `json:"category,omitempty"`  // Context filter, e.g. "Security", "Interoperability", "Data"
	RuleType string `json:"rule_type,omitempty"` // Modal verb filter: "must", "shall", "should", "will", or "may"
}

type GetComplianceRulesResponse struct {
	Success    bool              `json:"success"`
	Category   string            `json:"category,omitempty"`
	RuleType   string            `json:"rule_type,omitempty"`
	TotalRules int               `json:"total_rules"`
	Rules      []compliance.Rule `json:"rules"`
	Error      string            `json:"error,omitempty"`
}

func GetComplianceRulesTool() *mcp.Tool {
	inputschema, err := jsonschema.For[GetComplianceRulesQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "get_compliance_rules",
		Description: "Extract normative rules from the technical standard documents. Sentences built around must, shall, should, will, and may are collected, classified into context areas such as Security and Interoperability, and sorted by obligation strength. Optional filters narrow by modal verb or context.",
		InputSchema: inputschema,
	}
}

func GetComplianceRulesToolHandler(ctx context.Context, req *mcp.CallToolRequest, query GetComplianceRulesQuery, ops *operations.Context, log logger.Logger) (*mcp.CallToolResult, *GetComplianceRulesResponse, error) {
	log.Info("get_compliance_rules tool called")

	docs, err := ops.DocumentsMatching(compliance.IsStandard)
	if err != nil {
		log.Error("get_compliance_rules failed: %v", err)
		return nil, &GetComplianceRulesResponse{
			Category: query.Category,
			RuleType: query.RuleType,
			Rules:    []compliance.Rule{},
			Error:    fmt.Sprintf("Failed to read documents: %v", err),
		}, nil
	}

	rules, total := compliance.ExtractRules(docs, query.Category, query.RuleType)
	if rules == nil {
		rules = []compliance.Rule{}
	}

	return nil, &GetComplianceRulesResponse{
		Success:    true,
		Category:   query.Category,
		RuleType:   query.RuleType,
		TotalRules: total,
		Rules:      rules,
	}, nil
}
