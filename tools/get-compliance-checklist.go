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

type GetComplianceChecklistQuery struct {
	SystemType string `json:"system_type,omitempty"` // Only keep items mentioning this system type, e.g. "relay"
}

type GetComplianceChecklistResponse struct {
	Success             bool                                  `json:"success"`
	SystemType          string                                `json:"system_type,omitempty"`
	TotalItems          int                                   `json:"total_items"`
	ChecklistByCategory map[string][]compliance.ChecklistItem `json:"checklist_by_category"`
	Checklist           []compliance.ChecklistItem            `json:"checklist"`
	Error               string                                `json:"error,omitempty"`
}

func GetComplianceChecklistTool() *mcp.Tool {
	inputschema, err := jsonschema.For[GetComplianceChecklistQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "get_compliance_checklist",
		Description: "Assemble a verification checklist from the guidance documents. Bulleted and numbered items inside checklist and verification blocks are collected, categorised, and prioritised, returned both as a flat list and grouped by category. An optional system_type keeps only items mentioning that term.",
		InputSchema: inputschema,
	}
}

func GetComplianceChecklistToolHandler(ctx context.Context, req *mcp.CallToolRequest, query GetComplianceChecklistQuery, ops *operations.Context, log logger.Logger) (*mcp.CallToolResult, *GetComplianceChecklistResponse, error) {
	log.Info("get_compliance_checklist tool called")

	docs, err := ops.DocumentsMatching(compliance.IsGuidance)
	if err != nil {
		log.Error("get_compliance_checklist failed: %v", err)
		return nil, &GetComplianceChecklistResponse{
			SystemType:          query.SystemType,
			ChecklistByCategory: map[string][]compliance.ChecklistItem{},
			Checklist:           []compliance.ChecklistItem{},
			Error:               fmt.Sprintf("Failed to read documents: %v", err),
		}, nil
	}

	checklist, byCategory, total := compliance.BuildChecklist(docs, query.SystemType)
	if checklist == nil {
		checklist = []compliance.ChecklistItem{}
	}
	if byCategory == nil {
		byCategory = map[string][]compliance.ChecklistItem{}
	}

	return nil, &GetComplianceChecklistResponse{
		Success:             true,
		SystemType:          query.SystemType,
		TotalItems:          total,
		ChecklistByCategory: byCategory,
		Checklist:           checklist,
	}, nil
}
