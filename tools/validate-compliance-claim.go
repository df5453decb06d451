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

type ValidateComplianceClaimQuery struct {
	ClaimText string `json:"claim_text"` // The compliance claim to check against the standards
}

type ValidateComplianceClaimResponse struct {
	Success            bool                  `json:"success"`
	ClaimText          string                `json:"claim_text"`
	ValidationResult   string                `json:"validation_result,omitempty"`
	SupportingEvidence []compliance.Evidence `json:"supporting_evidence"`
	PotentialIssues    []string              `json:"potential_issues"`
	Confidence         string                `json:"confidence,omitempty"`
	Error              string                `json:"error,omitempty"`
}

func ValidateComplianceClaimTool() *mcp.Tool {
	inputschema, err := jsonschema.For[ValidateComplianceClaimQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "validate_compliance_claim",
		Description: "Check a compliance claim against the technical standard family. Key terms from the claim are matched against normative sentences in the standards; the verdict (supported, partially_supported, unsupported, or unclear) comes back with the supporting evidence and any issues found in the claim's wording.",
		InputSchema: inputschema,
	}
}

func ValidateComplianceClaimToolHandler(ctx context.Context, req *mcp.CallToolRequest, query ValidateComplianceClaimQuery, ops *operations.Context, log logger.Logger) (*mcp.CallToolResult, *ValidateComplianceClaimResponse, error) {
	log.Info("validate_compliance_claim tool called")

	if query.ClaimText == "" {
		return nil, &ValidateComplianceClaimResponse{
			ClaimText:          query.ClaimText,
			SupportingEvidence: []compliance.Evidence{},
			PotentialIssues:    []string{},
			Error:              "claim_text is required",
		}, nil
	}

	docs, err := ops.DocumentsMatching(compliance.IsStandardFamily)
	if err != nil {
		log.Error("validate_compliance_claim failed: %v", err)
		return nil, &ValidateComplianceClaimResponse{
			ClaimText:          query.ClaimText,
			SupportingEvidence: []compliance.Evidence{},
			PotentialIssues:    []string{},
			Error:              fmt.Sprintf("Failed to read documents: %v", err),
		}, nil
	}

	validation := compliance.ValidateClaim(docs, query.ClaimText)
	if validation.Evidence == nil {
		validation.Evidence = []compliance.Evidence{}
	}
	if validation.Issues == nil {
		validation.Issues = []string{}
	}

	return nil, &ValidateComplianceClaimResponse{
		Success:            true,
		ClaimText:          query.ClaimText,
		ValidationResult:   validation.Verdict,
		SupportingEvidence: validation.Evidence,
		PotentialIssues:    validation.Issues,
		Confidence:         validation.Confidence,
	}, nil
}
