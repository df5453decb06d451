package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docstrata/strata-mcp/internal/config"
	"github.com/docstrata/strata-mcp/internal/knowledge"
	"github.com/docstrata/strata-mcp/internal/logger"
	"github.com/docstrata/strata-mcp/internal/operations"
	"github.com/docstrata/strata-mcp/internal/outline"
	"github.com/docstrata/strata-mcp/internal/pdfproc"
	"github.com/docstrata/strata-mcp/resources"
	"github.com/docstrata/strata-mcp/tools"
)

func CreateServer(cfg *config.Config, log logger.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "strata-mcp", Version: "v0.1.0"}, nil)

	proc := pdfproc.NewProcessor(cfg.MaxFileSize, log)
	parser := outline.NewParser(proc, log)

	graph, err := knowledge.Load()
	if err != nil {
		log.Fatal("Failed to load knowledge graph: %v", err)
	}

	ops := operations.NewContext(cfg.DataDir, proc, parser, graph, log)
	docResourceHandler := resources.NewDocumentResourceHandler(ops)

	// Register tools with the shared operations context and logger
	mcp.AddTool(server, tools.ListFilesTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.ListFilesQuery) (*mcp.CallToolResult, *tools.ListFilesResponse, error) {
		return tools.ListFilesToolHandler(ctx, req, query, ops, log)
	})

	mcp.AddTool(server, tools.ListDocumentsTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.ListDocumentsQuery) (*mcp.CallToolResult, *tools.ListDocumentsResponse, error) {
		return tools.ListDocumentsToolHandler(ctx, req, query, ops, log)
	})

	mcp.AddTool(server, tools.ExtractPDFContentTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.ExtractPDFContentQuery) (*mcp.CallToolResult, *tools.ExtractPDFContentResponse, error) {
		return tools.ExtractPDFContentToolHandler(ctx, req, query, ops, log)
	})

	mcp.AddTool(server, tools.GetPDFMetadataTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.GetPDFMetadataQuery) (*mcp.CallToolResult, *tools.GetPDFMetadataResponse, error) {
		return tools.GetPDFMetadataToolHandler(ctx, req, query, ops, log)
	})

	mcp.AddTool(server, tools.GetDocumentMetadataTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.GetDocumentMetadataQuery) (*mcp.CallToolResult, *tools.GetDocumentMetadataResponse, error) {
		return tools.GetDocumentMetadataToolHandler(ctx, req, query, ops, log)
	})

	mcp.AddTool(server, tools.GetDocumentStructureTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.GetDocumentStructureQuery) (*mcp.CallToolResult, *tools.GetDocumentStructureResponse, error) {
		return tools.GetDocumentStructureToolHandler(ctx, req, query, ops, log)
	})

	mcp.AddTool(server, tools.GetDocumentOutlineTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.GetDocumentOutlineQuery) (*mcp.CallToolResult, *tools.GetDocumentOutlineResponse, error) {
		return tools.GetDocumentOutlineToolHandler(ctx, req, query, ops, log)
	})

	mcp.AddTool(server, tools.ReadPDFContentTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.ReadPDFContentQuery) (*mcp.CallToolResult, *tools.ReadPDFContentResponse, error) {
		return tools.ReadPDFContentToolHandler(ctx, req, query, ops, log)
	})

	mcp.AddTool(server, tools.SearchPDFContentTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.SearchPDFContentQuery) (*mcp.CallToolResult, *tools.SearchPDFContentResponse, error) {
		return tools.SearchPDFContentToolHandler(ctx, req, query, ops, log)
	})

	mcp.AddTool(server, tools.SearchDocumentsTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.SearchDocumentsQuery) (*mcp.CallToolResult, *tools.SearchDocumentsResponse, error) {
		return tools.SearchDocumentsToolHandler(ctx, req, query, ops, log)
	})

	mcp.AddTool(server, tools.ExtractImagesMetadataTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.ExtractImagesMetadataQuery) (*mcp.CallToolResult, *tools.ExtractImagesMetadataResponse, error) {
		return tools.ExtractImagesMetadataToolHandler(ctx, req, query, ops, log)
	})

	mcp.AddTool(server, tools.SearchComponentsTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.SearchComponentsQuery) (*mcp.CallToolResult, *tools.SearchComponentsResponse, error) {
		return tools.SearchComponentsToolHandler(ctx, req, query, ops, log)
	})

	mcp.AddTool(server, tools.GetComponentDetailsTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.GetComponentDetailsQuery) (*mcp.CallToolResult, *tools.GetComponentDetailsResponse, error) {
		return tools.GetComponentDetailsToolHandler(ctx, req, query, ops, log)
	})

	mcp.AddTool(server, tools.GetComponentRelationshipsTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.GetComponentRelationshipsQuery) (*mcp.CallToolResult, *tools.GetComponentRelationshipsResponse, error) {
		return tools.GetComponentRelationshipsToolHandler(ctx, req, query, ops, log)
	})

	mcp.AddTool(server, tools.GetComponentOwnersTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.GetComponentOwnersQuery) (*mcp.CallToolResult, *tools.GetComponentOwnersResponse, error) {
		return tools.GetComponentOwnersToolHandler(ctx, req, query, ops, log)
	})

	mcp.AddTool(server, tools.GetComponentsByOwnerTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.GetComponentsByOwnerQuery) (*mcp.CallToolResult, *tools.GetComponentsByOwnerResponse, error) {
		return tools.GetComponentsByOwnerToolHandler(ctx, req, query, ops, log)
	})

	mcp.AddTool(server, tools.GetComponentsBySectorTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.GetComponentsBySectorQuery) (*mcp.CallToolResult, *tools.GetComponentsBySectorResponse, error) {
		return tools.GetComponentsBySectorToolHandler(ctx, req, query, ops, log)
	})

	mcp.AddTool(server, tools.GetComplianceRulesTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.GetComplianceRulesQuery) (*mcp.CallToolResult, *tools.GetComplianceRulesResponse, error) {
		return tools.GetComplianceRulesToolHandler(ctx, req, query, ops, log)
	})

	mcp.AddTool(server, tools.SearchComplianceRequirementsTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.SearchComplianceRequirementsQuery) (*mcp.CallToolResult, *tools.SearchComplianceRequirementsResponse, error) {
		return tools.SearchComplianceRequirementsToolHandler(ctx, req, query, ops, log)
	})

	mcp.AddTool(server, tools.GetComplianceChecklistTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.GetComplianceChecklistQuery) (*mcp.CallToolResult, *tools.GetComplianceChecklistResponse, error) {
		return tools.GetComplianceChecklistToolHandler(ctx, req, query, ops, log)
	})

	mcp.AddTool(server, tools.ValidateComplianceClaimTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.ValidateComplianceClaimQuery) (*mcp.CallToolResult, *tools.ValidateComplianceClaimResponse, error) {
		return tools.ValidateComplianceClaimToolHandler(ctx, req, query, ops, log)
	})

	mcp.AddTool(server, tools.GetComplianceExamplesTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.GetComplianceExamplesQuery) (*mcp.CallToolResult, *tools.GetComplianceExamplesResponse, error) {
		return tools.GetComplianceExamplesToolHandler(ctx, req, query, ops, log)
	})

	// Template for the document catalog
	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "doc://documents",
		Name:        "documents",
		Description: "Catalog of PDF documents in the data directory",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return docResourceHandler.ReadResource(ctx, req.Params.URI)
	})

	// Template for document metadata
	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "doc://{filename}",
		Name:        "document-metadata",
		Description: "Document metadata for one PDF in the data directory",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return docResourceHandler.ReadResource(ctx, req.Params.URI)
	})

	// Template for the reconstructed outline
	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "doc://{filename}/outline",
		Name:        "document-outline",
		Description: "Reconstructed section hierarchy for one PDF in the data directory",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return docResourceHandler.ReadResource(ctx, req.Params.URI)
	})

	return server
}
