package tools

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docstrata/strata-mcp/internal/knowledge"
	"github.com/docstrata/strata-mcp/internal/logger"
	"github.com/docstrata/strata-mcp/internal/operations"
	"github.com/docstrata/strata-mcp/internal/outline"
	"github.com/docstrata/strata-mcp/internal/pdfproc"
)

func newTestContext(t *testing.T, dataDir string) *operations.Context {
	t.Helper()
	log := logger.NewNoOpLogger()
	proc := pdfproc.NewProcessor(0, log)
	parser := outline.NewParser(proc, log)
	graph, err := knowledge.Load()
	require.NoError(t, err)
	return operations.NewContext(dataDir, proc, parser, graph, log)
}

func writeTestFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestListFilesToolHandler(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "alpha.pdf", "pdf bytes")
	writeTestFile(t, dir, "notes.txt", "plain text")
	ops := newTestContext(t, dir)

	_, resp, err := ListFilesToolHandler(context.Background(), nil, ListFilesQuery{}, ops, ops.Log)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, dir, resp.Directory)
	assert.Equal(t, 2, resp.TotalFiles)
	require.Len(t, resp.Files, 2)
	assert.Equal(t, "alpha.pdf", resp.Files[0].Name)
	assert.Equal(t, ".pdf", resp.Files[0].Extension)
	assert.Equal(t, "notes.txt", resp.Files[1].Name)
}

func TestListFilesToolHandlerMissingDirectory(t *testing.T) {
	ops := newTestContext(t, filepath.Join(t.TempDir(), "missing"))

	_, resp, err := ListFilesToolHandler(context.Background(), nil, ListFilesQuery{}, ops, ops.Log)
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "Failed to list files")
	assert.Empty(t, resp.Files)
}

func TestListDocumentsToolHandlerEmptyDirectory(t *testing.T) {
	ops := newTestContext(t, t.TempDir())

	_, resp, err := ListDocumentsToolHandler(context.Background(), nil, ListDocumentsQuery{}, ops, ops.Log)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Zero(t, resp.TotalDocuments)
	assert.Empty(t, resp.Documents)
}

func TestListDocumentsToolHandlerDegradesOnBadPDF(t *testing.T) {
	dir := t.TempDir()
	// Looks like a PDF by name, but the processor cannot open it.
	writeTestFile(t, dir, "Meridian_Technical_Standard_V1_20230215.pdf", "not a pdf")
	ops := newTestContext(t, dir)

	_, resp, err := ListDocumentsToolHandler(context.Background(), nil, ListDocumentsQuery{}, ops, ops.Log)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	require.Len(t, resp.Documents, 1)
	entry := resp.Documents[0]
	assert.Equal(t, "Meridian_Technical_Standard_V1_20230215.pdf", entry.FileName)
	assert.Contains(t, entry.Error, "Failed to process")
	assert.Empty(t, entry.DocumentType)
}

func TestExtractPDFContentToolHandlerFileNotFound(t *testing.T) {
	dir := t.TempDir()
	ops := newTestContext(t, dir)

	_, resp, err := ExtractPDFContentToolHandler(context.Background(), nil, ExtractPDFContentQuery{FilePath: "missing.pdf"}, ops, ops.Log)
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Equal(t, "File not found: missing.pdf", resp.Error)
	assert.Equal(t, filepath.Join(dir, "missing.pdf"), resp.FilePath)
}

func TestGetPDFMetadataToolHandlerFileNotFound(t *testing.T) {
	ops := newTestContext(t, t.TempDir())

	_, resp, err := GetPDFMetadataToolHandler(context.Background(), nil, GetPDFMetadataQuery{FilePath: "missing.pdf"}, ops, ops.Log)
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Equal(t, "File not found: missing.pdf", resp.Error)
	assert.Nil(t, resp.Metadata)
}

func TestGetDocumentStructureToolHandlerFileNotFound(t *testing.T) {
	ops := newTestContext(t, t.TempDir())

	_, resp, err := GetDocumentStructureToolHandler(context.Background(), nil, GetDocumentStructureQuery{FilePath: "missing.pdf"}, ops, ops.Log)
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Equal(t, "File not found: missing.pdf", resp.Error)
	assert.Nil(t, resp.Structure)
}

func TestReadPDFContentToolHandlerInvalidPageRange(t *testing.T) {
	dir := t.TempDir()
	// The range is rejected before the processor ever opens the file.
	writeTestFile(t, dir, "doc.pdf", "placeholder")
	ops := newTestContext(t, dir)

	_, resp, err := ReadPDFContentToolHandler(context.Background(), nil, ReadPDFContentQuery{FilePath: "doc.pdf", PageRange: "x-y"}, ops, ops.Log)
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid page range format: x-y", resp.Error)
}

func TestSearchPDFContentToolHandlerEmptyQuery(t *testing.T) {
	ops := newTestContext(t, t.TempDir())

	_, resp, err := SearchPDFContentToolHandler(context.Background(), nil, SearchPDFContentQuery{}, ops, ops.Log)
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Equal(t, "query is required", resp.Error)
}

func TestSearchPDFContentToolHandlerFileNotFound(t *testing.T) {
	ops := newTestContext(t, t.TempDir())

	query := SearchPDFContentQuery{Query: "protocol", FilePath: "missing.pdf"}
	_, resp, err := SearchPDFContentToolHandler(context.Background(), nil, query, ops, ops.Log)
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Equal(t, "File not found: missing.pdf", resp.Error)
}

func TestSearchPDFContentToolHandlerEmptyDirectory(t *testing.T) {
	ops := newTestContext(t, t.TempDir())

	_, resp, err := SearchPDFContentToolHandler(context.Background(), nil, SearchPDFContentQuery{Query: "protocol"}, ops, ops.Log)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Zero(t, resp.TotalFilesSearched)
	assert.Zero(t, resp.FilesWithMatches)
	assert.Empty(t, resp.Results)
}

func TestSearchDocumentsToolHandlerEmptyQuery(t *testing.T) {
	ops := newTestContext(t, t.TempDir())

	_, resp, err := SearchDocumentsToolHandler(context.Background(), nil, SearchDocumentsQuery{}, ops, ops.Log)
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Equal(t, "query is required", resp.Error)
}

func TestSearchDocumentsToolHandlerSkipsUnreadableFiles(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "broken.pdf", "not a pdf")
	ops := newTestContext(t, dir)

	query := SearchDocumentsQuery{Query: "protocol"}
	_, resp, err := SearchDocumentsToolHandler(context.Background(), nil, query, ops, ops.Log)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.TotalFilesSearched)
	assert.Zero(t, resp.FilesWithMatches)
	assert.Empty(t, resp.Results)
}

func TestSearchDocumentsToolHandlerDocFilter(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "Meridian_VDD_V2.pdf", "not a pdf")
	writeTestFile(t, dir, "Meridian_Technical_Standard_V1.pdf", "not a pdf")
	ops := newTestContext(t, dir)

	query := SearchDocumentsQuery{Query: "protocol", DocFilter: "vdd"}
	_, resp, err := SearchDocumentsToolHandler(context.Background(), nil, query, ops, ops.Log)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.TotalFilesSearched)
}

func TestExtractImagesMetadataToolHandlerFileNotFound(t *testing.T) {
	ops := newTestContext(t, t.TempDir())

	_, resp, err := ExtractImagesMetadataToolHandler(context.Background(), nil, ExtractImagesMetadataQuery{FilePath: "missing.pdf"}, ops, ops.Log)
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Equal(t, "File not found: missing.pdf", resp.Error)
	assert.Empty(t, resp.Images)
}
