package resources

import (
	"context"
	"encoding/json"
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

func newTestHandler(t *testing.T, dataDir string) *DocumentResourceHandler {
	t.Helper()
	log := logger.NewNoOpLogger()
	proc := pdfproc.NewProcessor(0, log)
	parser := outline.NewParser(proc, log)
	graph, err := knowledge.Load()
	require.NoError(t, err)
	return NewDocumentResourceHandler(operations.NewContext(dataDir, proc, parser, graph, log))
}

func TestReadResourceCatalog(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Meridian_VDD_V2.pdf"), []byte("stub"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("stub"), 0o644))
	handler := newTestHandler(t, dir)

	result, err := handler.ReadResource(context.Background(), "doc://documents")
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "doc://documents", result.Contents[0].URI)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)

	var catalog struct {
		DocumentCount int `json:"document_count"`
		Documents     []struct {
			Name string `json:"name"`
		} `json:"documents"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &catalog))
	assert.Equal(t, 1, catalog.DocumentCount)
	require.Len(t, catalog.Documents, 1)
	assert.Equal(t, "Meridian_VDD_V2.pdf", catalog.Documents[0].Name)
}

func TestReadResourceInvalidScheme(t *testing.T) {
	handler := newTestHandler(t, t.TempDir())

	_, err := handler.ReadResource(context.Background(), "pdf://whatever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid URI scheme")
}

func TestReadResourceMissingDocument(t *testing.T) {
	handler := newTestHandler(t, t.TempDir())

	_, err := handler.ReadResource(context.Background(), "doc://missing.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document not found: missing.pdf")
}

func TestReadResourceUnknownSubresource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.pdf"), []byte("stub"), 0o644))
	handler := newTestHandler(t, dir)

	_, err := handler.ReadResource(context.Background(), "doc://doc.pdf/thumbnails")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown resource")
}

func TestListResources(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.pdf"), []byte("stub"), 0o644))
	handler := newTestHandler(t, dir)

	resources, err := handler.ListResources(context.Background())
	require.NoError(t, err)

	// Catalog entry plus metadata and outline per document.
	require.Len(t, resources, 3)
	assert.Equal(t, "doc://documents", resources[0].URI)
	assert.Equal(t, "doc://doc.pdf", resources[1].URI)
	assert.Equal(t, "doc://doc.pdf/outline", resources[2].URI)
}
