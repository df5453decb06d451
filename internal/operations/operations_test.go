package operations

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestResolvePath(t *testing.T) {
	ops := NewContext("/srv/docs", nil, nil, nil, nil)

	assert.Equal(t, filepath.Join("/srv/docs", "report.pdf"), ops.ResolvePath("report.pdf"))
	assert.Equal(t, "/tmp/elsewhere/report.pdf", ops.ResolvePath("/tmp/elsewhere/report.pdf"))
}

func TestResolveExisting(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "present.pdf", "content")
	ops := NewContext(dir, nil, nil, nil, nil)

	resolved, err := ops.ResolveExisting("present.pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "present.pdf"), resolved)

	resolved, err = ops.ResolveExisting("absent.pdf")
	assert.Error(t, err)
	assert.Equal(t, filepath.Join(dir, "absent.pdf"), resolved, "resolved path comes back even on error")
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "standard.pdf", "pdf bytes")
	writeFile(t, dir, "notes.txt", "text")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
	ops := NewContext(dir, nil, nil, nil, nil)

	files, err := ops.ListFiles()
	require.NoError(t, err)
	require.Len(t, files, 2, "directories are skipped")

	assert.Equal(t, "notes.txt", files[0].Name)
	assert.Equal(t, ".txt", files[0].Extension)

	pdf := files[1]
	assert.Equal(t, "standard.pdf", pdf.Name)
	assert.Equal(t, filepath.Join(dir, "standard.pdf"), pdf.Path)
	assert.Equal(t, int64(len("pdf bytes")), pdf.Size)
	assert.Equal(t, ".pdf", pdf.Extension)
	assert.Greater(t, pdf.Modified, int64(0))
}

func TestListFilesMissingDirectory(t *testing.T) {
	ops := NewContext(filepath.Join(t.TempDir(), "absent"), nil, nil, nil, nil)

	_, err := ops.ListFiles()
	assert.Error(t, err)
}

func TestListPDFs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.pdf", "x")
	writeFile(t, dir, "B.PDF", "x")
	writeFile(t, dir, "c.txt", "x")
	ops := NewContext(dir, nil, nil, nil, nil)

	names, err := ops.ListPDFs()
	require.NoError(t, err)
	assert.Equal(t, []string{"B.PDF", "a.pdf"}, names, "extension match is case-insensitive")
}

func TestDocumentsMatchingEmptyDirectory(t *testing.T) {
	ops := NewContext(t.TempDir(), nil, nil, nil, nil)

	docs, err := ops.DocumentsMatching(func(string) bool { return true })
	require.NoError(t, err)
	assert.Empty(t, docs)
}
