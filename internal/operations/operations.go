// Package operations carries the shared collaborators and plumbing used by
// every tool handler: the data directory, the PDF processor, the outline
// parser, and the knowledge graph. Handlers receive one explicit Context
// instead of reaching for package globals, so tests can wire throwaway
// directories and processors.
package operations

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/docstrata/strata-mcp/internal/compliance"
	"github.com/docstrata/strata-mcp/internal/knowledge"
	"github.com/docstrata/strata-mcp/internal/logger"
	"github.com/docstrata/strata-mcp/internal/outline"
	"github.com/docstrata/strata-mcp/internal/pdfproc"
)

// Context is the dependency set shared by the tool handlers.
type Context struct {
	DataDir string
	Proc    *pdfproc.Processor
	Parser  *outline.Parser
	Graph   *knowledge.Graph
	Log     logger.Logger
}

// NewContext wires the shared collaborators used by every tool handler.
func NewContext(dataDir string, proc *pdfproc.Processor, parser *outline.Parser, graph *knowledge.Graph, log logger.Logger) *Context {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Context{DataDir: dataDir, Proc: proc, Parser: parser, Graph: graph, Log: log}
}

// ResolvePath resolves a document path. Relative paths resolve inside the
// data directory; absolute paths pass through unchanged.
func (c *Context) ResolvePath(filePath string) string {
	if filepath.IsAbs(filePath) {
		return filePath
	}
	return filepath.Join(c.DataDir, filePath)
}

// ResolveExisting resolves a document path and confirms the file exists.
// The resolved path is returned even on error so responses can echo it.
func (c *Context) ResolveExisting(filePath string) (string, error) {
	resolved := c.ResolvePath(filePath)
	if _, err := os.Stat(resolved); err != nil {
		return resolved, err
	}
	return resolved, nil
}

// FileInfo is one data-directory entry as surfaced by the file listing.
type FileInfo struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	Size      int64  `json:"size"`
	Modified  int64  `json:"modified"`
	Extension string `json:"extension"`
}

// ListFiles returns every regular file in the data directory, in name
// order.
func (c *Context) ListFiles() ([]FileInfo, error) {
	entries, err := os.ReadDir(c.DataDir)
	if err != nil {
		return nil, err
	}
	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			c.Log.Error("Error reading %s: %v", entry.Name(), err)
			continue
		}
		files = append(files, FileInfo{
			Name:      entry.Name(),
			Path:      filepath.Join(c.DataDir, entry.Name()),
			Size:      info.Size(),
			Modified:  info.ModTime().Unix(),
			Extension: strings.ToLower(filepath.Ext(entry.Name())),
		})
	}
	return files, nil
}

// ListPDFs returns the PDF filenames in the data directory, in name order.
func (c *Context) ListPDFs() ([]string, error) {
	entries, err := os.ReadDir(c.DataDir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// DocumentsMatching extracts the full text of every data-directory PDF
// whose filename passes the filter. Files that fail extraction are logged
// and skipped so one unreadable document cannot sink the whole scan.
func (c *Context) DocumentsMatching(filter func(string) bool) ([]compliance.Document, error) {
	names, err := c.ListPDFs()
	if err != nil {
		return nil, err
	}
	var docs []compliance.Document
	for _, name := range names {
		if !filter(name) {
			continue
		}
		content, err := c.Proc.ExtractContent(filepath.Join(c.DataDir, name), 1, 0)
		if err != nil {
			c.Log.Error("Error extracting %s: %v", name, err)
			continue
		}
		docs = append(docs, compliance.Document{Name: name, Text: content.Text})
	}
	return docs, nil
}
