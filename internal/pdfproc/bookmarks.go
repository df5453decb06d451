package pdfproc

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"

	"github.com/docstrata/strata-mcp/models"
)

// Bookmarks returns the document outline flattened in pre-order, with
// 1-based nesting levels and target pages. Documents without an outline
// yield an empty slice and no error.
func (p *Processor) Bookmarks(path string) ([]models.Bookmark, error) {
	if err := p.ValidateFile(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, err)
	}
	defer f.Close()

	tree, err := api.Bookmarks(f, nil)
	if err != nil {
		// pdfcpu reports an absent outline as an error. Treat every
		// failure here as "no bookmarks": the outline engine and the
		// metadata flags degrade cleanly without them.
		p.log.Debug("No bookmarks read from %s: %v", path, err)
		return nil, nil
	}

	var out []models.Bookmark
	flattenBookmarks(tree, 1, &out)
	return out, nil
}

func flattenBookmarks(tree []pdfcpu.Bookmark, level int, out *[]models.Bookmark) {
	for _, bm := range tree {
		title := strings.TrimSpace(bm.Title)
		if title != "" {
			*out = append(*out, models.Bookmark{
				Title: title,
				Level: level,
				Page:  bm.PageFrom,
			})
		}
		if len(bm.Kids) > 0 {
			flattenBookmarks(bm.Kids, level+1, out)
		}
	}
}
