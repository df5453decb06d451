// Package outline reconstructs hierarchical document outlines from two
// noisy signal sources: font-formatting text spans and embedded PDF
// bookmarks. Detection, merging, classification, tree building, and
// content binding are separate stages so each is testable without a PDF.
package outline

import (
	"github.com/docstrata/strata-mcp/internal/logger"
	"github.com/docstrata/strata-mcp/internal/pdfproc"
	"github.com/docstrata/strata-mcp/models"
)

// Parser reconstructs document outlines from the span and bookmark streams
// of a pdfproc.Processor.
type Parser struct {
	proc *pdfproc.Processor
	log  logger.Logger
}

func NewParser(proc *pdfproc.Processor, log logger.Logger) *Parser {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Parser{proc: proc, log: log}
}

// ParseStructure rebuilds the full hierarchical outline of one document.
// The outline is computed fresh on every call and never cached or
// persisted. Missing bookmarks degrade to formatting-only detection.
func (p *Parser) ParseStructure(path string) (*models.DocumentOutline, error) {
	spans, err := p.proc.Spans(path)
	if err != nil {
		return nil, err
	}
	bookmarks, err := p.proc.Bookmarks(path)
	if err != nil {
		p.log.Debug("No bookmarks for %s: %v", path, err)
	}

	formatting := DetectHeaders(spans)
	merged := MergeCandidates(formatting, BookmarkCandidates(bookmarks))
	p.log.Debug("Merged %d formatting and %d bookmark candidates into %d headers for %s",
		len(formatting), len(bookmarks), len(merged), path)

	sections := BuildHierarchy(merged)
	BackfillEndPages(sections)
	BindContent(sections)

	return &models.DocumentOutline{
		Sections:        sections,
		TotalSections:   CountSections(sections),
		MaxDepth:        MaxDepth(sections),
		NumberingScheme: DetectNumberingScheme(merged),
	}, nil
}
