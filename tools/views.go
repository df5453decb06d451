package tools

import (
	"github.com/docstrata/strata-mcp/models"
)

// maxSectionPreview bounds the text carried per section in structure views.
const maxSectionPreview = 500

// SectionView is one outline node as returned by the structure tool: the
// full hierarchy with a bounded text preview per section.
type SectionView struct {
	Title         string        `json:"title"`
	SectionType   string        `json:"section_type"`
	Level         int           `json:"level"`
	PageStart     int           `json:"page_start"`
	PageEnd       int           `json:"page_end"`
	SectionNumber string        `json:"section_number"`
	ParentSection string        `json:"parent_section"`
	Subsections   []SectionView `json:"subsections"`
	TextContent   string        `json:"text_content"`
}

func sectionView(s *models.Section) SectionView {
	text := s.TextContent
	if len(text) > maxSectionPreview {
		text = text[:maxSectionPreview] + "..."
	}
	subs := make([]SectionView, 0, len(s.Subsections))
	for _, sub := range s.Subsections {
		subs = append(subs, sectionView(sub))
	}
	return SectionView{
		Title:         s.Title,
		SectionType:   string(s.Type),
		Level:         s.Level,
		PageStart:     s.PageStart,
		PageEnd:       s.PageEnd,
		SectionNumber: s.SectionNumber,
		ParentSection: s.ParentSection,
		Subsections:   subs,
		TextContent:   text,
	}
}

// OutlineItem is one outline node as returned by the outline tool. It
// carries navigation fields only, no section text.
type OutlineItem struct {
	Title         string        `json:"title"`
	Level         int           `json:"level"`
	SectionNumber string        `json:"section_number"`
	PageStart     int           `json:"page_start"`
	PageEnd       int           `json:"page_end"`
	SectionType   string        `json:"section_type"`
	Subsections   []OutlineItem `json:"subsections"`
}

func outlineItem(s *models.Section) OutlineItem {
	subs := make([]OutlineItem, 0, len(s.Subsections))
	for _, sub := range s.Subsections {
		subs = append(subs, outlineItem(sub))
	}
	return OutlineItem{
		Title:         s.Title,
		Level:         s.Level,
		SectionNumber: s.SectionNumber,
		PageStart:     s.PageStart,
		PageEnd:       s.PageEnd,
		SectionType:   string(s.Type),
		Subsections:   subs,
	}
}

// SearchMatch is one query hit inside a document's extracted text.
type SearchMatch struct {
	Position     int    `json:"position"`
	Context      string `json:"context"`
	PageEstimate int    `json:"page_estimate"`
}

// pageEstimate maps a character position in concatenated page text to a
// page number by walking cumulative page text lengths. The estimate is
// rough: page separators inserted during extraction shift positions
// slightly, so the result is clamped to the real page count.
func pageEstimate(pos int, pages []models.PageMetadata, pageCount int) int {
	pageNum := 1
	charCount := 0
	for _, page := range pages {
		if charCount+page.TextLength > pos {
			break
		}
		charCount += page.TextLength
		pageNum++
	}
	if pageNum > pageCount {
		pageNum = pageCount
	}
	return pageNum
}
