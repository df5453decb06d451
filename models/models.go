package models

import "time"

// Span is a run of text sharing one font and style, as reported by the
// page-rendering layer. BBox is [x0, y0, x1, y1] in page coordinates and is
// zero-valued when the source carries no position information.
type Span struct {
	Text     string     `json:"text"`
	Page     int        `json:"page"`
	FontSize float64    `json:"font_size"`
	FontName string     `json:"font_name,omitempty"`
	Bold     bool       `json:"bold"`
	Italic   bool       `json:"italic"`
	BBox     [4]float64 `json:"bbox,omitempty"`
	HasBBox  bool       `json:"-"`
}

// Bookmark is a PDF-native table-of-contents entry.
type Bookmark struct {
	Title string `json:"title"`
	Level int    `json:"level"`
	Page  int    `json:"page"`
}

// CandidateSource tags where a header candidate came from.
type CandidateSource string

const (
	SourceFormatting CandidateSource = "formatting"
	SourceBookmark   CandidateSource = "bookmark"
)

// HeaderCandidate is an unconfirmed, scored potential header. Candidates are
// produced by formatting analysis or bookmark entries, merged, and consumed
// by classification; they do not outlive outline construction.
type HeaderCandidate struct {
	Text       string
	Page       int
	FontSize   float64
	Bold       bool
	Italic     bool
	BBox       [4]float64
	HasBBox    bool
	Confidence float64
	Source     CandidateSource
}

// SectionType classifies the semantic role of a section.
type SectionType string

const (
	SectionTypeTitle         SectionType = "title"
	SectionTypeChapter       SectionType = "chapter"
	SectionTypeSection       SectionType = "section"
	SectionTypeSubsection    SectionType = "subsection"
	SectionTypeSubsubsection SectionType = "subsubsection"
	SectionTypeAppendix      SectionType = "appendix"
	SectionTypeReference     SectionType = "reference"
	SectionTypeGlossary      SectionType = "glossary"
	SectionTypeIndex         SectionType = "index"
	SectionTypeUnknown       SectionType = "unknown"
)

// Section is one node of a reconstructed document outline. A section owns its
// Subsections subtree; ParentSection is an informational back-reference by
// title, never a pointer. PageEnd of 0 means the section extends to the end
// of the document (or of its parent's range).
type Section struct {
	Title         string      `json:"title"`
	Type          SectionType `json:"section_type"`
	Level         int         `json:"level"`
	PageStart     int         `json:"page_start"`
	PageEnd       int         `json:"page_end,omitempty"`
	SectionNumber string      `json:"section_number,omitempty"`
	ParentSection string      `json:"parent_section,omitempty"`
	TextContent   string      `json:"text_content,omitempty"`
	Subsections   []*Section  `json:"subsections"`
}

// DocumentOutline is the full hierarchical structure of one document. It is
// built per parse call and never persisted.
type DocumentOutline struct {
	Sections        []*Section `json:"sections"`
	TotalSections   int        `json:"total_sections"`
	MaxDepth        int        `json:"max_depth"`
	NumberingScheme string     `json:"section_numbering_scheme"`
}

// DocumentMetadata holds document-level properties. Date fields are nil when
// the embedded date string is absent or unparseable.
type DocumentMetadata struct {
	FilePath         string     `json:"file_path"`
	FileSize         int64      `json:"file_size"`
	PageCount        int        `json:"page_count"`
	Title            string     `json:"title,omitempty"`
	Author           string     `json:"author,omitempty"`
	Subject          string     `json:"subject,omitempty"`
	Creator          string     `json:"creator,omitempty"`
	Producer         string     `json:"producer,omitempty"`
	CreationDate     *time.Time `json:"creation_date,omitempty"`
	ModificationDate *time.Time `json:"modification_date,omitempty"`
	IsEncrypted      bool       `json:"is_encrypted"`
	IsPDFA           bool       `json:"is_pdf_a"`
	HasForms         bool       `json:"has_forms"`
	HasBookmarks     bool       `json:"has_bookmarks"`
}

type PageMetadata struct {
	PageNumber int     `json:"page_number"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Rotation   int     `json:"rotation"`
	TextLength int     `json:"text_length"`
	HasImages  bool    `json:"has_images"`
	HasLinks   bool    `json:"has_links"`
}

// DocumentStructure is the coarse structural summary returned alongside full
// content extraction: flat title lists, not the reconstructed hierarchy.
type DocumentStructure struct {
	Sections   []string `json:"sections"`
	Headers    []string `json:"headers"`
	Bookmarks  []string `json:"bookmarks"`
	PageLabels []string `json:"page_labels"`
}

// PDFContent is the result of a full content extraction over a page range.
type PDFContent struct {
	Text                string            `json:"text"`
	Metadata            DocumentMetadata  `json:"metadata"`
	Structure           DocumentStructure `json:"structure"`
	Pages               []PageMetadata    `json:"pages"`
	ExtractionTimestamp time.Time         `json:"extraction_timestamp"`
}

// PageImages describes the images found on one page.
type PageImages struct {
	PageNumber int     `json:"page_number"`
	ImageCount int     `json:"image_count"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}
