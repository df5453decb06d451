// Package pdfproc reads PDF files from disk: validation, document and page
// metadata, page text, positioned text spans, bookmarks, and image counts.
// It wraps pdfcpu for structural access and ledongthuc/pdf for text and
// font-level detail. Nothing here interprets document semantics; the outline
// engine layers on top of the spans and bookmarks produced here.
package pdfproc

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/docstrata/strata-mcp/internal/logger"
	"github.com/docstrata/strata-mcp/models"
)

const (
	defaultMaxFileSize = 100 * 1024 * 1024

	// largeFontSize marks a span as header-sized in the coarse structure
	// scan. Matches the outline detector threshold.
	largeFontSize = 12.0

	// maxStructureHeaders caps how many header lines feed the flat section
	// summary of an extraction result.
	maxStructureHeaders = 20
)

// Processor reads PDF files with a size cap. The zero value is not usable;
// construct with NewProcessor.
type Processor struct {
	MaxFileSize int64

	log logger.Logger
}

// NewProcessor returns a Processor enforcing the given size cap in bytes.
// A non-positive cap selects the 100 MB default.
func NewProcessor(maxFileSize int64, log logger.Logger) *Processor {
	if maxFileSize <= 0 {
		maxFileSize = defaultMaxFileSize
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Processor{MaxFileSize: maxFileSize, log: log}
}

// ValidateFile checks that path names a readable PDF within the size cap.
func (p *Processor) ValidateFile(path string) error {
	stat, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: file does not exist: %s", ErrFileNotFound, path)
	}
	if stat.IsDir() {
		return fmt.Errorf("%w: path is not a file: %s", ErrInvalidDocument, path)
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return fmt.Errorf("%w: file is not a PDF: %s", ErrInvalidDocument, path)
	}
	if stat.Size() > p.MaxFileSize {
		return fmt.Errorf("%w: file too large: %d bytes (max: %d)", ErrInvalidDocument, stat.Size(), p.MaxFileSize)
	}
	return nil
}

// Metadata extracts the document information dictionary plus derived flags.
// Unparseable fields degrade to zero values rather than failing the call.
func (p *Processor) Metadata(path string) (*models.DocumentMetadata, error) {
	if err := p.ValidateFile(path); err != nil {
		return nil, err
	}
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, path, err)
	}
	defer f.Close()

	bookmarks, err := p.Bookmarks(path)
	if err != nil {
		p.log.Debug("Bookmark scan failed for %s: %v", path, err)
	}
	return p.documentMetadata(path, reader, len(bookmarks) > 0), nil
}

// documentMetadata reads what it can from an open document. ledongthuc/pdf
// panics on some malformed objects, so a partial result is kept on recover.
func (p *Processor) documentMetadata(path string, reader *pdf.Reader, hasBookmarks bool) (meta *models.DocumentMetadata) {
	meta = &models.DocumentMetadata{
		FilePath:     path,
		HasBookmarks: hasBookmarks,
	}
	if stat, err := os.Stat(path); err == nil {
		meta.FileSize = stat.Size()
	}

	defer func() {
		if r := recover(); r != nil {
			p.log.Warn("Metadata extraction failed for %s: %v", path, r)
		}
	}()

	meta.PageCount = reader.NumPage()

	trailer := reader.Trailer()
	if info := trailer.Key("Info"); !info.IsNull() {
		meta.Title = info.Key("Title").Text()
		meta.Author = info.Key("Author").Text()
		meta.Subject = info.Key("Subject").Text()
		meta.Creator = info.Key("Creator").Text()
		meta.Producer = info.Key("Producer").Text()
		meta.CreationDate = p.parseDate(path, info.Key("CreationDate").RawString())
		meta.ModificationDate = p.parseDate(path, info.Key("ModDate").RawString())
	}
	meta.IsEncrypted = !trailer.Key("Encrypt").IsNull()
	meta.HasForms = !trailer.Key("Root").Key("AcroForm").IsNull()
	return meta
}

func (p *Processor) parseDate(path, raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t := ParsePDFDate(raw)
	if t == nil {
		p.log.Debug("Could not parse PDF date %q in %s", raw, path)
	}
	return t
}

// ExtractContent extracts text, metadata, coarse structure, and per-page
// metadata for the inclusive 1-based page range [startPage, endPage]. An
// endPage of 0 means through the last page. Pages that fail to decode
// contribute an error marker and processing continues; an out-of-bounds
// range fails the whole call with ErrPageRange.
func (p *Processor) ExtractContent(path string, startPage, endPage int) (*models.PDFContent, error) {
	if err := p.ValidateFile(path); err != nil {
		return nil, err
	}
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, path, err)
	}
	defer f.Close()

	pageCount := reader.NumPage()
	if endPage <= 0 {
		endPage = pageCount
	}
	if startPage < 1 || startPage > pageCount {
		return nil, fmt.Errorf("%w: invalid start page: %d", ErrPageRange, startPage)
	}
	if endPage < startPage || endPage > pageCount {
		return nil, fmt.Errorf("%w: invalid end page: %d", ErrPageRange, endPage)
	}

	bookmarks, err := p.Bookmarks(path)
	if err != nil {
		p.log.Debug("Bookmark scan failed for %s: %v", path, err)
	}

	var parts []string
	pages := make([]models.PageMetadata, 0, endPage-startPage+1)
	for pageNum := startPage; pageNum <= endPage; pageNum++ {
		pageText, err := p.pageText(reader, pageNum)
		if err != nil {
			p.log.Error("Error processing page %d of %s: %v", pageNum, path, err)
			parts = append(parts,
				fmt.Sprintf("\n--- Page %d (ERROR) ---\n", pageNum),
				fmt.Sprintf("Error extracting text: %v", err))
			pages = append(pages, models.PageMetadata{PageNumber: pageNum})
			continue
		}
		parts = append(parts, fmt.Sprintf("\n--- Page %d ---\n", pageNum), pageText)
		pages = append(pages, p.pageMetadata(reader, pageNum, len(pageText)))
	}

	meta := p.documentMetadata(path, reader, len(bookmarks) > 0)
	return &models.PDFContent{
		Text:                strings.Join(parts, "\n"),
		Metadata:            *meta,
		Structure:           p.structure(reader, bookmarks),
		Pages:               pages,
		ExtractionTimestamp: time.Now(),
	}, nil
}

// pageText returns the plain text of one page. Decode panics from the
// underlying reader are converted into errors.
func (p *Processor) pageText(reader *pdf.Reader, pageNum int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("page %d text: %v", pageNum, r)
		}
	}()

	page := reader.Page(pageNum)
	if page.V.IsNull() {
		return "", fmt.Errorf("page %d not found", pageNum)
	}
	return page.GetPlainText(nil)
}

func (p *Processor) pageMetadata(reader *pdf.Reader, pageNum, textLength int) (pm models.PageMetadata) {
	pm = models.PageMetadata{PageNumber: pageNum, TextLength: textLength}
	defer func() {
		if r := recover(); r != nil {
			p.log.Warn("Page metadata extraction failed for page %d: %v", pageNum, r)
		}
	}()

	page := reader.Page(pageNum)
	if page.V.IsNull() {
		return pm
	}
	pm.Width, pm.Height = pageDims(page)
	pm.Rotation = int(page.V.Key("Rotate").Int64())
	pm.HasImages = pageHasImages(page)
	pm.HasLinks = pageHasLinks(page)
	return pm
}

// pageDims resolves the MediaBox, walking up the page tree for inherited
// values, and falls back to US Letter.
func pageDims(page pdf.Page) (width, height float64) {
	v := page.V
	for depth := 0; depth < 8 && !v.IsNull(); depth++ {
		box := v.Key("MediaBox")
		if box.Kind() == pdf.Array && box.Len() == 4 {
			llx, lly := box.Index(0).Float64(), box.Index(1).Float64()
			urx, ury := box.Index(2).Float64(), box.Index(3).Float64()
			if urx > llx && ury > lly {
				return urx - llx, ury - lly
			}
		}
		v = v.Key("Parent")
	}
	return 612, 792
}

func pageHasImages(page pdf.Page) bool {
	xobjects := page.V.Key("Resources").Key("XObject")
	if xobjects.Kind() != pdf.Dict {
		return false
	}
	for _, name := range xobjects.Keys() {
		if xobjects.Key(name).Key("Subtype").Name() == "Image" {
			return true
		}
	}
	return false
}

func pageHasLinks(page pdf.Page) bool {
	annots := page.V.Key("Annots")
	if annots.Kind() != pdf.Array {
		return false
	}
	for i := 0; i < annots.Len(); i++ {
		if annots.Index(i).Key("Subtype").Name() == "Link" {
			return true
		}
	}
	return false
}

// structure builds the flat structural summary attached to extraction
// results: bookmark titles, header-sized lines, a page-ordered merge of
// both, and page labels. The outline engine rebuilds the real hierarchy
// separately; this is a cheap overview.
func (p *Processor) structure(reader *pdf.Reader, bookmarks []models.Bookmark) models.DocumentStructure {
	var st models.DocumentStructure
	for _, bm := range bookmarks {
		st.Bookmarks = append(st.Bookmarks, bm.Title)
	}

	type headerLine struct {
		text string
		page int
	}
	var headers []headerLine
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		spans, err := p.pageSpans(reader, pageNum)
		if err != nil {
			p.log.Debug("Structure scan skipped page %d: %v", pageNum, err)
			continue
		}
		for _, span := range spans {
			text := strings.TrimSpace(span.Text)
			if len(text) > 3 && (span.Bold || span.FontSize > largeFontSize) {
				headers = append(headers, headerLine{text: text, page: span.Page})
				st.Headers = append(st.Headers, text)
			}
		}
	}

	type sectionRef struct {
		title string
		page  int
	}
	refs := make([]sectionRef, 0, len(bookmarks))
	for _, bm := range bookmarks {
		refs = append(refs, sectionRef{title: bm.Title, page: bm.Page})
	}
	limit := min(len(headers), maxStructureHeaders)
	for _, h := range headers[:limit] {
		refs = append(refs, sectionRef{title: h.text, page: h.page})
	}
	sort.SliceStable(refs, func(i, j int) bool { return refs[i].page < refs[j].page })
	for _, ref := range refs {
		st.Sections = append(st.Sections, ref.title)
	}

	for i := 1; i <= reader.NumPage(); i++ {
		st.PageLabels = append(st.PageLabels, fmt.Sprintf("Page %d", i))
	}
	return st
}
