package pdfproc

import (
	"fmt"
	"math"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/docstrata/strata-mcp/models"
)

const (
	// rowTolerance is the Y distance within which glyphs belong to one line.
	rowTolerance = 0.5

	// wordSpaceMultiplier inserts a space when the horizontal gap between
	// glyph runs exceeds this fraction of the font size. Many PDFs encode
	// word breaks as positioning rather than space glyphs.
	wordSpaceMultiplier = 0.3
)

// fontStyles infers bold and italic from a font name such as
// "ABCDEF+Helvetica-BoldOblique". Embedded fonts carry style in the name.
func fontStyles(fontName string) (bold, italic bool) {
	name := strings.ToLower(fontName)
	bold = strings.Contains(name, "bold") || strings.Contains(name, "black")
	italic = strings.Contains(name, "italic") || strings.Contains(name, "oblique")
	return bold, italic
}

// Spans returns positioned text runs for every page in reading-stream order,
// merging consecutive glyphs that share a line and font. Pages that fail to
// decode are logged and skipped.
func (p *Processor) Spans(path string) ([]models.Span, error) {
	if err := p.ValidateFile(path); err != nil {
		return nil, err
	}
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, path, err)
	}
	defer f.Close()

	var spans []models.Span
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		pageSpans, err := p.pageSpans(reader, pageNum)
		if err != nil {
			p.log.Warn("Span extraction failed for page %d of %s: %v", pageNum, path, err)
			continue
		}
		spans = append(spans, pageSpans...)
	}
	return spans, nil
}

// pageSpans groups the page's glyph stream into line-level spans. Decode
// panics from the underlying reader are converted into errors.
func (p *Processor) pageSpans(reader *pdf.Reader, pageNum int) (spans []models.Span, err error) {
	defer func() {
		if r := recover(); r != nil {
			spans = nil
			err = fmt.Errorf("page %d spans: %v", pageNum, r)
		}
	}()

	page := reader.Page(pageNum)
	if page.V.IsNull() {
		return nil, nil
	}
	_, pageHeight := pageDims(page)

	var (
		b       strings.Builder
		cur     models.Span
		baseY   float64
		startX  float64
		maxX    float64
		prevEnd float64
	)
	flush := func() {
		if b.Len() == 0 {
			return
		}
		cur.Text = b.String()
		// Glyph positions are bottom-up PDF coordinates; span boxes use a
		// top-left origin, so ascending Y is reading order.
		cur.BBox = [4]float64{startX, pageHeight - baseY - cur.FontSize, maxX, pageHeight - baseY}
		spans = append(spans, cur)
		b.Reset()
	}

	for _, t := range page.Content().Text {
		if t.S == "" || t.S == "\n" {
			continue
		}
		sameRun := b.Len() > 0 &&
			t.Font == cur.FontName &&
			t.FontSize == cur.FontSize &&
			math.Abs(t.Y-baseY) <= rowTolerance
		if !sameRun {
			flush()
			bold, italic := fontStyles(t.Font)
			cur = models.Span{
				Page:     pageNum,
				FontSize: t.FontSize,
				FontName: t.Font,
				Bold:     bold,
				Italic:   italic,
				HasBBox:  true,
			}
			baseY = t.Y
			startX = t.X
			maxX = t.X + t.W
		} else if t.X-prevEnd > t.FontSize*wordSpaceMultiplier {
			b.WriteByte(' ')
		}
		b.WriteString(t.S)
		prevEnd = t.X + t.W
		if prevEnd > maxX {
			maxX = prevEnd
		}
	}
	flush()
	return spans, nil
}
