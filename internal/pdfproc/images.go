package pdfproc

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/docstrata/strata-mcp/models"
)

// ImagesMetadata reports the image count and page dimensions for every page.
// Image objects are counted from the optimized cross-reference data; pages
// without images still appear with a zero count.
func (p *Processor) ImagesMetadata(path string) ([]models.PageImages, error) {
	if err := p.ValidateFile(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, err)
	}
	defer f.Close()

	ctx, err := api.ReadValidateAndOptimize(f, model.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, path, err)
	}

	dimsFile, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, path, err)
	}
	defer dimsFile.Close()

	pages := make([]models.PageImages, 0, ctx.PageCount)
	for pageNum := 1; pageNum <= ctx.PageCount; pageNum++ {
		pi := models.PageImages{PageNumber: pageNum}
		if ctx.Optimize != nil {
			pi.ImageCount = len(pdfcpu.ImageObjNrs(ctx, pageNum))
		}
		if page := reader.Page(pageNum); !page.V.IsNull() {
			pi.Width, pi.Height = pageDims(page)
		}
		pages = append(pages, pi)
	}
	return pages, nil
}
