package pdf

import (
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Document is a read-only handle to a parsed PDF. It is opened once per
// split run and shared across all range extractions.
type Document struct {
	ctx *model.Context
}

// Open parses, validates and optimizes the PDF at path. The OS file handle
// is released before Open returns; the parsed context stays in memory.
func Open(path string, strict bool) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if strict {
		conf.ValidationMode = model.ValidationStrict
	}

	ctx, err := api.ReadContext(f, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to validate PDF: %w", err)
	}
	if err := api.OptimizeContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to optimize PDF: %w", err)
	}
	return &Document{ctx: ctx}, nil
}

// PageCount reports the number of pages in the source document.
func (d *Document) PageCount() int {
	return d.ctx.PageCount
}

// WritePages extracts the given 1-based pages into a fresh document and
// serializes it to w. An empty selection produces a valid zero-page PDF.
func (d *Document) WritePages(w io.Writer, pages []int) error {
	dest, err := pdfcpu.ExtractPages(d.ctx, pages, false)
	if err != nil {
		return fmt.Errorf("failed to extract pages: %w", err)
	}
	if err := api.WriteContext(dest, w); err != nil {
		return fmt.Errorf("failed to write PDF context: %w", err)
	}
	return nil
}
