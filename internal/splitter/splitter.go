package splitter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/coba-yu/pdf-util/internal/pdf"
)

// Splitter writes one PDF per break-page range. The source document is
// opened once and read sequentially; outputs are written one at a time,
// each closed before the next range begins.
type Splitter struct {
	config *SplitConfig
	doc    *pdf.Document
}

// NewSplitter opens and validates the source document named by cfg.
func NewSplitter(cfg *SplitConfig, strict bool) (*Splitter, error) {
	doc, err := pdf.Open(cfg.SourcePath, strict)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	return &Splitter{config: cfg, doc: doc}, nil
}

// PageCount reports the total page count of the source document.
func (s *Splitter) PageCount() int {
	return s.doc.PageCount()
}

// Split writes one output PDF per break-page range and returns the number
// of files created. Break pages outside [1, pageCount] are skipped with a
// warning and not counted. Any write error aborts the run; files already
// written stay on disk.
func (s *Splitter) Split(ctx context.Context) (int, error) {
	logCtx := slog.With("source", s.config.SourcePath)

	if err := os.MkdirAll(s.config.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create output directory %s: %w", s.config.OutputDir, err)
	}

	base := strings.TrimSuffix(filepath.Base(s.config.SourcePath), filepath.Ext(s.config.SourcePath))
	total := s.doc.PageCount()
	created := 0

	for i, start := range s.config.BreakPages {
		if err := ctx.Err(); err != nil {
			return created, err
		}

		end := rangeEnd(s.config.BreakPages, i, total)
		if start < 1 || start > total {
			logCtx.Warn("Break page out of range. Skipping.", "page", start, "totalPages", total)
			continue
		}

		name := fmt.Sprintf("%s_chapter%02d_p%d-%d.pdf", base, i+1, start, end)
		outPath := filepath.Join(s.config.OutputDir, name)
		if err := s.writeRange(outPath, start, end); err != nil {
			return created, err
		}

		logCtx.Info("Created split file.", "path", outPath, "firstPage", start, "lastPage", end)
		created++
	}
	return created, nil
}

// rangeEnd computes the inclusive last page of range i: one before the next
// break page, or the document's last page for the final range, clamped to
// the page count. It is less than the start page when adjacent break pages
// are equal; that range yields a zero-page output.
func rangeEnd(breaks []int, i, total int) int {
	end := total
	if i+1 < len(breaks) {
		end = breaks[i+1] - 1
	}
	if end > total {
		end = total
	}
	return end
}

func (s *Splitter) writeRange(path string, start, end int) error {
	var pages []int
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := s.doc.WritePages(f, pages); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
