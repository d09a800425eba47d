package splitter

import (
	"fmt"
	"os"
	"sort"
)

// SplitConfig is the validated input for one split run. It is constructed
// once by NewSplitConfig and read-only afterwards.
type SplitConfig struct {
	SourcePath string
	OutputDir  string
	// BreakPages holds the 1-based start page of each output document,
	// sorted ascending. Duplicates are preserved.
	BreakPages []int
}

// NewSplitConfig validates the source path and break pages and returns the
// canonical configuration. The output directory need not exist yet; Split
// creates it on demand.
func NewSplitConfig(sourcePath, outputDir string, breakPages []int) (*SplitConfig, error) {
	if _, err := os.Stat(sourcePath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, sourcePath)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", sourcePath, err)
	}
	if len(breakPages) == 0 {
		return nil, fmt.Errorf("%w: page list is empty", ErrInvalidPageList)
	}

	pages := make([]int, len(breakPages))
	copy(pages, breakPages)
	sort.Ints(pages)

	return &SplitConfig{
		SourcePath: sourcePath,
		OutputDir:  outputDir,
		BreakPages: pages,
	}, nil
}
