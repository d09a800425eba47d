package splitter

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePageList parses a comma-separated list of page numbers,
// e.g. "1,10,20,30". Tokens are trimmed of surrounding whitespace.
func ParsePageList(s string) ([]int, error) {
	tokens := strings.Split(s, ",")
	pages := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("%w: page list must be comma-separated integers", ErrInvalidPageList)
		}
		pages = append(pages, n)
	}
	return pages, nil
}
