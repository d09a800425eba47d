package splitter

import "errors"

// Sentinel errors for the failure modes surfaced to the CLI. Callers
// distinguish them with errors.Is.
var (
	// ErrSourceNotFound is returned when the source PDF does not exist.
	ErrSourceNotFound = errors.New("source file not found")

	// ErrInvalidPageList is returned for an empty break-page list or a
	// page-list string containing a non-integer token.
	ErrInvalidPageList = errors.New("invalid page list")

	// ErrCorruptDocument is returned when the source cannot be parsed as
	// a PDF.
	ErrCorruptDocument = errors.New("corrupt or unreadable PDF")
)
