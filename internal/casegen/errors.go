package casegen

import "errors"

// Generation errors are configuration/data errors, never transient. A failed
// generation produces no Case; callers get the sentinel wrapped with context.
var (
	// ErrEmptyCatalog is returned when no templates are supplied.
	ErrEmptyCatalog = errors.New("casegen: empty template catalog")

	// ErrInsufficientPoolData is returned when a witness attribute pool is
	// empty while at least one witness is requested.
	ErrInsufficientPoolData = errors.New("casegen: witness pool is empty")

	// ErrInsufficientEvidencePool is returned when a template requests more
	// evidence items than it has distinct labels. This is a template
	// authoring error and is surfaced rather than silently truncated.
	ErrInsufficientEvidencePool = errors.New("casegen: evidence pool smaller than requested count")
)
