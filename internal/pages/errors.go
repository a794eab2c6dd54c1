package pages

import "errors"

// Errors returned by document operations.
var (
	// ErrIndexOutOfRange indicates a page index outside the document.
	ErrIndexOutOfRange = errors.New("page index out of range")

	// ErrInvalidRotation indicates a rotation that is not a multiple of 90 degrees.
	ErrInvalidRotation = errors.New("rotation must be a multiple of 90 degrees")

	// ErrNoPages indicates an operation that needs at least one page got none.
	ErrNoPages = errors.New("no pages given")

	// ErrBadRow indicates a row that does not decode to a Page.
	ErrBadRow = errors.New("malformed page row")
)
