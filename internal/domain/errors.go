package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrAuthorNotFound signals a missing author document.
	ErrAuthorNotFound = errors.New("author not found")
	// ErrInvalidAuthor signals an author document that fails validation.
	ErrInvalidAuthor = errors.New("invalid author")
	// ErrInvalidCursor signals a malformed pagination cursor.
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrNotImplemented signals an unimplemented feature.
	ErrNotImplemented = errors.New("not implemented")
)
