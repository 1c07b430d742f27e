package source

import "errors"

var (
	// ErrUnavailable indicates the source could not be fetched at all:
	// network failure, non-success HTTP status, or unreadable file.
	ErrUnavailable = errors.New("question source unavailable")

	// ErrInvalid indicates the source was fetched and parsed but yielded
	// zero usable question groups.
	ErrInvalid = errors.New("question source contains no usable questions")
)
