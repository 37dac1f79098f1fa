package tsarray

import "errors"

var (
	// ErrInvalidArgument reports a malformed argument, such as a zero
	// slice step or a negative requested length.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound reports an index outside the occupied range.
	ErrNotFound = errors.New("index not found")
	// ErrOutOfMemory reports a requested size beyond the addressable
	// range.
	ErrOutOfMemory = errors.New("size not addressable")
	// ErrOverflow reports an arithmetic step that would exceed the
	// index range.
	ErrOverflow = errors.New("arithmetic overflow")
)
