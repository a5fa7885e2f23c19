package arraytree

import "errors"

var (
	// ErrMalformedStructure signals a structure array that does not encode
	// a forest of complete subtrees.
	ErrMalformedStructure = errors.New("arraytree: malformed structure array")
	// ErrLengthMismatch signals structure and values arrays of different lengths.
	ErrLengthMismatch = errors.New("arraytree: structure and values lengths differ")
	// ErrNotATree signals an encoding holding zero or several top-level trees
	// where exactly one is required.
	ErrNotATree = errors.New("arraytree: encoding is a forest, not a single tree")
)
