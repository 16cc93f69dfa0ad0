package model

import "errors"

var (
	// ErrInvalidWidth is returned when a cell is measured against a width below one column
	ErrInvalidWidth = errors.New("display width must be at least 1")

	// ErrShapeMismatch is returned when paired sequences have different lengths
	ErrShapeMismatch = errors.New("sequence lengths do not match")

	// ErrInvalidDepth is returned when a hierarchical index of depth below 2 is requested
	ErrInvalidDepth = errors.New("hierarchical index depth must be at least 2")
)
