package loader

import "errors"

// ErrUnsupportedFormat is returned when no reader exists for a file extension
var ErrUnsupportedFormat = errors.New("unsupported file format")
