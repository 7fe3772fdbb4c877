package errors

import (
	"fmt"
)

// ErrorCategory classifies different types of errors that can occur
// while opening, transforming and releasing streams. This helps in
// proper error handling, logging and debugging.
type ErrorCategory int

const (
	// ErrorDetect indicates errors during compression detection,
	// such as an unreadable prefix on an existing file.
	ErrorDetect ErrorCategory = iota + 1

	// ErrorCodec indicates errors inside a compression or text
	// transform, such as corrupt gzip framing or data that is not
	// well formed UTF-8.
	ErrorCodec

	// ErrorClose indicates errors while releasing stream layers or
	// the underlying file.
	ErrorClose
)

// String returns the string representation of the error category.
// This is useful for logging and error reporting.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorDetect:
		return "detect"
	case ErrorCodec:
		return "codec"
	case ErrorClose:
		return "close"
	default:
		return "unknown"
	}
}

// IOError wraps a failure from a stream operation with the operation
// name, the affected path and its category. File system errors from the
// underlying open call are never wrapped; they reach callers unchanged.
type IOError struct {
	Err      error
	Op       string
	Path     string
	Category ErrorCategory
}

// NewIOError creates a new IOError instance.
func NewIOError(category ErrorCategory, op, path string, err error) *IOError {
	return &IOError{
		Err:      err,
		Op:       op,
		Path:     path,
		Category: category,
	}
}

func (e *IOError) Error() string {
	return fmt.Sprintf("[%v] %s %s: %v", e.Category, e.Op, e.Path, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *IOError) Unwrap() error {
	return e.Err
}
