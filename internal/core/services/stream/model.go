package stream

import "errors"

var (
	// ErrStreamClosed indicates operation on a closed stream.
	ErrStreamClosed = errors.New("stream is closed")

	// ErrNotReadable indicates a read on a write only stream.
	ErrNotReadable = errors.New("stream is not readable")

	// ErrNotWritable indicates a write on a read only stream.
	ErrNotWritable = errors.New("stream is not writable")

	// ErrInvalidUTF8 indicates text mode content that is not well
	// formed UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 sequence")
)

// Default permission bits for files created by writable modes.
const createPerm = 0o644
