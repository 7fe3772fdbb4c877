package iox

import (
	"github.com/iamNilotpal/iox/internal/core/domain"
	"github.com/iamNilotpal/iox/internal/core/domain/config"
	"github.com/iamNilotpal/iox/internal/core/ports"
	"github.com/iamNilotpal/iox/internal/core/services/stream"
)

// CompressionMethod names the transform applied beneath a stream.
type CompressionMethod = domain.CompressionMethod

// Stream is an open file with its compression and text layers applied.
type Stream = stream.Stream

// Option tunes a single open call.
type Option = config.OpenConfigOption

// FileSystem is the pluggable file access backend used by open calls.
type FileSystem = ports.FileSystem

const (
	// CompressionNone opens the file as plain bytes.
	CompressionNone = domain.CompressionNone

	// CompressionGzip layers RFC 1952 gzip framing over the file.
	CompressionGzip = domain.CompressionGzip

	// CompressionZstd layers Zstandard framing over the file.
	CompressionZstd = domain.CompressionZstd

	// CompressionAuto detects the method from existing content or, for
	// fresh targets, the configured policy.
	CompressionAuto = domain.CompressionAuto
)

var (
	// ErrStreamClosed indicates operation on a closed stream.
	ErrStreamClosed = stream.ErrStreamClosed

	// ErrNotReadable indicates a read on a write only stream.
	ErrNotReadable = stream.ErrNotReadable

	// ErrNotWritable indicates a write on a read only stream.
	ErrNotWritable = stream.ErrNotWritable

	// ErrInvalidUTF8 indicates text mode content that is not well
	// formed UTF-8.
	ErrInvalidUTF8 = stream.ErrInvalidUTF8
)

// OpenCompressed opens path under method with a two token mode string
// such as "rb" or "wt": one access token (r read, w truncate or create,
// a append or create, x create exclusive) and one data token (t text,
// b binary), in either order. Malformed modes and unknown methods fail
// with a ValidationError before any file system access; errors from the
// underlying open call propagate unchanged. The returned stream must be
// closed by the caller; Close is safe to call more than once.
func OpenCompressed(method CompressionMethod, path, mode string, opts ...Option) (*Stream, error) {
	return stream.Open(method, path, mode, opts...)
}

// WithCompressionLevel sets the compression level for writable streams.
// Levels follow gzip's 1-9 scale; zstd maps the value onto its own
// range. Zero keeps each codec's default.
func WithCompressionLevel(level uint8) Option {
	return config.WithLevel(level)
}

// WithAutoWriteMethod sets the method CompressionAuto assumes when the
// target will be created or truncated, where content sniffing is
// impossible. Defaults to CompressionNone.
func WithAutoWriteMethod(method CompressionMethod) Option {
	return config.WithAutoWriteMethod(method)
}

// WithExtensionInference lets CompressionAuto pick the method of fresh
// targets from the file name extension, taking precedence over the auto
// write method.
func WithExtensionInference(infer bool) Option {
	return config.WithInferExtension(infer)
}

// WithFileSystem swaps the file access backend, primarily so helpers
// can be exercised against fakes.
func WithFileSystem(fsys FileSystem) Option {
	return config.WithFileSystem(fsys)
}
