package ports

import (
	"io"

	"github.com/iamNilotpal/iox/internal/core/domain"
)

// Defines the interface for streaming compression codecs.
// This allows us to swap compression formats without changing core logic.
type Codec interface {
	// Method returns the compression method this codec implements.
	Method() domain.CompressionMethod

	// Reader wraps r with a decompressing reader. Closing the returned
	// reader releases codec state only, never r itself.
	Reader(r io.Reader) (io.ReadCloser, error)

	// Writer wraps w with a compressing writer at the given level, or
	// the codec's default when level is zero. Closing the returned
	// writer flushes codec framing but leaves w open.
	Writer(w io.Writer, level uint8) (io.WriteCloser, error)

	// Extensions lists file name extensions conventionally used for
	// this codec's output, including the leading dot.
	Extensions() []string

	// Sniff reports whether prefix starts with this codec's magic bytes.
	Sniff(prefix []byte) bool
}
