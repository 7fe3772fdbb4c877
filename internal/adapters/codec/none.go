package codec

import (
	"io"

	"github.com/iamNilotpal/iox/internal/core/domain"
)

// NoneCodec is the identity codec: bytes pass through untouched.
type NoneCodec struct{}

// NewNone creates a new passthrough codec instance.
func NewNone() *NoneCodec {
	return &NoneCodec{}
}

// Method returns the compression method this codec implements.
func (NoneCodec) Method() domain.CompressionMethod {
	return domain.CompressionNone
}

// Extensions returns nil; plain files have no dedicated extension.
func (NoneCodec) Extensions() []string {
	return nil
}

// Sniff always reports false so detection falls through to plain bytes.
func (NoneCodec) Sniff(prefix []byte) bool {
	return false
}

// Reader returns r unchanged behind a no-op Close.
func (NoneCodec) Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

// Writer returns w unchanged behind a no-op Close; the owning stream
// controls the file's lifecycle.
func (NoneCodec) Writer(w io.Writer, level uint8) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
