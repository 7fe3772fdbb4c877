package codec

import (
	"bytes"
	"io"

	"github.com/iamNilotpal/iox/internal/core/domain"
	"github.com/klauspost/compress/gzip"
)

// Gzip member magic per RFC 1952.
var gzipMagic = []byte{0x1f, 0x8b}

// GzipCodec implements the codec port using the gzip format. Appending
// to an existing gzip file starts a new member; reading joins all
// members into one stream.
type GzipCodec struct{}

// NewGzip creates a new gzip codec instance.
func NewGzip() *GzipCodec {
	return &GzipCodec{}
}

// Method returns the compression method this codec implements.
func (GzipCodec) Method() domain.CompressionMethod {
	return domain.CompressionGzip
}

// Extensions lists the conventional gzip file name extensions.
func (GzipCodec) Extensions() []string {
	return []string{".gz"}
}

// Sniff reports whether prefix starts with the gzip magic bytes.
func (GzipCodec) Sniff(prefix []byte) bool {
	return bytes.HasPrefix(prefix, gzipMagic)
}

// Reader wraps r with a gzip decompressor spanning all members.
// The returned reader's Close releases decompressor state and never
// closes r.
func (GzipCodec) Reader(r io.Reader) (io.ReadCloser, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	return zr, nil
}

// Writer wraps w with a gzip compressor at level, or the gzip default
// when level is zero. Closing the returned writer flushes the member
// trailer but leaves w open.
func (GzipCodec) Writer(w io.Writer, level uint8) (io.WriteCloser, error) {
	if level == 0 {
		return gzip.NewWriter(w), nil
	}
	return gzip.NewWriterLevel(w, int(level))
}
