package codec

import (
	"bytes"
	"io"

	"github.com/iamNilotpal/iox/internal/core/domain"
	"github.com/klauspost/compress/zstd"
)

// Zstandard frame magic per RFC 8878.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// ZstdCodec implements the codec port using the Zstandard format.
// Encoder and decoder concurrency is pinned to one goroutine; streams
// are synchronous.
type ZstdCodec struct{}

// NewZstd creates a new zstd codec instance.
func NewZstd() *ZstdCodec {
	return &ZstdCodec{}
}

// Method returns the compression method this codec implements.
func (ZstdCodec) Method() domain.CompressionMethod {
	return domain.CompressionZstd
}

// Extensions lists the conventional zstd file name extensions.
func (ZstdCodec) Extensions() []string {
	return []string{".zst", ".zstd"}
}

// Sniff reports whether prefix starts with the zstd frame magic.
func (ZstdCodec) Sniff(prefix []byte) bool {
	return bytes.HasPrefix(prefix, zstdMagic)
}

// Reader wraps r with a zstd decoder spanning all frames. The decoder
// releases its state through the returned Close and never closes r.
func (ZstdCodec) Reader(r io.Reader) (io.ReadCloser, error) {
	decoder, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return decoder.IOReadCloser(), nil
}

// Writer wraps w with a zstd encoder. A zero level keeps the encoder
// default; other levels map through zstd's own level scale.
func (ZstdCodec) Writer(w io.Writer, level uint8) (io.WriteCloser, error) {
	if level == 0 {
		return zstd.NewWriter(w, zstd.WithEncoderConcurrency(1))
	}
	return zstd.NewWriter(
		w,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(int(level))),
	)
}
