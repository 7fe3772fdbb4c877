// Package domain defines the core types for compressed stream handling.
package domain

import (
	"fmt"

	"github.com/iamNilotpal/iox/pkg/errors"
)

// CompressionMethod represents supported compression transforms.
type CompressionMethod string

const (
	// CompressionNone opens the file as plain bytes.
	CompressionNone CompressionMethod = "none"

	// CompressionGzip layers RFC 1952 gzip framing over the file.
	CompressionGzip CompressionMethod = "gzip"

	// CompressionZstd layers Zstandard framing over the file.
	CompressionZstd CompressionMethod = "zstd"

	// CompressionAuto resolves the method at open time: existing content
	// is sniffed for magic bytes, fresh targets fall back to the
	// configured policy. Streams never carry CompressionAuto; they always
	// report the resolved concrete method.
	CompressionAuto CompressionMethod = "auto"
)

// ParseCompressionMethod validates a method name. The empty string maps
// to CompressionNone so callers can leave the method unset. Unknown
// names fail with a ValidationError before any file is touched.
func ParseCompressionMethod(s string) (CompressionMethod, error) {
	switch CompressionMethod(s) {
	case "":
		return CompressionNone, nil
	case CompressionNone, CompressionGzip, CompressionZstd, CompressionAuto:
		return CompressionMethod(s), nil
	default:
		return CompressionNone, errors.NewValidationError(
			"method", s, fmt.Errorf("unknown compression method %q", s),
		)
	}
}

// CompressionOptions configures the compression behavior of writable
// streams.
type CompressionOptions struct {
	// Level defines the compression level applied by the codec.
	// Levels follow gzip's 1-9 scale; the zstd codec maps the value
	// onto its own range. Zero keeps each codec's default.
	Level uint8
}
