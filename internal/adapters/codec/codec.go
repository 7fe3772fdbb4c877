// Package codec provides streaming compression codecs with content and
// extension based detection. Each codec wraps plain readers and writers
// with its format's framing while leaving the lifecycle of the underlying
// stream to the caller.
package codec

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/iamNilotpal/iox/internal/core/domain"
	"github.com/iamNilotpal/iox/internal/core/ports"
)

// Compression level constants define the trade-off between compression
// ratio and speed on gzip's scale. Higher levels provide better
// compression at the cost of increased CPU usage and time.
const (
	FastestLevel uint8 = 1 // Optimized for speed with minimal compression
	DefaultLevel uint8 = 6 // Balanced between speed and compression ratio
	BestLevel    uint8 = 9 // Maximum compression ratio, higher CPU usage
)

// MagicLen is the number of leading bytes Detect needs to identify any
// registered codec.
const MagicLen = 4

// Registered codecs in detection order. The none codec stays last; it
// never sniffs and acts as the fallback.
var codecs = []ports.Codec{
	NewGzip(),
	NewZstd(),
	NewNone(),
}

// For returns the codec implementing method. CompressionAuto has no
// codec; it must be resolved to a concrete method before lookup.
func For(method domain.CompressionMethod) (ports.Codec, error) {
	for _, c := range codecs {
		if c.Method() == method {
			return c, nil
		}
	}
	return nil, fmt.Errorf("no codec registered for method %q", method)
}

// Detect inspects the leading bytes of a stream and reports the method
// that produced them. Plain or too short content maps to
// CompressionNone.
func Detect(prefix []byte) domain.CompressionMethod {
	for _, c := range codecs {
		if c.Sniff(prefix) {
			return c.Method()
		}
	}
	return domain.CompressionNone
}

// DetectExtension maps a file name extension to the method that
// conventionally produces it. Unrecognized or missing extensions map to
// CompressionNone.
func DetectExtension(path string) domain.CompressionMethod {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return domain.CompressionNone
	}

	for _, c := range codecs {
		for _, known := range c.Extensions() {
			if known == ext {
				return c.Method()
			}
		}
	}
	return domain.CompressionNone
}

// Returns CompressionOptions initialized with recommended default
// values that balance compression ratio and performance for most use
// cases.
func DefaultOptions() *domain.CompressionOptions {
	return &domain.CompressionOptions{
		Level: DefaultLevel,
	}
}

// Checks if the compression options are valid and returns an error if
// any option is outside acceptable bounds. A zero level is allowed and
// keeps each codec's default.
func Validate(input *domain.CompressionOptions) error {
	if input.Level != 0 && (input.Level < FastestLevel || input.Level > BestLevel) {
		return fmt.Errorf("compression level must be between %d and %d, got %d", FastestLevel, BestLevel, input.Level)
	}
	return nil
}
