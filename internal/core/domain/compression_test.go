package domain_test

import (
	"testing"

	"github.com/iamNilotpal/iox/internal/core/domain"
	"github.com/iamNilotpal/iox/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestParseCompressionMethod(t *testing.T) {
	cases := map[string]domain.CompressionMethod{
		"":     domain.CompressionNone,
		"none": domain.CompressionNone,
		"gzip": domain.CompressionGzip,
		"zstd": domain.CompressionZstd,
		"auto": domain.CompressionAuto,
	}

	for input, want := range cases {
		method, err := domain.ParseCompressionMethod(input)
		require.NoError(t, err, "method %q", input)
		require.Equal(t, want, method, "method %q", input)
	}
}

func TestParseCompressionMethodInvalid(t *testing.T) {
	for _, input := range []string{"brotli", "GZIP", " gzip", "gz", "zst"} {
		_, err := domain.ParseCompressionMethod(input)
		require.Error(t, err, "method %q", input)
		require.True(t, errors.IsValidationError(err), "method %q: %v", input, err)
		require.Equal(t, "method", errors.AsValidationError(err).Field)
	}
}
